package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridtone/config"
	"gridtone/contrib"
	"gridtone/midi"
	"gridtone/sequencer"
	"gridtone/theme"
	"gridtone/widgets"
)

// scale modes cycled by the s key, auto first
var scaleModes = []string{
	sequencer.ScaleAuto,
	string(sequencer.ScalePentatonic),
	string(sequencer.ScaleLydian),
	string(sequencer.ScaleDorian),
	string(sequencer.ScalePhrygian),
}

type stepEvent struct {
	col  int
	days []int
}

// StepMsg carries one playhead advance from the engine
type StepMsg stepEvent

// GridMsg carries a fetched (or fallback) grid
type GridMsg struct {
	Grid      *contrib.Grid
	Err       error
	Synthetic bool
}

type Model struct {
	Engine *sequencer.Engine
	Synth  *midi.Synth
	Theme  *theme.Theme
	Cfg    *config.Config

	grid     *contrib.Grid
	identity string
	platform contrib.Platform

	playCol  int
	sounding []int

	scaleMode int // index into scaleModes

	inputMode   bool
	inputBuffer string

	offline  bool
	fetching bool
	status   string
	quitting bool

	steps chan stepEvent
}

func NewModel(engine *sequencer.Engine, synth *midi.Synth, th *theme.Theme, cfg *config.Config) Model {
	steps := make(chan stepEvent, 8)
	engine.SetOnStep(func(col int, days []int) {
		select {
		case steps <- stepEvent{col: col, days: days}:
		default:
			// UI lagging; drop the frame, audio is unaffected
		}
	})

	mode := 0
	for i, s := range scaleModes {
		if s == cfg.Scale {
			mode = i
		}
	}
	engine.SetScale(scaleModes[mode])

	return Model{
		Engine:    engine,
		Synth:     synth,
		Theme:     th,
		Cfg:       cfg,
		identity:  cfg.User,
		platform:  contrib.Platform(cfg.Platform),
		playCol:   -1,
		scaleMode: mode,
		offline:   cfg.Offline,
		fetching:  cfg.User != "" && !cfg.Offline,
		steps:     steps,
	}
}

func listenSteps(steps chan stepEvent) tea.Cmd {
	return func() tea.Msg {
		return StepMsg(<-steps)
	}
}

func fetchGrid(identity string, platform contrib.Platform) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		g, err := contrib.Fetch(ctx, identity, platform)
		if err != nil {
			// The engine never sees fetch failures - substitute a
			// synthetic grid of the same shape.
			return GridMsg{Grid: contrib.Synthetic(identity, nil), Err: err, Synthetic: true}
		}
		return GridMsg{Grid: g}
	}
}

func loadSynthetic(identity string) tea.Cmd {
	return func() tea.Msg {
		if identity == "" {
			identity = "offline"
		}
		return GridMsg{Grid: contrib.Synthetic(identity, nil), Synthetic: true}
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{listenSteps(m.steps)}
	switch {
	case m.offline:
		cmds = append(cmds, loadSynthetic(m.identity))
	case m.identity != "":
		cmds = append(cmds, fetchGrid(m.identity, m.platform))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)

	case StepMsg:
		m.playCol = msg.col
		m.sounding = msg.days
		return m, listenSteps(m.steps)

	case GridMsg:
		m.fetching = false
		// A new grid invalidates any running session
		m.stopPlayback()
		m.grid = msg.Grid
		m.Synth.SetVoice(sequencer.VoiceFor(m.grid.Identity))
		switch {
		case msg.Err != nil:
			m.status = fmt.Sprintf("fetch failed (%v) - playing a synthetic calendar", msg.Err)
		case msg.Synthetic:
			m.status = "synthetic calendar loaded"
		default:
			m.status = fmt.Sprintf("loaded %s - %d contributions", m.grid.Identity, m.grid.TotalCount())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.stopPlayback()
		return m, tea.Quit

	case "i":
		m.inputMode = true
		m.inputBuffer = m.identity

	case "p", " ":
		if m.Engine.Playing() {
			m.stopPlayback()
		} else {
			m.Engine.Start(m.grid)
		}

	case "s":
		m.scaleMode = (m.scaleMode + 1) % len(scaleModes)
		m.Engine.SetScale(scaleModes[m.scaleMode])
		m.status = "scale mode: " + scaleModes[m.scaleMode]

	case "t":
		if m.platform == contrib.PlatformGitLab {
			m.platform = contrib.PlatformGitHub
		} else {
			m.platform = contrib.PlatformGitLab
		}
		m.status = "platform: " + string(m.platform)

	case "o":
		return m, loadSynthetic(m.identity)

	case "g":
		if m.identity != "" && !m.fetching {
			m.fetching = true
			m.status = "fetching " + m.identity + "..."
			return m, fetchGrid(m.identity, m.platform)
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.inputMode = false
		identity := strings.TrimSpace(m.inputBuffer)
		if identity == "" {
			return m, nil
		}
		m.identity = identity
		m.fetching = true
		m.status = "fetching " + identity + "..."
		return m, fetchGrid(identity, m.platform)

	case "esc":
		m.inputMode = false
		m.inputBuffer = ""

	case "backspace":
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
		}

	default:
		key := msg.String()
		if len(key) == 1 && key[0] >= 32 && key[0] < 127 {
			m.inputBuffer += key
		}
	}
	return m, nil
}

// stopPlayback halts the engine and silences anything still ringing.
func (m *Model) stopPlayback() {
	m.Engine.Stop()
	m.Synth.Silence()
	m.playCol = -1
	m.sounding = nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.Engine.State()
	th := m.Theme

	headerStyle := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(th.Muted())
	moodStyle := lipgloss.NewStyle().Foreground(th.MoodColor(string(st.Scale)))

	var out strings.Builder

	// Header: identity, transport, tempo, mood
	who := "(no identity)"
	if m.identity != "" {
		who = m.identity + "@" + string(m.platform)
	}
	transport := "STOP"
	if st.Playing {
		transport = "PLAY"
	}
	mode := scaleModes[m.scaleMode]
	scaleLabel := string(st.Scale)
	if mode == sequencer.ScaleAuto {
		scaleLabel += " (auto)"
	}
	out.WriteString(headerStyle.Render("GRIDTONE"))
	out.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s  %d bpm  ", who, transport, st.Tempo)))
	out.WriteString(moodStyle.Render(fmt.Sprintf("%s  %s", st.Mood, scaleLabel)))
	out.WriteString("\n\n")

	out.WriteString(widgets.RenderContribGrid(m.grid, m.playCol, m.sounding, th))
	out.WriteString("\n")
	out.WriteString(widgets.RenderPlayheadRuler(m.playCol, th))
	out.WriteString("\n\n")

	if m.inputMode {
		out.WriteString(fmt.Sprintf("identity: %s_\n", m.inputBuffer))
		out.WriteString(dimStyle.Render("[enter] fetch  [esc] cancel"))
		out.WriteString("\n")
		return out.String()
	}

	if m.fetching {
		out.WriteString(dimStyle.Render("fetching..."))
		out.WriteString("\n")
	} else if m.status != "" {
		out.WriteString(dimStyle.Render(m.status))
		out.WriteString("\n")
	}
	out.WriteString("\n")

	out.WriteString(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "i", Desc: "enter identity"},
			{Key: "p / space", Desc: "play / stop"},
			{Key: "s", Desc: "cycle scale (auto first)"},
			{Key: "t", Desc: "toggle platform"},
			{Key: "o", Desc: "offline synthetic calendar"},
			{Key: "g", Desc: "refetch"},
			{Key: "q", Desc: "quit"},
		}},
	}))

	return out.String()
}
