package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gridtone/config"
	"gridtone/debug"
	"gridtone/midi"
	"gridtone/sequencer"
	"gridtone/theme"
	"gridtone/tui"
)

var (
	flagPlatform string
	flagPort     string
	flagScale    string
	flagOffline  bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "gridtone [user]",
	Short: "Play a contribution calendar as music",
	Long: `gridtone fetches a GitHub or GitLab contribution calendar and plays
it as an evolving musical sequence over MIDI, one week per eighth
note. Busy months push the mood from zen pentatonics toward phrygian
intensity; the terminal shows the calendar with a moving playhead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagPlatform, "platform", "", "data source: github or gitlab")
	rootCmd.Flags().StringVar(&flagPort, "port", "", "MIDI output port name (default: first available)")
	rootCmd.Flags().StringVar(&flagScale, "scale", "", "scale mode: auto, pentatonic, lydian, dorian, phrygian")
	rootCmd.Flags().BoolVar(&flagOffline, "offline", false, "skip fetching, play a synthetic calendar")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log to ~/.config/gridtone/debug.log")
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		if err := debug.Enable(); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Disable()
	}

	// .env and environment override the saved config; flags override both
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	if len(args) > 0 {
		cfg.User = args[0]
	}
	if flagPlatform != "" {
		cfg.Platform = flagPlatform
	}
	if flagPort != "" {
		cfg.PortName = flagPort
	}
	if flagScale != "" {
		cfg.Scale = flagScale
	}
	cfg.Offline = flagOffline

	// Optional custom level palette
	var palette *theme.Palette
	if cfg.PalettePath != "" {
		p, err := theme.LoadGPL(cfg.PalettePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "palette %s: %v (using default)\n", cfg.PalettePath, err)
		} else {
			palette = p
		}
	}
	th := theme.New(palette)

	out := midi.NewOut(cfg.PortName)
	defer out.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go out.Watch(ctx)

	synth := midi.NewSynth(out)
	engine := sequencer.NewEngine(synth)

	m := tui.NewModel(engine, synth, th, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	engine.Stop()
	synth.Silence()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
