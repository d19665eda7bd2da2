package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Cell     rune // ■ day cell
	Sounding rune // ◉ cell currently sounding
	Playhead rune // ▶ transport marker
	Stopped  rune // ■ transport marker when stopped
}

// New builds a theme over a level palette. Pass nil for the built-in
// contribution ramp.
func New(palette *Palette) *Theme {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Cell:     '■',
			Sounding: '◉',
			Playhead: '▶',
			Stopped:  '■',
		},
	}
}

// LevelColor maps an activity level 0-4 onto the palette. Palettes
// with exactly five colors index directly; larger ones interpolate.
func (t *Theme) LevelColor(level int) lipgloss.Color {
	if len(t.Palette.Colors) == 5 {
		return rgbToLipgloss(t.Palette.Index(level))
	}
	return rgbToLipgloss(t.Palette.Lookup(float64(level) / 4.0))
}

// Mood accents for the header and playhead, one per scale mood
var moodAccents = map[string]RGB{
	"pentatonic": {57, 211, 83},  // calm green
	"lydian":     {88, 166, 255}, // dreamy blue
	"dorian":     {255, 166, 87}, // focused orange
	"phrygian":   {248, 81, 73},  // intense red
}

// MoodColor returns the accent for a scale id.
func (t *Theme) MoodColor(scale string) lipgloss.Color {
	if c, ok := moodAccents[scale]; ok {
		return rgbToLipgloss(c)
	}
	return t.Accent()
}

// Fixed UI roles

func (t *Theme) FG() lipgloss.Color {
	return lipgloss.Color("#c9d1d9")
}

func (t *Theme) Muted() lipgloss.Color {
	return lipgloss.Color("#8b949e")
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(len(t.Palette.Colors) - 1))
}

func (t *Theme) Error() lipgloss.Color {
	return lipgloss.Color("#f85149")
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
