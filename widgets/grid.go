package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridtone/contrib"
	"gridtone/theme"
)

// RenderContribGrid renders the 52x7 calendar as 7 rows of colored
// cells, oldest week on the left. playCol highlights the column under
// the playhead (-1 for none); sounding marks the day indices sounding
// in that column.
func RenderContribGrid(g *contrib.Grid, playCol int, sounding []int, th *theme.Theme) string {
	if g == nil {
		return lipgloss.NewStyle().Foreground(th.Muted()).
			Render("no grid loaded - press i to enter an identity")
	}

	soundingDay := make(map[int]bool, len(sounding))
	for _, d := range sounding {
		soundingDay[d] = true
	}

	var out strings.Builder
	for day := 0; day < contrib.NumDays; day++ {
		for week := 0; week < contrib.NumWeeks; week++ {
			level := g.Weeks[week].Days[day].Level

			style := lipgloss.NewStyle().Foreground(th.LevelColor(level))
			ch := string(th.Symbols.Cell)

			if week == playCol {
				if soundingDay[day] {
					style = style.Foreground(lipgloss.Color("#ffffff"))
					ch = string(th.Symbols.Sounding)
				} else {
					style = style.Background(lipgloss.Color("#30363d"))
				}
			}
			out.WriteString(style.Render(ch))
			if week < contrib.NumWeeks-1 {
				out.WriteString(" ")
			}
		}
		if day < contrib.NumDays-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// RenderPlayheadRuler renders a one-line column marker under the grid.
func RenderPlayheadRuler(playCol int, th *theme.Theme) string {
	var out strings.Builder
	style := lipgloss.NewStyle().Foreground(th.Accent())
	for week := 0; week < contrib.NumWeeks; week++ {
		if week == playCol {
			out.WriteString(style.Render(string(th.Symbols.Playhead)))
		} else {
			out.WriteString(" ")
		}
		if week < contrib.NumWeeks-1 {
			out.WriteString(" ")
		}
	}
	return out.String()
}
