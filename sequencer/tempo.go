package sequencer

import "gridtone/contrib"

// Tempo bounds in BPM. A dead calendar plays at the floor; the cap
// keeps hyperactive calendars listenable.
const (
	TempoMin = 80
	TempoMax = 180
)

// TempoFor derives the session tempo from the total contribution
// count: one extra BPM per 50 contributions, clamped. Computed once
// per session, never mid-playback.
func TempoFor(g *contrib.Grid) int {
	if g == nil {
		return TempoMin
	}
	tempo := TempoMin + g.TotalCount()/50
	if tempo > TempoMax {
		tempo = TempoMax
	}
	return tempo
}
