package sequencer

import "gridtone/contrib"

// ChordRoot scans the 4-column lookahead window [col, col+4) for the
// day index with the highest level among days with level > 2. Only a
// strictly greater level advances the pick, so ties keep the
// first-seen index. A window with no day above level 2 roots on 0.
func ChordRoot(g *contrib.Grid, col int) int {
	best := 0
	bestLevel := 0
	for w := col; w < col+4 && w < contrib.NumWeeks; w++ {
		for d := 0; d < contrib.NumDays; d++ {
			level := g.Weeks[w].Days[d].Level
			if level > 2 && level > bestLevel {
				bestLevel = level
				best = d
			}
		}
	}
	return best
}

// WindowActive reports whether the lookahead window [col, col+4) has
// any active day. Silent windows get no chord at all - a dead
// calendar plays only its kick pulse.
func WindowActive(g *contrib.Grid, col int) bool {
	for w := col; w < col+4 && w < contrib.NumWeeks; w++ {
		for d := 0; d < contrib.NumDays; d++ {
			if g.Weeks[w].Days[d].Level > 0 {
				return true
			}
		}
	}
	return false
}

// ChordDegrees expands a root day index into the root/third/fifth
// degrees of the chordal-root table.
func ChordDegrees(root int) (r, third, fifth int) {
	return root % 7, (root + 2) % 7, (root + 4) % 7
}
