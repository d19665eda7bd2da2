package sequencer

import (
	"math/rand"

	"gridtone/contrib"
)

// Note is one selected melodic event for a column
type Note struct {
	Day      int   // day index 0-6 within the week
	Level    int   // contribution level 1-4
	Degree   int   // index into the melodic scale table
	Velocity uint8
}

// Columns whose level-sum exceeds this get thinned to 1-3 notes so
// dense weeks don't saturate into noise.
const densityThreshold = 25

// Velocity by level; level 0 is silent and never indexed.
var velocityForLevel = [5]uint8{0, 64, 82, 100, 118}

// SelectNotes picks which day cells of a column sound. Every active
// (level > 0) cell sounds unless the column is dense, in which case
// the active cells are shuffled and 1-3 survive. Pitch degree is
// (day + level) mod 7; velocity comes from the fixed level table.
func SelectNotes(week *contrib.Week, rng *rand.Rand) []Note {
	var active []int
	sum := 0
	for d := range week.Days {
		level := week.Days[d].Level
		sum += level
		if level > 0 {
			active = append(active, d)
		}
	}
	if len(active) == 0 {
		return nil
	}

	if sum > densityThreshold {
		rng.Shuffle(len(active), func(i, j int) {
			active[i], active[j] = active[j], active[i]
		})
		keep := 1 + rng.Intn(3)
		if keep > len(active) {
			keep = len(active)
		}
		active = active[:keep]
	}

	notes := make([]Note, 0, len(active))
	for _, d := range active {
		level := week.Days[d].Level
		notes = append(notes, Note{
			Day:      d,
			Level:    level,
			Degree:   (d + level) % 7,
			Velocity: velocityForLevel[level],
		})
	}
	return notes
}
