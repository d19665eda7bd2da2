package sequencer

import "gridtone/contrib"

// Mood labels shown in the UI alongside the derived scale
const (
	MoodZen     = "Zen (Low)"
	MoodDreamy  = "Dreamy (Med)"
	MoodFocus   = "Focus (High)"
	MoodIntense = "Intense (Extreme)"
)

// Activity thresholds on the 4-week block level-sum. Strictly greater:
// a sum landing exactly on a threshold resolves to the lower tier.
const (
	intenseThreshold = 50
	focusThreshold   = 30
	dreamyThreshold  = 10

	busyThreshold   = 15
	mediumThreshold = 5
)

// MoodForSum maps a block activity sum to a scale and mood label.
func MoodForSum(sum int) (ScaleID, string) {
	switch {
	case sum > intenseThreshold:
		return ScalePhrygian, MoodIntense
	case sum > focusThreshold:
		return ScaleDorian, MoodFocus
	case sum > dreamyThreshold:
		return ScaleLydian, MoodDreamy
	default:
		return ScalePentatonic, MoodZen
	}
}

// BlockSum sums day levels over the 4-week block containing col.
// Block boundaries are aligned (floor(col/4)*4) and clipped at the
// grid edge.
func BlockSum(g *contrib.Grid, col int) int {
	start := (col / 4) * 4
	sum := 0
	for w := start; w < start+4 && w < contrib.NumWeeks; w++ {
		sum += g.Weeks[w].LevelSum()
	}
	return sum
}

// IntensityFlags derives the drum intensity flags from a block sum.
func IntensityFlags(sum int) (busy, medium bool) {
	return sum > busyThreshold, sum > mediumThreshold
}
