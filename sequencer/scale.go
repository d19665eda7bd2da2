package sequencer

// ScaleID identifies one of the four playable scales
type ScaleID string

const (
	ScalePentatonic ScaleID = "pentatonic" // calm
	ScaleLydian     ScaleID = "lydian"     // dreamy
	ScaleDorian     ScaleID = "dorian"     // focused
	ScalePhrygian   ScaleID = "phrygian"   // phrygian dominant - intense
)

// ScaleAuto is the SetScale value that re-enables automatic mood selection
const ScaleAuto = "auto"

// AllScales lists the playable scales in mood order, calm first
var AllScales = []ScaleID{ScalePentatonic, ScaleLydian, ScaleDorian, ScalePhrygian}

// Interval tables - semitones from the root, seven degrees per scale
var scaleIntervals = map[ScaleID][7]int{
	ScalePentatonic: {0, 2, 4, 7, 9, 12, 14},
	ScaleLydian:     {0, 2, 4, 6, 7, 9, 11},
	ScaleDorian:     {0, 2, 3, 5, 7, 9, 10},
	ScalePhrygian:   {0, 1, 4, 5, 7, 8, 10},
}

// Melody sits at C4; chordal roots one octave below
const (
	melodicRoot = 60
	chordalRoot = 48
)

// ValidScale reports whether id names a playable scale
func ValidScale(id ScaleID) bool {
	_, ok := scaleIntervals[id]
	return ok
}

// MelodicPitch returns the MIDI pitch for a scale degree (0-6) of the
// melodic table. Unknown scales fall back to pentatonic.
func MelodicPitch(scale ScaleID, degree int) uint8 {
	return pitchAt(scale, degree, melodicRoot)
}

// ChordPitch returns the MIDI pitch for a scale degree of the
// chordal-root table.
func ChordPitch(scale ScaleID, degree int) uint8 {
	return pitchAt(scale, degree, chordalRoot)
}

func pitchAt(scale ScaleID, degree int, root int) uint8 {
	intervals, ok := scaleIntervals[scale]
	if !ok {
		intervals = scaleIntervals[ScalePentatonic]
	}
	degree %= 7
	if degree < 0 {
		degree += 7
	}
	return uint8(root + intervals[degree])
}
