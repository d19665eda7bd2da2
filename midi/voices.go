package midi

// Channel layout: lead melody, chord pad, GM percussion.
const (
	MelodyChannel uint8 = 0
	PadChannel    uint8 = 1
	DrumChannel   uint8 = 9
)

// General MIDI drum notes used by the percussion triggers
const (
	KickNote  uint8 = 36 // Bass Drum 1
	SnareNote uint8 = 38 // Acoustic Snare
	HatNote   uint8 = 42 // Closed Hi-Hat
)

// VoicePrograms is the lead-voice palette, indexed by the identity
// hash. General MIDI program numbers.
var VoicePrograms = [4]uint8{
	80, // Square Lead
	81, // Saw Lead
	4,  // Electric Piano 1
	11, // Vibraphone
}

// PadProgram backs the sustained chords
const PadProgram uint8 = 89 // Warm Pad
