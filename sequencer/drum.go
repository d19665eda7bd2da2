package sequencer

// DrumVoice identifies a percussion voice
type DrumVoice int

const (
	VoiceKick DrumVoice = iota
	VoiceSnare
	VoiceHiHat
)

// DrumHit is one percussion trigger for a beat
type DrumHit struct {
	Voice     DrumVoice
	Intensity float64 // 0-1, only meaningful for hi-hats
}

// Hi-hat loudness - busier blocks get the louder hat
const (
	hatBusy   = 0.5
	hatMedium = 0.25
)

// DrumHitsFor derives the percussion for one beat of the bar.
// Beat 0 always kicks. Beat 2 snares when the block is medium-active,
// falling back to a hat when it is merely busy. Beats 1 and 3 get a
// hat whose loudness follows the busy flag. A quiet block (neither
// flag) stays silent apart from the kick.
func DrumHitsFor(beat int, busy, medium bool) []DrumHit {
	switch beat {
	case 0:
		return []DrumHit{{Voice: VoiceKick}}
	case 2:
		if medium {
			return []DrumHit{{Voice: VoiceSnare}}
		}
		if busy {
			return []DrumHit{{Voice: VoiceHiHat, Intensity: hatBusy}}
		}
	default: // beats 1 and 3
		if busy {
			return []DrumHit{{Voice: VoiceHiHat, Intensity: hatBusy}}
		}
		if medium {
			return []DrumHit{{Voice: VoiceHiHat, Intensity: hatMedium}}
		}
	}
	return nil
}
