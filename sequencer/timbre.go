package sequencer

// NumVoices is the size of the lead voice palette
const NumVoices = 4

// VoiceFor hashes an identity string into the voice palette with a
// polynomial rolling hash. Stable across runs: the same identity
// always plays the same voice.
func VoiceFor(identity string) int {
	var h int32
	for _, r := range identity {
		h = int32(r) + (h<<5 - h)
	}
	idx := int(h)
	if idx < 0 {
		idx = -idx
	}
	return idx % NumVoices
}
