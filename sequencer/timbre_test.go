package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoiceForIsStable(t *testing.T) {
	for _, id := range []string{"", "octocat", "torvalds", "a-very-long-identity-string"} {
		first := VoiceFor(id)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, VoiceFor(id), "identity %q", id)
		}
	}
}

func TestVoiceForStaysInPalette(t *testing.T) {
	ids := []string{"", "a", "ab", "octocat", "gridtone", "ユーザー", "user-123"}
	for _, id := range ids {
		v := VoiceFor(id)
		assert.GreaterOrEqual(t, v, 0, "identity %q", id)
		assert.Less(t, v, NumVoices, "identity %q", id)
	}
}

func TestVoiceForDistinguishesIdentities(t *testing.T) {
	// Not a strong property of a 4-slot hash, but these particular
	// strings should not all collapse onto one voice.
	seen := map[int]bool{}
	for _, id := range []string{"alice", "bob", "carol", "dave", "erin", "frank"} {
		seen[VoiceFor(id)] = true
	}
	assert.Greater(t, len(seen), 1)
}
