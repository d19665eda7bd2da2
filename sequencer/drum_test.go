package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrumBeatZeroAlwaysKicks(t *testing.T) {
	for _, busy := range []bool{false, true} {
		for _, medium := range []bool{false, true} {
			hits := DrumHitsFor(0, busy, medium)
			require.Len(t, hits, 1)
			assert.Equal(t, VoiceKick, hits[0].Voice)
		}
	}
}

func TestDrumQuietBlockIsKickOnly(t *testing.T) {
	assert.Len(t, DrumHitsFor(0, false, false), 1)
	for beat := 1; beat < 4; beat++ {
		assert.Empty(t, DrumHitsFor(beat, false, false), "beat %d", beat)
	}
}

func TestDrumSnareOnBeatTwoWhenMedium(t *testing.T) {
	hits := DrumHitsFor(2, false, true)
	require.Len(t, hits, 1)
	assert.Equal(t, VoiceSnare, hits[0].Voice)
}

func TestDrumBeatTwoFallsBackToHatWhenOnlyBusy(t *testing.T) {
	hits := DrumHitsFor(2, true, false)
	require.Len(t, hits, 1)
	assert.Equal(t, VoiceHiHat, hits[0].Voice)
	assert.Equal(t, hatBusy, hits[0].Intensity)
}

func TestDrumOffbeatHatLouderWhenBusy(t *testing.T) {
	for _, beat := range []int{1, 3} {
		busyHits := DrumHitsFor(beat, true, true)
		require.Len(t, busyHits, 1)
		assert.Equal(t, VoiceHiHat, busyHits[0].Voice)

		mediumHits := DrumHitsFor(beat, false, true)
		require.Len(t, mediumHits, 1)
		assert.Equal(t, VoiceHiHat, mediumHits[0].Voice)

		assert.Greater(t, busyHits[0].Intensity, mediumHits[0].Intensity)
	}
}
