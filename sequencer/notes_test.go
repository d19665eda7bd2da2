package sequencer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridtone/contrib"
)

func TestSelectNotesSilentColumn(t *testing.T) {
	week := &contrib.Week{}
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, SelectNotes(week, rng))
}

func TestSelectNotesNeverSoundsLevelZero(t *testing.T) {
	week := &contrib.Week{}
	week.Days[1].Level = 2
	week.Days[4].Level = 1

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		for _, n := range SelectNotes(week, rng) {
			assert.Greater(t, n.Level, 0)
			assert.Contains(t, []int{1, 4}, n.Day)
		}
	}
}

func TestSelectNotesSparseColumnSoundsEveryActiveCell(t *testing.T) {
	week := &contrib.Week{}
	week.Days[0].Level = 1
	week.Days[3].Level = 4
	week.Days[6].Level = 2

	rng := rand.New(rand.NewSource(1))
	notes := SelectNotes(week, rng)

	require.Len(t, notes, 3)
	assert.Equal(t, 0, notes[0].Day)
	assert.Equal(t, 3, notes[1].Day)
	assert.Equal(t, 6, notes[2].Day)
}

func TestSelectNotesDenseColumnIsThinned(t *testing.T) {
	week := &contrib.Week{}
	for d := range week.Days {
		week.Days[d].Level = 4 // sum 28 > threshold
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		notes := SelectNotes(week, rng)
		assert.GreaterOrEqual(t, len(notes), 1)
		assert.LessOrEqual(t, len(notes), 3)
	}
}

func TestSelectNotesPitchAndVelocityMapping(t *testing.T) {
	// Single day at index 3, level 4: degree (3+4) mod 7 = 0.
	week := &contrib.Week{}
	week.Days[3].Level = 4
	week.Days[3].Count = 4

	rng := rand.New(rand.NewSource(1))
	notes := SelectNotes(week, rng)

	require.Len(t, notes, 1)
	assert.Equal(t, 3, notes[0].Day)
	assert.Equal(t, 0, notes[0].Degree)
	assert.Equal(t, velocityForLevel[4], notes[0].Velocity)
}

func TestSelectNotesDegreeWraps(t *testing.T) {
	week := &contrib.Week{}
	week.Days[6].Level = 3 // (6+3) mod 7 = 2

	rng := rand.New(rand.NewSource(1))
	notes := SelectNotes(week, rng)

	require.Len(t, notes, 1)
	assert.Equal(t, 2, notes[0].Degree)
}
