package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridtone/contrib"
)

func gridWithTotalCount(total int) *contrib.Grid {
	g := &contrib.Grid{}
	// Spread the count across cells so no single day is implausible
	remaining := total
	for w := 0; w < contrib.NumWeeks && remaining > 0; w++ {
		for d := 0; d < contrib.NumDays && remaining > 0; d++ {
			c := remaining
			if c > 30 {
				c = 30
			}
			g.Weeks[w].Days[d].Count = c
			remaining -= c
		}
	}
	return g
}

func TestTempoForAllZeroGrid(t *testing.T) {
	assert.Equal(t, TempoMin, TempoFor(&contrib.Grid{}))
}

func TestTempoForNilGrid(t *testing.T) {
	assert.Equal(t, TempoMin, TempoFor(nil))
}

func TestTempoScalesWithTotalCount(t *testing.T) {
	assert.Equal(t, 80, TempoFor(gridWithTotalCount(49)))
	assert.Equal(t, 81, TempoFor(gridWithTotalCount(50)))
	assert.Equal(t, 100, TempoFor(gridWithTotalCount(1000)))
}

func TestTempoClampedAtCap(t *testing.T) {
	assert.Equal(t, TempoMax, TempoFor(gridWithTotalCount(10000)))
}

func TestTempoMonotonic(t *testing.T) {
	prev := 0
	for _, total := range []int{0, 10, 100, 500, 2500, 5000, 9000} {
		tempo := TempoFor(gridWithTotalCount(total))
		assert.GreaterOrEqual(t, tempo, prev, "total %d", total)
		assert.GreaterOrEqual(t, tempo, TempoMin)
		assert.LessOrEqual(t, tempo, TempoMax)
		prev = tempo
	}
}
