package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededStreamsAreIdentical(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	for i := 0; i < 500; i++ {
		assert.Equal(t, a.Percent(), b.Percent())
		assert.Equal(t, a.Roll255(), b.Roll255())
		assert.Equal(t, a.Variance(), b.Variance())
	}
}

func TestQueueConsumedBeforeStream(t *testing.T) {
	g := NewRNG(1)
	g.Enqueue(0, 99)
	assert.Equal(t, 1, g.Percent(), "queued 0 maps to percent 1")
	assert.Equal(t, 100, g.Percent(), "queued 99 maps to percent 100")
}

func TestRanges(t *testing.T) {
	g := NewRNG(42)
	for i := 0; i < 1000; i++ {
		v := g.Variance()
		assert.GreaterOrEqual(t, v, 85)
		assert.LessOrEqual(t, v, 100)

		lv := g.VarianceLegacy()
		assert.GreaterOrEqual(t, lv, 217)
		assert.LessOrEqual(t, lv, 255)

		r := g.Roll255()
		assert.GreaterOrEqual(t, r, 0)
		assert.LessOrEqual(t, r, 255)
	}
}

func TestChanceBounds(t *testing.T) {
	g := NewRNG(7)
	assert.True(t, g.Chance(10, 10))
	assert.False(t, g.Chance(0, 10))
}
