package battle

import "math/rand"

// RNG is the single random source for a battle. All draws during one action
// happen in a fixed order so that two runs with the same seed and inputs
// are byte-identical:
//
//	1. pre-use gates (confusion self-hit, thaw, paralysis, infatuation)
//	2. protection decay roll
//	3. accuracy roll
//	4. hit-count roll (multi-hit moves)
//	5. per hit: critical roll, variance roll, secondary-effect roll, flinch roll
//	6. reactive-hook chance rolls
//
// Enqueue pre-loads deterministic values for tests; queued values are
// consumed verbatim before the seeded stream is touched.
type RNG struct {
	r     *rand.Rand
	queue []int
}

// NewRNG creates a seedable generator.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Enqueue pushes deterministic results for upcoming draws. A queued value v
// answers a draw over n outcomes with v % n.
func (g *RNG) Enqueue(vals ...int) { g.queue = append(g.queue, vals...) }

// ResetQueue clears any queued deterministic values.
func (g *RNG) ResetQueue() { g.queue = nil }

// draw returns a uniform value in [0, n).
func (g *RNG) draw(n int) int {
	if n <= 1 {
		return 0
	}
	if len(g.queue) > 0 {
		v := g.queue[0]
		g.queue = g.queue[1:]
		if v < 0 {
			v = -v
		}
		return v % n
	}
	return g.r.Intn(n)
}

// Roll255 returns a value in [0, 255], the legacy accuracy space.
func (g *RNG) Roll255() int { return g.draw(256) }

// Percent returns a value in [1, 100].
func (g *RNG) Percent() int { return g.draw(100) + 1 }

// Chance succeeds num times out of den.
func (g *RNG) Chance(num, den int) bool {
	if num <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return g.draw(den) < num
}

// Range returns a value in [lo, hi] inclusive.
func (g *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.draw(hi-lo+1)
}

// Index returns a value in [0, n).
func (g *RNG) Index(n int) int { return g.draw(n) }

// Variance returns the damage variance numerator for the modern formula,
// uniform in [85, 100].
func (g *RNG) Variance() int { return g.Range(85, 100) }

// VarianceLegacy returns the Gen 1/2 variance byte, uniform in [217, 255].
func (g *RNG) VarianceLegacy() int { return g.Range(217, 255) }
