package damage

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

// Fixed resolves a fixed-damage rule. The second return is false when the
// rule's precondition fails (endeavor against a healthier user). Psywave is
// the one fixed rule that consumes a random draw.
func (e *Engine) Fixed(rule string, user, target *battle.Combatant, rng *battle.RNG) (int, bool) {
	switch rule {
	case "level":
		return user.Level, true
	case "dragon-rage":
		return 40, true
	case "sonic-boom":
		return 20, true
	case "psywave":
		if e.cfg.Gen == gen.Gen1 {
			hi := user.Level * 3 / 2
			if hi < 1 {
				hi = 1
			}
			return rng.Range(1, hi), true
		}
		dmg := user.Level * (rng.Range(0, 100) + 50) / 100
		if dmg < 1 {
			dmg = 1
		}
		return dmg, true
	case "super-fang":
		dmg := target.CurHP / 2
		if dmg < 1 {
			dmg = 1
		}
		return dmg, true
	case "endeavor":
		dmg := target.CurHP - user.CurHP
		if dmg <= 0 {
			return 0, false
		}
		return dmg, true
	case "final-gambit":
		return user.CurHP, true
	}
	return 0, false
}
