package damage

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

// critDenominators maps crit stage to chance for the stage-table eras.
// Index is the clamped crit stage.
var (
	critGen2 = []struct{ num, den int }{{17, 256}, {32, 256}, {64, 256}, {85, 256}, {128, 256}}
	critGen3 = []struct{ num, den int }{{1, 16}, {1, 8}, {1, 4}, {1, 3}, {1, 2}}
	critGen6 = []struct{ num, den int }{{1, 16}, {1, 8}, {1, 2}, {1, 1}, {1, 1}}
	critGen7 = []struct{ num, den int }{{1, 24}, {1, 8}, {1, 2}, {1, 1}, {1, 1}}
)

// CritCheck decides whether this hit is a critical one, drawing at most
// one random number. The first generation rolls the attacker's speed
// against a 0-255 byte; everything later uses a stage table.
func (e *Engine) CritCheck(user, target *battle.Combatant, move data.MoveRecord, rng *battle.RNG) bool {
	if tb, ok := e.cfg.HolderAbility(target); ok && tb.CritImmune {
		return false
	}
	if move.AlwaysCrit {
		return true
	}

	if e.cfg.Gen == gen.Gen1 {
		threshold := user.Stats[battle.StatSpeed] / 2
		if move.HighCrit {
			threshold *= 8
		}
		if threshold > 255 {
			threshold = 255
		}
		return rng.Roll255() < threshold
	}

	stage := 0
	if move.HighCrit {
		if e.cfg.Gen == gen.Gen2 {
			stage += 2
		} else {
			stage++
		}
	}
	if ab, ok := e.cfg.HolderAbility(user); ok {
		stage += ab.CritStageBonus
	}
	if item, ok := e.cfg.HolderItem(user); ok {
		stage += item.CritStageBonus
	}
	if stage > 4 {
		stage = 4
	}

	var table []struct{ num, den int }
	switch {
	case e.cfg.Gen == gen.Gen2:
		table = critGen2
	case e.cfg.Gen <= gen.Gen5:
		table = critGen3
	case e.cfg.Gen == gen.Gen6:
		table = critGen6
	default:
		table = critGen7
	}
	c := table[stage]
	if c.num == c.den {
		return true
	}
	return rng.Chance(c.num, c.den)
}

// critMultiplier is the damage factor of a landed crit: double through
// Gen 5, 1.5x afterwards.
func (e *Engine) critMultiplier() (num, den int) {
	if e.cfg.Gen.Has(gen.MechCrit15x) {
		return 3, 2
	}
	return 2, 1
}
