package damage

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

// BasePower resolves the move's base power, running its variable-power
// rule when it has one. Speeds are read fully modified so stage changes
// feed the speed-ratio moves.
func (e *Engine) BasePower(user, target *battle.Combatant, move data.MoveRecord, field *battle.Field) int {
	if move.VariablePower == "" {
		return move.Power
	}
	switch move.VariablePower {
	case "weight":
		if e.cfg.Gen <= gen.Gen2 {
			return 50
		}
		return weightPower(target.WeightKg)
	case "flail":
		return flailPower(user)
	case "eruption":
		p := 150 * user.CurHP / user.MaxHP
		if p < 1 {
			p = 1
		}
		return p
	case "electro-ball":
		us := e.stats.Effective(user, battle.StatSpeed, field)
		ts := e.stats.Effective(target, battle.StatSpeed, field)
		if ts < 1 {
			ts = 1
		}
		switch ratio := us / ts; {
		case ratio >= 4:
			return 150
		case ratio >= 3:
			return 120
		case ratio >= 2:
			return 80
		case ratio >= 1:
			return 60
		default:
			return 40
		}
	case "gyro-ball":
		us := e.stats.Effective(user, battle.StatSpeed, field)
		if us < 1 {
			us = 1
		}
		ts := e.stats.Effective(target, battle.StatSpeed, field)
		p := 25*ts/us + 1
		if p > 150 {
			p = 150
		}
		return p
	case "return":
		p := user.Friendship * 2 / 5
		if p < 1 {
			p = 1
		}
		return p
	case "frustration":
		p := (255 - user.Friendship) * 2 / 5
		if p < 1 {
			p = 1
		}
		return p
	case "acrobatics":
		if user.Item == "" {
			return move.Power * 2
		}
		return move.Power
	case "facade":
		if user.Status != battle.StatusNone {
			return move.Power * 2
		}
		return move.Power
	case "payback":
		if user.MovedAfterTarget {
			return move.Power * 2
		}
		return move.Power
	case "hex":
		if target.Status != battle.StatusNone {
			return move.Power * 2
		}
		return move.Power
	}
	return move.Power
}

// weightPower is the shared weight bracket table (low kick, grass knot).
func weightPower(kg float64) int {
	switch {
	case kg >= 200:
		return 120
	case kg >= 100:
		return 100
	case kg >= 50:
		return 80
	case kg >= 25:
		return 60
	case kg >= 10:
		return 40
	default:
		return 20
	}
}

// flailPower is the desperation bracket table shared by flail and
// reversal, keyed on 48ths of remaining HP.
func flailPower(user *battle.Combatant) int {
	ratio := 48 * user.CurHP / user.MaxHP
	switch {
	case ratio < 2:
		return 200
	case ratio < 5:
		return 150
	case ratio < 10:
		return 100
	case ratio < 17:
		return 80
	case ratio < 33:
		return 40
	default:
		return 20
	}
}
