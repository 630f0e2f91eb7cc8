// Package stats computes in-battle effective stat values: raw stat, stage
// multiplier for the era in effect, status penalties, then ability, item
// and field modifiers. Accuracy and evasion stages live here too but are
// consumed by the accuracy resolver, which owns their combination rule.
package stats

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/rules"
)

// gen1Numerators is the coarse stage table of the first two eras, in
// hundredths: stage -6 → 25/100 up to +6 → 400/100.
var gen1Numerators = [13]int{25, 28, 33, 40, 50, 66, 100, 150, 200, 250, 300, 350, 400}

// StageMultiplier returns the era stage multiplier for the six core stats
// as an exact num/den pair.
func StageMultiplier(g gen.Generation, stage int) (num, den int) {
	if stage < battle.MinStage {
		stage = battle.MinStage
	}
	if stage > battle.MaxStage {
		stage = battle.MaxStage
	}
	if g <= gen.Gen2 {
		return gen1Numerators[stage+6], 100
	}
	num, den = 2, 2
	if stage > 0 {
		num += stage
	} else {
		den -= stage
	}
	return num, den
}

// AccuracyStageMultiplier is the 3-based table used for accuracy and
// evasion from Gen 3 on.
func AccuracyStageMultiplier(stage int) (num, den int) {
	if stage < battle.MinStage {
		stage = battle.MinStage
	}
	if stage > battle.MaxStage {
		stage = battle.MaxStage
	}
	num, den = 3, 3
	if stage > 0 {
		num += stage
	} else {
		den -= stage
	}
	return num, den
}

// Engine resolves effective stats against one battle configuration.
type Engine struct {
	cfg *config.Battle
}

// NewEngine returns a stat engine bound to cfg.
func NewEngine(cfg *config.Battle) *Engine {
	return &Engine{cfg: cfg}
}

// ruinStat maps the battle-wide dampening auras to the stat they cut by
// one quarter for every non-holder.
var ruinStat = map[battle.Stat]string{
	battle.StatAttack:  "ruin:atk",
	battle.StatDefense: "ruin:def",
	battle.StatSpAtk:   "ruin:spa",
	battle.StatSpDef:   "ruin:spd",
}

// Effective computes the current in-battle value of one of the six core
// stats, stages included.
func (e *Engine) Effective(c *battle.Combatant, s battle.Stat, field *battle.Field) int {
	return e.calc(c, s, field, false)
}

// EffectiveUnstaged computes the stat with stages ignored, as seen by an
// attacker that disregards boosts.
func (e *Engine) EffectiveUnstaged(c *battle.Combatant, s battle.Stat, field *battle.Field) int {
	return e.calc(c, s, field, true)
}

func (e *Engine) calc(c *battle.Combatant, s battle.Stat, field *battle.Field, ignoreStages bool) int {
	v := c.Stats[s]
	if s == battle.StatHP {
		return v
	}
	g := e.cfg.Gen

	if !ignoreStages {
		num, den := StageMultiplier(g, c.Stage(s))
		v = v * num / den
	}

	if s == battle.StatSpeed && c.Status == battle.StatusParalysis {
		if g.Has(gen.MechParalysisHalfSpeed) {
			v /= 2
		} else {
			v /= 4
		}
	}

	ctx := rules.Context(c, nil, data.MoveRecord{}, 0, field, 1.0)
	if ab, ok := e.cfg.HolderAbility(c); ok {
		for _, m := range ab.StatMods {
			if battle.Stat(m.Stat) != s {
				continue
			}
			if !e.cfg.Applies(m.Condition, ctx) {
				continue
			}
			v = v * m.Num / m.Den
		}
	}
	if e.slowStartActive(c) && (s == battle.StatAttack || s == battle.StatSpeed) {
		v /= 2
	}

	if item, ok := e.cfg.HolderItem(c); ok {
		for _, m := range item.StatMods {
			if battle.Stat(m.Stat) != s {
				continue
			}
			if !e.cfg.Applies(m.Condition, ctx) {
				continue
			}
			v = v * m.Num / m.Den
		}
	}

	if field != nil {
		if aura, affected := ruinStat[s]; affected && field.AuraActive(aura) && !holdsAura(e.cfg, c, aura) {
			v = v * 3 / 4
		}
		if s == battle.StatSpeed {
			// Side index is carried on the combatant by the executor.
			if side := field.Side(c.SideIndex); side.TailwindTurns > 0 {
				v *= 2
			}
		}
	}

	if v < 1 {
		v = 1
	}
	return v
}

// slowStartActive lazily starts the slow-start counter the first time the
// holder's stats are read, then reports whether the five-turn window is
// still open. This is the only mutation the stat engine performs.
func (e *Engine) slowStartActive(c *battle.Combatant) bool {
	if c.EffectiveAbility() != "slow-start" || !e.cfg.Gen.Has(gen.MechAbilities) {
		return false
	}
	if c.SlowStartTurns == nil {
		turns := 0
		c.SlowStartTurns = &turns
	}
	return *c.SlowStartTurns < 5
}

func holdsAura(cfg *config.Battle, c *battle.Combatant, aura string) bool {
	ab, ok := cfg.HolderAbility(c)
	return ok && ab.Aura == aura
}
