// Package accuracy decides whether an attack connects. The resolver
// dispatches on the era in effect: the first two generations roll on a
// 0-255 scale with the coarse stage table (and keep the famous 1/256 miss),
// later ones roll percent against a 3-based stage ratio with ability and
// item modifiers folded in.
package accuracy

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/rules"
	"github.com/urdoggydeewata-star/dexbattle/internal/stats"
)

// Resolver owns the per-era accuracy chains for one battle.
type Resolver struct {
	cfg *config.Battle
}

// NewResolver returns an accuracy resolver bound to cfg.
func NewResolver(cfg *config.Battle) *Resolver {
	return &Resolver{cfg: cfg}
}

// Check reports whether move connects, consuming at most one random draw.
// The caller has already handled protection and semi-invulnerability; a
// zero threshold short-circuits to a hit without touching the RNG.
func (r *Resolver) Check(user, target *battle.Combatant, move data.MoveRecord, field *battle.Field, rng *battle.RNG) bool {
	acc := move.Accuracy
	if field != nil && move.WeatherAccuracy != nil {
		if w, ok := move.WeatherAccuracy[string(field.EffectiveWeather())]; ok {
			acc = w
		}
	}
	if acc == 0 || move.NeverMiss {
		return true
	}
	if r.noGuard(user) || r.noGuard(target) {
		return true
	}
	if user.HasVolatile(battle.VolLockOn) {
		user.RemoveVolatile(battle.VolLockOn)
		return true
	}

	if r.cfg.Gen <= gen.Gen2 {
		return r.check255(user, target, acc, rng)
	}
	return r.checkPercent(user, target, move, acc, field, rng)
}

// check255 is the early-era chain. The threshold tops out at 255 while the
// roll spans 0-255, so even a sure hit misses one time in 256.
func (r *Resolver) check255(user, target *battle.Combatant, acc int, rng *battle.RNG) bool {
	threshold := acc * 255 / 100

	num, den := stats.StageMultiplier(r.cfg.Gen, user.Stage(battle.StatAccuracy))
	threshold = threshold * num / den
	num, den = stats.StageMultiplier(r.cfg.Gen, -target.Stage(battle.StatEvasion))
	threshold = threshold * num / den

	if threshold < 1 {
		threshold = 1
	}
	if threshold > 255 {
		threshold = 255
	}
	return rng.Roll255() < threshold
}

// checkPercent is the modern chain: one combined stage ratio, then the
// attacker's accuracy modifiers and the defender's evasion modifiers.
func (r *Resolver) checkPercent(user, target *battle.Combatant, move data.MoveRecord, acc int, field *battle.Field, rng *battle.RNG) bool {
	stage := user.Stage(battle.StatAccuracy) - target.Stage(battle.StatEvasion)
	if stage < battle.MinStage {
		stage = battle.MinStage
	}
	if stage > battle.MaxStage {
		stage = battle.MaxStage
	}
	num, den := stats.AccuracyStageMultiplier(stage)
	threshold := acc * num / den

	ctx := rules.Context(user, target, move, move.Power, field, 1.0)
	threshold = r.applyMods(threshold, user, battle.StatAccuracy, ctx, false)
	threshold = r.applyMods(threshold, target, battle.StatEvasion, ctx, true)

	if threshold < 1 {
		threshold = 1
	}
	return rng.Percent() <= threshold
}

// applyMods folds the holder's acc/eva ability and item modifiers into the
// hit threshold. Evasion modifiers work against the attacker, so they
// divide instead of multiply.
func (r *Resolver) applyMods(threshold int, holder *battle.Combatant, s battle.Stat, ctx map[string]any, invert bool) int {
	apply := func(mods []data.StatMod) {
		for _, m := range mods {
			if battle.Stat(m.Stat) != s {
				continue
			}
			if !r.cfg.Applies(m.Condition, ctx) {
				continue
			}
			if invert {
				threshold = threshold * m.Den / m.Num
			} else {
				threshold = threshold * m.Num / m.Den
			}
		}
	}
	if ab, ok := r.cfg.HolderAbility(holder); ok {
		apply(ab.StatMods)
	}
	if item, ok := r.cfg.HolderItem(holder); ok {
		apply(item.StatMods)
	}
	return threshold
}

func (r *Resolver) noGuard(c *battle.Combatant) bool {
	ab, ok := r.cfg.HolderAbility(c)
	return ok && ab.NoGuard
}

// OHKOChance is the one-hit-KO chance for the era, or -1 when the attempt
// outright fails: a higher-leveled target is immune everywhere, and the
// first generation additionally demands the user be at least as fast.
// From the seventh generation on, sheer cold drops to a 20 base when the
// user isn't ice-typed.
func OHKOChance(g gen.Generation, user, target *battle.Combatant, move data.MoveRecord, userSpeed, targetSpeed int) int {
	if target.Level > user.Level {
		return -1
	}
	if g == gen.Gen1 && userSpeed < targetSpeed {
		return -1
	}
	if g == gen.Gen1 {
		return 30
	}
	base := 30
	if g >= gen.Gen7 && move.Name == "sheer-cold" && !user.HasType("ice") {
		base = 20
	}
	chance := base + user.Level - target.Level
	if chance > 100 {
		chance = 100
	}
	return chance
}
