package executor

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/accuracy"
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/damage"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/effects"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/typechart"
)

// resolveStatusMove applies a non-damaging move's declared effects.
func (x *Executor) resolveStatusMove(a Action, move data.MoveRecord, res *battle.Result, log *battle.Log) {
	e := move.Effect

	targetsFoe := e.Status != "" || len(e.TargetStats) > 0 || e.Volatile != "" ||
		e.ForcesSwitch || e.LeechSeed
	if targetsFoe {
		// Status-class type immunities go through the chart: an electric
		// status move cannot touch a ground type.
		if e.Status != "" && typechart.Effectiveness(move.Type, a.Target.Types, x.cfg.Gen) == 0 {
			res.Outcome = battle.OutcomeImmune
			res.TypeMult = 0
			log.Add("It doesn't affect %s...", a.Target.Species)
			return
		}
		if e.LeechSeed && a.Target.HasType("grass") {
			res.Outcome = battle.OutcomeImmune
			log.Add("It doesn't affect %s...", a.Target.Species)
			return
		}
		if a.Target.HasVolatile(battle.VolSubstitute) {
			res.Outcome = battle.OutcomeFailed
			log.Add("But it failed!")
			return
		}
		if !x.acc.Check(a.User, a.Target, move, x.field, x.rng) {
			res.Outcome = battle.OutcomeMiss
			log.Add("%s's attack missed!", a.User.Species)
			return
		}
	}

	applied := false
	if e.Weather != "" {
		applied = x.fx.SetWeather(x.field, battle.Weather(e.Weather), log) || applied
	}
	if e.Terrain != "" {
		applied = x.fx.SetTerrain(x.field, battle.Terrain(e.Terrain), log) || applied
	}
	if e.Hazard != "" {
		applied = x.fx.AddHazard(x.field, a.Target.SideIndex, e.Hazard, log) || applied
	}
	if e.Screen != "" {
		applied = x.fx.AddScreen(x.field, a.User.SideIndex, e.Screen, log) || applied
	}
	if e.HealPercent > 0 {
		applied = x.fx.Heal(a.User, e.HealPercent, log) > 0 || applied
	}
	if e.ResetStages {
		a.User.ResetStages()
		a.Target.ResetStages()
		log.Add("All stat changes were eliminated!")
		applied = true
	}
	if len(e.SelfStats) > 0 {
		x.fx.ApplyStages(a.User, a.User, e.SelfStats, x.field, log)
		applied = true
	}
	if len(e.TargetStats) > 0 {
		x.fx.ApplyStages(a.User, a.Target, e.TargetStats, x.field, log)
		applied = true
	}
	if e.Status != "" {
		verdict := x.fx.TryStatus(a.User, a.Target, battle.Status(e.Status), x.field, x.rng, log)
		switch verdict {
		case effects.StatusApplied:
			applied = true
		case effects.StatusTypeImmune:
			res.Outcome = battle.OutcomeImmune
			return
		case effects.StatusBlockedByAbility:
			res.Outcome = battle.OutcomeAbilityStop
			return
		default:
			res.Outcome = battle.OutcomeFailed
			return
		}
	}
	if e.Volatile != "" {
		kind := battle.VolatileKind(e.Volatile)
		target := a.Target
		if kind == battle.VolSubstitute || kind == battle.VolLockOn {
			target = a.User
		}
		switch kind {
		case battle.VolEncore, battle.VolDisable:
			// These bind to the target's last move; nothing to bind fails.
			if a.Target.LastMoveUsed == "" {
				res.Outcome = battle.OutcomeFailed
				log.Add("But it failed!")
				return
			}
			v := &battle.Volatile{Kind: kind, Turns: e.VolatileMin, Move: a.Target.LastMoveUsed, Source: a.User.Species}
			if !target.AddVolatile(v) {
				res.Outcome = battle.OutcomeFailed
				log.Add("But it failed!")
				return
			}
			if kind == battle.VolEncore {
				log.Add("%s received an encore!", target.Species)
			} else {
				log.Add("%s's %s was disabled!", target.Species, title(a.Target.LastMoveUsed))
			}
			applied = true
		default:
			if x.fx.ApplyVolatile(a.User, target, kind, e.VolatileMin, e.VolatileMax, x.rng, log) {
				applied = true
			} else {
				res.Outcome = battle.OutcomeFailed
				return
			}
		}
	}
	if e.LeechSeed {
		if a.Target.AddVolatile(&battle.Volatile{Kind: battle.VolLeechSeed, Turns: -1, Source: a.User.Species}) {
			log.Add("%s was seeded!", a.Target.Species)
			applied = true
		} else {
			res.Outcome = battle.OutcomeFailed
			log.Add("But it failed!")
			return
		}
	}
	if e.ForcesSwitch {
		x.react.OnSwitchOut(a.Target, x.field)
		log.Add("%s was dragged out!", a.Target.Species)
		applied = true
	}

	if !applied {
		res.Outcome = battle.OutcomeFailed
		log.Add("But it failed!")
	}
}

// resolveDamagingMove runs the full damaging pipeline: immunities,
// accuracy, hit count, per-hit damage and secondaries, then the
// after-effects (drain, recoil, recharge, reactions).
func (x *Executor) resolveDamagingMove(a Action, move data.MoveRecord, res *battle.Result, log *battle.Log) {
	mult := x.effectiveness(a.User, a.Target, move)
	res.TypeMult = mult

	if mult == 0 {
		res.Outcome = battle.OutcomeImmune
		log.Add("It doesn't affect %s...", a.Target.Species)
		return
	}
	if outcome := x.abilityImmunity(a, move, mult, log); outcome != "" {
		res.Outcome = outcome
		return
	}

	if move.Effect.OHKO {
		x.resolveOHKO(a, move, res, log)
		return
	}
	if move.Effect.Counter != "" {
		x.resolveCounter(a, move, res, log)
		return
	}

	if !move.Effect.PerHitAccuracy {
		if !x.acc.Check(a.User, a.Target, move, x.field, x.rng) {
			res.Outcome = battle.OutcomeMiss
			log.Add("%s's attack missed!", a.User.Species)
			x.applyCrashDamage(a.User, move, log)
			return
		}
	}

	hits := x.rollHitCount(a.User, move)
	power := x.dmg.BasePower(a.User, a.Target, move, x.field)

	if damage.WeatherBlocks(move, x.field) {
		res.Outcome = battle.OutcomeFailed
		log.Add("The attack fizzled out in the weather!")
		return
	}

	total, raw, landed := 0, 0, 0
	anyCrit := false
	for i := 0; i < hits; i++ {
		if move.Effect.PerHitAccuracy && !x.acc.Check(a.User, a.Target, move, x.field, x.rng) {
			if landed == 0 {
				res.Outcome = battle.OutcomeMiss
				log.Add("%s's attack missed!", a.User.Species)
				x.applyCrashDamage(a.User, move, log)
				return
			}
			break
		}

		crit := x.dmg.CritCheck(a.User, a.Target, move, x.rng)
		anyCrit = anyCrit || crit

		var dmg int
		if move.Effect.Fixed != "" {
			fixed, ok := x.dmg.Fixed(move.Effect.Fixed, a.User, a.Target, x.rng)
			if !ok {
				res.Outcome = battle.OutcomeFailed
				log.Add("But it failed!")
				return
			}
			dmg = fixed
			crit = false
		} else {
			dmg = x.dmg.Compute(damage.Input{
				User: a.User, Target: a.Target,
				Move: move, Power: power,
				Field: x.field, TypeMult: mult, Crit: crit,
			}, x.rng)
		}

		dealt, hitSub := x.inflict(a.Target, dmg, log)
		total += dealt
		// Drain and its kin work off the computed damage even when a
		// substitute soaked most of it.
		if hitSub {
			raw += dmg
		} else {
			raw += dealt
		}
		landed++
		if crit {
			log.Add("A critical hit!")
		}

		if !hitSub {
			x.applySecondaries(a, move, mult, log)
			if move.Contact {
				x.react.OnContact(a.User, a.Target, x.field, x.rng, log)
			}
		}
		if a.Target.Fainted() || a.User.Fainted() {
			break
		}
	}

	res.Damage = total
	res.Hits = landed
	res.Crit = anyCrit
	if landed > 1 {
		log.Add("Hit %d time(s)!", landed)
	}
	effectivenessLine(mult, log)

	x.afterHit(a, move, total, raw, res, log)
}

// inflict routes damage through a substitute when one is up. Returns the
// HP actually removed and whether the substitute ate the hit.
func (x *Executor) inflict(target *battle.Combatant, dmg int, log *battle.Log) (int, bool) {
	if sub := target.Volatile(battle.VolSubstitute); sub != nil {
		if dmg >= sub.HP {
			target.RemoveVolatile(battle.VolSubstitute)
			log.Add("%s's substitute faded!", target.Species)
			return sub.HP, true
		}
		sub.HP -= dmg
		log.Add("The substitute took the hit!")
		return dmg, true
	}

	if dmg >= target.CurHP && x.survivesLethal(target, log) {
		dmg = target.CurHP - 1
	}
	return target.ApplyDamage(dmg), false
}

// survivesLethal checks the endure layer: sturdy from full HP, the sash
// from full HP, and the band's long-shot chance.
func (x *Executor) survivesLethal(target *battle.Combatant, log *battle.Log) bool {
	if ab, ok := x.cfg.HolderAbility(target); ok && ab.SurviveFullHP && target.AtFullHP() {
		log.Add("%s endured the hit!", target.Species)
		return true
	}
	item, ok := x.cfg.HolderItem(target)
	if !ok {
		return false
	}
	if item.SurviveFullHP && target.AtFullHP() {
		target.ConsumeItem()
		log.Add("%s hung on using its %s!", target.Species, title(item.Name))
		return true
	}
	if item.SurviveChance > 0 && x.rng.Chance(item.SurviveChance, 100) {
		log.Add("%s hung on using its %s!", target.Species, title(item.Name))
		return true
	}
	return false
}

// effectiveness computes the full dual-type multiplier with the field and
// attacker exceptions layered on.
func (x *Executor) effectiveness(user, target *battle.Combatant, move data.MoveRecord) float64 {
	mult := typechart.Effectiveness(move.Type, target.Types, x.cfg.Gen)

	if mult == 0 && target.HasType("ghost") && (move.Type == "normal" || move.Type == "fighting") {
		if ab, ok := x.cfg.HolderAbility(user); ok && ab.HitsGhosts {
			mult = 1
			for _, t := range target.Types {
				if t == "ghost" {
					continue
				}
				mult *= typechart.Single(move.Type, t, x.cfg.Gen)
			}
		}
	}

	// Strong winds blunt the flying weakness without erasing the rest.
	if x.field != nil && x.field.EffectiveWeather() == battle.WeatherStrongWinds &&
		target.HasType("flying") && typechart.Single(move.Type, "flying", x.cfg.Gen) > 1 {
		mult /= 2
	}
	return mult
}

// abilityImmunity screens the hit through the defender's absorbing and
// gating abilities before accuracy is even consulted.
func (x *Executor) abilityImmunity(a Action, move data.MoveRecord, mult float64, log *battle.Log) battle.Outcome {
	if ab, ok := x.cfg.HolderAbility(a.User); ok && ab.IgnoresBlockers {
		return ""
	}
	tb, ok := x.cfg.HolderAbility(a.Target)
	if !ok {
		return ""
	}
	name := title(tb.Name)
	if tb.ImmuneType == move.Type {
		if tb.AbsorbHealPercent > 0 && !a.Target.AtFullHP() {
			a.Target.Heal(a.Target.MaxHP * tb.AbsorbHealPercent / 100)
			log.Add("%s's %s absorbed the attack!", a.Target.Species, name)
		} else if tb.AbsorbStat != "" {
			x.fx.ApplyStages(a.Target, a.Target, map[string]int{tb.AbsorbStat: 1}, x.field, log)
			log.Add("%s's %s absorbed the attack!", a.Target.Species, name)
		} else {
			log.Add("%s's %s made the attack futile!", a.Target.Species, name)
		}
		return battle.OutcomeAbilityStop
	}
	if tb.WonderGuard && mult <= 1 {
		log.Add("%s's %s protects it!", a.Target.Species, name)
		return battle.OutcomeAbilityStop
	}
	if tb.BlocksSound && move.Sound {
		log.Add("%s's %s blocks the sound!", a.Target.Species, name)
		return battle.OutcomeAbilityStop
	}
	if tb.BlocksBullet && move.Bullet {
		log.Add("%s's %s blocks the projectile!", a.Target.Species, name)
		return battle.OutcomeAbilityStop
	}
	return ""
}

// resolveOHKO handles the one-hit KO family and its era gates.
func (x *Executor) resolveOHKO(a Action, move data.MoveRecord, res *battle.Result, log *battle.Log) {
	if x.cfg.Gen >= gen.Gen7 && move.Name == "sheer-cold" && a.Target.HasType("ice") {
		res.Outcome = battle.OutcomeImmune
		res.TypeMult = 0
		log.Add("It doesn't affect %s...", a.Target.Species)
		return
	}
	if tb, ok := x.cfg.HolderAbility(a.Target); ok && tb.BlocksOHKO {
		res.Outcome = battle.OutcomeAbilityStop
		log.Add("%s's %s made it futile!", a.Target.Species, title(tb.Name))
		return
	}
	userSpeed := x.stats.Effective(a.User, battle.StatSpeed, x.field)
	targetSpeed := x.stats.Effective(a.Target, battle.StatSpeed, x.field)
	chance := accuracy.OHKOChance(x.cfg.Gen, a.User, a.Target, move, userSpeed, targetSpeed)
	if chance < 0 {
		res.Outcome = battle.OutcomeFailed
		log.Add("But it failed!")
		return
	}
	if x.rng.Percent() > chance {
		res.Outcome = battle.OutcomeMiss
		log.Add("%s's attack missed!", a.User.Species)
		return
	}
	dealt, _ := x.inflict(a.Target, a.Target.CurHP, log)
	res.Damage = dealt
	res.Hits = 1
	log.Add("It's a one-hit KO!")
	x.afterHit(a, move, dealt, dealt, res, log)
}

// resolveCounter pays back the last hit the user took this turn.
func (x *Executor) resolveCounter(a Action, move data.MoveRecord, res *battle.Result, log *battle.Log) {
	kind := move.Effect.Counter
	if a.User.LastDamageTaken <= 0 ||
		(kind != "any" && a.User.LastDamageClass != kind) {
		res.Outcome = battle.OutcomeFailed
		log.Add("But it failed!")
		return
	}
	// Class-matched paybacks double the hit; the any-class payback
	// returns one and a half times.
	dmg := a.User.LastDamageTaken * 2
	if kind == "any" {
		dmg = a.User.LastDamageTaken * 3 / 2
	}
	dealt, _ := x.inflict(a.Target, dmg, log)
	res.Damage = dealt
	res.Hits = 1
	x.afterHit(a, move, dealt, dealt, res, log)
}

// rollHitCount draws the number of strikes for multi-hit moves using the
// era's distribution.
func (x *Executor) rollHitCount(user *battle.Combatant, move data.MoveRecord) int {
	e := move.Effect
	if e.HitsMax <= 1 {
		return 1
	}
	if e.HitsMin == e.HitsMax {
		return e.HitsMin
	}
	if ab, ok := x.cfg.HolderAbility(user); ok && ab.MultiHitAlwaysMax {
		return e.HitsMax
	}
	if e.HitsMax > 5 {
		// Open-ended volleys roll uniformly.
		return x.rng.Range(e.HitsMin, e.HitsMax)
	}
	p := x.rng.Percent()
	if x.cfg.Gen >= gen.Gen5 {
		// 35/35/15/15 over 2-5 hits.
		switch {
		case p <= 35:
			return 2
		case p <= 70:
			return 3
		case p <= 85:
			return 4
		default:
			return 5
		}
	}
	// 37.5/37.5/12.5/12.5, expressed on the percent roll.
	switch {
	case p <= 38:
		return 2
	case p <= 75:
		return 3
	case p <= 88:
		return 4
	default:
		return 5
	}
}

// applySecondaries rolls and applies the move's riders against the target
// and the user, honoring the chance-doubling ability.
func (x *Executor) applySecondaries(a Action, move data.MoveRecord, mult float64, log *battle.Log) {
	e := move.Effect
	boost := 1
	if ab, ok := x.cfg.HolderAbility(a.User); ok && ab.DoublesEffectChance {
		boost = 2
	}
	roll := func(chance int) bool {
		if chance <= 0 {
			return true
		}
		chance *= boost
		if chance >= 100 {
			return true
		}
		return x.rng.Chance(chance, 100)
	}

	if e.Status != "" && e.StatusChance > 0 && !a.Target.Fainted() {
		if roll(e.StatusChance) {
			x.fx.TryStatus(a.User, a.Target, battle.Status(e.Status), x.field, x.rng, log)
		}
	}
	if e.Volatile != "" && e.VolatileChance > 0 && !a.Target.Fainted() {
		if roll(e.VolatileChance) {
			x.fx.ApplyVolatile(a.User, a.Target, battle.VolatileKind(e.Volatile), e.VolatileMin, e.VolatileMax, x.rng, log)
		}
	}

	flinch := e.FlinchChance
	if flinch == 0 {
		if item, ok := x.cfg.HolderItem(a.User); ok {
			flinch = item.FlinchChance
		}
	}
	if flinch > 0 && !a.Target.Fainted() {
		if tb, ok := x.cfg.HolderAbility(a.Target); !ok || !tb.BlocksFlinch {
			if roll(flinch) {
				a.Target.Flinched = true
			}
		}
	}

	if len(e.TargetStats) > 0 && !a.Target.Fainted() {
		if e.TargetStatChance == 0 || roll(e.TargetStatChance) {
			x.fx.ApplyStages(a.User, a.Target, e.TargetStats, x.field, log)
		}
	}
	if len(e.SelfStats) > 0 && !a.User.Fainted() {
		if e.SelfStatChance == 0 || roll(e.SelfStatChance) {
			x.fx.ApplyStages(a.User, a.User, e.SelfStats, x.field, log)
		}
	}
}

// afterHit settles the move's aftermath: drain, recoil, state flags, item
// recoil, reactions and faint lines. raw is the damage the move computed
// before any substitute capped it; drain heals from that value.
func (x *Executor) afterHit(a Action, move data.MoveRecord, total, raw int, res *battle.Result, log *battle.Log) {
	e := move.Effect

	if e.DrainPercent > 0 && raw > 0 {
		drained := raw * e.DrainPercent / 100
		if drained < 1 {
			drained = 1
		}
		if tb, ok := x.cfg.HolderAbility(a.Target); ok && tb.LiquidOoze {
			a.User.ApplyDamage(drained)
			log.Add("%s sucked up the liquid ooze!", a.User.Species)
		} else if !a.User.AtFullHP() {
			a.User.Heal(drained)
			log.Add("%s had its energy drained!", a.Target.Species)
		}
	}

	if total > 0 {
		recoil := 0
		if e.RecoilPercent > 0 {
			recoil = total * e.RecoilPercent / 100
			if recoil < 1 {
				recoil = 1
			}
		}
		if e.RecoilMaxHPPercent > 0 {
			recoil += a.User.MaxHP * e.RecoilMaxHPPercent / 100
		}
		if recoil > 0 {
			prevented := false
			if ab, ok := x.cfg.HolderAbility(a.User); ok && ab.PreventsRecoil && e.RecoilMaxHPPercent == 0 {
				prevented = true
			}
			if !prevented {
				a.User.ApplyDamage(recoil)
				log.Add("%s was damaged by the recoil!", a.User.Species)
			}
		}
	}

	if item, ok := x.cfg.HolderItem(a.User); ok && item.RecoilPercent > 0 && total > 0 {
		if ab, ok := x.cfg.HolderAbility(a.User); !ok || !ab.MagicGuard {
			a.User.ApplyDamage(a.User.MaxHP * item.RecoilPercent / 100)
			log.Add("%s lost some of its HP!", a.User.Species)
		}
	}

	if e.Recharge && total > 0 {
		a.User.MustRecharge = true
	}
	if e.Trap && total > 0 && !a.Target.Fainted() && !a.Target.HasVolatile(battle.VolTrap) {
		v := &battle.Volatile{Kind: battle.VolTrap, Turns: x.rng.Range(4, 5), Move: move.Name, Source: a.User.Species}
		if x.cfg.Gen == gen.Gen1 {
			v.Gen1ActionLock = true
		}
		a.Target.AddVolatile(v)
		log.Add("%s was trapped!", a.Target.Species)
	}
	if e.Rampage {
		if a.User.RampageMove == "" {
			a.User.RampageMove = move.Name
			a.User.RampageTurns = x.rng.Range(2, 3)
		}
		a.User.RampageTurns--
		if a.User.RampageTurns <= 0 {
			a.User.RampageMove = ""
			x.fx.ApplyVolatile(nil, a.User, battle.VolConfusion, 2, 5, x.rng, log)
			log.Add("%s became confused due to fatigue!", a.User.Species)
		}
	}
	if e.ForcesSwitch && total > 0 && !a.Target.Fainted() {
		x.react.OnSwitchOut(a.Target, x.field)
		log.Add("%s was dragged out!", a.Target.Species)
	}
	if e.Fixed == "final-gambit" {
		a.User.CurHP = 0
	}

	a.Target.LastDamageTaken = total
	a.Target.LastDamageClass = string(move.Category)

	if total > 0 && !a.Target.Fainted() {
		x.react.OnDamaged(a.Target, a.User, res.TypeMult, x.field, log)
		x.thresholdBerry(a.Target, log)
	}
	if a.Target.Fainted() {
		log.Add("%s fainted!", a.Target.Species)
		x.react.OnFaint(a.Target, a.User, move.Contact, x.field, log)
	}
	if a.User.Fainted() {
		log.Add("%s fainted!", a.User.Species)
		x.react.OnFaint(a.User, a.Target, false, x.field, log)
	}
}

// applyCrashDamage hurts the user of a crash-on-miss move.
func (x *Executor) applyCrashDamage(user *battle.Combatant, move data.MoveRecord, log *battle.Log) {
	if !move.Effect.CrashDamage {
		return
	}
	crash := user.MaxHP / 2
	if x.cfg.Gen == gen.Gen1 {
		crash = 1
	}
	user.ApplyDamage(crash)
	log.Add("%s kept going and crashed!", user.Species)
	if user.Fainted() {
		log.Add("%s fainted!", user.Species)
	}
}

func effectivenessLine(mult float64, log *battle.Log) {
	switch {
	case mult > 1:
		log.Add("It's super effective!")
	case mult > 0 && mult < 1:
		log.Add("It's not very effective...")
	}
}
