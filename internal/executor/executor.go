// Package executor orchestrates one action from declaration to outcome:
// pre-move gates, protection, accuracy, damage, secondary effects and the
// reactive hooks, in the fixed draw order the RNG documents. Every refusal
// produces an outcome tag and a narrative line instead of an error.
package executor

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/accuracy"
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/damage"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/effects"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/react"
	"github.com/urdoggydeewata-star/dexbattle/internal/stats"
)

// Executor resolves actions for one battle.
type Executor struct {
	cfg   *config.Battle
	stats *stats.Engine
	acc   *accuracy.Resolver
	dmg   *damage.Engine
	fx    *effects.Applier
	react *react.Engine
	field *battle.Field
	rng   *battle.RNG
}

// New wires the full engine stack for one battle.
func New(cfg *config.Battle, field *battle.Field, rng *battle.RNG) *Executor {
	st := stats.NewEngine(cfg)
	fx := effects.NewApplier(cfg)
	return &Executor{
		cfg:   cfg,
		stats: st,
		acc:   accuracy.NewResolver(cfg),
		dmg:   damage.NewEngine(cfg, st),
		fx:    fx,
		react: react.NewEngine(cfg, fx),
		field: field,
		rng:   rng,
	}
}

// Field exposes the battle field for turn-loop callers.
func (x *Executor) Field() *battle.Field { return x.field }

// Reactions exposes the reactive hook engine for switch handling.
func (x *Executor) Reactions() *react.Engine { return x.react }

// Speed returns the combatant's effective speed, for turn ordering.
func (x *Executor) Speed(c *battle.Combatant) int {
	return x.stats.Effective(c, battle.StatSpeed, x.field)
}

// Priority returns the declared move's priority bracket in this era.
func (x *Executor) Priority(move string) int {
	rec, _ := x.cfg.Move(move)
	return rec.Priority
}

// Action is one declared move use.
type Action struct {
	User   *battle.Combatant
	Target *battle.Combatant
	Move   string
}

// Resolve executes one action to completion and returns its result. The
// combatants are mutated in place; the result carries the outcome tag, the
// damage accounting and the narrative transcript.
func (x *Executor) Resolve(a Action) *battle.Result {
	res := &battle.Result{Move: a.Move, Outcome: battle.OutcomeHit, TypeMult: 1}
	log := &battle.Log{}
	defer func() { res.Lines = log.Lines() }()

	if err := a.User.Validate(); err != nil {
		res.Outcome = battle.OutcomeIntegrity
		log.Add("The battle state is corrupted: %v", err)
		return res
	}
	if err := a.Target.Validate(); err != nil {
		res.Outcome = battle.OutcomeIntegrity
		log.Add("The battle state is corrupted: %v", err)
		return res
	}

	move, banned := x.cfg.Move(a.Move)
	res.Move = move.Name
	if banned {
		res.Outcome = battle.OutcomeBanned
		log.Add("%s can't be used in this era!", title(move.Name))
		return res
	}

	if !x.passGates(a.User, move, log) {
		res.Outcome = battle.OutcomeFailed
		return res
	}
	log.Add("%s used %s!", a.User.Species, title(move.Name))
	a.User.LastMoveUsed = move.Name
	if !move.Effect.Protection {
		a.User.ProtectStreak = 0
	}
	if item, ok := x.cfg.HolderItem(a.User); ok && item.ChoiceLock {
		a.User.ChoiceLocked = move.Name
	}

	// Two-turn moves spend their first action charging.
	if move.Effect.Charge && a.User.Charging == "" {
		if !x.chargeSkipped(move) {
			a.User.Charging = move.Name
			a.User.SemiInvulnerable = move.Effect.SemiInvulnerable
			log.Add(chargeLine(move), a.User.Species)
			return res
		}
	}
	if a.User.Charging == move.Name {
		a.User.Charging = ""
		a.User.SemiInvulnerable = ""
	}

	if move.Effect.Protection {
		x.resolveProtect(a.User, res, log)
		return res
	}

	if affectedByProtection(move) && a.Target.Protected {
		res.Outcome = battle.OutcomeProtected
		log.Add("%s protected itself!", a.Target.Species)
		return res
	}

	if a.Target.SemiInvulnerable != "" && !reaches(move, a.Target.SemiInvulnerable) {
		res.Outcome = battle.OutcomeMiss
		log.Add("%s avoided the attack!", a.Target.Species)
		return res
	}

	if !move.IsDamaging(int(x.cfg.Gen)) {
		x.resolveStatusMove(a, move, res, log)
		return res
	}
	x.resolveDamagingMove(a, move, res, log)
	return res
}

// passGates runs the pre-move gate ladder in its fixed order. A false
// return means the user loses its action; the log already says why.
func (x *Executor) passGates(user *battle.Combatant, move data.MoveRecord, log *battle.Log) bool {
	if user.MustRecharge {
		user.MustRecharge = false
		log.Add("%s must recharge!", user.Species)
		return false
	}
	if t := user.Volatile(battle.VolTrap); t != nil && t.Gen1ActionLock {
		log.Add("%s can't move!", user.Species)
		return false
	}

	// Flinch and confusion cut the action short before the status
	// conditions get a look; a flinched sleeper doesn't burn a sleep turn.
	if user.Flinched {
		user.Flinched = false
		if ab, ok := x.cfg.HolderAbility(user); !ok || !ab.BlocksFlinch {
			log.Add("%s flinched and couldn't move!", user.Species)
			return false
		}
	}

	if user.HasVolatile(battle.VolConfusion) {
		if user.TickVolatile(battle.VolConfusion) {
			log.Add("%s snapped out of its confusion!", user.Species)
		} else {
			log.Add("%s is confused!", user.Species)
			num := 50
			if x.cfg.Gen >= gen.Gen7 {
				num = 33
			}
			if x.rng.Chance(num, 100) {
				self := damage.Input{
					User: user, Target: user,
					Move:     data.MoveRecord{Name: "confusion-hit", Type: "typeless", Category: data.Physical},
					Power:    40,
					Field:    x.field,
					TypeMult: 1,
				}
				user.ApplyDamage(x.dmg.Compute(self, x.rng))
				log.Add("It hurt itself in its confusion!")
				return false
			}
		}
	}

	switch user.Status {
	case battle.StatusSleep:
		user.StatusTurns--
		if user.StatusTurns > 0 {
			log.Add("%s is fast asleep!", user.Species)
			// Snore-style moves act through the sleep gate.
			if !move.UsableAsleep {
				return false
			}
			break
		}
		user.Status = battle.StatusNone
		log.Add("%s woke up!", user.Species)
	case battle.StatusFreeze:
		if move.Type == "fire" && move.IsDamaging(int(x.cfg.Gen)) && x.cfg.Gen >= gen.Gen3 {
			user.Status = battle.StatusNone
			log.Add("%s thawed out!", user.Species)
			break
		}
		if x.cfg.Gen == gen.Gen1 || !x.rng.Chance(x.thawChance(), 100) {
			log.Add("%s is frozen solid!", user.Species)
			return false
		}
		user.Status = battle.StatusNone
		log.Add("%s thawed out!", user.Species)
	}

	if user.Status == battle.StatusParalysis && x.rng.Chance(25, 100) {
		log.Add("%s is fully paralyzed!", user.Species)
		return false
	}

	if v := user.Volatile(battle.VolInfatuation); v != nil {
		log.Add("%s is in love with %s!", user.Species, v.Source)
		if x.rng.Chance(50, 100) {
			log.Add("%s is immobilized by love!", user.Species)
			return false
		}
	}

	if user.HasVolatile(battle.VolTaunt) && !move.IsDamaging(int(x.cfg.Gen)) {
		log.Add("%s can't use %s after the taunt!", user.Species, title(move.Name))
		return false
	}
	if v := user.Volatile(battle.VolDisable); v != nil && v.Move == move.Name {
		log.Add("%s's %s is disabled!", user.Species, title(move.Name))
		return false
	}
	if v := user.Volatile(battle.VolEncore); v != nil && v.Move != move.Name {
		log.Add("%s must use %s after the encore!", user.Species, title(v.Move))
		return false
	}
	if user.ChoiceLocked != "" && user.ChoiceLocked != move.Name {
		log.Add("%s is locked into %s!", user.Species, title(user.ChoiceLocked))
		return false
	}
	return true
}

// thawChance is the per-turn defrost chance: one in ten in the second
// generation, one in five from the third on.
func (x *Executor) thawChance() int {
	if x.cfg.Gen == gen.Gen2 {
		return 10
	}
	return 20
}

// chargeSkipped reports whether field state releases the charge turn
// immediately (solar beam in bright sunlight).
func (x *Executor) chargeSkipped(move data.MoveRecord) bool {
	if move.Effect.SemiInvulnerable != "" || x.field == nil || x.cfg.Gen < gen.Gen2 {
		return false
	}
	w := x.field.EffectiveWeather()
	return move.Type == "grass" && (w == battle.WeatherSun || w == battle.WeatherHarshSun)
}

// resolveProtect handles the protection family with its halving success
// streak on the 255 scale.
func (x *Executor) resolveProtect(user *battle.Combatant, res *battle.Result, log *battle.Log) {
	threshold := 255 >> user.ProtectStreak
	if threshold < 1 {
		threshold = 1
	}
	if x.rng.Roll255() >= threshold {
		user.ProtectStreak = 0
		res.Outcome = battle.OutcomeFailed
		log.Add("But it failed!")
		return
	}
	user.Protected = true
	user.ProtectStreak++
	log.Add("%s protected itself!", user.Species)
}

// affectedByProtection reports whether protection stops the move. Moves
// aimed at the field or the user ignore it.
func affectedByProtection(move data.MoveRecord) bool {
	e := move.Effect
	if e.Weather != "" || e.Terrain != "" || e.Hazard != "" || e.Screen != "" || e.Protection {
		return false
	}
	if !e.Rampage && e.HealPercent > 0 || e.ResetStages {
		return false
	}
	if len(e.SelfStats) > 0 && len(e.TargetStats) == 0 && e.Status == "" && move.Power == 0 && e.Fixed == "" {
		return false
	}
	return true
}

func reaches(move data.MoveRecord, state string) bool {
	for _, s := range move.HitsInvulnerable {
		if s == state {
			return true
		}
	}
	return false
}

func chargeLine(move data.MoveRecord) string {
	switch move.Effect.SemiInvulnerable {
	case "fly":
		return "%s flew up high!"
	case "dig":
		return "%s burrowed its way under the ground!"
	case "dive":
		return "%s hid underwater!"
	case "bounce":
		return "%s sprang up!"
	}
	return "%s is gathering energy!"
}

// title capitalizes a hyphenated identifier for narrative lines.
func title(id string) string {
	out := make([]byte, 0, len(id))
	up := true
	for i := 0; i < len(id); i++ {
		ch := id[i]
		if ch == '-' {
			out = append(out, ' ')
			up = true
			continue
		}
		if up && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		up = false
		out = append(out, ch)
	}
	return string(out)
}
