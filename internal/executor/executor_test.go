package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
)

func newExecutor(t *testing.T, generation int, seed int64) (*Executor, *battle.RNG) {
	t.Helper()
	cfg, err := config.New(generation, nil)
	require.NoError(t, err)
	rng := battle.NewRNG(seed)
	return New(cfg, battle.NewField(generation), rng), rng
}

func execMon(species string, types ...string) *battle.Combatant {
	c := battle.NewCombatant(species, 50, types, map[battle.Stat]int{
		battle.StatHP: 200, battle.StatAttack: 100, battle.StatDefense: 100,
		battle.StatSpAtk: 100, battle.StatSpDef: 100, battle.StatSpeed: 100,
	})
	return c
}

// queueHit enqueues the three draws of a plain single-hit move in gen 9:
// the accuracy percent, a failed 1/24 crit, and max variance.
func queueHit(rng *battle.RNG) { rng.Enqueue(0, 23, 15) }

func TestPlainHit(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("machop", "fighting"), execMon("squirtle", "water")

	queueHit(rng)
	res := x.Resolve(Action{User: user, Target: target, Move: "tackle"})

	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	// Level 50, power 40, equal stats, no STAB: 19 at max variance.
	assert.Equal(t, 19, res.Damage)
	assert.Equal(t, 200-19, target.CurHP)
	assert.Contains(t, res.Lines, "machop used Tackle!")
}

func TestSameSeedSameTranscript(t *testing.T) {
	run := func() (*battle.Result, *battle.Result, *battle.Combatant, *battle.Combatant) {
		x, _ := newExecutor(t, 9, 77)
		a, b := execMon("machop", "fighting"), execMon("squirtle", "water")
		r1 := x.Resolve(Action{User: a, Target: b, Move: "double-kick"})
		r2 := x.Resolve(Action{User: b, Target: a, Move: "thunder-wave"})
		log := &battle.Log{}
		x.EndOfTurn(a, b, log)
		return r1, r2, a, b
	}

	r1a, r2a, ca, cb := run()
	r1b, r2b, cc, cd := run()
	assert.Equal(t, r1a, r1b)
	assert.Equal(t, r2a, r2b)
	assert.Equal(t, ca.CurHP, cc.CurHP)
	assert.Equal(t, cb.CurHP, cd.CurHP)
}

func TestEraBan(t *testing.T) {
	x, _ := newExecutor(t, 1, 1)
	res := x.Resolve(Action{User: execMon("onix", "rock"), Target: execMon("pidgey", "normal"), Move: "stealth-rock"})
	assert.Equal(t, battle.OutcomeBanned, res.Outcome)
	assert.NotEmpty(t, res.Lines)
}

func TestTypeImmunityNeedsNoDraws(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	res := x.Resolve(Action{User: execMon("diglett", "ground"), Target: execMon("pidgey", "normal", "flying"), Move: "earthquake"})

	assert.Equal(t, battle.OutcomeImmune, res.Outcome)
	assert.Zero(t, res.TypeMult)
	// Nothing was drawn past the gate ladder.
	rng.Enqueue(42)
	assert.Equal(t, 42, rng.Roll255())
}

func TestStatusMoveTypeImmunity(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	res := x.Resolve(Action{User: execMon("pikachu", "electric"), Target: execMon("diglett", "ground"), Move: "thunder-wave"})
	assert.Equal(t, battle.OutcomeImmune, res.Outcome)
}

func TestThunderWaveParalyzes(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	target := execMon("squirtle", "water")
	rng.Enqueue(89) // percent roll 90 against the 90 threshold
	res := x.Resolve(Action{User: execMon("pikachu", "electric"), Target: target, Move: "thunder-wave"})

	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Equal(t, battle.StatusParalysis, target.Status)
}

func TestMissAndCrash(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("hitmonlee", "fighting"), execMon("squirtle", "water")

	rng.Enqueue(90) // percent roll 91 against high jump kick's 90
	res := x.Resolve(Action{User: user, Target: target, Move: "high-jump-kick"})

	assert.Equal(t, battle.OutcomeMiss, res.Outcome)
	assert.Equal(t, 200, target.CurHP)
	assert.Equal(t, 100, user.CurHP) // half max HP crash
}

func TestMultiHitStopsOnFaint(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("machop", "grass"), execMon("squirtle", "water")
	target.CurHP = 10

	// accuracy, then crit and variance for the first of two kicks.
	rng.Enqueue(0, 23, 15)
	res := x.Resolve(Action{User: user, Target: target, Move: "double-kick"})

	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 10, res.Damage)
	assert.True(t, target.Fainted())
	assert.Contains(t, res.Lines, "squirtle fainted!")
}

func TestOHKOBlockedBySturdy(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	target := execMon("geodude", "rock")
	target.SetAbility("sturdy")

	res := x.Resolve(Action{User: execMon("diglett", "ground"), Target: target, Move: "fissure"})
	assert.Equal(t, battle.OutcomeAbilityStop, res.Outcome)
	assert.Equal(t, 200, target.CurHP)
}

func TestOHKOLands(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	target := execMon("squirtle", "water")

	rng.Enqueue(29) // percent roll 30 against the flat 30 chance
	res := x.Resolve(Action{User: execMon("diglett", "ground"), Target: target, Move: "fissure"})

	assert.True(t, target.Fainted())
	assert.Equal(t, 200, res.Damage)
	assert.Contains(t, res.Lines, "It's a one-hit KO!")
}

func TestProtectStreakDecays(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user := execMon("mew", "psychic")

	rng.Enqueue(0)
	res := x.Resolve(Action{User: user, Target: execMon("foe", "normal"), Move: "protect"})
	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.True(t, user.Protected)
	assert.Equal(t, 1, user.ProtectStreak)

	// Second consecutive use rolls against half the scale.
	rng.Enqueue(127)
	res = x.Resolve(Action{User: user, Target: execMon("foe", "normal"), Move: "protect"})
	assert.Equal(t, battle.OutcomeFailed, res.Outcome)
	assert.Zero(t, user.ProtectStreak)
}

func TestProtectionBlocksTheHit(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("machop", "fighting"), execMon("squirtle", "water")
	target.Protected = true

	queueHit(rng)
	res := x.Resolve(Action{User: user, Target: target, Move: "tackle"})
	assert.Equal(t, battle.OutcomeProtected, res.Outcome)
	assert.Equal(t, 200, target.CurHP)
}

func TestSubstituteAbsorbs(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("machop", "fighting"), execMon("squirtle", "water")
	target.AddVolatile(&battle.Volatile{Kind: battle.VolSubstitute, Turns: -1, HP: 50})

	queueHit(rng)
	res := x.Resolve(Action{User: user, Target: target, Move: "tackle"})

	assert.Equal(t, 200, target.CurHP)
	assert.Equal(t, 50-19, target.Volatile(battle.VolSubstitute).HP)
	assert.Contains(t, res.Lines, "The substitute took the hit!")
}

func TestSleepGate(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	user := execMon("snorlax", "normal")
	user.Status = battle.StatusSleep
	user.StatusTurns = 2

	res := x.Resolve(Action{User: user, Target: execMon("foe", "normal"), Move: "tackle"})
	assert.Equal(t, battle.OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Lines, "snorlax is fast asleep!")
	assert.Equal(t, 1, user.StatusTurns)
}

func TestFlinchedSleeperKeepsItsSleepTurn(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	user := execMon("snorlax", "normal")
	user.Status = battle.StatusSleep
	user.StatusTurns = 2
	user.Flinched = true

	res := x.Resolve(Action{User: user, Target: execMon("foe", "normal"), Move: "tackle"})
	assert.Equal(t, battle.OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Lines, "snorlax flinched and couldn't move!")
	assert.NotContains(t, res.Lines, "snorlax is fast asleep!")
	assert.Equal(t, 2, user.StatusTurns, "the flinch ends the action before the sleep counter ticks")
}

func TestThawChanceByEra(t *testing.T) {
	// Gen 2 defrosts one turn in ten; later eras one in five.
	x2, rng2 := newExecutor(t, 2, 1)
	frozen := execMon("cloyster", "water")
	frozen.Status = battle.StatusFreeze

	rng2.Enqueue(10) // Chance(10,100) miss, would thaw under the 20 rate
	res := x2.Resolve(Action{User: frozen, Target: execMon("foe", "normal"), Move: "tackle"})
	assert.Equal(t, battle.OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Lines, "cloyster is frozen solid!")

	x9, rng9 := newExecutor(t, 9, 1)
	frozen9 := execMon("cloyster", "water")
	frozen9.Status = battle.StatusFreeze

	rng9.Enqueue(10, 0, 23, 15) // thaw, then a plain hit
	res = x9.Resolve(Action{User: frozen9, Target: execMon("foe", "normal"), Move: "tackle"})
	assert.Contains(t, res.Lines, "cloyster thawed out!")
	assert.Equal(t, battle.OutcomeHit, res.Outcome)
}

func TestSnoreActsThroughSleep(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user := execMon("snorlax", "normal")
	user.Status = battle.StatusSleep
	user.StatusTurns = 3

	target := execMon("foe", "rock")
	rng.Enqueue(0, 23, 15, 99) // plain hit, then the 30% flinch rider misses
	res := x.Resolve(Action{User: user, Target: target, Move: "snore"})

	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Contains(t, res.Lines, "snorlax is fast asleep!")
	assert.Positive(t, res.Damage)
	assert.Equal(t, battle.StatusSleep, user.Status)
}

func TestTauntGatesStatusMoves(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	user := execMon("pikachu", "electric")
	user.AddVolatile(&battle.Volatile{Kind: battle.VolTaunt, Turns: 3})

	res := x.Resolve(Action{User: user, Target: execMon("foe", "normal"), Move: "thunder-wave"})
	assert.Equal(t, battle.OutcomeFailed, res.Outcome)
}

func TestIntegrityError(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	bad := execMon("glitch", "normal")
	bad.Stages[battle.StatAttack] = 9

	res := x.Resolve(Action{User: bad, Target: execMon("foe", "normal"), Move: "tackle"})
	assert.Equal(t, battle.OutcomeIntegrity, res.Outcome)
	assert.NotEmpty(t, res.Lines)
}

func TestBurnResidualByEra(t *testing.T) {
	for _, tc := range []struct {
		generation, hp int
	}{
		{5, 200 - 200/8},
		{9, 200 - 200/16},
	} {
		x, _ := newExecutor(t, tc.generation, 1)
		a, b := execMon("a", "normal"), execMon("b", "normal")
		a.Status = battle.StatusBurn
		x.EndOfTurn(a, b, &battle.Log{})
		assert.Equal(t, tc.hp, a.CurHP, "gen %d", tc.generation)
	}
}

func TestToxicRamps(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	a, b := execMon("a", "normal"), execMon("b", "normal")
	a.Status = battle.StatusToxic

	x.EndOfTurn(a, b, &battle.Log{})
	assert.Equal(t, 200-12, a.CurHP) // 1/16
	x.EndOfTurn(a, b, &battle.Log{})
	assert.Equal(t, 200-12-25, a.CurHP) // 2/16
}

func TestLeftoversHeal(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	a, b := execMon("a", "normal"), execMon("b", "normal")
	a.SetItem("leftovers")
	a.CurHP = 100

	x.EndOfTurn(a, b, &battle.Log{})
	assert.Equal(t, 100+200/16, a.CurHP)
}

func TestSitrusBerryTriggersAtHalf(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	a, b := execMon("a", "normal"), execMon("b", "normal")
	a.SetItem("sitrus-berry")
	a.CurHP = 90 // below half of 200

	x.EndOfTurn(a, b, &battle.Log{})
	assert.Equal(t, 90+50, a.CurHP)
	assert.Empty(t, a.Item)
}

func TestSitrusBerryFiresMidAction(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("machop", "fighting"), execMon("squirtle", "water")
	target.SetItem("sitrus-berry")
	target.CurHP = 105 // the 19-damage hit drops it to the half mark

	queueHit(rng)
	res := x.Resolve(Action{User: user, Target: target, Move: "tackle"})

	require.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Contains(t, res.Lines, "squirtle restored its health using its Sitrus Berry!")
	assert.Equal(t, 105-19+50, target.CurHP, "the berry fires right after the hit, not at end of turn")
	assert.Empty(t, target.Item)
}

func TestWeatherExpires(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	a, b := execMon("a", "normal"), execMon("b", "normal")
	x.Field().SetWeather(battle.WeatherRain, 5)

	for i := 0; i < 4; i++ {
		x.EndOfTurn(a, b, &battle.Log{})
		assert.Equal(t, battle.WeatherRain, x.Field().Weather)
	}
	log := &battle.Log{}
	x.EndOfTurn(a, b, log)
	assert.Equal(t, battle.WeatherNone, x.Field().Weather)
	assert.Contains(t, log.Lines(), "The rain stopped.")
}

func TestSandstormChipsExceptImmuneTypes(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	soft, hard := execMon("rattata", "normal"), execMon("geodude", "rock", "ground")
	x.Field().SetWeather(battle.WeatherSand, 5)

	x.EndOfTurn(soft, hard, &battle.Log{})
	assert.Equal(t, 200-200/16, soft.CurHP)
	assert.Equal(t, 200, hard.CurHP)
}

func TestLeechSeedFeedsTheOtherSide(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	seeded, seeder := execMon("squirtle", "water"), execMon("bulbasaur", "grass")
	seeded.AddVolatile(&battle.Volatile{Kind: battle.VolLeechSeed, Turns: -1, Source: "bulbasaur"})
	seeder.CurHP = 100

	x.EndOfTurn(seeded, seeder, &battle.Log{})
	assert.Equal(t, 200-25, seeded.CurHP)
	assert.Equal(t, 125, seeder.CurHP)
}

func TestRecoilAndDrain(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("tauros", "normal"), execMon("squirtle", "water")

	// double-edge: accuracy, crit, variance. Power 120 with STAB.
	rng.Enqueue(0, 23, 15)
	res := x.Resolve(Action{User: user, Target: target, Move: "double-edge"})
	require.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Equal(t, 200-res.Damage*33/100, user.CurHP)

	user2, target2 := execMon("oddish", "grass"), execMon("squirtle", "water")
	user2.CurHP = 50
	rng.Enqueue(0, 23, 15)
	res = x.Resolve(Action{User: user2, Target: target2, Move: "giga-drain"})
	require.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Equal(t, 50+res.Damage/2, user2.CurHP)
}

func TestDrainHealsPastSubstitute(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("oddish", "grass"), execMon("squirtle", "water")
	user.CurHP = 50
	target.AddVolatile(&battle.Volatile{Kind: battle.VolSubstitute, Turns: -1, HP: 2})

	// Computed damage is 104 (STAB, super effective, max variance); the
	// substitute caps the dealt damage at its 2 HP.
	queueHit(rng)
	res := x.Resolve(Action{User: user, Target: target, Move: "giga-drain"})

	require.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Equal(t, 2, res.Damage)
	assert.Contains(t, res.Lines, "squirtle's substitute faded!")
	assert.Equal(t, 50+52, user.CurHP, "drain heals from the computed damage, not the capped one")
}

func TestSheerColdIceTargetImmune(t *testing.T) {
	x, _ := newExecutor(t, 9, 1)
	target := execMon("glalie", "ice")

	res := x.Resolve(Action{User: execMon("lapras", "water"), Target: target, Move: "sheer-cold"})

	assert.Equal(t, battle.OutcomeImmune, res.Outcome)
	assert.Equal(t, 200, target.CurHP)
	assert.Contains(t, res.Lines, "It doesn't affect glalie...")
}

func TestSheerColdLowBaseForWarmUsers(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	target := execMon("squirtle", "water")

	// Non-ice user rolls against 20, not 30.
	rng.Enqueue(20) // percent roll 21
	res := x.Resolve(Action{User: execMon("lapras", "water"), Target: target, Move: "sheer-cold"})
	assert.Equal(t, battle.OutcomeMiss, res.Outcome)

	rng.Enqueue(19) // percent roll 20
	res = x.Resolve(Action{User: execMon("lapras", "water"), Target: target, Move: "sheer-cold"})
	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.True(t, target.Fainted())
}

func TestChargeMoveSpendsATurn(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("charizard", "fire", "flying"), execMon("machop", "fighting")

	res := x.Resolve(Action{User: user, Target: target, Move: "fly"})
	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Zero(t, res.Damage)
	assert.Equal(t, "fly", user.Charging)
	assert.Equal(t, "fly", user.SemiInvulnerable)

	rng.Enqueue(0, 23, 15)
	res = x.Resolve(Action{User: user, Target: target, Move: "fly"})
	assert.Equal(t, battle.OutcomeHit, res.Outcome)
	assert.Positive(t, res.Damage)
	assert.Empty(t, user.Charging)
}

func TestSemiInvulnerableAvoidsOrdinaryMoves(t *testing.T) {
	x, rng := newExecutor(t, 9, 1)
	user, target := execMon("machop", "fighting"), execMon("charizard", "fire", "flying")
	target.SemiInvulnerable = "fly"

	res := x.Resolve(Action{User: user, Target: target, Move: "tackle"})
	assert.Equal(t, battle.OutcomeMiss, res.Outcome)

	// thunder reaches fliers: accuracy, crit, variance, then the failed
	// 30% paralysis rider.
	rng.Enqueue(69, 23, 15, 30)
	res = x.Resolve(Action{User: user, Target: target, Move: "thunder"})
	assert.Equal(t, battle.OutcomeHit, res.Outcome)
}
