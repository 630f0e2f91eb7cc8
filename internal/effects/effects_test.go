package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
)

func newApplier(t *testing.T, generation int) *Applier {
	t.Helper()
	cfg, err := config.New(generation, nil)
	require.NoError(t, err)
	return NewApplier(cfg)
}

func effMon(species string, types ...string) *battle.Combatant {
	return battle.NewCombatant(species, 50, types, map[battle.Stat]int{
		battle.StatHP: 100, battle.StatAttack: 100, battle.StatDefense: 100,
		battle.StatSpAtk: 100, battle.StatSpDef: 100, battle.StatSpeed: 100,
	})
}

func TestStatusTypeImmunities(t *testing.T) {
	a := newApplier(t, 9)
	rng := battle.NewRNG(1)
	log := &battle.Log{}

	fire := effMon("charmander", "fire")
	assert.Equal(t, StatusTypeImmune, a.TryStatus(nil, fire, battle.StatusBurn, nil, rng, log))

	steel := effMon("skarmory", "steel", "flying")
	assert.Equal(t, StatusTypeImmune, a.TryStatus(nil, steel, battle.StatusPoison, nil, rng, log))

	// Corrosion poisons anything.
	salazzle := effMon("salazzle", "poison", "fire")
	salazzle.SetAbility("corrosion")
	assert.Equal(t, StatusApplied, a.TryStatus(salazzle, steel, battle.StatusToxic, nil, rng, log))
	assert.Equal(t, battle.StatusToxic, steel.Status)

	// Electric paralysis immunity is a modern rule.
	old := newApplier(t, 5)
	pika := effMon("pikachu", "electric")
	assert.Equal(t, StatusApplied, old.TryStatus(nil, pika, battle.StatusParalysis, nil, rng, log))
	pika2 := effMon("pikachu", "electric")
	assert.Equal(t, StatusTypeImmune, a.TryStatus(nil, pika2, battle.StatusParalysis, nil, rng, log))
}

func TestStatusSingleSlotAndAbilityBlock(t *testing.T) {
	a := newApplier(t, 9)
	rng := battle.NewRNG(1)
	log := &battle.Log{}

	mon := effMon("snorlax", "normal")
	require.Equal(t, StatusApplied, a.TryStatus(nil, mon, battle.StatusBurn, nil, rng, log))
	assert.Equal(t, StatusAlreadyStatused, a.TryStatus(nil, mon, battle.StatusParalysis, nil, rng, log))
	assert.Equal(t, battle.StatusBurn, mon.Status)

	limber := effMon("hitmonlee", "fighting")
	limber.SetAbility("limber")
	assert.Equal(t, StatusBlockedByAbility, a.TryStatus(nil, limber, battle.StatusParalysis, nil, rng, log))

	// Mold breaker ignores the blocker.
	breaker := effMon("haxorus", "dragon")
	breaker.SetAbility("mold-breaker")
	assert.Equal(t, StatusApplied, a.TryStatus(breaker, limber, battle.StatusParalysis, nil, rng, log))
}

func TestSafeguardAndTerrainBlocks(t *testing.T) {
	a := newApplier(t, 9)
	rng := battle.NewRNG(1)
	log := &battle.Log{}
	field := battle.NewField(9)

	mon := effMon("snorlax", "normal")
	field.Side(0).SafeguardTurns = 3
	user := effMon("gengar", "ghost")
	assert.Equal(t, StatusBlockedBySafeguard, a.TryStatus(user, mon, battle.StatusPoison, field, rng, log))
	// Self-inflicted status (rest-style) passes safeguard.
	assert.Equal(t, StatusApplied, a.TryStatus(nil, mon, battle.StatusSleep, field, rng, log))

	field.Side(0).SafeguardTurns = 0
	field.SetTerrain(battle.TerrainMisty, 5)
	grounded := effMon("machamp", "fighting")
	assert.Equal(t, StatusBlockedByTerrain, a.TryStatus(user, grounded, battle.StatusBurn, field, rng, log))
	flyer := effMon("pidgeot", "normal", "flying")
	assert.Equal(t, StatusApplied, a.TryStatus(user, flyer, battle.StatusBurn, field, rng, log))

	field.SetTerrain(battle.TerrainElectric, 5)
	awake := effMon("machamp", "fighting")
	assert.Equal(t, StatusBlockedByTerrain, a.TryStatus(user, awake, battle.StatusSleep, field, rng, log))
}

func TestSleepTurnsAreRolled(t *testing.T) {
	a := newApplier(t, 9)
	rng := battle.NewRNG(1)
	rng.Enqueue(2) // Range(1,3) -> 3
	log := &battle.Log{}

	mon := effMon("snorlax", "normal")
	require.Equal(t, StatusApplied, a.TryStatus(nil, mon, battle.StatusSleep, nil, rng, log))
	assert.Equal(t, 3, mon.StatusTurns)
}

func TestApplyStagesNarrative(t *testing.T) {
	a := newApplier(t, 9)
	log := &battle.Log{}

	mon := effMon("scyther", "bug", "flying")
	a.ApplyStages(mon, mon, map[string]int{"atk": 2}, nil, log)
	assert.Equal(t, 2, mon.Stage(battle.StatAttack))
	assert.Contains(t, log.Lines()[len(log.Lines())-1], "rose sharply")

	for i := 0; i < 2; i++ {
		a.ApplyStages(mon, mon, map[string]int{"atk": 2}, nil, log)
	}
	a.ApplyStages(mon, mon, map[string]int{"atk": 1}, nil, log)
	assert.Equal(t, battle.MaxStage, mon.Stage(battle.StatAttack))
	assert.Contains(t, log.Lines()[len(log.Lines())-1], "won't go any higher")
}

func TestStatDropBlockers(t *testing.T) {
	a := newApplier(t, 9)
	log := &battle.Log{}
	attacker := effMon("gengar", "ghost")

	body := effMon("metagross", "steel", "psychic")
	body.SetAbility("clear-body")
	a.ApplyStages(attacker, body, map[string]int{"atk": -1}, nil, log)
	assert.Equal(t, 0, body.Stage(battle.StatAttack))

	// Clear body never blocks self-inflicted drops.
	a.ApplyStages(body, body, map[string]int{"atk": -1}, nil, log)
	assert.Equal(t, -1, body.Stage(battle.StatAttack))

	cutter := effMon("pinsir", "bug")
	cutter.SetAbility("hyper-cutter")
	a.ApplyStages(attacker, cutter, map[string]int{"atk": -1, "spe": -1}, nil, log)
	assert.Equal(t, 0, cutter.Stage(battle.StatAttack), "hyper cutter guards attack")
	assert.Equal(t, -1, cutter.Stage(battle.StatSpeed), "but nothing else")

	field := battle.NewField(9)
	field.Side(0).MistTurns = 3
	misted := effMon("lapras", "water", "ice")
	a.ApplyStages(attacker, misted, map[string]int{"def": -2}, field, log)
	assert.Equal(t, 0, misted.Stage(battle.StatDefense))
}

func TestVolatiles(t *testing.T) {
	a := newApplier(t, 9)
	rng := battle.NewRNG(1)
	log := &battle.Log{}

	mon := effMon("golduck", "water")
	rng.Enqueue(1) // Range(2,5) -> 3
	require.True(t, a.ApplyVolatile(nil, mon, battle.VolConfusion, 2, 5, rng, log))
	assert.Equal(t, 3, mon.Volatile(battle.VolConfusion).Turns)
	assert.False(t, a.ApplyVolatile(nil, mon, battle.VolConfusion, 2, 5, rng, log), "duplicate slot")

	// Substitute costs a quarter of max HP.
	sub := effMon("substitute-user", "normal")
	require.True(t, a.ApplyVolatile(nil, sub, battle.VolSubstitute, -1, -1, rng, log))
	assert.Equal(t, 75, sub.CurHP)
	assert.Equal(t, 25, sub.Volatile(battle.VolSubstitute).HP)

	weak := effMon("weak", "normal")
	weak.CurHP = 20
	assert.False(t, a.ApplyVolatile(nil, weak, battle.VolSubstitute, -1, -1, rng, log))

	// Infatuation needs opposite genders.
	m := effMon("nidoking", "poison")
	m.Gender = "M"
	f := effMon("nidoqueen", "poison")
	f.Gender = "F"
	assert.True(t, a.ApplyVolatile(f, m, battle.VolInfatuation, -1, -1, rng, log))
	same := effMon("machamp", "fighting")
	same.Gender = "M"
	assert.False(t, a.ApplyVolatile(m, same, battle.VolInfatuation, -1, -1, rng, log))
}

func TestHealAndFieldEffects(t *testing.T) {
	a := newApplier(t, 9)
	log := &battle.Log{}

	mon := effMon("blissey", "normal")
	assert.Equal(t, 0, a.Heal(mon, 50, log), "already full")
	mon.CurHP = 10
	assert.Equal(t, 50, a.Heal(mon, 50, log))

	field := battle.NewField(9)
	assert.True(t, a.SetWeather(field, battle.WeatherRain, log))
	assert.False(t, a.SetWeather(field, battle.WeatherRain, log), "already raining")

	assert.True(t, a.AddHazard(field, 1, "spikes", log))
	assert.True(t, a.AddHazard(field, 1, "spikes", log))
	assert.True(t, a.AddHazard(field, 1, "spikes", log))
	assert.False(t, a.AddHazard(field, 1, "spikes", log), "three layers max")
	assert.True(t, a.AddHazard(field, 1, "stealth-rock", log))
	assert.False(t, a.AddHazard(field, 1, "stealth-rock", log))

	assert.False(t, a.AddScreen(field, 0, "aurora-veil", log), "needs hail or snow")
	field.SetWeather(battle.WeatherSnow, 5)
	assert.True(t, a.AddScreen(field, 0, "aurora-veil", log))
	assert.True(t, a.AddScreen(field, 0, "reflect", log))
	assert.False(t, a.AddScreen(field, 0, "reflect", log))
}

func TestTerrainEraGate(t *testing.T) {
	old := newApplier(t, 5)
	log := &battle.Log{}
	field := battle.NewField(5)
	assert.False(t, old.SetTerrain(field, battle.TerrainElectric, log), "no terrain before gen 6")

	modern := newApplier(t, 7)
	field7 := battle.NewField(7)
	assert.True(t, modern.SetTerrain(field7, battle.TerrainElectric, log))
}
