package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

func newEngine(t *testing.T, generation int) *Engine {
	t.Helper()
	cfg, err := config.New(generation, nil)
	require.NoError(t, err)
	return NewEngine(cfg)
}

func statMon(base int) *battle.Combatant {
	return battle.NewCombatant("snorlax", 50, []string{"normal"}, map[battle.Stat]int{
		battle.StatHP: 200, battle.StatAttack: base, battle.StatDefense: base,
		battle.StatSpAtk: base, battle.StatSpDef: base, battle.StatSpeed: base,
	})
}

func TestStageMultiplierTables(t *testing.T) {
	num, den := StageMultiplier(gen.Gen9, 2)
	assert.Equal(t, 4, num)
	assert.Equal(t, 2, den)

	num, den = StageMultiplier(gen.Gen9, -3)
	assert.Equal(t, 2, num)
	assert.Equal(t, 5, den)

	// The early eras use the coarse hundredths table.
	num, den = StageMultiplier(gen.Gen1, -6)
	assert.Equal(t, 25, num)
	assert.Equal(t, 100, den)
	num, den = StageMultiplier(gen.Gen2, 6)
	assert.Equal(t, 400, num)

	num, den = AccuracyStageMultiplier(-1)
	assert.Equal(t, 3, num)
	assert.Equal(t, 4, den)
}

func TestParalysisSpeedPenaltyByEra(t *testing.T) {
	mon := statMon(100)
	mon.Status = battle.StatusParalysis

	assert.Equal(t, 25, newEngine(t, 6).Effective(mon, battle.StatSpeed, nil), "quarter speed through gen 6")
	assert.Equal(t, 50, newEngine(t, 7).Effective(mon, battle.StatSpeed, nil), "half speed from gen 7")
}

func TestAbilityStatMods(t *testing.T) {
	e := newEngine(t, 9)

	mon := statMon(100)
	mon.SetAbility("huge-power")
	assert.Equal(t, 200, e.Effective(mon, battle.StatAttack, nil))

	guts := statMon(100)
	guts.SetAbility("guts")
	assert.Equal(t, 100, e.Effective(guts, battle.StatAttack, nil))
	guts.Status = battle.StatusBurn
	assert.Equal(t, 150, e.Effective(guts, battle.StatAttack, nil))

	// Abilities do not exist in gen 2.
	g2 := newEngine(t, 2)
	assert.Equal(t, 100, g2.Effective(mon, battle.StatAttack, nil))
}

func TestWeatherSpeedAbilities(t *testing.T) {
	e := newEngine(t, 9)
	field := battle.NewField(9)

	mon := statMon(100)
	mon.SetAbility("chlorophyll")
	assert.Equal(t, 100, e.Effective(mon, battle.StatSpeed, field))

	field.SetWeather(battle.WeatherSun, 5)
	assert.Equal(t, 200, e.Effective(mon, battle.StatSpeed, field))

	// A weather-negating presence hides the sun without clearing it.
	field.AddAura(battle.WeatherNegationAura)
	assert.Equal(t, 100, e.Effective(mon, battle.StatSpeed, field))
	field.RemoveAura(battle.WeatherNegationAura)
	assert.Equal(t, 200, e.Effective(mon, battle.StatSpeed, field))
}

func TestItemGates(t *testing.T) {
	e := newEngine(t, 9)

	band := statMon(100)
	band.SetItem("choice-band")
	assert.Equal(t, 150, e.Effective(band, battle.StatAttack, nil))

	evio := statMon(100)
	evio.SetItem("eviolite")
	assert.Equal(t, 100, e.Effective(evio, battle.StatDefense, nil), "eviolite is inert on a fully evolved holder")
	evio.NotFullyEvolved = true
	evio.InvalidateCache()
	assert.Equal(t, 150, e.Effective(evio, battle.StatDefense, nil))

	ball := statMon(100)
	ball.SetItem("light-ball")
	assert.Equal(t, 100, e.Effective(ball, battle.StatAttack, nil), "light ball is species locked")
	pika := battle.NewCombatant("Pikachu", 50, []string{"electric"}, map[battle.Stat]int{battle.StatAttack: 80})
	pika.SetItem("light-ball")
	assert.Equal(t, 160, e.Effective(pika, battle.StatAttack, nil))
}

func TestFieldSpeedAndRuinAuras(t *testing.T) {
	e := newEngine(t, 9)
	field := battle.NewField(9)

	mon := statMon(100)
	field.Side(0).TailwindTurns = 3
	assert.Equal(t, 200, e.Effective(mon, battle.StatSpeed, field))
	mon.SideIndex = 1
	assert.Equal(t, 100, e.Effective(mon, battle.StatSpeed, field))

	field.AddAura("ruin:atk")
	assert.Equal(t, 75, e.Effective(mon, battle.StatAttack, field))

	holder := statMon(100)
	holder.SetAbility("tablets-of-ruin")
	assert.Equal(t, 100, e.Effective(holder, battle.StatAttack, field), "the aura holder is exempt")
}

func TestSlowStartLazyInit(t *testing.T) {
	e := newEngine(t, 9)
	mon := statMon(100)
	mon.SetAbility("slow-start")

	require.Nil(t, mon.SlowStartTurns)
	assert.Equal(t, 50, e.Effective(mon, battle.StatAttack, nil))
	require.NotNil(t, mon.SlowStartTurns, "first stat read starts the counter")

	*mon.SlowStartTurns = 5
	assert.Equal(t, 100, e.Effective(mon, battle.StatAttack, nil))
	assert.Equal(t, 100, e.Effective(mon, battle.StatDefense, nil), "only attack and speed are halved")
}

func TestStagesApplied(t *testing.T) {
	e := newEngine(t, 9)
	mon := statMon(100)
	mon.ModifyStage(battle.StatAttack, 2)
	assert.Equal(t, 200, e.Effective(mon, battle.StatAttack, nil))
	assert.Equal(t, 100, e.EffectiveUnstaged(mon, battle.StatAttack, nil))

	g1 := newEngine(t, 1)
	one := statMon(100)
	one.ModifyStage(battle.StatAttack, -6)
	assert.Equal(t, 25, g1.Effective(one, battle.StatAttack, nil))
}
