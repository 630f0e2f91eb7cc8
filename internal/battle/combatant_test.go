package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMon() *Combatant {
	return NewCombatant("snorlax", 50, []string{"normal"}, map[Stat]int{
		StatHP: 200, StatAttack: 130, StatDefense: 85,
		StatSpAtk: 85, StatSpDef: 130, StatSpeed: 50,
	})
}

func TestStageClampUnderAnyDeltaSequence(t *testing.T) {
	c := testMon()
	deltas := []int{3, 3, 3, -1, 12, -20, -6, 2, 2, 2, 2, 2, 2, 2}
	for _, d := range deltas {
		c.ModifyStage(StatAttack, d)
		assert.GreaterOrEqual(t, c.Stage(StatAttack), MinStage)
		assert.LessOrEqual(t, c.Stage(StatAttack), MaxStage)
	}
}

func TestStageRoundTrip(t *testing.T) {
	c := testMon()
	c.ModifyStage(StatSpeed, 2)
	c.ModifyStage(StatSpeed, -2)
	assert.Equal(t, 0, c.Stage(StatSpeed))

	// When the ceiling was hit the inverse does not restore, it clamps.
	c.Stages[StatAttack] = 5
	applied, clamped := c.ModifyStage(StatAttack, 2)
	assert.Equal(t, 1, applied)
	assert.True(t, clamped)
	c.ModifyStage(StatAttack, -2)
	assert.Equal(t, 4, c.Stage(StatAttack))
}

func TestHPClamp(t *testing.T) {
	c := testMon()
	dealt := c.ApplyDamage(9999)
	assert.Equal(t, 200, dealt)
	assert.Equal(t, 0, c.CurHP)
	assert.True(t, c.Fainted())

	healed := c.Heal(250)
	assert.Equal(t, 200, healed)
	assert.True(t, c.AtFullHP())
}

func TestValidate(t *testing.T) {
	c := testMon()
	require.NoError(t, c.Validate())

	c.Stages[StatEvasion] = 9
	assert.ErrorIs(t, c.Validate(), ErrIntegrity)
}

func TestVolatileSlots(t *testing.T) {
	c := testMon()
	assert.True(t, c.AddVolatile(&Volatile{Kind: VolConfusion, Turns: 3}))
	assert.False(t, c.AddVolatile(&Volatile{Kind: VolConfusion, Turns: 5}), "duplicate kind is a no-op")
	assert.Equal(t, 3, c.Volatile(VolConfusion).Turns)

	assert.False(t, c.TickVolatile(VolConfusion))
	assert.False(t, c.TickVolatile(VolConfusion))
	assert.True(t, c.TickVolatile(VolConfusion), "expires on the third tick")
	assert.False(t, c.HasVolatile(VolConfusion))

	c.AddVolatile(&Volatile{Kind: VolLeechSeed, Turns: -1, Source: "venusaur"})
	for i := 0; i < 10; i++ {
		assert.False(t, c.TickVolatile(VolLeechSeed), "until-switch slots never expire")
	}
}

func TestCacheInvalidation(t *testing.T) {
	c := testMon()
	c.CachePut("mods", 42)
	v, ok := c.CacheGet("mods")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	c.SetItem("choice-band")
	_, ok = c.CacheGet("mods")
	assert.False(t, ok, "item change drops the resolved-effect cache")
}

func TestFieldPrimalLock(t *testing.T) {
	f := NewField(7)
	assert.True(t, f.SetWeather(WeatherHeavyRain, 0))
	assert.False(t, f.SetWeather(WeatherRain, 5), "ordinary weather cannot displace primal")
	assert.Equal(t, WeatherHeavyRain, f.Weather)
	assert.True(t, f.SetWeather(WeatherHarshSun, 0), "primal displaces primal")
}

func TestAuraHoldersDoNotStack(t *testing.T) {
	f := NewField(9)
	f.AddAura("sword-of-ruin")
	f.AddAura("sword-of-ruin")
	assert.True(t, f.AuraActive("sword-of-ruin"))
	f.RemoveAura("sword-of-ruin")
	assert.True(t, f.AuraActive("sword-of-ruin"), "second holder keeps the aura up")
	f.RemoveAura("sword-of-ruin")
	assert.False(t, f.AuraActive("sword-of-ruin"))
}
