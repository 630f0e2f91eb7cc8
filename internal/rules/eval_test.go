package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
)

func evalMon(hp, maxHP int) *battle.Combatant {
	c := &battle.Combatant{
		Species: "charizard", Level: 50,
		Types: []string{"fire", "flying"},
		CurHP: hp, MaxHP: maxHP,
		Ability: "blaze",
		Stats:   map[battle.Stat]int{battle.StatHP: maxHP},
	}
	return c
}

func TestPinchCondition(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	prg, err := ev.Compile("user.hp * 3 <= user.max_hp")
	require.NoError(t, err)

	move := data.MoveRecord{Name: "flamethrower", Type: "fire", Category: data.Special}

	healthy := Context(evalMon(150, 150), nil, move, 90, nil, 1.0)
	assert.False(t, prg.Bool(healthy))

	pinched := Context(evalMon(50, 150), nil, move, 90, nil, 1.0)
	assert.True(t, prg.Bool(pinched))
}

func TestWeatherAndFlagConditions(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	field := battle.NewField(5)
	field.SetWeather(battle.WeatherRain, 5)

	rain, err := ev.Compile("field.weather == 'rain'")
	require.NoError(t, err)
	ctx := Context(evalMon(100, 100), evalMon(100, 100), data.MoveRecord{Punch: true, Category: data.Physical}, 75, field, 1.0)
	assert.True(t, rain.Bool(ctx))

	punch, err := ev.Compile("move.punch && move.category == 'physical'")
	require.NoError(t, err)
	assert.True(t, punch.Bool(ctx))

	eff, err := ev.Compile("effectiveness > 1.0")
	require.NoError(t, err)
	assert.False(t, eff.Bool(ctx))
	super := Context(nil, nil, data.MoveRecord{}, 0, nil, 2.0)
	assert.True(t, eff.Bool(super))
}

func TestEmptyAndBrokenFormulas(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	always, err := ev.Compile("")
	require.NoError(t, err)
	assert.True(t, always.Bool(nil), "records without a condition always apply")

	_, err = ev.Compile("user.hp ===")
	assert.Error(t, err)

	// A formula referencing a missing field evaluates to false, not panic.
	missing, err := ev.Compile("user.no_such_field == 1")
	require.NoError(t, err)
	assert.False(t, missing.Bool(Context(evalMon(1, 1), nil, data.MoveRecord{}, 0, nil, 1.0)))
}
