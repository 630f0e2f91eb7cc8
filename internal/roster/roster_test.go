package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

const sampleRoster = `
combatants:
  - species: Pikachu
    side: red
    level: 50
    types: [Electric]
    stats: {hp: 120, atk: 90, def: 70, spa: 100, spd: 90, spe: 140}
    ability: Static
    item: Light Ball
    gender: male
    weight_kg: 6.0
    moves: [thunderbolt, quick-attack]
  - species: golem
    side: blue
    level: 50
    types: [rock, ground]
    stats: {hp: 160, atk: 130, def: 140, special: 65, spe: 60}
`

func writeRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster), 0644))
	return path
}

func TestLoadAndMaterialize(t *testing.T) {
	r, err := Load(writeRoster(t))
	require.NoError(t, err)

	sides, err := r.Materialize(gen.Gen9)
	require.NoError(t, err)
	require.Len(t, sides, 2)

	red := sides["red"]
	require.NotNil(t, red)
	assert.Equal(t, "pikachu", red.Species)
	assert.Equal(t, "static", red.Ability)
	assert.Equal(t, "light-ball", red.Item)
	assert.Equal(t, 0, red.SideIndex)
	assert.Equal(t, 120, red.CurHP)
	assert.NoError(t, red.Validate())

	blue := sides["blue"]
	require.NotNil(t, blue)
	assert.Equal(t, 1, blue.SideIndex)
	// The single "special" value fills both modern slots.
	assert.Equal(t, 65, blue.Stats[battle.StatSpAtk])
	assert.Equal(t, 65, blue.Stats[battle.StatSpDef])
}

func TestGen1MirrorsSpecial(t *testing.T) {
	e := Entry{
		Species: "alakazam", Side: "red", Level: 100, Types: []string{"psychic"},
		Stats: map[string]int{"hp": 100, "atk": 50, "def": 45, "spa": 135, "spd": 95, "spe": 120},
	}
	c, err := e.Combatant(gen.Gen1)
	require.NoError(t, err)
	assert.Equal(t, 135, c.Stats[battle.StatSpDef])
}

func TestTeraTypeIsEraGated(t *testing.T) {
	e := Entry{
		Species: "azumarill", Side: "red", Level: 50, Types: []string{"water", "fairy"},
		Stats:    map[string]int{"hp": 100, "atk": 100, "def": 100, "spa": 100, "spd": 100, "spe": 100},
		TeraType: "Water",
	}

	c, err := e.Combatant(gen.Gen9)
	require.NoError(t, err)
	assert.Equal(t, "water", c.TeraType)

	c, err = e.Combatant(gen.Gen8)
	require.NoError(t, err)
	assert.Empty(t, c.TeraType, "only the ninth generation terastallizes")
}

func TestEntryValidation(t *testing.T) {
	base := Entry{
		Species: "mew", Side: "red", Level: 50, Types: []string{"psychic"},
		Stats: map[string]int{"hp": 100, "atk": 100, "def": 100, "spa": 100, "spd": 100, "spe": 100},
	}

	bad := base
	bad.Level = 0
	_, err := bad.Combatant(gen.Gen9)
	assert.Error(t, err)

	bad = base
	bad.Types = nil
	_, err = bad.Combatant(gen.Gen9)
	assert.Error(t, err)

	bad = base
	bad.Stats = map[string]int{"hp": 100}
	_, err = bad.Combatant(gen.Gen9)
	assert.Error(t, err)
}

func TestDuplicateSideRejected(t *testing.T) {
	r := &Roster{Combatants: []Entry{
		{Species: "a", Side: "red", Level: 5, Types: []string{"normal"}, Stats: map[string]int{"hp": 20, "atk": 10, "def": 10, "spa": 10, "spd": 10, "spe": 10}},
		{Species: "b", Side: "red", Level: 5, Types: []string{"normal"}, Stats: map[string]int{"hp": 20, "atk": 10, "def": 10, "spa": 10, "spd": 10, "spe": 10}},
	}}
	_, err := r.Materialize(gen.Gen9)
	assert.Error(t, err)
}
