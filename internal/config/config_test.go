package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

func TestNewResolvesGeneration(t *testing.T) {
	b, err := New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, gen.Latest, b.Gen)

	b, err = New(3, nil)
	require.NoError(t, err)
	assert.Equal(t, gen.Gen3, b.Gen)

	b, err = New(99, nil)
	require.NoError(t, err)
	assert.Equal(t, gen.Latest, b.Gen)
}

func TestMoveResolution(t *testing.T) {
	b, err := New(1, nil)
	require.NoError(t, err)

	tackle, banned := b.Move("Tackle")
	assert.False(t, banned)
	assert.Equal(t, 35, tackle.Power, "gen 1 tackle")

	// Unknown moves resolve to the plain default instead of failing.
	mystery, banned := b.Move("Mystery Move")
	assert.False(t, banned)
	assert.Equal(t, 40, mystery.Power)
	assert.Equal(t, "mystery-move", mystery.Name)

	// Category is already era-resolved on the returned record.
	b5, _ := New(3, nil)
	sb, _ := b5.Move("shadow-ball")
	assert.Equal(t, data.Physical, sb.Category)

	_, banned = b.Move("moonblast")
	assert.True(t, banned, "fairy moves are banned in gen 1")
}

func TestAbilityAndItemEraGates(t *testing.T) {
	g2, err := New(2, nil)
	require.NoError(t, err)
	_, ok := g2.Ability("blaze")
	assert.False(t, ok, "abilities do not exist before gen 3")
	_, ok = g2.Item("leftovers")
	assert.True(t, ok, "held items exist from gen 2")

	g1, _ := New(1, nil)
	_, ok = g1.Item("leftovers")
	assert.False(t, ok, "no held items in gen 1")

	g3, _ := New(3, nil)
	_, ok = g3.Ability("blaze")
	assert.True(t, ok)
	_, ok = g3.Ability("mold-breaker")
	assert.False(t, ok, "mold breaker appears in gen 4")
	_, ok = g3.Item("eviolite")
	assert.False(t, ok, "eviolite appears in gen 5")
}

func TestProgramCacheAndBadFormula(t *testing.T) {
	b, err := New(9, nil)
	require.NoError(t, err)

	p1 := b.Program("effectiveness > 1.0")
	p2 := b.Program("effectiveness > 1.0")
	assert.Same(t, p1, p2, "programs compile once")

	assert.Nil(t, b.Program(""), "empty condition means always active")

	bad := b.Program("user.hp ===")
	assert.False(t, bad.Bool(map[string]any{"effectiveness": 2.0}), "broken conditions never apply")
}
