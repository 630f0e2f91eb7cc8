package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeField int

func (f fakeField) Era() int { return int(f) }

func TestResolvePrecedence(t *testing.T) {
	assert.Equal(t, Gen3, Resolve(fakeField(5), 3), "explicit override wins")
	assert.Equal(t, Gen5, Resolve(fakeField(5), 0))
	assert.Equal(t, Latest, Resolve(nil, 0))
	assert.Equal(t, Latest, Resolve(fakeField(42), 0), "out-of-range field era falls back")
}

func TestMechanicWindows(t *testing.T) {
	assert.False(t, Gen2.Has(MechAbilities))
	assert.True(t, Gen3.Has(MechAbilities))

	// Steel resisting Ghost/Dark existed only in Gens 2-5.
	assert.False(t, Gen1.Has(MechSteelResistsSpooky))
	assert.True(t, Gen2.Has(MechSteelResistsSpooky))
	assert.True(t, Gen5.Has(MechSteelResistsSpooky))
	assert.False(t, Gen6.Has(MechSteelResistsSpooky))

	assert.True(t, Gen7.Has(MechBurnSixteenth))
	assert.False(t, Gen6.Has(MechBurnSixteenth))
}

func TestTypeExists(t *testing.T) {
	assert.False(t, Gen1.TypeExists("steel"))
	assert.True(t, Gen2.TypeExists("steel"))
	assert.False(t, Gen5.TypeExists("fairy"))
	assert.True(t, Gen6.TypeExists("fairy"))
	assert.True(t, Gen1.TypeExists("ghost"))
}
