package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTurns(t *testing.T) {
	src := `
# opening exchange
turn red: thunderbolt and blue: earthquake
turn red: quick-attack blue: protect
`
	s, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, s.Statements, 2)

	first := s.Statements[0].Turn
	require.NotNil(t, first)
	require.Len(t, first.Actions, 2)
	assert.Equal(t, "red", first.Actions[0].Side)
	assert.Equal(t, "thunderbolt", first.Actions[0].Move)
	assert.Equal(t, "earthquake", first.Actions[1].Move)

	// "and" between actions is optional.
	second := s.Statements[1].Turn
	require.Len(t, second.Actions, 2)
	assert.Equal(t, "protect", second.Actions[1].Move)
}

func TestParseFieldStatements(t *testing.T) {
	s, err := Parse("weather: rain\nterrain: electric\nturn red: thunder blue: dig")
	require.NoError(t, err)
	require.Len(t, s.Statements, 3)
	assert.Equal(t, "rain", s.Statements[0].Weather.Kind)
	assert.Equal(t, "electric", s.Statements[1].Terrain.Kind)
}

func TestNormalizeAndSides(t *testing.T) {
	s, err := Parse("turn Red: Quick-Attack Blue: Body-Slam")
	require.NoError(t, err)
	s.Normalize()
	assert.Equal(t, "quick-attack", s.Statements[0].Turn.Actions[0].Move)
	assert.Equal(t, []string{"red", "blue"}, s.Sides())
}

func TestParseErrorsAreFriendly(t *testing.T) {
	_, err := Parse("turn red thunderbolt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turn <side>: <move>")

	_, err = Parse("   ")
	require.Error(t, err)
}
