package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/replay"
	"github.com/urdoggydeewata-star/dexbattle/internal/roster"
)

func testRoster() *roster.Roster {
	return &roster.Roster{Combatants: []roster.Entry{
		{
			Species: "Jolteon", Side: "red", Level: 50, Types: []string{"electric"},
			Stats: map[string]int{"hp": 200, "atk": 100, "def": 100, "spa": 100, "spd": 100, "spe": 130},
		},
		{
			Species: "Golem", Side: "blue", Level: 50, Types: []string{"rock", "ground"},
			Stats: map[string]int{"hp": 200, "atk": 100, "def": 100, "spa": 100, "spd": 100, "spe": 45},
		},
	}}
}

func newSession(t *testing.T, store Store) *Session {
	t.Helper()
	s, err := New(config.Settings{Generation: 9, Seed: 42}, testRoster(), store)
	require.NoError(t, err)
	return s
}

// queueHit loads the three draws of one plain single-hit attack:
// accuracy, crit and variance.
func queueHit(s *Session) { s.rng.Enqueue(0, 23, 15) }

func TestScriptedTurnRuns(t *testing.T) {
	s := newSession(t, nil)

	lines, err := s.Start("", "")
	require.NoError(t, err)
	assert.Contains(t, lines, "Red sent out jolteon!")

	queueHit(s)
	queueHit(s)
	report, err := s.Execute("turn red: tackle and blue: tackle")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Turn)
	require.Len(t, report.Results, 2)
	for _, res := range report.Results {
		assert.Equal(t, battle.OutcomeHit, res.Outcome)
		assert.Positive(t, res.Damage)
	}

	red, _ := s.Combatant("red")
	blue, _ := s.Combatant("blue")
	assert.Less(t, red.CurHP, red.MaxHP)
	assert.Less(t, blue.CurHP, blue.MaxHP)
}

func TestFasterSideActsFirst(t *testing.T) {
	s := newSession(t, nil)
	queueHit(s)
	queueHit(s)

	report, err := s.Execute("turn blue: tackle and red: tackle")
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	// Jolteon outspeeds, so red's tackle resolves first regardless of
	// declaration order.
	red, _ := s.Combatant("red")
	assert.True(t, red.MovedAfterTarget == false)
}

func TestPriorityBeatsSpeed(t *testing.T) {
	s := newSession(t, nil)
	red, _ := s.Combatant("red")
	red.CurHP = 1

	queueHit(s)
	report, err := s.Execute("turn red: tackle and blue: quick-attack")
	require.NoError(t, err)

	// Quick attack jumps the bracket: the slow side strikes first and the
	// faster one never gets to move.
	require.Len(t, report.Results, 1)
	assert.Equal(t, "quick-attack", report.Results[0].Move)
	assert.True(t, red.Fainted())
	assert.Equal(t, "blue", s.Winner())
	assert.True(t, s.Over())
}

func TestFieldStatementsBetweenTurns(t *testing.T) {
	s := newSession(t, nil)

	report, err := s.Execute("weather: rain")
	require.NoError(t, err)
	assert.Contains(t, report.Lines, "It started to rain!")
	assert.Equal(t, battle.WeatherRain, s.field.Weather)

	report, err = s.Execute("terrain: electric")
	require.NoError(t, err)
	assert.Contains(t, report.Lines, "An electric current ran across the battlefield!")
}

func TestTranscriptPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.jsonl")
	store, err := replay.NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	s := newSession(t, store)
	_, err = s.Start("roster.yaml", "script.bt")
	require.NoError(t, err)

	queueHit(s)
	queueHit(s)
	_, err = s.Execute("turn red: tackle and blue: tackle")
	require.NoError(t, err)

	headers, entries, err := store.Load()
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Equal(t, s.BattleID(), headers[0].BattleID)
	assert.Equal(t, int64(42), headers[0].Seed)
	assert.Equal(t, 9, headers[0].Generation)

	require.Len(t, entries, 2)
	assert.Equal(t, "red", entries[0].Actor)
	assert.Equal(t, "blue", entries[1].Actor)
	assert.Equal(t, 1, entries[0].Turn)
}

func TestUnknownSideRejected(t *testing.T) {
	s := newSession(t, nil)
	_, err := s.Execute("turn green: tackle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown side")
}
