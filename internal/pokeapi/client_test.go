package pokeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urdoggydeewata-star/dexbattle/internal/data"
)

const thunderPunchJSON = `{
	"name": "thunder-punch",
	"accuracy": 100,
	"power": 75,
	"pp": 15,
	"priority": 0,
	"effect_chance": 10,
	"type": {"name": "electric"},
	"damage_class": {"name": "physical"},
	"target": {"name": "selected-pokemon"},
	"generation": {"name": "generation-i"},
	"meta": {
		"ailment": {"name": "paralysis"},
		"ailment_chance": 10,
		"crit_rate": 0,
		"drain": 0,
		"flinch_chance": 0,
		"healing": 0,
		"min_hits": null,
		"max_hits": null,
		"min_turns": null,
		"max_turns": null
	},
	"stat_changes": []
}`

const swordsDanceJSON = `{
	"name": "swords-dance",
	"accuracy": null,
	"power": null,
	"pp": 20,
	"priority": 0,
	"effect_chance": null,
	"type": {"name": "normal"},
	"damage_class": {"name": "status"},
	"target": {"name": "user"},
	"generation": {"name": "generation-i"},
	"meta": {
		"ailment": {"name": "none"},
		"ailment_chance": 0
	},
	"stat_changes": [{"change": 2, "stat": {"name": "attack"}}]
}`

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/move", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 2, "results": [
			{"name": "thunder-punch", "url": "/api/v2/move/thunder-punch"},
			{"name": "swords-dance", "url": "/api/v2/move/swords-dance"}
		]}`)
	})
	mux.HandleFunc("/api/v2/move/thunder-punch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, thunderPunchJSON)
	})
	mux.HandleFunc("/api/v2/move/swords-dance", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, swordsDanceJSON)
	})
	mux.HandleFunc("/api/v2/ability", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 1, "results": [{"name": "stench", "url": "/api/v2/ability/stench"}]}`)
	})
	mux.HandleFunc("/api/v2/ability/stench", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name": "stench", "generation": {"name": "generation-iii"}}`)
	})
	mux.HandleFunc("/api/v2/item", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 1, "results": [{"name": "oran-berry", "url": "/api/v2/item/oran-berry"}]}`)
	})
	mux.HandleFunc("/api/v2/item/oran-berry", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name": "oran-berry", "attributes": [{"name": "consumable"}, {"name": "holdable"}]}`)
	})
	return httptest.NewServer(mux)
}

func TestMoveMapping(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()
	BaseURL = srv.URL

	c := NewClient(t.TempDir(), false)

	punch, err := c.FetchMove("thunder-punch")
	require.NoError(t, err)
	assert.Equal(t, "thunder-punch", punch.Name)
	assert.Equal(t, "electric", punch.Type)
	assert.Equal(t, data.Physical, punch.Category)
	assert.Equal(t, 75, punch.Power)
	assert.Equal(t, 100, punch.Accuracy)
	assert.Equal(t, 1, punch.IntroducedIn)
	assert.Equal(t, "par", punch.Effect.Status)
	assert.Equal(t, 10, punch.Effect.StatusChance)

	dance, err := c.FetchMove("swords-dance")
	require.NoError(t, err)
	assert.Equal(t, data.StatusCat, dance.Category)
	assert.Zero(t, dance.Power)
	assert.Zero(t, dance.Accuracy)
	assert.Equal(t, map[string]int{"atk": 2}, dance.Effect.SelfStats)
	assert.Empty(t, dance.Effect.Status)
}

func TestSyncWritesLoadableYAML(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()
	BaseURL = srv.URL

	dir := t.TempDir()
	c := NewClient(dir, true)

	ticks := 0
	require.NoError(t, c.Sync(data.NewRegistry(), func() { ticks++ }))
	assert.Equal(t, 4, ticks)

	reg := data.NewRegistry()
	require.NoError(t, reg.LoadDir(dir))

	punch, ok := reg.Move("thunder-punch")
	require.True(t, ok)
	assert.Equal(t, 75, punch.Power)

	stench, ok := reg.Ability("stench")
	require.True(t, ok)
	assert.Equal(t, 3, stench.IntroducedIn)

	berry, ok := reg.Item("oran-berry")
	require.True(t, ok)
	assert.True(t, berry.Berry)
	assert.True(t, berry.SingleUse)
}

func TestSyncSkipsKnownRecords(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()
	BaseURL = srv.URL

	dir := t.TempDir()
	c := NewClient(dir, false)

	reg := data.NewRegistry()
	reg.PutMove(data.MoveRecord{Name: "thunder-punch", Type: "electric", Power: 75})
	require.NoError(t, c.Sync(reg, nil))

	fresh := data.NewRegistry()
	require.NoError(t, fresh.LoadDir(dir))
	// The hand-tuned record was skipped, so the new registry falls back
	// to its built-in tables for that name.
	_, ok := fresh.Move("thunder-punch")
	assert.False(t, ok)
}
