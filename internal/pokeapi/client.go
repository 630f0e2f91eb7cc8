// Package pokeapi fetches move, ability and item data from PokeAPI v2 and
// writes it as registry-loadable YAML. Fetched records only carry the fields
// the API exposes structurally; behavioral hooks that PokeAPI describes in
// prose stay in the built-in tables, so the sync skips names the registry
// already serves unless forced.
package pokeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/urdoggydeewata-star/dexbattle/internal/data"
)

// BaseURL is a var so tests can point the client at a local server.
var BaseURL = "https://pokeapi.co"

type Client struct {
	client  *http.Client
	dataDir string
	force   bool
}

func NewClient(dataDir string, force bool) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		dataDir: dataDir,
		force:   force,
	}
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ListResponse struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// FetchList pages through a resource index (move, ability, item).
func (c *Client) FetchList(endpoint string, limit, offset int) (*ListResponse, error) {
	url := fmt.Sprintf("%s/api/v2/%s?limit=%d&offset=%d", BaseURL, endpoint, limit, offset)
	var list ListResponse
	if err := c.getJSON(url, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) getJSON(url string, target interface{}) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

type moveMeta struct {
	Ailment       NamedResource `json:"ailment"`
	AilmentChance int           `json:"ailment_chance"`
	CritRate      int           `json:"crit_rate"`
	Drain         int           `json:"drain"`
	FlinchChance  int           `json:"flinch_chance"`
	Healing       int           `json:"healing"`
	MinHits       int           `json:"min_hits"`
	MaxHits       int           `json:"max_hits"`
	MinTurns      int           `json:"min_turns"`
	MaxTurns      int           `json:"max_turns"`
}

type statChange struct {
	Change int           `json:"change"`
	Stat   NamedResource `json:"stat"`
}

type moveResponse struct {
	Name         string        `json:"name"`
	Accuracy     *int          `json:"accuracy"`
	Power        *int          `json:"power"`
	PP           int           `json:"pp"`
	Priority     int           `json:"priority"`
	EffectChance *int          `json:"effect_chance"`
	Type         NamedResource `json:"type"`
	DamageClass  NamedResource `json:"damage_class"`
	Target       NamedResource `json:"target"`
	Generation   NamedResource `json:"generation"`
	Meta         *moveMeta     `json:"meta"`
	StatChanges  []statChange  `json:"stat_changes"`
}

// FetchMove retrieves one move and maps it to a registry record.
func (c *Client) FetchMove(name string) (data.MoveRecord, error) {
	var mr moveResponse
	url := fmt.Sprintf("%s/api/v2/move/%s", BaseURL, name)
	if err := c.getJSON(url, &mr); err != nil {
		return data.MoveRecord{}, err
	}
	return mr.record(), nil
}

// ailments maps PokeAPI ailment names onto the status codes the engine uses.
// Ailments that are volatile conditions rather than major statuses are
// handled separately in record().
var ailments = map[string]string{
	"paralysis": "par",
	"burn":      "brn",
	"freeze":    "frz",
	"poison":    "psn",
	"sleep":     "slp",
}

var romanGens = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9,
}

var statNames = map[string]string{
	"attack":          "atk",
	"defense":         "def",
	"special-attack":  "spa",
	"special-defense": "spd",
	"speed":           "spe",
	"accuracy":        "accuracy",
	"evasion":         "evasion",
}

func generationNumber(r NamedResource) int {
	suffix := strings.TrimPrefix(r.Name, "generation-")
	return romanGens[suffix]
}

func (mr moveResponse) record() data.MoveRecord {
	rec := data.MoveRecord{
		Name:         mr.Name,
		Type:         mr.Type.Name,
		Category:     data.Category(mr.DamageClass.Name),
		PP:           mr.PP,
		Priority:     mr.Priority,
		IntroducedIn: generationNumber(mr.Generation),
	}
	if mr.Power != nil {
		rec.Power = *mr.Power
	}
	if mr.Accuracy != nil {
		rec.Accuracy = *mr.Accuracy
	}

	chance := 0
	if mr.EffectChance != nil {
		chance = *mr.EffectChance
	}

	if m := mr.Meta; m != nil {
		rec.HighCrit = m.CritRate > 0
		rec.Effect.FlinchChance = m.FlinchChance
		if m.Drain > 0 {
			rec.Effect.DrainPercent = m.Drain
		}
		if m.Drain < 0 {
			rec.Effect.RecoilPercent = -m.Drain
		}
		if m.Healing > 0 {
			rec.Effect.HealPercent = m.Healing
		}
		if m.MaxHits > 1 {
			rec.Effect.HitsMin = m.MinHits
			rec.Effect.HitsMax = m.MaxHits
		}

		switch m.Ailment.Name {
		case "confusion":
			rec.Effect.Volatile = "confusion"
			rec.Effect.VolatileChance = m.AilmentChance
			rec.Effect.VolatileMin = 2
			rec.Effect.VolatileMax = 5
		case "trap":
			rec.Effect.Trap = true
		case "leech-seed":
			rec.Effect.LeechSeed = true
		case "bad-poison":
			rec.Effect.Status = "tox"
			rec.Effect.StatusChance = m.AilmentChance
		default:
			if code, ok := ailments[m.Ailment.Name]; ok {
				rec.Effect.Status = code
				rec.Effect.StatusChance = m.AilmentChance
			}
		}
		// Pure status moves carry their ailment unconditionally.
		if rec.Effect.Status != "" && rec.Effect.StatusChance == 0 {
			rec.Effect.StatusChance = 100
		}
	}

	if len(mr.StatChanges) > 0 {
		changes := make(map[string]int, len(mr.StatChanges))
		for _, sc := range mr.StatChanges {
			if stat, ok := statNames[sc.Stat.Name]; ok {
				changes[stat] = sc.Change
			}
		}
		if len(changes) > 0 {
			if mr.Target.Name == "user" {
				rec.Effect.SelfStats = changes
				rec.Effect.SelfStatChance = chance
			} else {
				rec.Effect.TargetStats = changes
				rec.Effect.TargetStatChance = chance
			}
		}
	}

	return rec
}

type abilityResponse struct {
	Name       string        `json:"name"`
	Generation NamedResource `json:"generation"`
}

// FetchAbility retrieves an ability. PokeAPI describes ability behavior in
// prose only, so the record carries just name and era; hooks come from the
// built-in tables.
func (c *Client) FetchAbility(name string) (data.AbilityRecord, error) {
	var ar abilityResponse
	url := fmt.Sprintf("%s/api/v2/ability/%s", BaseURL, name)
	if err := c.getJSON(url, &ar); err != nil {
		return data.AbilityRecord{}, err
	}
	return data.AbilityRecord{
		Name:         ar.Name,
		IntroducedIn: generationNumber(ar.Generation),
	}, nil
}

type itemResponse struct {
	Name       string          `json:"name"`
	Attributes []NamedResource `json:"attributes"`
}

// FetchItem retrieves a held item. Like abilities, most item behavior is
// prose; the berry and single-use flags are the structural parts.
func (c *Client) FetchItem(name string) (data.ItemRecord, error) {
	var ir itemResponse
	url := fmt.Sprintf("%s/api/v2/item/%s", BaseURL, name)
	if err := c.getJSON(url, &ir); err != nil {
		return data.ItemRecord{}, err
	}
	rec := data.ItemRecord{Name: ir.Name}
	for _, attr := range ir.Attributes {
		if attr.Name == "consumable" {
			rec.SingleUse = true
		}
	}
	if strings.HasSuffix(ir.Name, "-berry") {
		rec.Berry = true
		rec.SingleUse = true
	}
	return rec, nil
}

// Sync downloads every move, ability and item and writes the three YAML
// files under the client's data directory. Names already served by known
// are skipped unless the client was built with force, so hand-tuned and
// built-in records keep their behavioral fields. progress, when non-nil, is
// called once per processed name.
func (c *Client) Sync(known data.Provider, progress func()) error {
	if err := c.syncMoves(known, progress); err != nil {
		return err
	}
	if err := c.syncAbilities(known, progress); err != nil {
		return err
	}
	return c.syncItems(known, progress)
}

// Total reports how many names a Sync would process, for progress sizing.
func (c *Client) Total() (int, error) {
	total := 0
	for _, endpoint := range []string{"move", "ability", "item"} {
		list, err := c.FetchList(endpoint, 1, 0)
		if err != nil {
			return 0, err
		}
		total += list.Count
	}
	return total, nil
}

const pageSize = 500

func (c *Client) syncMoves(known data.Provider, progress func()) error {
	var records []data.MoveRecord
	err := c.eachListed("move", func(name string) error {
		if progress != nil {
			defer progress()
		}
		if _, ok := known.Move(name); ok && !c.force {
			return nil
		}
		rec, err := c.FetchMove(name)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return c.writeYAML("moves.yaml", struct {
		Moves []data.MoveRecord `yaml:"moves"`
	}{records})
}

func (c *Client) syncAbilities(known data.Provider, progress func()) error {
	var records []data.AbilityRecord
	err := c.eachListed("ability", func(name string) error {
		if progress != nil {
			defer progress()
		}
		if _, ok := known.Ability(name); ok && !c.force {
			return nil
		}
		rec, err := c.FetchAbility(name)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return c.writeYAML("abilities.yaml", struct {
		Abilities []data.AbilityRecord `yaml:"abilities"`
	}{records})
}

func (c *Client) syncItems(known data.Provider, progress func()) error {
	var records []data.ItemRecord
	err := c.eachListed("item", func(name string) error {
		if progress != nil {
			defer progress()
		}
		if _, ok := known.Item(name); ok && !c.force {
			return nil
		}
		rec, err := c.FetchItem(name)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return c.writeYAML("items.yaml", struct {
		Items []data.ItemRecord `yaml:"items"`
	}{records})
}

func (c *Client) eachListed(endpoint string, fn func(name string) error) error {
	offset := 0
	for {
		list, err := c.FetchList(endpoint, pageSize, offset)
		if err != nil {
			return err
		}
		for _, res := range list.Results {
			if err := fn(res.Name); err != nil {
				return err
			}
			// Gentle on the public API.
			time.Sleep(50 * time.Millisecond)
		}
		offset += len(list.Results)
		if offset >= list.Count || len(list.Results) == 0 {
			return nil
		}
	}
}

func (c *Client) writeYAML(filename string, payload interface{}) error {
	if err := os.MkdirAll(c.dataDir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(c.dataDir, filename))
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	return encoder.Encode(payload)
}
