// Package roster loads battle rosters from YAML and materializes them into
// combatants ready for the executor.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

// Entry is one roster slot as written in the YAML file. Stat keys follow
// the engine's short names (hp/atk/def/spa/spd/spe); a single "special"
// key may replace spa and spd for early-era rosters.
type Entry struct {
	Species string         `yaml:"species"`
	Side    string         `yaml:"side"`
	Level   int            `yaml:"level"`
	Types   []string       `yaml:"types"`
	Stats   map[string]int `yaml:"stats"`
	Moves   []string       `yaml:"moves,omitempty"`

	Ability         string  `yaml:"ability,omitempty"`
	Item            string  `yaml:"item,omitempty"`
	Gender          string  `yaml:"gender,omitempty"`
	WeightKg        float64 `yaml:"weight_kg,omitempty"`
	Friendship      int     `yaml:"friendship,omitempty"`
	NotFullyEvolved bool    `yaml:"not_fully_evolved,omitempty"`

	// TeraType enters the battle already terastallized into that type.
	// Only the ninth generation honors it.
	TeraType string `yaml:"tera_type,omitempty"`
}

// Roster is a parsed roster file.
type Roster struct {
	Combatants []Entry `yaml:"combatants"`
}

// Load reads and decodes a roster YAML file.
func Load(path string) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	var r Roster
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("failed to parse roster %s: %w", path, err)
	}
	if len(r.Combatants) == 0 {
		return nil, fmt.Errorf("roster %s has no combatants", path)
	}
	return &r, nil
}

// Materialize builds one combatant per entry under generation g, keyed by
// side name. Side indexes are assigned in first-appearance order.
func (r *Roster) Materialize(g gen.Generation) (map[string]*battle.Combatant, error) {
	out := make(map[string]*battle.Combatant, len(r.Combatants))
	sideIdx := map[string]int{}

	for i, e := range r.Combatants {
		c, err := e.Combatant(g)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		side := data.Normalize(e.Side)
		if side == "" {
			return nil, fmt.Errorf("roster entry %d (%s): missing side", i, e.Species)
		}
		if _, ok := out[side]; ok {
			return nil, fmt.Errorf("duplicate side %q in roster", side)
		}
		if _, ok := sideIdx[side]; !ok {
			sideIdx[side] = len(sideIdx)
		}
		c.SideIndex = sideIdx[side]
		out[side] = c
	}
	return out, nil
}

// Combatant materializes a single entry. Before the special stat split the
// spa and spd slots mirror one another.
func (e Entry) Combatant(g gen.Generation) (*battle.Combatant, error) {
	if e.Level < 1 || e.Level > 100 {
		return nil, fmt.Errorf("%s: level %d out of range", e.Species, e.Level)
	}
	if len(e.Types) == 0 {
		return nil, fmt.Errorf("%s: no types", e.Species)
	}
	if e.Stats["hp"] <= 0 {
		return nil, fmt.Errorf("%s: hp stat missing", e.Species)
	}

	stats := map[battle.Stat]int{
		battle.StatHP:      e.Stats["hp"],
		battle.StatAttack:  e.Stats["atk"],
		battle.StatDefense: e.Stats["def"],
		battle.StatSpAtk:   e.Stats["spa"],
		battle.StatSpDef:   e.Stats["spd"],
		battle.StatSpeed:   e.Stats["spe"],
	}
	if sp, ok := e.Stats["special"]; ok {
		stats[battle.StatSpAtk] = sp
		stats[battle.StatSpDef] = sp
	}
	if g == gen.Gen1 {
		stats[battle.StatSpDef] = stats[battle.StatSpAtk]
	}
	for _, s := range []battle.Stat{battle.StatAttack, battle.StatDefense, battle.StatSpAtk, battle.StatSpDef, battle.StatSpeed} {
		if stats[s] <= 0 {
			return nil, fmt.Errorf("%s: stat %s missing", e.Species, s)
		}
	}

	types := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		types = append(types, data.Normalize(t))
	}

	c := battle.NewCombatant(data.Normalize(e.Species), e.Level, types, stats)
	c.Ability = data.Normalize(e.Ability)
	c.Item = data.Normalize(e.Item)
	c.Gender = e.Gender
	c.NotFullyEvolved = e.NotFullyEvolved
	if g >= gen.Gen9 {
		c.TeraType = data.Normalize(e.TeraType)
	}
	if e.WeightKg > 0 {
		c.WeightKg = e.WeightKg
	}
	if e.Friendship > 0 {
		c.Friendship = e.Friendship
	}
	return c, nil
}
