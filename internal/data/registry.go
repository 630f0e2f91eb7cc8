package data

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Provider serves move, ability and item records by normalized name.
type Provider interface {
	Move(name string) (MoveRecord, bool)
	Ability(name string) (AbilityRecord, bool)
	Item(name string) (ItemRecord, bool)
}

// DefaultMove is returned by the engine when a move lookup fails: a plain
// 40-power physical hit so an unknown move still resolves instead of
// erroring.
var DefaultMove = MoveRecord{
	Name: "pound", Type: "normal", Category: Physical,
	Power: 40, Accuracy: 100, PP: 35, Contact: true,
}

// Registry is the in-memory record store. It starts from the built-in
// baseline tables and can be extended from YAML data directories.
type Registry struct {
	moves     map[string]MoveRecord
	abilities map[string]AbilityRecord
	items     map[string]ItemRecord
}

// NewRegistry returns a registry seeded with the built-in tables.
func NewRegistry() *Registry {
	r := &Registry{
		moves:     make(map[string]MoveRecord, len(defaultMoves)),
		abilities: make(map[string]AbilityRecord, len(defaultAbilities)),
		items:     make(map[string]ItemRecord, len(defaultItems)),
	}
	for k, v := range defaultMoves {
		r.moves[k] = v
	}
	for k, v := range defaultAbilities {
		r.abilities[k] = v
	}
	for k, v := range defaultItems {
		r.items[k] = v
	}
	return r
}

// Move looks up a move record by name. Lookup is case- and
// diacritic-insensitive.
func (r *Registry) Move(name string) (MoveRecord, bool) {
	m, ok := r.moves[Normalize(name)]
	return m, ok
}

// Ability looks up an ability record by name.
func (r *Registry) Ability(name string) (AbilityRecord, bool) {
	a, ok := r.abilities[Normalize(name)]
	return a, ok
}

// Item looks up an item record by name.
func (r *Registry) Item(name string) (ItemRecord, bool) {
	i, ok := r.items[Normalize(name)]
	return i, ok
}

// PutMove registers or replaces a move record.
func (r *Registry) PutMove(m MoveRecord) {
	r.moves[Normalize(m.Name)] = m
}

// PutAbility registers or replaces an ability record.
func (r *Registry) PutAbility(a AbilityRecord) {
	r.abilities[Normalize(a.Name)] = a
}

// PutItem registers or replaces an item record.
func (r *Registry) PutItem(i ItemRecord) {
	r.items[Normalize(i.Name)] = i
}

// moveFile mirrors the on-disk YAML layout: one file holds many records.
type moveFile struct {
	Moves []MoveRecord `yaml:"moves"`
}

type abilityFile struct {
	Abilities []AbilityRecord `yaml:"abilities"`
}

type itemFile struct {
	Items []ItemRecord `yaml:"items"`
}

// LoadDir merges every moves.yaml, abilities.yaml and items.yaml found in
// the given data directories into the registry. Later directories win, so
// callers pass them from lowest to highest precedence.
func (r *Registry) LoadDir(dataDirs ...string) error {
	for _, dir := range dataDirs {
		var mf moveFile
		if err := loadYAML(filepath.Join(dir, "moves.yaml"), &mf); err != nil {
			return err
		}
		for _, m := range mf.Moves {
			r.PutMove(m)
		}

		var af abilityFile
		if err := loadYAML(filepath.Join(dir, "abilities.yaml"), &af); err != nil {
			return err
		}
		for _, a := range af.Abilities {
			r.PutAbility(a)
		}

		var inf itemFile
		if err := loadYAML(filepath.Join(dir, "items.yaml"), &inf); err != nil {
			return err
		}
		for _, i := range inf.Items {
			r.PutItem(i)
		}
	}
	return nil
}

func loadYAML(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not open data file %s: %w", path, err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(target); err != nil {
		return fmt.Errorf("failed to decode yaml data file %s: %w", path, err)
	}
	return nil
}
