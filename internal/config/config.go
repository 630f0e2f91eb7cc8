// Package config assembles the per-battle configuration object: the
// resolved generation, the record provider, and the compiled condition
// programs. Engines receive it explicitly instead of reading globals, so
// two battles with different settings can run side by side.
package config

import (
	"fmt"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/rules"
)

// Settings are the user-facing knobs, typically bound from flags and the
// config file before a battle is set up.
type Settings struct {
	Generation int      `mapstructure:"generation"`
	Seed       int64    `mapstructure:"seed"`
	DataDirs   []string `mapstructure:"data_dirs"`
	Verbose    bool     `mapstructure:"verbose"`
}

// Battle is the immutable configuration shared by every engine in one
// battle. Condition formulas are compiled here, once, and served from a
// cache afterwards.
type Battle struct {
	Gen  gen.Generation
	Data data.Provider

	eval     *rules.Evaluator
	programs map[string]*rules.Program
	never    *rules.Program
}

// New builds a battle configuration for the given generation. A zero or
// negative generation resolves to the latest supported one.
func New(generation int, provider data.Provider) (*Battle, error) {
	if provider == nil {
		provider = data.NewRegistry()
	}
	g := gen.Generation(generation)
	if g <= 0 || g > gen.Latest {
		g = gen.Latest
	}
	ev, err := rules.NewEvaluator()
	if err != nil {
		return nil, fmt.Errorf("setting up rules evaluator: %w", err)
	}
	never, err := ev.Compile("false")
	if err != nil {
		return nil, err
	}
	return &Battle{
		Gen:      g,
		Data:     provider,
		eval:     ev,
		programs: make(map[string]*rules.Program),
		never:    never,
	}, nil
}

// Program returns the compiled program for formula, compiling and caching
// it on first use. A formula that fails to compile yields a program that is
// never true, so a bad record disables its own modifier and nothing else.
func (b *Battle) Program(formula string) *rules.Program {
	if formula == "" {
		return nil
	}
	if p, ok := b.programs[formula]; ok {
		return p
	}
	p, err := b.eval.Compile(formula)
	if err != nil {
		p = b.never
	}
	b.programs[formula] = p
	return p
}

// Applies reports whether the modifier guarded by formula is active in the
// given evaluation context.
func (b *Battle) Applies(formula string, ctx map[string]any) bool {
	return b.Program(formula).Bool(ctx)
}

// Move resolves a move record for this battle's generation, already folded
// through its era overrides. Unknown moves fall back to the default record
// and banned reports era unavailability.
func (b *Battle) Move(name string) (rec data.MoveRecord, banned bool) {
	m, ok := b.Data.Move(name)
	if !ok {
		m = data.DefaultMove
		m.Name = data.Normalize(name)
	}
	rec, banned = m.ForGen(int(b.Gen))
	rec.Category = rec.CategoryIn(int(b.Gen))
	return rec, banned
}

// Ability resolves an ability record, empty when unknown or when the
// ability does not exist yet in this generation. Abilities as a mechanic
// start in Gen 3.
func (b *Battle) Ability(name string) (data.AbilityRecord, bool) {
	if name == "" || !b.Gen.Has(gen.MechAbilities) {
		return data.AbilityRecord{}, false
	}
	a, ok := b.Data.Ability(name)
	if !ok {
		return data.AbilityRecord{}, false
	}
	intro := a.IntroducedIn
	if intro == 0 {
		intro = 3
	}
	if int(b.Gen) < intro {
		return data.AbilityRecord{}, false
	}
	return a, true
}

// HolderAbility resolves the combatant's effective ability record through
// its per-combatant cache. The cache is invalidated whenever the ability
// changes, so skill-swap style effects stay correct.
func (b *Battle) HolderAbility(c *battle.Combatant) (data.AbilityRecord, bool) {
	if c == nil {
		return data.AbilityRecord{}, false
	}
	name := c.EffectiveAbility()
	if name == "" {
		return data.AbilityRecord{}, false
	}
	key := "ability:" + name
	if v, ok := c.CacheGet(key); ok {
		rec, found := v.(data.AbilityRecord)
		return rec, found
	}
	rec, ok := b.Ability(name)
	if !ok {
		c.CachePut(key, false)
		return data.AbilityRecord{}, false
	}
	c.CachePut(key, rec)
	return rec, true
}

// HolderItem resolves the combatant's held-item record, already filtered
// through the holder gates: species-locked items and the evolution gate
// are inert on the wrong holder.
func (b *Battle) HolderItem(c *battle.Combatant) (data.ItemRecord, bool) {
	if c == nil || c.Item == "" {
		return data.ItemRecord{}, false
	}
	key := "item:" + c.Item
	if v, ok := c.CacheGet(key); ok {
		rec, found := v.(data.ItemRecord)
		return rec, found
	}
	rec, ok := b.Item(c.Item)
	if ok && len(rec.SpeciesOnly) > 0 {
		ok = false
		species := data.Normalize(c.Species)
		for _, s := range rec.SpeciesOnly {
			if s == species {
				ok = true
				break
			}
		}
	}
	if ok && rec.EvolutionGate && !c.NotFullyEvolved {
		ok = false
	}
	if !ok {
		c.CachePut(key, false)
		return data.ItemRecord{}, false
	}
	c.CachePut(key, rec)
	return rec, true
}

// Item resolves a held-item record, empty when unknown or not yet
// introduced. Held items as a mechanic start in Gen 2.
func (b *Battle) Item(name string) (data.ItemRecord, bool) {
	if name == "" || !b.Gen.Has(gen.MechHeldItems) {
		return data.ItemRecord{}, false
	}
	i, ok := b.Data.Item(name)
	if !ok {
		return data.ItemRecord{}, false
	}
	intro := i.IntroducedIn
	if intro == 0 {
		intro = 2
	}
	if int(b.Gen) < intro {
		return data.ItemRecord{}, false
	}
	return i, true
}
