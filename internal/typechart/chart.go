// Package typechart is the static two-type effectiveness lookup. The table
// is data, not code: the modern chart is the base and every historical
// deviation is an override row keyed by a generation window.
package typechart

import "github.com/urdoggydeewata-star/dexbattle/internal/gen"

// Typeless is the pseudo-type of Struggle; it is neutral against everything.
const Typeless = "typeless"

// base is the Gen 6+ chart. Only non-neutral matchups are listed;
// anything absent is 1x.
var base = map[string]map[string]float64{
	"normal":   {"rock": 0.5, "ghost": 0, "steel": 0.5},
	"fire":     {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 2, "bug": 2, "rock": 0.5, "dragon": 0.5, "steel": 2},
	"water":    {"fire": 2, "water": 0.5, "grass": 0.5, "ground": 2, "rock": 2, "dragon": 0.5},
	"electric": {"water": 2, "electric": 0.5, "grass": 0.5, "ground": 0, "flying": 2, "dragon": 0.5},
	"grass":    {"fire": 0.5, "water": 2, "grass": 0.5, "poison": 0.5, "ground": 2, "flying": 0.5, "bug": 0.5, "rock": 2, "dragon": 0.5, "steel": 0.5},
	"ice":      {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 0.5, "ground": 2, "flying": 2, "dragon": 2, "steel": 0.5},
	"fighting": {"normal": 2, "ice": 2, "poison": 0.5, "flying": 0.5, "psychic": 0.5, "bug": 0.5, "rock": 2, "ghost": 0, "dark": 2, "steel": 2, "fairy": 0.5},
	"poison":   {"grass": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5, "steel": 0, "fairy": 2},
	"ground":   {"fire": 2, "electric": 2, "grass": 0.5, "poison": 2, "flying": 0, "bug": 0.5, "rock": 2, "steel": 2},
	"flying":   {"electric": 0.5, "grass": 2, "fighting": 2, "bug": 2, "rock": 0.5, "steel": 0.5},
	"psychic":  {"fighting": 2, "poison": 2, "psychic": 0.5, "dark": 0, "steel": 0.5},
	"bug":      {"fire": 0.5, "grass": 2, "fighting": 0.5, "poison": 0.5, "flying": 0.5, "psychic": 2, "ghost": 0.5, "dark": 2, "steel": 0.5, "fairy": 0.5},
	"rock":     {"fire": 2, "ice": 2, "fighting": 0.5, "ground": 0.5, "flying": 2, "bug": 2, "steel": 0.5},
	"ghost":    {"normal": 0, "psychic": 2, "ghost": 2, "dark": 0.5},
	"dragon":   {"dragon": 2, "steel": 0.5, "fairy": 0},
	"dark":     {"fighting": 0.5, "psychic": 2, "ghost": 2, "dark": 0.5, "fairy": 0.5},
	"steel":    {"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2, "rock": 2, "steel": 0.5, "fairy": 2},
	"fairy":    {"fire": 0.5, "fighting": 2, "poison": 0.5, "dragon": 2, "dark": 2, "steel": 0.5},
}

// override is one historical deviation from the modern chart.
type override struct {
	atk, def string
	min, max gen.Generation
	mult     float64
}

var overrides = []override{
	// Gen 1 shipped with Ghost unable to touch Psychic. The original keeps
	// the glitch as authentic behavior, so we do too.
	{"ghost", "psychic", gen.Gen1, gen.Gen1, 0},
	{"bug", "poison", gen.Gen1, gen.Gen1, 2},
	{"poison", "bug", gen.Gen1, gen.Gen1, 2},
	{"ice", "fire", gen.Gen1, gen.Gen1, 1},
	// Steel resisted Ghost and Dark from its debut until the Gen 6 rebalance.
	{"ghost", "steel", gen.Gen2, gen.Gen5, 0.5},
	{"dark", "steel", gen.Gen2, gen.Gen5, 0.5},
}

// Single returns the multiplier for one attack type against one defender
// type in generation g. Types that do not exist yet in g are neutral.
func Single(atk, def string, g gen.Generation) float64 {
	if atk == Typeless || def == "" || def == Typeless {
		return 1
	}
	if !g.TypeExists(atk) || !g.TypeExists(def) {
		return 1
	}
	for _, o := range overrides {
		if o.atk == atk && o.def == def && g.Between(o.min, o.max) {
			return o.mult
		}
	}
	if row, ok := base[atk]; ok {
		if m, ok := row[def]; ok {
			return m
		}
	}
	return 1
}

// Effectiveness multiplies the single-type components for a (possibly dual
// typed) defender, yielding one of {0, 0.25, 0.5, 1, 2, 4}.
func Effectiveness(atk string, defenderTypes []string, g gen.Generation) float64 {
	mult := 1.0
	for _, def := range defenderTypes {
		mult *= Single(atk, def, g)
	}
	return mult
}
