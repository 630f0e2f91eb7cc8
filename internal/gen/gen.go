// Package gen resolves which historical ruleset (generation) governs a
// battle and answers "was this mechanic/type/ability around yet" questions.
// All branching data lives in tables; callers never hardcode era numbers.
package gen

// Generation identifies one of the nine historical rulesets the engine
// reproduces. The zero value is invalid; use Resolve.
type Generation int

const (
	Gen1 Generation = 1
	Gen2 Generation = 2
	Gen3 Generation = 3
	Gen4 Generation = 4
	Gen5 Generation = 5
	Gen6 Generation = 6
	Gen7 Generation = 7
	Gen8 Generation = 8
	Gen9 Generation = 9

	// Latest is the default era when nothing on the field says otherwise.
	Latest = Gen9
)

// Mechanic names a ruleset feature that appeared (or changed) in a specific era.
type Mechanic string

const (
	MechAbilities           Mechanic = "abilities"
	MechHeldItems           Mechanic = "held_items"
	MechPhysSpecSplit       Mechanic = "physical_special_split"
	MechCrit15x             Mechanic = "critical_hit_15x"
	MechParalysisHalfSpeed  Mechanic = "paralysis_50_speed"
	MechBurnSixteenth       Mechanic = "burn_1_16"
	MechSteelResistsSpooky  Mechanic = "steel_resists_ghost_dark" // Gen 2-5 only, see Until
	MechPermanentWeatherEnd Mechanic = "weather_permanent"
	MechTerrain             Mechanic = "terrain"
	MechFairy               Mechanic = "fairy_type"
)

// mechanicSince maps a mechanic to the generation it first applies in.
var mechanicSince = map[Mechanic]Generation{
	MechAbilities:           Gen3,
	MechHeldItems:           Gen2,
	MechPhysSpecSplit:       Gen4,
	MechCrit15x:             Gen6,
	MechParalysisHalfSpeed:  Gen7,
	MechBurnSixteenth:       Gen7,
	MechSteelResistsSpooky:  Gen2,
	MechPermanentWeatherEnd: Gen6,
	MechTerrain:             Gen6,
	MechFairy:               Gen6,
}

// mechanicUntil marks mechanics that were later removed (inclusive last era).
var mechanicUntil = map[Mechanic]Generation{
	MechSteelResistsSpooky: Gen5,
}

// FieldContext is the minimal view of field state the resolver needs.
// battle.Field satisfies it without gen importing battle.
type FieldContext interface {
	Era() int
}

// Resolve returns the era in effect. An explicit positive override wins,
// then the field's own era, then Latest. Pure function: callers re-consult
// it at each pipeline stage but must snapshot the result for the duration
// of a single action.
func Resolve(field FieldContext, override int) Generation {
	if override >= int(Gen1) && override <= int(Latest) {
		return Generation(override)
	}
	if field != nil {
		if e := field.Era(); e >= int(Gen1) && e <= int(Latest) {
			return Generation(e)
		}
	}
	return Latest
}

// Has reports whether a mechanic is active in generation g.
func (g Generation) Has(m Mechanic) bool {
	since, ok := mechanicSince[m]
	if !ok {
		return true
	}
	if g < since {
		return false
	}
	if until, ok := mechanicUntil[m]; ok && g > until {
		return false
	}
	return true
}

// Between reports min <= g <= max (max 0 means no upper bound).
func (g Generation) Between(min, max Generation) bool {
	if max == 0 {
		return g >= min
	}
	return g >= min && g <= max
}

// typeSince records when each elemental type entered the chart.
var typeSince = map[string]Generation{
	"dark":  Gen2,
	"steel": Gen2,
	"fairy": Gen6,
}

// TypeExists reports whether the named type is part of generation g's chart.
// Types absent from the table are Gen 1 originals.
func (g Generation) TypeExists(typ string) bool {
	since, ok := typeSince[typ]
	if !ok {
		return true
	}
	return g >= since
}
