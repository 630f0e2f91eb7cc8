// Package damage computes hit damage through the generation-faithful
// formula chains: the coarse 217-255 variance of the first two eras, the
// Gen 3-4 integer chain, and the modern 4096 fixed-point pipeline with its
// round-half-down steps. The engine never mutates combatants; it returns a
// number for the executor to apply.
package damage

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/rules"
	"github.com/urdoggydeewata-star/dexbattle/internal/stats"
)

// Engine resolves damage for one battle configuration.
type Engine struct {
	cfg   *config.Battle
	stats *stats.Engine
}

// NewEngine returns a damage engine sharing the battle's stat engine.
func NewEngine(cfg *config.Battle, st *stats.Engine) *Engine {
	return &Engine{cfg: cfg, stats: st}
}

// Input is one hit to price. Move is already era-resolved, Power has the
// variable-power rule applied, and TypeMult carries the full dual-type
// effectiveness product.
type Input struct {
	User, Target *battle.Combatant
	Move         data.MoveRecord
	Power        int
	Field        *battle.Field
	TypeMult     float64
	Crit         bool
}

// WeatherBlocks reports whether the primal weather evaporates the move
// entirely: fire under heavy rain, water under extremely harsh sunlight.
func WeatherBlocks(move data.MoveRecord, field *battle.Field) bool {
	if field == nil {
		return false
	}
	switch field.EffectiveWeather() {
	case battle.WeatherHeavyRain:
		return move.Type == "fire"
	case battle.WeatherHarshSun:
		return move.Type == "water"
	}
	return false
}

// Compute prices one hit, consuming exactly one variance draw. The result
// is at least 1 for any effectiveness above zero.
func (e *Engine) Compute(in Input, rng *battle.RNG) int {
	var dmg int
	switch {
	case e.cfg.Gen <= gen.Gen2:
		dmg = e.legacy(in, rng)
	case e.cfg.Gen <= gen.Gen4:
		dmg = e.middle(in, rng)
	default:
		dmg = e.modern(in, rng)
	}
	if dmg < 1 && in.TypeMult > 0 {
		dmg = 1
	}
	return dmg
}

// attackDefense picks and prices the attacking and defending stats,
// honoring the crit stage rules (a crit ignores the attacker's drops and
// the defender's boosts) and stage-blind combatants.
func (e *Engine) attackDefense(in Input) (atk, def int) {
	atkStat, defStat := battle.StatAttack, battle.StatDefense
	if in.Move.Category == data.Special {
		atkStat, defStat = battle.StatSpAtk, battle.StatSpDef
	}

	userBlind := e.ignoresStages(in.Target) // defender blind to attacker boosts
	targetBlind := e.ignoresStages(in.User) // attacker blind to defender boosts

	atk = e.stats.Effective(in.User, atkStat, in.Field)
	if unstaged := e.stats.EffectiveUnstaged(in.User, atkStat, in.Field); userBlind || (in.Crit && unstaged > atk) {
		atk = unstaged
	}
	def = e.stats.Effective(in.Target, defStat, in.Field)
	if unstaged := e.stats.EffectiveUnstaged(in.Target, defStat, in.Field); targetBlind || (in.Crit && unstaged < def) {
		def = unstaged
	}
	if def < 1 {
		def = 1
	}
	return atk, def
}

func (e *Engine) ignoresStages(c *battle.Combatant) bool {
	ab, ok := e.cfg.HolderAbility(c)
	return ok && ab.IgnoresStages
}

// legacy is the Gen 1-2 chain. A Gen 1 crit doubles the level and reads
// unmodified stats; Gen 2 doubles the damage instead.
func (e *Engine) legacy(in Input, rng *battle.RNG) int {
	level := in.User.Level
	var atk, def int
	if e.cfg.Gen == gen.Gen1 && in.Crit {
		level *= 2
		atk = e.stats.EffectiveUnstaged(in.User, attackStatFor(in.Move), in.Field)
		def = e.stats.EffectiveUnstaged(in.Target, defenseStatFor(in.Move), in.Field)
	} else {
		atk, def = e.attackDefense(in)
	}
	if def < 1 {
		def = 1
	}
	if in.Move.Category == data.Physical && in.User.Status == battle.StatusBurn {
		atk /= 2
		if atk < 1 {
			atk = 1
		}
	}
	// The early screens double the defending stat instead of halving the
	// damage; a crit reads past them.
	if !in.Crit && e.screenUp(in) {
		def *= 2
	}

	dmg := ((2*level/5+2)*in.Power*atk/def)/50 + 2
	if e.cfg.Gen == gen.Gen2 && in.Crit {
		dmg *= 2
	}
	if e.cfg.Gen == gen.Gen2 {
		dmg = e.applyPowerMods(dmg, in)
	}
	if in.User.HasType(in.Move.Type) {
		dmg = dmg * 3 / 2
	}
	dmg = int(float64(dmg) * in.TypeMult)
	if dmg <= 0 {
		return 0
	}
	return dmg * rng.VarianceLegacy() / 255
}

// middle is the Gen 3-4 chain: screens and weather before the +2, crit and
// items after, STAB and type last, then the 85-100 variance.
func (e *Engine) middle(in Input, rng *battle.RNG) int {
	atk, def := e.attackDefense(in)
	base := (2*in.User.Level/5 + 2) * in.Power * atk / def / 50

	if in.Move.Category == data.Physical && e.burnApplies(in) {
		base /= 2
	}
	if !in.Crit {
		base = e.applyScreens(base, in)
	}
	base = e.applyWeather(base, in)
	base += 2

	if in.Crit {
		num, den := e.critMultiplier()
		base = base * num / den
	}
	base = e.applyPowerMods(base, in)
	if in.User.HasType(in.Move.Type) {
		base = base * e.stabNum(in) / 4
	}
	base = int(float64(base) * in.TypeMult)
	base = e.applyDefenseMods(base, in)

	dmg := base * rng.Variance() / 100
	return dmg
}

// modern is the Gen 5+ chain with the 4096 fixed-point final modifier and
// its round-half-down steps.
func (e *Engine) modern(in Input, rng *battle.RNG) int {
	atk, def := e.attackDefense(in)
	base := (2*in.User.Level/5+2)*in.Power*atk/def/50 + 2

	base = e.applyWeather(base, in)

	if in.Crit {
		num, den := e.critMultiplier()
		base = pokeRound(base * num * 4096 / den)
	}

	base = base * rng.Variance() / 100

	if in.User.HasType(in.Move.Type) {
		base = pokeRound(base * e.stabNum(in) * 4096 / 4)
	}
	base = int(float64(base) * in.TypeMult)

	if in.Move.Category == data.Physical && e.burnApplies(in) {
		base /= 2
	}

	mod := 4096
	if !in.Crit {
		mod = e.chainScreens(mod, in)
	}
	mod = e.chainAuras(mod, in)
	mod = e.chainPowerMods(mod, in)
	mod = e.chainDefenseMods(mod, in)
	return applyMod(base, mod)
}

// pokeRound rounds a 4096 fixed-point value half down, the rounding the
// modern formula uses between multiplier steps.
func pokeRound(v int) int {
	q, r := v/4096, v%4096
	if r > 2048 {
		q++
	}
	return q
}

// applyMod multiplies damage by a 4096-scaled modifier, half-down rounded.
func applyMod(dmg, mod int) int {
	return pokeRound(dmg * mod)
}

// chain folds one num/den modifier into an accumulated 4096 modifier.
func chain(mod, num, den int) int {
	step := num * 4096 / den
	return (mod*step + 2048) >> 12
}

// stabNum is the same-type bonus numerator over a denominator of 4: the
// plain bonus is 6 (1.5x), terastallizing into one of the original types
// raises it to 8 (2x), and adaptability lifts each tier one step further,
// topping out at 9 (2.25x).
func (e *Engine) stabNum(in Input) int {
	adapt := false
	if ab, ok := e.cfg.HolderAbility(in.User); ok && ab.Name == "adaptability" {
		adapt = true
	}
	if in.User.TeraType != "" && in.User.TeraType == in.Move.Type && hasOriginalType(in.User, in.Move.Type) {
		if adapt {
			return 9
		}
		return 8
	}
	if adapt {
		return 8
	}
	return 6
}

// hasOriginalType checks the pre-tera type list only.
func hasOriginalType(c *battle.Combatant, t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// burnApplies reports whether the burn attack penalty is live: guts lifts
// it, and facade shrugs it off from Gen 6 on.
func (e *Engine) burnApplies(in Input) bool {
	if in.User.Status != battle.StatusBurn {
		return false
	}
	if ab, ok := e.cfg.HolderAbility(in.User); ok && ab.Name == "guts" {
		return false
	}
	if in.Move.VariablePower == "facade" && e.cfg.Gen >= gen.Gen6 {
		return false
	}
	return true
}

func (e *Engine) screenUp(in Input) bool {
	if in.Field == nil {
		return false
	}
	side := in.Field.Side(in.Target.SideIndex)
	if side.AuroraVeilTurns > 0 {
		return true
	}
	if in.Move.Category == data.Physical {
		return side.ReflectTurns > 0
	}
	return side.LightScreenTurns > 0
}

func (e *Engine) applyScreens(dmg int, in Input) int {
	if e.screenUp(in) {
		return dmg / 2
	}
	return dmg
}

func (e *Engine) chainScreens(mod int, in Input) int {
	if e.screenUp(in) {
		return chain(mod, 1, 2)
	}
	return mod
}

// weatherFactor is the shared rain/sun fire-water seesaw.
func (e *Engine) applyWeather(dmg int, in Input) int {
	if in.Field == nil {
		return dmg
	}
	switch in.Field.EffectiveWeather() {
	case battle.WeatherRain, battle.WeatherHeavyRain:
		if in.Move.Type == "water" {
			return dmg * 3 / 2
		}
		if in.Move.Type == "fire" {
			return dmg / 2
		}
	case battle.WeatherSun, battle.WeatherHarshSun:
		if in.Move.Type == "fire" {
			return dmg * 3 / 2
		}
		if in.Move.Type == "water" {
			return dmg / 2
		}
	}
	return dmg
}

func (e *Engine) chainAuras(mod int, in Input) int {
	if in.Field == nil {
		return mod
	}
	if (in.Move.Type == "dark" && in.Field.AuraActive("dark-aura")) ||
		(in.Move.Type == "fairy" && in.Field.AuraActive("fairy-aura")) {
		return chain(mod, 5448, 4096)
	}
	return mod
}

// powerModsFor collects the attacker's active power modifiers from its
// ability and item.
func (e *Engine) powerModsFor(in Input) []data.PowerMod {
	ctx := rules.Context(in.User, in.Target, in.Move, in.Power, in.Field, in.TypeMult)
	var active []data.PowerMod
	collect := func(mods []data.PowerMod) {
		for _, m := range mods {
			if m.MoveType != "" && m.MoveType != in.Move.Type {
				continue
			}
			if !e.cfg.Applies(m.Condition, ctx) {
				continue
			}
			active = append(active, m)
		}
	}
	if ab, ok := e.cfg.HolderAbility(in.User); ok {
		collect(ab.PowerMods)
		if ab.TintedLens && in.TypeMult > 0 && in.TypeMult < 1 {
			active = append(active, data.PowerMod{Num: 2, Den: 1})
		}
		if ab.CritDamageBonus && in.Crit {
			active = append(active, data.PowerMod{Num: 3, Den: 2})
		}
	}
	if item, ok := e.cfg.HolderItem(in.User); ok {
		collect(item.PowerMods)
	}
	return active
}

// defenseModsFor collects the defender's damage-taken modifiers, unless the
// attacker punches through them.
func (e *Engine) defenseModsFor(in Input) []data.PowerMod {
	if ab, ok := e.cfg.HolderAbility(in.User); ok && ab.IgnoresBlockers {
		return nil
	}
	tb, ok := e.cfg.HolderAbility(in.Target)
	if !ok {
		return nil
	}
	ctx := rules.Context(in.User, in.Target, in.Move, in.Power, in.Field, in.TypeMult)
	var active []data.PowerMod
	for _, m := range tb.DefenseMods {
		if m.MoveType != "" && m.MoveType != in.Move.Type {
			continue
		}
		if !e.cfg.Applies(m.Condition, ctx) {
			continue
		}
		active = append(active, m)
	}
	return active
}

func (e *Engine) applyPowerMods(dmg int, in Input) int {
	for _, m := range e.powerModsFor(in) {
		dmg = dmg * m.Num / m.Den
	}
	return dmg
}

func (e *Engine) applyDefenseMods(dmg int, in Input) int {
	for _, m := range e.defenseModsFor(in) {
		dmg = dmg * m.Num / m.Den
	}
	return dmg
}

func (e *Engine) chainPowerMods(mod int, in Input) int {
	for _, m := range e.powerModsFor(in) {
		mod = chain(mod, m.Num, m.Den)
	}
	return mod
}

func (e *Engine) chainDefenseMods(mod int, in Input) int {
	for _, m := range e.defenseModsFor(in) {
		mod = chain(mod, m.Num, m.Den)
	}
	return mod
}

func attackStatFor(m data.MoveRecord) battle.Stat {
	if m.Category == data.Special {
		return battle.StatSpAtk
	}
	return battle.StatAttack
}

func defenseStatFor(m data.MoveRecord) battle.Stat {
	if m.Category == data.Special {
		return battle.StatSpDef
	}
	return battle.StatDefense
}
