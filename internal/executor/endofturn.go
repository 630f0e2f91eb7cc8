package executor

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

// EndOfTurn settles the residual phase in the fixed order: weather chip,
// status damage, leech seed, binding damage, held-item healing, drowsiness,
// then the per-combatant condition countdowns and finally the field timers.
// first and second are in this turn's action order.
func (x *Executor) EndOfTurn(first, second *battle.Combatant, log *battle.Log) {
	pairs := [2][2]*battle.Combatant{{first, second}, {second, first}}

	for _, p := range pairs {
		x.weatherChip(p[0], log)
	}
	for _, p := range pairs {
		x.statusResidual(p[0], log)
	}
	for _, p := range pairs {
		x.leechSeed(p[0], p[1], log)
	}
	for _, p := range pairs {
		x.bindingChip(p[0], log)
	}
	for _, p := range pairs {
		x.itemResidual(p[0], log)
	}
	for _, p := range pairs {
		x.tickConditions(p[0], log)
	}

	first.Protected = false
	second.Protected = false
	x.tickField(log)
}

// magicGuarded reports whether the holder ignores indirect damage.
func (x *Executor) magicGuarded(c *battle.Combatant) bool {
	ab, ok := x.cfg.HolderAbility(c)
	return ok && ab.MagicGuard
}

func (x *Executor) chip(c *battle.Combatant, dmg int, log *battle.Log, format string, args ...any) {
	if dmg < 1 {
		dmg = 1
	}
	c.ApplyDamage(dmg)
	log.Add(format, args...)
	if c.Fainted() {
		log.Add("%s fainted!", c.Species)
	}
}

func (x *Executor) weatherChip(c *battle.Combatant, log *battle.Log) {
	if c.Fainted() || x.magicGuarded(c) || x.field == nil {
		return
	}
	switch x.field.EffectiveWeather() {
	case battle.WeatherSand:
		if c.HasType("rock") || c.HasType("ground") || c.HasType("steel") {
			return
		}
		x.chip(c, c.MaxHP/16, log, "%s is buffeted by the sandstorm!", c.Species)
	case battle.WeatherHail:
		if c.HasType("ice") {
			return
		}
		x.chip(c, c.MaxHP/16, log, "%s is buffeted by the hail!", c.Species)
	}
}

func (x *Executor) statusResidual(c *battle.Combatant, log *battle.Log) {
	if c.Fainted() || x.magicGuarded(c) {
		return
	}
	switch c.Status {
	case battle.StatusBurn:
		den := 8
		if x.cfg.Gen.Has(gen.MechBurnSixteenth) {
			den = 16
		}
		x.chip(c, c.MaxHP/den, log, "%s is hurt by its burn!", c.Species)
	case battle.StatusPoison:
		x.chip(c, c.MaxHP/8, log, "%s is hurt by poison!", c.Species)
	case battle.StatusToxic:
		c.ToxicTurns++
		x.chip(c, c.MaxHP*c.ToxicTurns/16, log, "%s is hurt by poison!", c.Species)
	}
}

func (x *Executor) leechSeed(c, opponent *battle.Combatant, log *battle.Log) {
	if c.Fainted() || !c.HasVolatile(battle.VolLeechSeed) || x.magicGuarded(c) {
		return
	}
	drained := c.MaxHP / 8
	if drained < 1 {
		drained = 1
	}
	if drained > c.CurHP {
		drained = c.CurHP
	}
	c.ApplyDamage(drained)
	log.Add("%s's health is sapped by Leech Seed!", c.Species)
	if opponent != nil && !opponent.Fainted() {
		opponent.Heal(drained)
	}
	if c.Fainted() {
		log.Add("%s fainted!", c.Species)
	}
}

func (x *Executor) bindingChip(c *battle.Combatant, log *battle.Log) {
	if c.Fainted() {
		return
	}
	v := c.Volatile(battle.VolTrap)
	if v == nil {
		return
	}
	if !x.magicGuarded(c) {
		x.chip(c, c.MaxHP/8, log, "%s is hurt by %s!", c.Species, title(v.Move))
	}
	if !c.Fainted() && c.TickVolatile(battle.VolTrap) {
		log.Add("%s was freed from %s!", c.Species, title(v.Move))
	}
}

// itemResidual runs the holder's passive healing and the threshold berries.
func (x *Executor) itemResidual(c *battle.Combatant, log *battle.Log) {
	if c.Fainted() {
		return
	}
	item, ok := x.cfg.HolderItem(c)
	if !ok {
		return
	}

	if item.EndTurnHealNum > 0 && item.EndTurnHealDen > 0 && !c.AtFullHP() {
		c.Heal(c.MaxHP * item.EndTurnHealNum / item.EndTurnHealDen)
		log.Add("%s restored a little HP using its %s!", c.Species, title(item.Name))
	}

	x.thresholdBerry(c, log)

	item, ok = x.cfg.HolderItem(c)
	if !ok {
		return
	}
	if len(item.CuresStatus) > 0 && c.Status != battle.StatusNone {
		for _, st := range item.CuresStatus {
			if st == "any" || battle.Status(st) == c.Status {
				c.Status = battle.StatusNone
				c.StatusTurns = 0
				c.ToxicTurns = 0
				log.Add("%s's %s cured its status!", c.Species, title(item.Name))
				if item.SingleUse {
					c.ConsumeItem()
				}
				break
			}
		}
	}
}

// thresholdBerry fires the holder's HP-threshold restorative the moment its
// HP is low enough, whether that is mid-action or during the residual phase.
func (x *Executor) thresholdBerry(c *battle.Combatant, log *battle.Log) {
	item, ok := x.cfg.HolderItem(c)
	if !ok || item.HealThresholdPercent == 0 {
		return
	}
	if c.CurHP*100 > c.MaxHP*item.HealThresholdPercent {
		return
	}
	heal := item.HealFixed
	if item.HealPercent > 0 {
		heal = c.MaxHP * item.HealPercent / 100
	}
	if heal <= 0 {
		return
	}
	c.Heal(heal)
	log.Add("%s restored its health using its %s!", c.Species, title(item.Name))
	if item.SingleUse {
		c.ConsumeItem()
	}
}

// tickConditions counts down the timed volatiles and the slow-start window.
func (x *Executor) tickConditions(c *battle.Combatant, log *battle.Log) {
	if c.Fainted() {
		return
	}

	if c.HasVolatile(battle.VolYawn) && c.TickVolatile(battle.VolYawn) {
		x.fx.TryStatus(nil, c, battle.StatusSleep, x.field, x.rng, log)
	}
	if c.TickVolatile(battle.VolTaunt) {
		log.Add("%s's taunt wore off!", c.Species)
	}
	if v := c.Volatile(battle.VolEncore); v != nil && c.TickVolatile(battle.VolEncore) {
		log.Add("%s's encore ended!", c.Species)
	}
	if v := c.Volatile(battle.VolDisable); v != nil {
		move := v.Move
		if c.TickVolatile(battle.VolDisable) {
			log.Add("%s's %s is disabled no more!", c.Species, title(move))
		}
	}

	if c.SlowStartTurns != nil && *c.SlowStartTurns < 5 {
		*c.SlowStartTurns++
		if *c.SlowStartTurns == 5 {
			log.Add("%s finally got its act together!", c.Species)
		}
	}
}

// tickField counts down weather, terrain and the per-side screens. A turn
// count of -1 means "until replaced" and never expires here.
func (x *Executor) tickField(log *battle.Log) {
	f := x.field
	if f == nil {
		return
	}

	if f.Weather != battle.WeatherNone && f.WeatherTurns > 0 && !f.Weather.Primal() {
		f.WeatherTurns--
		if f.WeatherTurns == 0 {
			log.Add("%s", weatherEndLine(f.Weather))
			f.ClearWeather()
		}
	}
	if f.Terrain != battle.TerrainNone && f.TerrainTurns > 0 {
		f.TerrainTurns--
		if f.TerrainTurns == 0 {
			log.Add("The terrain returned to normal!")
			f.SetTerrain(battle.TerrainNone, 0)
		}
	}

	for _, side := range f.Sides {
		tickScreen(&side.ReflectTurns, "Reflect wore off!", log)
		tickScreen(&side.LightScreenTurns, "Light Screen wore off!", log)
		tickScreen(&side.AuroraVeilTurns, "Aurora Veil wore off!", log)
		tickScreen(&side.TailwindTurns, "The tailwind petered out!", log)
		tickScreen(&side.SafeguardTurns, "Safeguard wore off!", log)
		tickScreen(&side.MistTurns, "The mist faded!", log)
	}
}

func tickScreen(turns *int, line string, log *battle.Log) {
	if *turns <= 0 {
		return
	}
	*turns--
	if *turns == 0 {
		log.Add("%s", line)
	}
}

func weatherEndLine(w battle.Weather) string {
	switch w {
	case battle.WeatherRain:
		return "The rain stopped."
	case battle.WeatherSun:
		return "The sunlight faded."
	case battle.WeatherSand:
		return "The sandstorm subsided."
	case battle.WeatherHail:
		return "The hail stopped."
	case battle.WeatherSnow:
		return "The snow stopped."
	}
	return "The weather returned to normal."
}
