// Package react fires the event-driven ability and item hooks: contact
// punishment, damage responses, faint triggers and switch-in presence
// effects. Hooks run after the triggering event fully resolves and append
// their own narrative.
package react

import (
	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/effects"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
	"github.com/urdoggydeewata-star/dexbattle/internal/typechart"
)

// Engine drives reactive hooks for one battle.
type Engine struct {
	cfg *config.Battle
	fx  *effects.Applier
}

// NewEngine returns a reaction engine sharing the battle's effect applier.
func NewEngine(cfg *config.Battle, fx *effects.Applier) *Engine {
	return &Engine{cfg: cfg, fx: fx}
}

// OnContact fires the defender's contact punishers against the attacker.
// Called once per contact hit that connected, after its damage landed.
func (e *Engine) OnContact(attacker, defender *battle.Combatant, field *battle.Field, rng *battle.RNG, log *battle.Log) {
	if attacker.Fainted() {
		return
	}
	if ab, ok := e.cfg.HolderAbility(defender); ok && ab.OnContact != nil {
		e.fireContact(ab.OnContact, attacker, defender, field, rng, log)
	}
	if item, ok := e.cfg.HolderItem(defender); ok && item.ContactDamage > 0 && !attacker.Fainted() {
		dmg := attacker.MaxHP / item.ContactDamage
		if dmg < 1 {
			dmg = 1
		}
		attacker.ApplyDamage(dmg)
		log.Add("%s was hurt by %s's %s!", attacker.Species, defender.Species, itemTitle(item.Name))
	}
}

func (e *Engine) fireContact(eff *data.ContactEffect, attacker, defender *battle.Combatant, field *battle.Field, rng *battle.RNG, log *battle.Log) {
	if eff.Chance < 100 && !rng.Chance(eff.Chance, 100) {
		return
	}
	if eff.DamagePercent > 0 {
		attacker.ApplyDamage(attacker.MaxHP * eff.DamagePercent / 100)
		log.Add("%s was hurt!", attacker.Species)
	}
	if eff.Status != "" && !attacker.Fainted() {
		st := battle.Status(eff.Status)
		if eff.Status == "random" {
			st = []battle.Status{battle.StatusPoison, battle.StatusParalysis, battle.StatusSleep}[rng.Index(3)]
		}
		e.fx.TryStatus(defender, attacker, st, field, rng, log)
	}
	if eff.Volatile != "" && !attacker.Fainted() {
		e.fx.ApplyVolatile(defender, attacker, battle.VolatileKind(eff.Volatile), -1, -1, rng, log)
	}
	if len(eff.StatChanges) > 0 && !attacker.Fainted() {
		e.fx.ApplyStages(defender, attacker, eff.StatChanges, field, log)
	}
}

// OnDamaged fires the defender's own post-hit responses: boost-on-hit
// abilities and the super-effective policy item.
func (e *Engine) OnDamaged(defender, attacker *battle.Combatant, typeMult float64, field *battle.Field, log *battle.Log) {
	if defender.Fainted() {
		return
	}
	if ab, ok := e.cfg.HolderAbility(defender); ok && len(ab.OnDamagedStats) > 0 {
		e.fx.ApplyStages(defender, defender, ab.OnDamagedStats, field, log)
	}
	if item, ok := e.cfg.HolderItem(defender); ok && item.WeaknessPolicy && typeMult > 1 {
		defender.ConsumeItem()
		log.Add("%s used its Weakness Policy!", defender.Species)
		e.fx.ApplyStages(defender, defender, map[string]int{"atk": 2, "spa": 2}, field, log)
	}
}

// OnFaint fires the fainted side's death rattle and the killer's KO spoils.
// contact reports whether the killing hit made contact.
func (e *Engine) OnFaint(fainted, killer *battle.Combatant, contact bool, field *battle.Field, log *battle.Log) {
	if ab, ok := e.cfg.HolderAbility(fainted); ok {
		if ab.Aura != "" && field != nil {
			field.RemoveAura(ab.Aura)
		}
		if ab.NegatesWeather && field != nil {
			field.RemoveAura(battle.WeatherNegationAura)
		}
		if ab.OnFaintDamagePercent > 0 && contact && killer != nil && !killer.Fainted() {
			killer.ApplyDamage(killer.MaxHP * ab.OnFaintDamagePercent / 100)
			log.Add("%s was caught in the aftermath!", killer.Species)
		}
	}
	if killer == nil || killer.Fainted() {
		return
	}
	if ab, ok := e.cfg.HolderAbility(killer); ok && len(ab.OnKOStats) > 0 {
		e.fx.ApplyStages(killer, killer, ab.OnKOStats, field, log)
	}
}

// OnSwitchIn runs the full entry sequence for entrant: hazards first, then
// its presence effects against opponent.
func (e *Engine) OnSwitchIn(entrant, opponent *battle.Combatant, field *battle.Field, rng *battle.RNG, log *battle.Log) {
	log.Add("%s entered the battle!", entrant.Species)
	e.entryHazards(entrant, field, rng, log)
	if entrant.Fainted() {
		return
	}

	ab, ok := e.cfg.HolderAbility(entrant)
	if !ok {
		return
	}
	if ab.Weather != "" {
		if e.fx.SetWeather(field, battle.Weather(ab.Weather), log) &&
			!e.cfg.Gen.Has(gen.MechPermanentWeatherEnd) {
			// Ability weather ran until replaced in the early eras.
			field.WeatherTurns = -1
		}
	}
	if ab.Terrain != "" {
		e.fx.SetTerrain(field, battle.Terrain(ab.Terrain), log)
	}
	if ab.Aura != "" {
		field.AddAura(ab.Aura)
		log.Add("%s radiates an imposing presence!", entrant.Species)
	}
	if ab.NegatesWeather {
		field.AddAura(battle.WeatherNegationAura)
		log.Add("The effects of the weather disappeared!")
	}
	if len(ab.OnSwitchInStats) > 0 && opponent != nil && !opponent.Fainted() {
		e.fx.ApplyStages(entrant, opponent, ab.OnSwitchInStats, field, log)
	}
}

// OnSwitchOut clears the entrant's presence effects and volatile state.
func (e *Engine) OnSwitchOut(leaver *battle.Combatant, field *battle.Field) {
	if ab, ok := e.cfg.HolderAbility(leaver); ok {
		if ab.Aura != "" && field != nil {
			field.RemoveAura(ab.Aura)
		}
		if ab.NegatesWeather && field != nil {
			field.RemoveAura(battle.WeatherNegationAura)
		}
	}
	leaver.ClearVolatiles()
	leaver.ResetStages()
}

// entryHazards applies the entrant's side hazards in the canonical order:
// stealth rock, then spikes, then toxic spikes, then sticky web.
func (e *Engine) entryHazards(entrant *battle.Combatant, field *battle.Field, rng *battle.RNG, log *battle.Log) {
	if field == nil {
		return
	}
	side := field.Side(entrant.SideIndex)
	magicGuard := false
	if ab, ok := e.cfg.HolderAbility(entrant); ok {
		magicGuard = ab.MagicGuard
	}

	if side.StealthRock && !magicGuard {
		mult := typechart.Effectiveness("rock", entrant.Types, e.cfg.Gen)
		dmg := int(float64(entrant.MaxHP) * mult / 8)
		if dmg < 1 {
			dmg = 1
		}
		entrant.ApplyDamage(dmg)
		log.Add("Pointed stones dug into %s!", entrant.Species)
		if entrant.Fainted() {
			log.Add("%s fainted!", entrant.Species)
			return
		}
	}

	if !airborne(entrant) {
		if side.Spikes > 0 && !magicGuard {
			den := []int{8, 6, 4}[side.Spikes-1]
			entrant.ApplyDamage(entrant.MaxHP / den)
			log.Add("%s was hurt by the spikes!", entrant.Species)
			if entrant.Fainted() {
				log.Add("%s fainted!", entrant.Species)
				return
			}
		}
		if side.ToxicSpikes > 0 {
			if entrant.HasType("poison") {
				side.ToxicSpikes = 0
				log.Add("%s absorbed the poison spikes!", entrant.Species)
			} else {
				st := battle.StatusPoison
				if side.ToxicSpikes >= 2 {
					st = battle.StatusToxic
				}
				e.fx.TryStatus(nil, entrant, st, field, rng, log)
			}
		}
		if side.StickyWeb {
			e.fx.ApplyStages(nil, entrant, map[string]int{"spe": -1}, field, log)
			log.Add("%s was caught in a sticky web!", entrant.Species)
		}
	}
}

// airborne reports whether ground-bound hazards miss the entrant.
func airborne(c *battle.Combatant) bool {
	return c.HasType("flying") || c.EffectiveAbility() == "levitate"
}

func itemTitle(id string) string {
	// Display names reuse the effects package convention.
	out := make([]byte, 0, len(id))
	up := true
	for i := 0; i < len(id); i++ {
		ch := id[i]
		if ch == '-' {
			out = append(out, ' ')
			up = true
			continue
		}
		if up && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		up = false
		out = append(out, ch)
	}
	return string(out)
}
