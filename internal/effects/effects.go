// Package effects applies the declarative consequences of a move: primary
// status, stage changes, volatile conditions, heals and field state. Every
// application re-checks immunities at the moment it lands, and every no-op
// explains itself with a narrative line.
package effects

import (
	"strings"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/gen"
)

// StatusVerdict says how a status application ended.
type StatusVerdict int

const (
	StatusApplied StatusVerdict = iota
	StatusAlreadyStatused
	StatusTypeImmune
	StatusBlockedByAbility
	StatusBlockedBySafeguard
	StatusBlockedByTerrain
)

// Applier mutates combatants and the field according to effect specs.
type Applier struct {
	cfg *config.Battle
}

// NewApplier returns an effect applier bound to cfg.
func NewApplier(cfg *config.Battle) *Applier {
	return &Applier{cfg: cfg}
}

var statusLines = map[battle.Status]string{
	battle.StatusSleep:     "%s fell asleep!",
	battle.StatusFreeze:    "%s was frozen solid!",
	battle.StatusParalysis: "%s is paralyzed! It may be unable to move!",
	battle.StatusBurn:      "%s was burned!",
	battle.StatusPoison:    "%s was poisoned!",
	battle.StatusToxic:     "%s was badly poisoned!",
}

// statusTypeImmunities lists the type that shrugs off each status. Electric
// paralysis immunity starts in Gen 6.
func (a *Applier) typeImmune(target *battle.Combatant, st battle.Status, user *battle.Combatant) bool {
	switch st {
	case battle.StatusBurn:
		return target.HasType("fire")
	case battle.StatusFreeze:
		return target.HasType("ice")
	case battle.StatusParalysis:
		return a.cfg.Gen >= gen.Gen6 && target.HasType("electric")
	case battle.StatusPoison, battle.StatusToxic:
		if ab, ok := a.cfg.HolderAbility(user); ok && ab.CorrosiveStatus {
			return false
		}
		if target.HasType("poison") {
			return true
		}
		return a.cfg.Gen.TypeExists("steel") && target.HasType("steel")
	}
	return false
}

// TryStatus attempts to inflict st on target, appending the narrative for
// whatever happens. user is the inflicting side, nil for self-inflicted or
// field-sourced status.
func (a *Applier) TryStatus(user, target *battle.Combatant, st battle.Status, field *battle.Field, rng *battle.RNG, log *battle.Log) StatusVerdict {
	if target.Status != battle.StatusNone {
		log.Add("%s is already afflicted!", target.Species)
		return StatusAlreadyStatused
	}
	if a.typeImmune(target, st, user) {
		log.Add("It doesn't affect %s...", target.Species)
		return StatusTypeImmune
	}
	if ab, ok := a.cfg.HolderAbility(target); ok && !a.ignoresBlockers(user) {
		for _, blocked := range ab.BlocksStatus {
			if battle.Status(blocked) == st || (st == battle.StatusToxic && blocked == "psn") {
				log.Add("%s's %s prevents it!", target.Species, title(ab.Name))
				return StatusBlockedByAbility
			}
		}
	}
	if field != nil {
		if field.Side(target.SideIndex).SafeguardTurns > 0 && user != nil {
			log.Add("%s is protected by Safeguard!", target.Species)
			return StatusBlockedBySafeguard
		}
		if grounded(target) && field.Terrain == battle.TerrainMisty {
			log.Add("%s surrounds itself with misty terrain!", target.Species)
			return StatusBlockedByTerrain
		}
		if grounded(target) && field.Terrain == battle.TerrainElectric && st == battle.StatusSleep {
			log.Add("%s is kept awake by the electric terrain!", target.Species)
			return StatusBlockedByTerrain
		}
	}

	target.Status = st
	switch st {
	case battle.StatusSleep:
		// 1-3 full turns asleep.
		target.StatusTurns = rng.Range(1, 3)
	case battle.StatusToxic:
		target.ToxicTurns = 0
	}
	log.Add(statusLines[st], target.Species)
	return StatusApplied
}

// ApplyStages applies a stat-stage map, one narrative line per stat. Drops
// inflicted by an opponent respect the defender's blockers and mist.
func (a *Applier) ApplyStages(user, target *battle.Combatant, changes map[string]int, field *battle.Field, log *battle.Log) {
	hostile := user != nil && user != target
	for _, s := range battle.StageStats {
		delta, ok := changes[string(s)]
		if !ok || delta == 0 {
			continue
		}
		if hostile && delta < 0 && !a.ignoresBlockers(user) {
			if a.dropBlocked(target, s, field, log) {
				continue
			}
		}
		applied, clamped := target.ModifyStage(s, delta)
		if applied == 0 && clamped {
			if delta > 0 {
				log.Add("%s's %s won't go any higher!", target.Species, statName(s))
			} else {
				log.Add("%s's %s won't go any lower!", target.Species, statName(s))
			}
			continue
		}
		log.Add("%s's %s %s!", target.Species, statName(s), stageVerb(applied))
	}
}

func (a *Applier) dropBlocked(target *battle.Combatant, s battle.Stat, field *battle.Field, log *battle.Log) bool {
	if ab, ok := a.cfg.HolderAbility(target); ok {
		if ab.BlocksStatDrops {
			log.Add("%s's %s prevents stat loss!", target.Species, title(ab.Name))
			return true
		}
		for _, blocked := range ab.BlockedStats {
			if battle.Stat(blocked) == s {
				log.Add("%s's %s prevents the drop!", target.Species, title(ab.Name))
				return true
			}
		}
	}
	if field != nil && field.Side(target.SideIndex).MistTurns > 0 {
		log.Add("%s is protected by the mist!", target.Species)
		return true
	}
	return false
}

// ApplyVolatile installs a volatile condition, rolling its duration.
func (a *Applier) ApplyVolatile(user, target *battle.Combatant, kind battle.VolatileKind, minTurns, maxTurns int, rng *battle.RNG, log *battle.Log) bool {
	if kind == battle.VolConfusion || kind == battle.VolInfatuation {
		if ab, ok := a.cfg.HolderAbility(target); ok && !a.ignoresBlockers(user) {
			for _, blocked := range ab.BlocksStatus {
				if battle.VolatileKind(blocked) == kind {
					log.Add("%s's %s prevents it!", target.Species, title(ab.Name))
					return false
				}
			}
		}
	}
	if kind == battle.VolInfatuation && user != nil {
		if user.Gender == "" || target.Gender == "" || user.Gender == target.Gender {
			log.Add("But it failed!")
			return false
		}
	}
	turns := minTurns
	if maxTurns > minTurns {
		turns = rng.Range(minTurns, maxTurns)
	}
	v := &battle.Volatile{Kind: kind, Turns: turns}
	if user != nil {
		v.Source = user.Species
	}
	if kind == battle.VolSubstitute {
		cost := target.MaxHP / 4
		if target.CurHP <= cost {
			log.Add("But it does not have enough HP left to make a substitute!")
			return false
		}
		target.ApplyDamage(cost)
		v.HP = cost
	}
	if !target.AddVolatile(v) {
		log.Add("But it failed!")
		return false
	}
	log.Add(volatileLine(kind), target.Species)
	return true
}

// Heal restores a percentage of max HP with the full-HP no-op line.
func (a *Applier) Heal(c *battle.Combatant, percent int, log *battle.Log) int {
	if c.AtFullHP() {
		log.Add("%s's HP is full!", c.Species)
		return 0
	}
	healed := c.Heal(c.MaxHP * percent / 100)
	log.Add("%s regained health!", c.Species)
	return healed
}

// SetWeather installs weather from a move, with the era gate and the
// already-active no-op.
func (a *Applier) SetWeather(field *battle.Field, w battle.Weather, log *battle.Log) bool {
	if field.Weather == w {
		log.Add("But it failed!")
		return false
	}
	if !field.SetWeather(w, 5) {
		log.Add("But it failed!")
		return false
	}
	log.Add("%s", weatherLine(w))
	return true
}

// SetTerrain installs terrain for five turns.
func (a *Applier) SetTerrain(field *battle.Field, t battle.Terrain, log *battle.Log) bool {
	if !a.cfg.Gen.Has(gen.MechTerrain) {
		log.Add("But it failed!")
		return false
	}
	if field.Terrain == t {
		log.Add("But it failed!")
		return false
	}
	field.SetTerrain(t, 5)
	log.Add("%s", terrainLine(t))
	return true
}

// AddHazard lays one layer of an entry hazard on the side opposing user.
func (a *Applier) AddHazard(field *battle.Field, sideIdx int, hazard string, log *battle.Log) bool {
	side := field.Side(sideIdx)
	switch hazard {
	case "spikes":
		if side.Spikes >= 3 {
			log.Add("But it failed!")
			return false
		}
		side.Spikes++
		log.Add("Spikes were scattered on the ground!")
	case "toxic-spikes":
		if side.ToxicSpikes >= 2 {
			log.Add("But it failed!")
			return false
		}
		side.ToxicSpikes++
		log.Add("Poison spikes were scattered on the ground!")
	case "stealth-rock":
		if side.StealthRock {
			log.Add("But it failed!")
			return false
		}
		side.StealthRock = true
		log.Add("Pointed stones float in the air!")
	case "sticky-web":
		if side.StickyWeb {
			log.Add("But it failed!")
			return false
		}
		side.StickyWeb = true
		log.Add("A sticky web has been laid out!")
	default:
		return false
	}
	return true
}

// AddScreen raises a team screen on the user's side.
func (a *Applier) AddScreen(field *battle.Field, sideIdx int, screen string, log *battle.Log) bool {
	side := field.Side(sideIdx)
	set := func(slot *int, turns int, line string) bool {
		if *slot > 0 {
			log.Add("But it failed!")
			return false
		}
		*slot = turns
		log.Add("%s", line)
		return true
	}
	switch screen {
	case "reflect":
		return set(&side.ReflectTurns, 5, "A wall of light raised its team's Defense!")
	case "light-screen":
		return set(&side.LightScreenTurns, 5, "A wall of light raised its team's Sp. Def!")
	case "aurora-veil":
		if field.EffectiveWeather() != battle.WeatherHail && field.EffectiveWeather() != battle.WeatherSnow {
			log.Add("But it failed!")
			return false
		}
		return set(&side.AuroraVeilTurns, 5, "A mysterious veil protects its team!")
	case "safeguard":
		return set(&side.SafeguardTurns, 5, "A veil shields its team from status!")
	case "mist":
		return set(&side.MistTurns, 5, "Its team became shrouded in mist!")
	case "tailwind":
		return set(&side.TailwindTurns, 4, "A tailwind blew from behind its team!")
	}
	return false
}

func (a *Applier) ignoresBlockers(user *battle.Combatant) bool {
	if user == nil {
		return false
	}
	ab, ok := a.cfg.HolderAbility(user)
	return ok && ab.IgnoresBlockers
}

// grounded reports whether terrain reaches the combatant.
func grounded(c *battle.Combatant) bool {
	return !c.HasType("flying") && c.EffectiveAbility() != "levitate"
}

var statNames = map[battle.Stat]string{
	battle.StatAttack:   "Attack",
	battle.StatDefense:  "Defense",
	battle.StatSpAtk:    "Sp. Atk",
	battle.StatSpDef:    "Sp. Def",
	battle.StatSpeed:    "Speed",
	battle.StatAccuracy: "accuracy",
	battle.StatEvasion:  "evasiveness",
}

func statName(s battle.Stat) string { return statNames[s] }

func stageVerb(applied int) string {
	switch {
	case applied >= 3:
		return "rose drastically"
	case applied == 2:
		return "rose sharply"
	case applied == 1:
		return "rose"
	case applied == -1:
		return "fell"
	case applied == -2:
		return "harshly fell"
	default:
		return "severely fell"
	}
}

func volatileLine(kind battle.VolatileKind) string {
	switch kind {
	case battle.VolConfusion:
		return "%s became confused!"
	case battle.VolInfatuation:
		return "%s fell in love!"
	case battle.VolTaunt:
		return "%s fell for the taunt!"
	case battle.VolEncore:
		return "%s must repeat its move!"
	case battle.VolDisable:
		return "%s's move was disabled!"
	case battle.VolTrap:
		return "%s was trapped!"
	case battle.VolLeechSeed:
		return "%s was seeded!"
	case battle.VolSubstitute:
		return "%s put up a substitute!"
	case battle.VolLockOn:
		return "%s took aim at its target!"
	case battle.VolYawn:
		return "%s grew drowsy!"
	}
	return "%s was afflicted!"
}

func weatherLine(w battle.Weather) string {
	switch w {
	case battle.WeatherRain:
		return "It started to rain!"
	case battle.WeatherSun:
		return "The sunlight turned harsh!"
	case battle.WeatherSand:
		return "A sandstorm kicked up!"
	case battle.WeatherHail:
		return "It started to hail!"
	case battle.WeatherSnow:
		return "It started to snow!"
	case battle.WeatherHeavyRain:
		return "A heavy rain began to fall!"
	case battle.WeatherHarshSun:
		return "The sunlight turned extremely harsh!"
	case battle.WeatherStrongWinds:
		return "Mysterious strong winds are protecting Flying-type Pokémon!"
	}
	return "The weather changed!"
}

func terrainLine(t battle.Terrain) string {
	switch t {
	case battle.TerrainElectric:
		return "An electric current ran across the battlefield!"
	case battle.TerrainGrassy:
		return "Grass grew to cover the battlefield!"
	case battle.TerrainMisty:
		return "Mist swirled around the battlefield!"
	case battle.TerrainPsychic:
		return "The battlefield got weird!"
	}
	return "The terrain changed!"
}

// title capitalizes a hyphenated identifier for narrative use.
func title(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
