// Package data defines the read-only move/ability/item records the engine
// consumes and the registry that serves them. Records are declarative:
// special-case behavior lives in effect descriptors and condition formulas
// attached at load time, not in name-keyed branches inside the engine.
package data

// Category is the damage class of a move.
type Category string

const (
	Physical Category = "physical"
	Special  Category = "special"
	StatusCat Category = "status"
)

// specialTypes lists the types whose moves were special before the Gen 4
// physical/special split.
var specialTypes = map[string]bool{
	"fire": true, "water": true, "electric": true, "grass": true,
	"ice": true, "psychic": true, "dragon": true, "dark": true,
}

// EffectSpec is the declarative secondary-effect descriptor attached to a
// move at data-load time. The resolver dispatches on these fields; it never
// switches on move names.
type EffectSpec struct {
	Status       string `yaml:"status,omitempty"`
	StatusChance int    `yaml:"status_chance,omitempty"` // percent; 100 on pure status moves

	Volatile       string `yaml:"volatile,omitempty"`
	VolatileChance int    `yaml:"volatile_chance,omitempty"`
	VolatileMin    int    `yaml:"volatile_min,omitempty"` // random duration range
	VolatileMax    int    `yaml:"volatile_max,omitempty"`

	FlinchChance int `yaml:"flinch_chance,omitempty"`

	SelfStats        map[string]int `yaml:"self_stats,omitempty"`
	SelfStatChance   int            `yaml:"self_stat_chance,omitempty"` // 0 with stats set = always
	TargetStats      map[string]int `yaml:"target_stats,omitempty"`
	TargetStatChance int            `yaml:"target_stat_chance,omitempty"`

	DrainPercent       int  `yaml:"drain_percent,omitempty"`  // of damage dealt
	RecoilPercent      int  `yaml:"recoil_percent,omitempty"` // of damage dealt
	RecoilMaxHPPercent int  `yaml:"recoil_max_hp_percent,omitempty"`
	CrashDamage        bool `yaml:"crash_damage,omitempty"` // half max HP on miss

	HitsMin        int  `yaml:"hits_min,omitempty"`
	HitsMax        int  `yaml:"hits_max,omitempty"`
	PerHitAccuracy bool `yaml:"per_hit_accuracy,omitempty"`

	ForcesSwitch bool `yaml:"forces_switch,omitempty"`
	Protection   bool `yaml:"protection,omitempty"`
	HealPercent  int  `yaml:"heal_percent,omitempty"` // of user's max HP

	Weather string `yaml:"weather,omitempty"`
	Terrain string `yaml:"terrain,omitempty"`
	Hazard  string `yaml:"hazard,omitempty"` // spikes / toxic-spikes / stealth-rock / sticky-web
	Screen  string `yaml:"screen,omitempty"` // reflect / light-screen / aurora-veil / safeguard / mist / tailwind

	Charge           bool   `yaml:"charge,omitempty"`
	SemiInvulnerable string `yaml:"semi_invulnerable,omitempty"` // fly / dig / dive / bounce ...
	Recharge         bool   `yaml:"recharge,omitempty"`

	OHKO    bool   `yaml:"ohko,omitempty"`
	Fixed   string `yaml:"fixed,omitempty"`   // fixed-damage rule name
	Counter string `yaml:"counter,omitempty"` // physical / special / any

	Trap        bool `yaml:"trap,omitempty"`
	LeechSeed   bool `yaml:"leech_seed,omitempty"`
	ResetStages bool `yaml:"reset_stages,omitempty"`
	Rampage     bool `yaml:"rampage,omitempty"` // locks user for 2-3 turns, then confusion
}

// MoveOverride is one era-specific deviation of a move record.
type MoveOverride struct {
	MinGen          int            `yaml:"min_gen"`
	MaxGen          int            `yaml:"max_gen,omitempty"` // 0 = open-ended
	Power           *int           `yaml:"power,omitempty"`
	Accuracy        *int           `yaml:"accuracy,omitempty"`
	StatusChance    *int           `yaml:"status_chance,omitempty"`
	WeatherAccuracy map[string]int `yaml:"weather_accuracy,omitempty"` // replaces the base map
	Banned          bool           `yaml:"banned,omitempty"`
}

// MoveRecord is the immutable definition of a move as supplied by the data
// layer. The engine treats it as read-only input.
type MoveRecord struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Category Category `yaml:"category"`
	Power    int      `yaml:"power"`
	Accuracy int      `yaml:"accuracy"` // 0 = bypasses the accuracy check
	Priority int      `yaml:"priority,omitempty"`
	PP       int      `yaml:"pp,omitempty"`

	Contact bool `yaml:"contact,omitempty"`
	Sound   bool `yaml:"sound,omitempty"`
	Punch   bool `yaml:"punch,omitempty"`
	Bite    bool `yaml:"bite,omitempty"`
	Pulse   bool `yaml:"pulse,omitempty"`
	Bullet  bool `yaml:"bullet,omitempty"`
	Slicing bool `yaml:"slicing,omitempty"`
	Wind    bool `yaml:"wind,omitempty"`

	HighCrit   bool `yaml:"high_crit,omitempty"`
	AlwaysCrit bool `yaml:"always_crit,omitempty"`
	NeverMiss  bool `yaml:"never_miss,omitempty"`

	// UsableAsleep lets the move through the sleep gate (snore).
	UsableAsleep bool `yaml:"usable_asleep,omitempty"`

	// HitsInvulnerable lists semi-invulnerable states this move still
	// reaches (e.g. thunder → fly).
	HitsInvulnerable []string `yaml:"hits_invulnerable,omitempty"`

	// WeatherAccuracy overrides accuracy under the named weather. The zero
	// value follows the Accuracy convention: the check is skipped.
	WeatherAccuracy map[string]int `yaml:"weather_accuracy,omitempty"`

	// VariablePower names a base-power rule resolved at damage time
	// (weight, flail, eruption, gyro-ball, return, acrobatics, facade...).
	VariablePower string `yaml:"variable_power,omitempty"`

	IntroducedIn int `yaml:"introduced_in,omitempty"` // defaults to Gen 1

	Effect    EffectSpec     `yaml:"effect,omitempty"`
	Overrides []MoveOverride `yaml:"overrides,omitempty"`
}

// ForGen returns a copy of the record with every override matching
// generation g folded in, plus the second return reporting an era ban.
func (m MoveRecord) ForGen(g int) (MoveRecord, bool) {
	if m.IntroducedIn > 0 && g < m.IntroducedIn {
		return m, true
	}
	banned := false
	for _, o := range m.Overrides {
		if g < o.MinGen || (o.MaxGen != 0 && g > o.MaxGen) {
			continue
		}
		if o.Power != nil {
			m.Power = *o.Power
		}
		if o.Accuracy != nil {
			m.Accuracy = *o.Accuracy
		}
		if o.StatusChance != nil {
			m.Effect.StatusChance = *o.StatusChance
		}
		if o.WeatherAccuracy != nil {
			m.WeatherAccuracy = o.WeatherAccuracy
		}
		if o.Banned {
			banned = true
		}
	}
	return m, banned
}

// CategoryIn resolves the damage class for generation g: before the Gen 4
// split the class follows the move's type.
func (m MoveRecord) CategoryIn(g int) Category {
	if m.Category == StatusCat || g >= 4 {
		return m.Category
	}
	if specialTypes[m.Type] {
		return Special
	}
	return Physical
}

// IsDamaging reports whether the move deals direct damage in generation g.
func (m MoveRecord) IsDamaging(g int) bool {
	return m.CategoryIn(g) != StatusCat
}

// StatMod is one multiplicative stat modifier expressed as an exact
// rational Num/Den. Condition is an optional CEL formula evaluated against
// the holder and field (see internal/rules).
type StatMod struct {
	Stat      string `yaml:"stat"`
	Num       int    `yaml:"num"`
	Den       int    `yaml:"den"`
	Condition string `yaml:"condition,omitempty"`
}

// PowerMod is one multiplicative base-power or final-damage modifier.
// MoveType restricts it to moves of that type; Condition is CEL.
type PowerMod struct {
	MoveType  string `yaml:"move_type,omitempty"`
	Num       int    `yaml:"num"`
	Den       int    `yaml:"den"`
	Condition string `yaml:"condition,omitempty"`
}

// ContactEffect describes what happens to an attacker that makes contact
// with the holder.
type ContactEffect struct {
	Status        string         `yaml:"status,omitempty"`
	Volatile      string         `yaml:"volatile,omitempty"`
	Chance        int            `yaml:"chance,omitempty"`         // percent
	DamagePercent int            `yaml:"damage_percent,omitempty"` // of attacker's max HP
	StatChanges   map[string]int `yaml:"stat_changes,omitempty"`   // applied to the attacker
}

// AbilityRecord is the declarative description of an ability. Only the
// hooks the engine consults are modeled; anything else is narrative-only.
type AbilityRecord struct {
	Name         string `yaml:"name"`
	IntroducedIn int    `yaml:"introduced_in,omitempty"` // defaults to Gen 3

	StatMods  []StatMod  `yaml:"stat_mods,omitempty"`
	PowerMods []PowerMod `yaml:"power_mods,omitempty"`

	// Damage-taken modifiers (filter, multiscale, thick fat...).
	DefenseMods []PowerMod `yaml:"defense_mods,omitempty"`

	BlocksStatus []string `yaml:"blocks_status,omitempty"`
	BlocksFlinch bool     `yaml:"blocks_flinch,omitempty"`
	BlocksOHKO   bool     `yaml:"blocks_ohko,omitempty"`
	BlocksSound  bool     `yaml:"blocks_sound,omitempty"`
	BlocksBullet bool     `yaml:"blocks_bullet,omitempty"`
	BlocksStatDrops bool  `yaml:"blocks_stat_drops,omitempty"`
	BlockedStats []string `yaml:"blocked_stats,omitempty"` // hyper cutter, keen eye

	// ImmuneType absorbs moves of that type entirely.
	ImmuneType  string `yaml:"immune_type,omitempty"`
	AbsorbHealPercent int    `yaml:"absorb_heal_percent,omitempty"`
	AbsorbStat        string `yaml:"absorb_stat,omitempty"` // raised 1 stage instead

	WonderGuard bool `yaml:"wonder_guard,omitempty"` // only super-effective hits land

	OnContact *ContactEffect `yaml:"on_contact,omitempty"`
	OnFaintDamagePercent int            `yaml:"on_faint_damage_percent,omitempty"`
	OnKOStats            map[string]int `yaml:"on_ko_stats,omitempty"`
	OnSwitchInStats      map[string]int `yaml:"on_switch_in_stats,omitempty"` // applied to the opponent
	OnDamagedStats       map[string]int `yaml:"on_damaged_stats,omitempty"`   // applied to self when hit

	NoGuard        bool `yaml:"no_guard,omitempty"`
	CritImmune     bool `yaml:"crit_immune,omitempty"`
	MultiHitAlwaysMax bool `yaml:"multi_hit_always_max,omitempty"`
	DoublesEffectChance bool `yaml:"doubles_effect_chance,omitempty"` // serene grace
	SurviveFullHP  bool `yaml:"survive_full_hp,omitempty"`            // sturdy
	PreventsRecoil bool `yaml:"prevents_recoil,omitempty"`            // rock head
	IgnoresStages  bool `yaml:"ignores_stages,omitempty"`             // unaware
	IgnoresBlockers bool `yaml:"ignores_blockers,omitempty"`          // mold breaker
	HitsGhosts     bool `yaml:"hits_ghosts,omitempty"`                // scrappy
	CorrosiveStatus bool `yaml:"corrosive_status,omitempty"`          // corrosion
	NegatesWeather bool `yaml:"negates_weather,omitempty"`            // cloud nine / air lock
	MagicGuard     bool `yaml:"magic_guard,omitempty"`
	LiquidOoze     bool `yaml:"liquid_ooze,omitempty"`
	CritStageBonus int  `yaml:"crit_stage_bonus,omitempty"` // super luck
	CritDamageBonus bool `yaml:"crit_damage_bonus,omitempty"` // sniper
	TintedLens     bool `yaml:"tinted_lens,omitempty"`

	Weather string `yaml:"weather,omitempty"` // set on switch-in
	Terrain string `yaml:"terrain,omitempty"`
	// Aura names a battle-wide presence registered while the holder is in
	// play. "ruin:<stat>" auras dampen that stat for every non-holder;
	// "dark-aura"/"fairy-aura" boost matching move types.
	Aura string `yaml:"aura,omitempty"`
}

// ItemRecord describes a held item's battle hooks.
type ItemRecord struct {
	Name         string `yaml:"name"`
	IntroducedIn int    `yaml:"introduced_in,omitempty"` // defaults to Gen 2

	StatMods  []StatMod  `yaml:"stat_mods,omitempty"`
	PowerMods []PowerMod `yaml:"power_mods,omitempty"`

	SpeciesOnly   []string `yaml:"species_only,omitempty"`   // light ball, thick club
	EvolutionGate bool     `yaml:"evolution_gate,omitempty"` // eviolite

	ChoiceLock bool `yaml:"choice_lock,omitempty"`

	Berry                bool     `yaml:"berry,omitempty"`
	SingleUse            bool     `yaml:"single_use,omitempty"`
	HealFixed            int      `yaml:"heal_fixed,omitempty"`
	HealPercent          int      `yaml:"heal_percent,omitempty"`
	HealThresholdPercent int      `yaml:"heal_threshold_percent,omitempty"` // consume at or below
	CuresStatus          []string `yaml:"cures_status,omitempty"`           // ["any"] = lum

	SurviveFullHP   bool `yaml:"survive_full_hp,omitempty"` // focus sash
	SurviveChance   int  `yaml:"survive_chance,omitempty"`  // focus band percent
	FlinchChance    int  `yaml:"flinch_chance,omitempty"`   // king's rock layering
	ContactDamage   int  `yaml:"contact_damage,omitempty"`  // rocky helmet, 1/N of max HP
	RecoilPercent   int  `yaml:"recoil_percent,omitempty"`  // life orb, of max HP
	EndTurnHealNum  int  `yaml:"end_turn_heal_num,omitempty"` // leftovers 1/16
	EndTurnHealDen  int  `yaml:"end_turn_heal_den,omitempty"`
	CritStageBonus  int  `yaml:"crit_stage_bonus,omitempty"`
	WeaknessPolicy  bool `yaml:"weakness_policy,omitempty"`
	Unremovable     bool `yaml:"unremovable,omitempty"`
}
