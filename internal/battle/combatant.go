// Package battle holds the movable state shared by every pipeline stage:
// the two Combatant records, the Field, the seedable RNG and the action
// Result. It has no game rules of its own beyond the clamping invariants.
package battle

import "errors"

// ErrIntegrity marks a genuine defect (corrupted stage map, missing data
// mid-action). Callers treat it as fatal to the battle, never as a
// game-legal outcome.
var ErrIntegrity = errors.New("battle state integrity error")

// Stat keys the seven independently staged values plus raw HP.
type Stat string

const (
	StatHP       Stat = "hp"
	StatAttack   Stat = "atk"
	StatDefense  Stat = "def"
	StatSpAtk    Stat = "spa"
	StatSpDef    Stat = "spd"
	StatSpeed    Stat = "spe"
	StatAccuracy Stat = "acc"
	StatEvasion  Stat = "eva"
)

// StageStats lists every counter subject to the -6..+6 clamp.
var StageStats = []Stat{StatAttack, StatDefense, StatSpAtk, StatSpDef, StatSpeed, StatAccuracy, StatEvasion}

// Status is the single primary condition. At most one is active at a time.
type Status string

const (
	StatusNone      Status = ""
	StatusSleep     Status = "slp"
	StatusFreeze    Status = "frz"
	StatusParalysis Status = "par"
	StatusBurn      Status = "brn"
	StatusPoison    Status = "psn"
	StatusToxic     Status = "tox"
)

const (
	MinStage = -6
	MaxStage = 6
)

// Combatant is one creature in battle. Every field is mutable for the
// battle's duration; the turn loop owns the record exclusively.
type Combatant struct {
	Species    string
	Level      int
	Types      []string // 1-2 entries; mutable (e.g. type-changing effects)
	TeraType   string   // non-empty while the every-type boosted state is up
	CurHP      int
	MaxHP      int
	Stats      map[Stat]int // calculated raw stats, nature included
	Stages     map[Stat]int
	Gender     string
	WeightKg   float64
	Friendship int

	// SideIndex is the field side (0 or 1) this combatant fights on,
	// assigned when it enters play.
	SideIndex int

	Status      Status
	StatusTurns int // sleep countdown
	ToxicTurns  int // toxic ramp counter

	Ability           string
	AbilitySuppressed bool
	Item              string
	NotFullyEvolved   bool

	Volatiles map[VolatileKind]*Volatile

	// Move-sequencing flags. Charging/SemiInvulnerable hold the move name
	// so turn two knows what to release.
	Charging         string
	SemiInvulnerable string
	MustRecharge     bool
	Flinched         bool
	RampageMove      string
	RampageTurns     int
	ChoiceLocked     string
	ProtectStreak    int
	Protected        bool

	// Last-action tracking for callback-style moves.
	LastMoveUsed     string
	LastDamageTaken  int
	LastDamageClass  string // "physical" or "special"
	MovedAfterTarget bool

	// SlowStartTurns is lazily initialized by the stat engine on first
	// query; nil means "not yet consulted".
	SlowStartTurns *int

	cache map[string]any
}

// NewCombatant returns a combatant with all maps initialized.
func NewCombatant(species string, level int, types []string, stats map[Stat]int) *Combatant {
	hp := stats[StatHP]
	c := &Combatant{
		Species:    species,
		Level:      level,
		Types:      append([]string(nil), types...),
		CurHP:      hp,
		MaxHP:      hp,
		Stats:      stats,
		Stages:     make(map[Stat]int, len(StageStats)),
		Volatiles:  make(map[VolatileKind]*Volatile),
		Friendship: 255,
		WeightKg:   100,
	}
	for _, s := range StageStats {
		c.Stages[s] = 0
	}
	return c
}

// Validate reports an integrity error for states no legal battle can reach.
func (c *Combatant) Validate() error {
	if c.Stats == nil || c.Stages == nil {
		return ErrIntegrity
	}
	for _, s := range StageStats {
		if v, ok := c.Stages[s]; !ok || v < MinStage || v > MaxStage {
			return ErrIntegrity
		}
	}
	if c.MaxHP <= 0 || c.CurHP < 0 || c.CurHP > c.MaxHP {
		return ErrIntegrity
	}
	return nil
}

// ApplyDamage removes up to n HP and returns what was actually removed.
func (c *Combatant) ApplyDamage(n int) int {
	if n < 0 {
		n = 0
	}
	if n > c.CurHP {
		n = c.CurHP
	}
	c.CurHP -= n
	return n
}

// Heal restores up to n HP and returns what was actually restored.
func (c *Combatant) Heal(n int) int {
	if n < 0 {
		n = 0
	}
	if c.CurHP+n > c.MaxHP {
		n = c.MaxHP - c.CurHP
	}
	c.CurHP += n
	return n
}

func (c *Combatant) Fainted() bool  { return c.CurHP <= 0 }
func (c *Combatant) AtFullHP() bool { return c.CurHP == c.MaxHP }

// HPRatio is CurHP/MaxHP in [0,1].
func (c *Combatant) HPRatio() float64 {
	if c.MaxHP == 0 {
		return 0
	}
	return float64(c.CurHP) / float64(c.MaxHP)
}

// HasType reports whether t is one of the combatant's current types.
// The tera override counts as a type of its own.
func (c *Combatant) HasType(t string) bool {
	if c.TeraType != "" && c.TeraType == t {
		return true
	}
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// Stage returns the current counter for s.
func (c *Combatant) Stage(s Stat) int { return c.Stages[s] }

// ModifyStage moves a counter by delta, clamped to [-6, 6]. It returns the
// applied delta (zero when already at the limit) and whether the clamp hit.
func (c *Combatant) ModifyStage(s Stat, delta int) (applied int, clamped bool) {
	cur := c.Stages[s]
	next := cur + delta
	if next > MaxStage {
		next = MaxStage
		clamped = true
	}
	if next < MinStage {
		next = MinStage
		clamped = true
	}
	c.Stages[s] = next
	return next - cur, clamped
}

// ResetStages zeroes every stage counter (haze, switching out).
func (c *Combatant) ResetStages() {
	for _, s := range StageStats {
		c.Stages[s] = 0
	}
}

// EffectiveAbility is the ability currently in force ("" when suppressed).
func (c *Combatant) EffectiveAbility() string {
	if c.AbilitySuppressed {
		return ""
	}
	return c.Ability
}

// SetAbility swaps the ability and drops the resolved-effect cache.
func (c *Combatant) SetAbility(name string) {
	c.Ability = name
	c.InvalidateCache()
}

// SetItem swaps the held item and drops the resolved-effect cache.
func (c *Combatant) SetItem(name string) {
	c.Item = name
	c.InvalidateCache()
}

// ConsumeItem removes and returns the held item ("" when empty-handed).
func (c *Combatant) ConsumeItem() string {
	it := c.Item
	c.SetItem("")
	return it
}

// CacheGet fetches a resolved-effect cache entry. The cache is invalidated
// explicitly on ability/item change, never by time.
func (c *Combatant) CacheGet(key string) (any, bool) {
	if c.cache == nil {
		return nil, false
	}
	v, ok := c.cache[key]
	return v, ok
}

// CachePut stores a resolved-effect cache entry.
func (c *Combatant) CachePut(key string, v any) {
	if c.cache == nil {
		c.cache = make(map[string]any)
	}
	c.cache[key] = v
}

// InvalidateCache drops every resolved-effect entry.
func (c *Combatant) InvalidateCache() { c.cache = nil }
