package battle

// VolatileKind names a non-persistent battle-only condition. Each kind owns
// its slot on the combatant: adding a duplicate is a no-op.
type VolatileKind string

const (
	VolConfusion   VolatileKind = "confusion"
	VolInfatuation VolatileKind = "infatuation"
	VolTaunt       VolatileKind = "taunt"
	VolEncore      VolatileKind = "encore"
	VolTorment     VolatileKind = "torment"
	VolDisable     VolatileKind = "disable"
	VolTrap        VolatileKind = "trap"
	VolLeechSeed   VolatileKind = "leech-seed"
	VolSubstitute  VolatileKind = "substitute"
	VolLockOn      VolatileKind = "lock-on"
	VolYawn        VolatileKind = "yawn"
)

// Volatile is one tagged condition slot. Which fields are meaningful
// depends on Kind: Move for encore/disable/trap, Source for leech seed and
// infatuation, HP for the substitute shield.
type Volatile struct {
	Kind   VolatileKind
	Turns  int // remaining turns; negative means "until switch-out"
	Move   string
	Source string
	HP     int

	// Gen1ActionLock reproduces the Gen 1 binding-move rule where the
	// trapped side cannot act at all while held.
	Gen1ActionLock bool
}

// AddVolatile installs v unless its kind is already present.
func (c *Combatant) AddVolatile(v *Volatile) bool {
	if _, ok := c.Volatiles[v.Kind]; ok {
		return false
	}
	c.Volatiles[v.Kind] = v
	return true
}

// Volatile returns the slot for kind, or nil.
func (c *Combatant) Volatile(kind VolatileKind) *Volatile {
	return c.Volatiles[kind]
}

// HasVolatile reports whether kind is active.
func (c *Combatant) HasVolatile(kind VolatileKind) bool {
	_, ok := c.Volatiles[kind]
	return ok
}

// RemoveVolatile clears the slot for kind.
func (c *Combatant) RemoveVolatile(kind VolatileKind) {
	delete(c.Volatiles, kind)
}

// TickVolatile decrements the turn counter for kind and removes the slot
// when it expires. Returns true on expiry. Until-switch slots never expire.
func (c *Combatant) TickVolatile(kind VolatileKind) bool {
	v, ok := c.Volatiles[kind]
	if !ok || v.Turns < 0 {
		return false
	}
	v.Turns--
	if v.Turns <= 0 {
		delete(c.Volatiles, kind)
		return true
	}
	return false
}

// ClearVolatiles drops every volatile condition (switch-out, faint).
func (c *Combatant) ClearVolatiles() {
	c.Volatiles = make(map[VolatileKind]*Volatile)
}
