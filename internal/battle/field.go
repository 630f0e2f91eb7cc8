package battle

// Weather names the active battle-wide weather.
type Weather string

const (
	WeatherNone Weather = ""
	WeatherRain Weather = "rain"
	WeatherSun  Weather = "sun"
	WeatherSand Weather = "sandstorm"
	WeatherHail Weather = "hail"
	WeatherSnow Weather = "snow"
	// Primal weathers lock out ordinary weather setters entirely.
	WeatherHeavyRain   Weather = "heavy-rain"
	WeatherHarshSun    Weather = "extremely-harsh-sunlight"
	WeatherStrongWinds Weather = "strong-winds"
)

// Primal reports whether w is one of the special override weathers.
func (w Weather) Primal() bool {
	switch w {
	case WeatherHeavyRain, WeatherHarshSun, WeatherStrongWinds:
		return true
	}
	return false
}

// Terrain names the active field terrain (Gen 6+).
type Terrain string

const (
	TerrainNone     Terrain = ""
	TerrainElectric Terrain = "electric"
	TerrainGrassy   Terrain = "grassy"
	TerrainMisty    Terrain = "misty"
	TerrainPsychic  Terrain = "psychic"
)

// Side holds the hazards, screens and team-wide flags of one combatant's
// side of the field.
type Side struct {
	Spikes           int // 0-3 layers
	ToxicSpikes      int // 0-2 layers
	StealthRock      bool
	StickyWeb        bool
	ReflectTurns     int
	LightScreenTurns int
	AuroraVeilTurns  int
	TailwindTurns    int
	SafeguardTurns   int
	MistTurns        int
}

// Field is the shared battle-wide mutable record.
type Field struct {
	Generation   int // era in effect; 0 defers to the latest ruleset
	Weather      Weather
	WeatherTurns int
	Terrain      Terrain
	TerrainTurns int
	Sides        [2]*Side

	// auraHolders counts simultaneous holders per suppressive aura so that
	// duplicates never stack.
	auraHolders map[string]int
}

// NewField returns a clean field for the given era.
func NewField(generation int) *Field {
	return &Field{
		Generation:  generation,
		Sides:       [2]*Side{{}, {}},
		auraHolders: make(map[string]int),
	}
}

// Era satisfies gen.FieldContext.
func (f *Field) Era() int { return f.Generation }

// Side returns the side record for slot idx (0 or 1).
func (f *Field) Side(idx int) *Side { return f.Sides[idx%2] }

// SetWeather installs w for the given duration. Ordinary weather cannot
// displace an active primal weather; primal weather always wins. Returns
// false when the primal lock rejected the change.
func (f *Field) SetWeather(w Weather, turns int) bool {
	if f.Weather.Primal() && !w.Primal() {
		return false
	}
	f.Weather = w
	f.WeatherTurns = turns
	return true
}

// ClearWeather removes any weather, including primal.
func (f *Field) ClearWeather() {
	f.Weather = WeatherNone
	f.WeatherTurns = 0
}

// SetTerrain installs t for the given duration.
func (f *Field) SetTerrain(t Terrain, turns int) {
	f.Terrain = t
	f.TerrainTurns = turns
}

// AddAura registers one holder of a suppressive aura (e.g. a stat-dampening
// presence). Multiple holders of the same aura do not stack.
func (f *Field) AddAura(name string) {
	f.auraHolders[name]++
}

// RemoveAura drops one holder of the aura.
func (f *Field) RemoveAura(name string) {
	if f.auraHolders[name] > 0 {
		f.auraHolders[name]--
	}
	if f.auraHolders[name] == 0 {
		delete(f.auraHolders, name)
	}
}

// AuraActive reports whether at least one holder of the aura is present.
func (f *Field) AuraActive(name string) bool { return f.auraHolders[name] > 0 }

// WeatherNegationAura is the aura key registered by weather-suppressing
// presences such as cloud nine.
const WeatherNegationAura = "weather-negation"

// EffectiveWeather is the weather engines consult: a suppressive presence
// hides the weather without removing it, so it resumes when the holder
// leaves.
func (f *Field) EffectiveWeather() Weather {
	if f.AuraActive(WeatherNegationAura) {
		return WeatherNone
	}
	return f.Weather
}
