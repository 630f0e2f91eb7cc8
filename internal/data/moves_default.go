package data

func intp(v int) *int { return &v }

// defaultMoves is the built-in baseline move table. YAML files loaded into
// the registry extend or override it. Era deviations follow the original
// rulesets (power/accuracy/chance changes across generations).
var defaultMoves = map[string]MoveRecord{
	"tackle": {
		Name: "tackle", Type: "normal", Category: Physical, Power: 40, Accuracy: 100, PP: 35, Contact: true,
		Overrides: []MoveOverride{
			{MinGen: 1, MaxGen: 4, Power: intp(35), Accuracy: intp(95)},
			{MinGen: 5, MaxGen: 6, Power: intp(50)},
		},
	},
	"pound":        {Name: "pound", Type: "normal", Category: Physical, Power: 40, Accuracy: 100, PP: 35, Contact: true},
	"scratch":      {Name: "scratch", Type: "normal", Category: Physical, Power: 40, Accuracy: 100, PP: 35, Contact: true},
	"quick-attack": {Name: "quick-attack", Type: "normal", Category: Physical, Power: 40, Accuracy: 100, PP: 30, Contact: true, Priority: 1},
	"extreme-speed": {
		Name: "extreme-speed", Type: "normal", Category: Physical, Power: 80, Accuracy: 100, PP: 5, Contact: true, Priority: 2,
		IntroducedIn: 2,
	},
	"hyper-beam": {
		Name: "hyper-beam", Type: "normal", Category: Special, Power: 150, Accuracy: 90, PP: 5,
		Effect: EffectSpec{Recharge: true},
	},
	"giga-impact": {
		Name: "giga-impact", Type: "normal", Category: Physical, Power: 150, Accuracy: 90, PP: 5, Contact: true,
		IntroducedIn: 4, Effect: EffectSpec{Recharge: true},
	},
	"body-slam": {
		Name: "body-slam", Type: "normal", Category: Physical, Power: 85, Accuracy: 100, PP: 15, Contact: true,
		Effect: EffectSpec{Status: "par", StatusChance: 30},
	},
	"double-edge": {
		Name: "double-edge", Type: "normal", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Contact: true,
		Effect:    EffectSpec{RecoilPercent: 33},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 1, Power: intp(100)}},
	},
	"take-down": {
		Name: "take-down", Type: "normal", Category: Physical, Power: 90, Accuracy: 85, PP: 20, Contact: true,
		Effect: EffectSpec{RecoilPercent: 25},
	},
	"struggle": {
		Name: "struggle", Type: "typeless", Category: Physical, Power: 50, Accuracy: 0, PP: 1, Contact: true,
		Effect: EffectSpec{RecoilMaxHPPercent: 25},
	},
	"snore": {
		Name: "snore", Type: "normal", Category: Special, Power: 50, Accuracy: 100, PP: 15,
		IntroducedIn: 2, Sound: true, UsableAsleep: true,
		Effect: EffectSpec{FlinchChance: 30},
	},
	"swift": {Name: "swift", Type: "normal", Category: Special, Power: 60, Accuracy: 0, PP: 20, NeverMiss: true},
	"feint-attack": {
		Name: "feint-attack", Type: "dark", Category: Physical, Power: 60, Accuracy: 0, PP: 20, Contact: true,
		IntroducedIn: 2, NeverMiss: true,
	},
	"aerial-ace": {Name: "aerial-ace", Type: "flying", Category: Physical, Power: 60, Accuracy: 0, PP: 20, Contact: true, Slicing: true, IntroducedIn: 3, NeverMiss: true},
	"shock-wave": {Name: "shock-wave", Type: "electric", Category: Special, Power: 60, Accuracy: 0, PP: 20, IntroducedIn: 3, NeverMiss: true},

	// Electric
	"thunder-shock": {
		Name: "thunder-shock", Type: "electric", Category: Special, Power: 40, Accuracy: 100, PP: 30,
		Effect: EffectSpec{Status: "par", StatusChance: 10},
	},
	"thunderbolt": {
		Name: "thunderbolt", Type: "electric", Category: Special, Power: 90, Accuracy: 100, PP: 15,
		Effect:    EffectSpec{Status: "par", StatusChance: 10},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(95)}},
	},
	"thunder": {
		Name: "thunder", Type: "electric", Category: Special, Power: 110, Accuracy: 70, PP: 10,
		HitsInvulnerable: []string{"fly", "bounce"},
		WeatherAccuracy:  map[string]int{"rain": 0, "sun": 50},
		Effect:           EffectSpec{Status: "par", StatusChance: 30},
		Overrides: []MoveOverride{
			{MinGen: 1, MaxGen: 1, Power: intp(120), StatusChance: intp(10), WeatherAccuracy: map[string]int{}},
			{MinGen: 2, MaxGen: 5, Power: intp(120)},
		},
	},
	"thunder-wave": {
		Name: "thunder-wave", Type: "electric", Category: StatusCat, Accuracy: 90, PP: 20,
		Effect:    EffectSpec{Status: "par", StatusChance: 100},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 6, Accuracy: intp(100)}},
	},
	"nuzzle": {
		Name: "nuzzle", Type: "electric", Category: Physical, Power: 20, Accuracy: 100, PP: 20, Contact: true,
		IntroducedIn: 6, Effect: EffectSpec{Status: "par", StatusChance: 100},
	},
	"volt-tackle": {
		Name: "volt-tackle", Type: "electric", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Contact: true,
		IntroducedIn: 3, Effect: EffectSpec{Status: "par", StatusChance: 10, RecoilPercent: 33},
	},
	"electro-ball": {
		Name: "electro-ball", Type: "electric", Category: Special, Accuracy: 100, PP: 10,
		IntroducedIn: 5, VariablePower: "electro-ball",
	},

	// Fire
	"ember": {
		Name: "ember", Type: "fire", Category: Special, Power: 40, Accuracy: 100, PP: 25,
		Effect: EffectSpec{Status: "brn", StatusChance: 10},
	},
	"flamethrower": {
		Name: "flamethrower", Type: "fire", Category: Special, Power: 90, Accuracy: 100, PP: 15,
		Effect:    EffectSpec{Status: "brn", StatusChance: 10},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(95)}},
	},
	"fire-blast": {
		Name: "fire-blast", Type: "fire", Category: Special, Power: 110, Accuracy: 85, PP: 5,
		Effect: EffectSpec{Status: "brn", StatusChance: 10},
		Overrides: []MoveOverride{
			{MinGen: 1, MaxGen: 1, Power: intp(120), StatusChance: intp(30)},
			{MinGen: 2, MaxGen: 5, Power: intp(120)},
		},
	},
	"fire-punch": {
		Name: "fire-punch", Type: "fire", Category: Physical, Power: 75, Accuracy: 100, PP: 15, Contact: true, Punch: true,
		Effect: EffectSpec{Status: "brn", StatusChance: 10},
	},
	"flare-blitz": {
		Name: "flare-blitz", Type: "fire", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Contact: true,
		IntroducedIn: 4, Effect: EffectSpec{Status: "brn", StatusChance: 10, RecoilPercent: 33},
	},
	"sacred-fire": {
		Name: "sacred-fire", Type: "fire", Category: Physical, Power: 100, Accuracy: 95, PP: 5,
		IntroducedIn: 2, Effect: EffectSpec{Status: "brn", StatusChance: 50},
	},
	"eruption": {
		Name: "eruption", Type: "fire", Category: Special, Accuracy: 100, PP: 5,
		IntroducedIn: 3, VariablePower: "eruption",
	},
	"will-o-wisp": {
		Name: "will-o-wisp", Type: "fire", Category: StatusCat, Accuracy: 85, PP: 15,
		IntroducedIn: 3, Effect: EffectSpec{Status: "brn", StatusChance: 100},
		Overrides: []MoveOverride{{MinGen: 3, MaxGen: 5, Accuracy: intp(75)}},
	},
	"solar-beam": {
		Name: "solar-beam", Type: "grass", Category: Special, Power: 120, Accuracy: 100, PP: 10,
		Effect: EffectSpec{Charge: true},
	},

	// Water / Ice
	"surf":       {Name: "surf", Type: "water", Category: Special, Power: 90, Accuracy: 100, PP: 15, HitsInvulnerable: []string{"dive"}, Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(95)}}},
	"hydro-pump": {Name: "hydro-pump", Type: "water", Category: Special, Power: 110, Accuracy: 80, PP: 5, Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(120)}}},
	"water-gun":  {Name: "water-gun", Type: "water", Category: Special, Power: 40, Accuracy: 100, PP: 25},
	"waterfall": {
		Name: "waterfall", Type: "water", Category: Physical, Power: 80, Accuracy: 100, PP: 15, Contact: true,
		Effect:    EffectSpec{FlinchChance: 20},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 3, StatusChance: intp(0)}},
	},
	"water-shuriken": {
		Name: "water-shuriken", Type: "water", Category: Special, Power: 15, Accuracy: 100, PP: 20, Priority: 1,
		IntroducedIn: 6, Effect: EffectSpec{HitsMin: 2, HitsMax: 5},
	},
	"ice-beam": {
		Name: "ice-beam", Type: "ice", Category: Special, Power: 90, Accuracy: 100, PP: 10,
		Effect:    EffectSpec{Status: "frz", StatusChance: 10},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(95)}},
	},
	"blizzard": {
		Name: "blizzard", Type: "ice", Category: Special, Power: 110, Accuracy: 70, PP: 5,
		Effect: EffectSpec{Status: "frz", StatusChance: 10},
		Overrides: []MoveOverride{
			{MinGen: 1, MaxGen: 1, Power: intp(120), Accuracy: intp(90)},
			{MinGen: 2, MaxGen: 3, Power: intp(120)},
			{MinGen: 4, MaxGen: 5, Power: intp(120), WeatherAccuracy: map[string]int{"hail": 0}},
			{MinGen: 6, WeatherAccuracy: map[string]int{"hail": 0, "snow": 0}},
		},
	},
	"icicle-spear": {
		Name: "icicle-spear", Type: "ice", Category: Physical, Power: 25, Accuracy: 100, PP: 30,
		IntroducedIn: 3, Effect: EffectSpec{HitsMin: 2, HitsMax: 5},
		Overrides:    []MoveOverride{{MinGen: 3, MaxGen: 4, Power: intp(10)}},
	},

	// Grass
	"absorb":     {Name: "absorb", Type: "grass", Category: Special, Power: 20, Accuracy: 100, PP: 25, Effect: EffectSpec{DrainPercent: 50}},
	"mega-drain": {Name: "mega-drain", Type: "grass", Category: Special, Power: 40, Accuracy: 100, PP: 15, Effect: EffectSpec{DrainPercent: 50}},
	"giga-drain": {
		Name: "giga-drain", Type: "grass", Category: Special, Power: 75, Accuracy: 100, PP: 10,
		IntroducedIn: 2, Effect: EffectSpec{DrainPercent: 50},
		Overrides:    []MoveOverride{{MinGen: 2, MaxGen: 4, Power: intp(60)}},
	},
	"leech-seed": {
		Name: "leech-seed", Type: "grass", Category: StatusCat, Accuracy: 90, PP: 10,
		Effect: EffectSpec{LeechSeed: true},
	},
	"sleep-powder": {
		Name: "sleep-powder", Type: "grass", Category: StatusCat, Accuracy: 75, PP: 15,
		Effect: EffectSpec{Status: "slp", StatusChance: 100},
	},
	"spore": {
		Name: "spore", Type: "grass", Category: StatusCat, Accuracy: 100, PP: 15,
		Effect: EffectSpec{Status: "slp", StatusChance: 100},
	},
	"stun-spore": {
		Name: "stun-spore", Type: "grass", Category: StatusCat, Accuracy: 75, PP: 30,
		Effect: EffectSpec{Status: "par", StatusChance: 100},
	},
	"wood-hammer": {
		Name: "wood-hammer", Type: "grass", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Contact: true,
		IntroducedIn: 4, Effect: EffectSpec{RecoilPercent: 33},
	},
	"bullet-seed": {
		Name: "bullet-seed", Type: "grass", Category: Physical, Power: 25, Accuracy: 100, PP: 30, Bullet: true,
		IntroducedIn: 3, Effect: EffectSpec{HitsMin: 2, HitsMax: 5},
		Overrides:    []MoveOverride{{MinGen: 3, MaxGen: 4, Power: intp(10)}},
	},

	// Poison / toxic family
	"sludge-bomb": {
		Name: "sludge-bomb", Type: "poison", Category: Special, Power: 90, Accuracy: 100, PP: 10, Bullet: true,
		IntroducedIn: 2, Effect: EffectSpec{Status: "psn", StatusChance: 30},
	},
	"poison-powder": {
		Name: "poison-powder", Type: "poison", Category: StatusCat, Accuracy: 75, PP: 35,
		Effect: EffectSpec{Status: "psn", StatusChance: 100},
	},
	"toxic": {
		Name: "toxic", Type: "poison", Category: StatusCat, Accuracy: 90, PP: 10,
		Effect:    EffectSpec{Status: "tox", StatusChance: 100},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 4, Accuracy: intp(85)}},
	},

	// Fighting
	"counter": {
		Name: "counter", Type: "fighting", Category: Physical, Accuracy: 100, PP: 20, Contact: true, Priority: -5,
		Effect: EffectSpec{Counter: "physical"},
	},
	"mirror-coat": {
		Name: "mirror-coat", Type: "psychic", Category: Special, Accuracy: 100, PP: 20, Priority: -5,
		IntroducedIn: 2, Effect: EffectSpec{Counter: "special"},
	},
	"metal-burst": {
		Name: "metal-burst", Type: "steel", Category: Physical, Accuracy: 100, PP: 10,
		IntroducedIn: 4, Effect: EffectSpec{Counter: "any"},
	},
	"seismic-toss": {
		Name: "seismic-toss", Type: "fighting", Category: Physical, Accuracy: 100, PP: 20, Contact: true,
		Effect: EffectSpec{Fixed: "level"},
	},
	"high-jump-kick": {
		Name: "high-jump-kick", Type: "fighting", Category: Physical, Power: 130, Accuracy: 90, PP: 10, Contact: true,
		Effect:    EffectSpec{CrashDamage: true},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 3, Power: intp(85)}, {MinGen: 4, MaxGen: 4, Power: intp(100)}},
	},
	"double-kick": {
		Name: "double-kick", Type: "fighting", Category: Physical, Power: 30, Accuracy: 100, PP: 30, Contact: true,
		Effect: EffectSpec{HitsMin: 2, HitsMax: 2},
	},
	"triple-kick": {
		Name: "triple-kick", Type: "fighting", Category: Physical, Power: 10, Accuracy: 90, PP: 10, Contact: true,
		IntroducedIn: 2, Effect: EffectSpec{HitsMin: 3, HitsMax: 3, PerHitAccuracy: true},
	},
	"close-combat": {
		Name: "close-combat", Type: "fighting", Category: Physical, Power: 120, Accuracy: 100, PP: 5, Contact: true,
		IntroducedIn: 4, Effect: EffectSpec{SelfStats: map[string]int{"def": -1, "spd": -1}},
	},
	"drain-punch": {
		Name: "drain-punch", Type: "fighting", Category: Physical, Power: 75, Accuracy: 100, PP: 10, Contact: true, Punch: true,
		IntroducedIn: 4, Effect: EffectSpec{DrainPercent: 50},
		Overrides:    []MoveOverride{{MinGen: 4, MaxGen: 4, Power: intp(60)}},
	},
	"low-kick": {
		Name: "low-kick", Type: "fighting", Category: Physical, Accuracy: 100, PP: 20, Contact: true,
		VariablePower: "weight",
	},
	"reversal": {
		Name: "reversal", Type: "fighting", Category: Physical, Accuracy: 100, PP: 15, Contact: true,
		IntroducedIn: 2, VariablePower: "flail",
	},
	"superpower": {
		Name: "superpower", Type: "fighting", Category: Physical, Power: 120, Accuracy: 100, PP: 5, Contact: true,
		IntroducedIn: 3, Effect: EffectSpec{SelfStats: map[string]int{"atk": -1, "def": -1}},
	},

	// Ground / Rock
	"earthquake": {Name: "earthquake", Type: "ground", Category: Physical, Power: 100, Accuracy: 100, PP: 10, HitsInvulnerable: []string{"dig"}},
	"dig": {
		Name: "dig", Type: "ground", Category: Physical, Power: 80, Accuracy: 100, PP: 10, Contact: true,
		Effect:    EffectSpec{Charge: true, SemiInvulnerable: "dig"},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 1, Power: intp(100)}, {MinGen: 2, MaxGen: 3, Power: intp(60)}},
	},
	"fissure": {
		Name: "fissure", Type: "ground", Category: Physical, Accuracy: 30, PP: 5,
		Effect: EffectSpec{OHKO: true},
	},
	"rock-slide": {
		Name: "rock-slide", Type: "rock", Category: Physical, Power: 75, Accuracy: 90, PP: 10,
		Effect:    EffectSpec{FlinchChance: 30},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 1, StatusChance: intp(0)}},
	},
	"stone-edge": {
		Name: "stone-edge", Type: "rock", Category: Physical, Power: 100, Accuracy: 80, PP: 5,
		IntroducedIn: 4, HighCrit: true,
	},
	"rock-blast": {
		Name: "rock-blast", Type: "rock", Category: Physical, Power: 25, Accuracy: 90, PP: 10, Bullet: true,
		IntroducedIn: 3, Effect: EffectSpec{HitsMin: 2, HitsMax: 5},
		Overrides:    []MoveOverride{{MinGen: 5, Accuracy: intp(90)}, {MinGen: 3, MaxGen: 4, Accuracy: intp(80)}},
	},
	"stealth-rock": {
		Name: "stealth-rock", Type: "rock", Category: StatusCat, PP: 20,
		IntroducedIn: 4, Effect: EffectSpec{Hazard: "stealth-rock"},
	},
	"spikes": {
		Name: "spikes", Type: "ground", Category: StatusCat, PP: 20,
		IntroducedIn: 2, Effect: EffectSpec{Hazard: "spikes"},
	},
	"toxic-spikes": {
		Name: "toxic-spikes", Type: "poison", Category: StatusCat, PP: 20,
		IntroducedIn: 4, Effect: EffectSpec{Hazard: "toxic-spikes"},
	},
	"sticky-web": {
		Name: "sticky-web", Type: "bug", Category: StatusCat, PP: 20,
		IntroducedIn: 6, Effect: EffectSpec{Hazard: "sticky-web"},
	},

	// Flying
	"fly": {
		Name: "fly", Type: "flying", Category: Physical, Power: 90, Accuracy: 95, PP: 15, Contact: true,
		Effect:    EffectSpec{Charge: true, SemiInvulnerable: "fly"},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 3, Power: intp(70)}},
	},
	"bounce": {
		Name: "bounce", Type: "flying", Category: Physical, Power: 85, Accuracy: 85, PP: 5, Contact: true,
		IntroducedIn: 3,
		Effect:       EffectSpec{Charge: true, SemiInvulnerable: "bounce", Status: "par", StatusChance: 30},
	},
	"brave-bird": {
		Name: "brave-bird", Type: "flying", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Contact: true,
		IntroducedIn: 4, Effect: EffectSpec{RecoilPercent: 33},
	},
	"hurricane": {
		Name: "hurricane", Type: "flying", Category: Special, Power: 110, Accuracy: 70, PP: 10, Wind: true,
		IntroducedIn: 5, HitsInvulnerable: []string{"fly", "bounce"},
		WeatherAccuracy: map[string]int{"rain": 0, "sun": 50},
		Effect:          EffectSpec{Volatile: "confusion", VolatileChance: 30, VolatileMin: 2, VolatileMax: 5},
		Overrides:    []MoveOverride{{MinGen: 5, MaxGen: 5, Power: intp(120)}},
	},
	"gust":      {Name: "gust", Type: "flying", Category: Special, Power: 40, Accuracy: 100, PP: 35, Wind: true, HitsInvulnerable: []string{"fly", "bounce"}},
	"acrobatics": {Name: "acrobatics", Type: "flying", Category: Physical, Power: 55, Accuracy: 100, PP: 15, Contact: true, IntroducedIn: 5, VariablePower: "acrobatics"},

	// Psychic / Ghost / Dark
	"psychic": {
		Name: "psychic", Type: "psychic", Category: Special, Power: 90, Accuracy: 100, PP: 10,
		Effect: EffectSpec{TargetStats: map[string]int{"spd": -1}, TargetStatChance: 10},
	},
	"psywave": {
		Name: "psywave", Type: "psychic", Category: Special, Accuracy: 100, PP: 15,
		Effect:    EffectSpec{Fixed: "psywave"},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 6, Accuracy: intp(80)}, {MinGen: 8, Banned: true}},
	},
	"dream-eater": {
		Name: "dream-eater", Type: "psychic", Category: Special, Power: 100, Accuracy: 100, PP: 15,
		Effect: EffectSpec{DrainPercent: 50},
	},
	"confuse-ray": {
		Name: "confuse-ray", Type: "ghost", Category: StatusCat, Accuracy: 100, PP: 10,
		Effect: EffectSpec{Volatile: "confusion", VolatileChance: 100, VolatileMin: 2, VolatileMax: 5},
	},
	"shadow-ball": {
		Name: "shadow-ball", Type: "ghost", Category: Special, Power: 80, Accuracy: 100, PP: 15, Bullet: true,
		IntroducedIn: 2, Effect: EffectSpec{TargetStats: map[string]int{"spd": -1}, TargetStatChance: 20},
	},
	"lick": {
		Name: "lick", Type: "ghost", Category: Physical, Power: 30, Accuracy: 100, PP: 30, Contact: true,
		Effect:    EffectSpec{Status: "par", StatusChance: 30},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(20)}},
	},
	"night-shade": {
		Name: "night-shade", Type: "ghost", Category: Special, Accuracy: 100, PP: 15,
		Effect: EffectSpec{Fixed: "level"},
	},
	"crunch": {
		Name: "crunch", Type: "dark", Category: Physical, Power: 80, Accuracy: 100, PP: 15, Contact: true, Bite: true,
		IntroducedIn: 2,
		Effect:       EffectSpec{TargetStats: map[string]int{"def": -1}, TargetStatChance: 20},
	},
	"payback": {
		Name: "payback", Type: "dark", Category: Physical, Power: 50, Accuracy: 100, PP: 10, Contact: true,
		IntroducedIn: 4, VariablePower: "payback",
	},

	// Bug / Dragon / Steel / Fairy
	"twineedle": {
		Name: "twineedle", Type: "bug", Category: Physical, Power: 25, Accuracy: 100, PP: 20,
		Effect: EffectSpec{HitsMin: 2, HitsMax: 2, Status: "psn", StatusChance: 20},
	},
	"fury-swipes": {
		Name: "fury-swipes", Type: "normal", Category: Physical, Power: 18, Accuracy: 80, PP: 15, Contact: true,
		Effect: EffectSpec{HitsMin: 2, HitsMax: 5},
	},
	"pin-missile": {
		Name: "pin-missile", Type: "bug", Category: Physical, Power: 25, Accuracy: 95, PP: 20,
		Effect:    EffectSpec{HitsMin: 2, HitsMax: 5},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 5, Power: intp(14), Accuracy: intp(85)}},
	},
	"megahorn":     {Name: "megahorn", Type: "bug", Category: Physical, Power: 120, Accuracy: 85, PP: 10, Contact: true, IntroducedIn: 2},
	"dragon-rage":  {Name: "dragon-rage", Type: "dragon", Category: Special, Accuracy: 100, PP: 10, Effect: EffectSpec{Fixed: "dragon-rage"}},
	"sonic-boom":   {Name: "sonic-boom", Type: "normal", Category: Special, Accuracy: 90, PP: 20, Effect: EffectSpec{Fixed: "sonic-boom"}},
	"super-fang":   {Name: "super-fang", Type: "normal", Category: Physical, Accuracy: 90, PP: 10, Contact: true, Effect: EffectSpec{Fixed: "super-fang"}},
	"endeavor":     {Name: "endeavor", Type: "normal", Category: Physical, Accuracy: 100, PP: 5, Contact: true, IntroducedIn: 3, Effect: EffectSpec{Fixed: "endeavor"}},
	"final-gambit": {Name: "final-gambit", Type: "fighting", Category: Special, Accuracy: 100, PP: 5, IntroducedIn: 5, Effect: EffectSpec{Fixed: "final-gambit"}},
	"outrage": {
		Name: "outrage", Type: "dragon", Category: Physical, Power: 120, Accuracy: 100, PP: 10, Contact: true,
		IntroducedIn: 2, Effect: EffectSpec{Rampage: true},
		Overrides:    []MoveOverride{{MinGen: 2, MaxGen: 3, Power: intp(90)}},
	},
	"thrash": {
		Name: "thrash", Type: "normal", Category: Physical, Power: 120, Accuracy: 100, PP: 10, Contact: true,
		Effect:    EffectSpec{Rampage: true},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 4, Power: intp(90)}},
	},
	"dragon-claw": {Name: "dragon-claw", Type: "dragon", Category: Physical, Power: 80, Accuracy: 100, PP: 15, Contact: true, IntroducedIn: 3},
	"draco-meteor": {
		Name: "draco-meteor", Type: "dragon", Category: Special, Power: 130, Accuracy: 90, PP: 5,
		IntroducedIn: 4, Effect: EffectSpec{SelfStats: map[string]int{"spa": -2}},
		Overrides:    []MoveOverride{{MinGen: 4, MaxGen: 5, Power: intp(140)}},
	},
	"gyro-ball":   {Name: "gyro-ball", Type: "steel", Category: Physical, Accuracy: 100, PP: 5, Contact: true, IntroducedIn: 4, VariablePower: "gyro-ball"},
	"iron-head":   {Name: "iron-head", Type: "steel", Category: Physical, Power: 80, Accuracy: 100, PP: 15, Contact: true, IntroducedIn: 4, Effect: EffectSpec{FlinchChance: 30}},
	"moonblast":   {Name: "moonblast", Type: "fairy", Category: Special, Power: 95, Accuracy: 100, PP: 15, IntroducedIn: 6, Effect: EffectSpec{TargetStats: map[string]int{"spa": -1}, TargetStatChance: 30}},
	"play-rough":  {Name: "play-rough", Type: "fairy", Category: Physical, Power: 90, Accuracy: 90, PP: 10, Contact: true, IntroducedIn: 6, Effect: EffectSpec{TargetStats: map[string]int{"atk": -1}, TargetStatChance: 10}},
	"guillotine":  {Name: "guillotine", Type: "normal", Category: Physical, Accuracy: 30, PP: 5, Contact: true, Effect: EffectSpec{OHKO: true}},
	"horn-drill":  {Name: "horn-drill", Type: "normal", Category: Physical, Accuracy: 30, PP: 5, Contact: true, Effect: EffectSpec{OHKO: true}},
	"sheer-cold": {
		Name: "sheer-cold", Type: "ice", Category: Special, Accuracy: 30, PP: 5,
		IntroducedIn: 3, Effect: EffectSpec{OHKO: true},
	},

	// Stat / field / utility status moves
	"swords-dance": {Name: "swords-dance", Type: "normal", Category: StatusCat, PP: 20, Effect: EffectSpec{SelfStats: map[string]int{"atk": 2}}},
	"growl":        {Name: "growl", Type: "normal", Category: StatusCat, Accuracy: 100, PP: 40, Sound: true, Effect: EffectSpec{TargetStats: map[string]int{"atk": -1}}},
	"tail-whip":    {Name: "tail-whip", Type: "normal", Category: StatusCat, Accuracy: 100, PP: 30, Effect: EffectSpec{TargetStats: map[string]int{"def": -1}}},
	"agility":      {Name: "agility", Type: "psychic", Category: StatusCat, PP: 30, Effect: EffectSpec{SelfStats: map[string]int{"spe": 2}}},
	"nasty-plot":   {Name: "nasty-plot", Type: "dark", Category: StatusCat, PP: 20, IntroducedIn: 4, Effect: EffectSpec{SelfStats: map[string]int{"spa": 2}}},
	"calm-mind":    {Name: "calm-mind", Type: "psychic", Category: StatusCat, PP: 20, IntroducedIn: 3, Effect: EffectSpec{SelfStats: map[string]int{"spa": 1, "spd": 1}}},
	"screech":      {Name: "screech", Type: "normal", Category: StatusCat, Accuracy: 85, PP: 40, Sound: true, Effect: EffectSpec{TargetStats: map[string]int{"def": -2}}},
	"sand-attack":  {Name: "sand-attack", Type: "ground", Category: StatusCat, Accuracy: 100, PP: 15, Effect: EffectSpec{TargetStats: map[string]int{"acc": -1}}},
	"double-team":  {Name: "double-team", Type: "normal", Category: StatusCat, PP: 15, Effect: EffectSpec{SelfStats: map[string]int{"eva": 1}}},
	"haze":         {Name: "haze", Type: "ice", Category: StatusCat, PP: 30, Effect: EffectSpec{ResetStages: true}},
	"recover":      {Name: "recover", Type: "normal", Category: StatusCat, PP: 5, Effect: EffectSpec{HealPercent: 50}},
	"roost":        {Name: "roost", Type: "flying", Category: StatusCat, PP: 5, IntroducedIn: 4, Effect: EffectSpec{HealPercent: 50}},
	"protect":      {Name: "protect", Type: "normal", Category: StatusCat, PP: 10, Priority: 4, IntroducedIn: 2, Effect: EffectSpec{Protection: true}},
	"detect":       {Name: "detect", Type: "fighting", Category: StatusCat, PP: 5, Priority: 4, IntroducedIn: 2, Effect: EffectSpec{Protection: true}},
	"reflect":      {Name: "reflect", Type: "psychic", Category: StatusCat, PP: 20, Effect: EffectSpec{Screen: "reflect"}},
	"light-screen": {Name: "light-screen", Type: "psychic", Category: StatusCat, PP: 30, Effect: EffectSpec{Screen: "light-screen"}},
	"aurora-veil":  {Name: "aurora-veil", Type: "ice", Category: StatusCat, PP: 20, IntroducedIn: 7, Effect: EffectSpec{Screen: "aurora-veil"}},
	"safeguard":    {Name: "safeguard", Type: "normal", Category: StatusCat, PP: 25, IntroducedIn: 2, Effect: EffectSpec{Screen: "safeguard"}},
	"mist":         {Name: "mist", Type: "ice", Category: StatusCat, PP: 30, Effect: EffectSpec{Screen: "mist"}},
	"tailwind":     {Name: "tailwind", Type: "flying", Category: StatusCat, PP: 15, IntroducedIn: 4, Effect: EffectSpec{Screen: "tailwind"}},
	"rain-dance":   {Name: "rain-dance", Type: "water", Category: StatusCat, PP: 5, IntroducedIn: 2, Effect: EffectSpec{Weather: "rain"}},
	"sunny-day":    {Name: "sunny-day", Type: "fire", Category: StatusCat, PP: 5, IntroducedIn: 2, Effect: EffectSpec{Weather: "sun"}},
	"sandstorm":    {Name: "sandstorm", Type: "rock", Category: StatusCat, PP: 10, IntroducedIn: 2, Effect: EffectSpec{Weather: "sandstorm"}},
	"hail":         {Name: "hail", Type: "ice", Category: StatusCat, PP: 10, IntroducedIn: 3, Effect: EffectSpec{Weather: "hail"}, Overrides: []MoveOverride{{MinGen: 9, Banned: true}}},
	"snowscape":    {Name: "snowscape", Type: "ice", Category: StatusCat, PP: 10, IntroducedIn: 9, Effect: EffectSpec{Weather: "snow"}},
	"electric-terrain": {Name: "electric-terrain", Type: "electric", Category: StatusCat, PP: 10, IntroducedIn: 6, Effect: EffectSpec{Terrain: "electric"}},
	"grassy-terrain":   {Name: "grassy-terrain", Type: "grass", Category: StatusCat, PP: 10, IntroducedIn: 6, Effect: EffectSpec{Terrain: "grassy"}},
	"misty-terrain":    {Name: "misty-terrain", Type: "fairy", Category: StatusCat, PP: 10, IntroducedIn: 6, Effect: EffectSpec{Terrain: "misty"}},
	"psychic-terrain":  {Name: "psychic-terrain", Type: "psychic", Category: StatusCat, PP: 10, IntroducedIn: 7, Effect: EffectSpec{Terrain: "psychic"}},
	"whirlwind":        {Name: "whirlwind", Type: "normal", Category: StatusCat, PP: 20, Priority: -6, Effect: EffectSpec{ForcesSwitch: true}},
	"roar":             {Name: "roar", Type: "normal", Category: StatusCat, PP: 20, Priority: -6, Sound: true, Effect: EffectSpec{ForcesSwitch: true}},
	"taunt":            {Name: "taunt", Type: "dark", Category: StatusCat, Accuracy: 100, PP: 20, IntroducedIn: 3, Effect: EffectSpec{Volatile: "taunt", VolatileChance: 100, VolatileMin: 3, VolatileMax: 3}},
	"encore":           {Name: "encore", Type: "normal", Category: StatusCat, Accuracy: 100, PP: 5, IntroducedIn: 2, Effect: EffectSpec{Volatile: "encore", VolatileChance: 100, VolatileMin: 3, VolatileMax: 3}},
	"disable":          {Name: "disable", Type: "normal", Category: StatusCat, Accuracy: 100, PP: 20, Effect: EffectSpec{Volatile: "disable", VolatileChance: 100, VolatileMin: 4, VolatileMax: 4}},
	"attract":          {Name: "attract", Type: "normal", Category: StatusCat, Accuracy: 100, PP: 15, IntroducedIn: 2, Effect: EffectSpec{Volatile: "infatuation", VolatileChance: 100, VolatileMin: -1, VolatileMax: -1}},
	"lock-on":          {Name: "lock-on", Type: "normal", Category: StatusCat, PP: 5, IntroducedIn: 2, Effect: EffectSpec{Volatile: "lock-on", VolatileChance: 100, VolatileMin: 2, VolatileMax: 2}},
	"mind-reader":      {Name: "mind-reader", Type: "normal", Category: StatusCat, PP: 5, IntroducedIn: 2, Effect: EffectSpec{Volatile: "lock-on", VolatileChance: 100, VolatileMin: 2, VolatileMax: 2}},
	"substitute":       {Name: "substitute", Type: "normal", Category: StatusCat, PP: 10, Effect: EffectSpec{Volatile: "substitute", VolatileChance: 100, VolatileMin: -1, VolatileMax: -1}},
	"wrap":             {Name: "wrap", Type: "normal", Category: Physical, Power: 15, Accuracy: 90, PP: 20, Contact: true, Effect: EffectSpec{Trap: true}},
	"fire-spin": {
		Name: "fire-spin", Type: "fire", Category: Special, Power: 35, Accuracy: 85, PP: 15,
		Effect:    EffectSpec{Trap: true},
		Overrides: []MoveOverride{{MinGen: 1, MaxGen: 4, Power: intp(15), Accuracy: intp(70)}},
	},
	"facade": {Name: "facade", Type: "normal", Category: Physical, Power: 70, Accuracy: 100, PP: 20, Contact: true, IntroducedIn: 3, VariablePower: "facade"},
	"hex":    {Name: "hex", Type: "ghost", Category: Special, Power: 65, Accuracy: 100, PP: 10, IntroducedIn: 5, VariablePower: "hex", Overrides: []MoveOverride{{MinGen: 5, MaxGen: 5, Power: intp(50)}}},
	"flail":  {Name: "flail", Type: "normal", Category: Physical, Accuracy: 100, PP: 15, Contact: true, IntroducedIn: 2, VariablePower: "flail"},
	"return": {Name: "return", Type: "normal", Category: Physical, Accuracy: 100, PP: 20, Contact: true, IntroducedIn: 2, VariablePower: "return"},
	"frustration": {Name: "frustration", Type: "normal", Category: Physical, Accuracy: 100, PP: 20, Contact: true, IntroducedIn: 2, VariablePower: "frustration"},
	"grass-knot":  {Name: "grass-knot", Type: "grass", Category: Special, Accuracy: 100, PP: 20, Contact: true, IntroducedIn: 4, VariablePower: "weight"},
	"slash":       {Name: "slash", Type: "normal", Category: Physical, Power: 70, Accuracy: 100, PP: 20, Contact: true, Slicing: true, HighCrit: true},
	"razor-leaf":  {Name: "razor-leaf", Type: "grass", Category: Physical, Power: 55, Accuracy: 95, PP: 25, Slicing: true, HighCrit: true},
	"frost-breath": {Name: "frost-breath", Type: "ice", Category: Special, Power: 60, Accuracy: 90, PP: 10, IntroducedIn: 5, AlwaysCrit: true},
	"storm-throw":  {Name: "storm-throw", Type: "fighting", Category: Physical, Power: 60, Accuracy: 100, PP: 10, Contact: true, IntroducedIn: 5, AlwaysCrit: true},
	"population-bomb": {
		Name: "population-bomb", Type: "normal", Category: Physical, Power: 20, Accuracy: 90, PP: 10, Contact: true, Slicing: true,
		IntroducedIn: 9, Effect: EffectSpec{HitsMin: 1, HitsMax: 10, PerHitAccuracy: true},
	},
}
