package data

// defaultAbilities is the built-in baseline ability table. Conditions are
// CEL formulas compiled once at battle setup (see internal/rules).
var defaultAbilities = map[string]AbilityRecord{
	"blaze": {
		Name: "blaze",
		PowerMods: []PowerMod{{MoveType: "fire", Num: 3, Den: 2, Condition: "user.hp * 3 <= user.max_hp"}},
	},
	"torrent": {
		Name: "torrent",
		PowerMods: []PowerMod{{MoveType: "water", Num: 3, Den: 2, Condition: "user.hp * 3 <= user.max_hp"}},
	},
	"overgrow": {
		Name: "overgrow",
		PowerMods: []PowerMod{{MoveType: "grass", Num: 3, Den: 2, Condition: "user.hp * 3 <= user.max_hp"}},
	},
	"swarm": {
		Name: "swarm",
		PowerMods: []PowerMod{{MoveType: "bug", Num: 3, Den: 2, Condition: "user.hp * 3 <= user.max_hp"}},
	},
	"guts": {
		Name:     "guts",
		StatMods: []StatMod{{Stat: "atk", Num: 3, Den: 2, Condition: "user.status != ''"}},
	},
	"huge-power":  {Name: "huge-power", StatMods: []StatMod{{Stat: "atk", Num: 2, Den: 1}}},
	"pure-power":  {Name: "pure-power", StatMods: []StatMod{{Stat: "atk", Num: 2, Den: 1}}},
	"hustle":      {Name: "hustle", StatMods: []StatMod{{Stat: "atk", Num: 3, Den: 2}, {Stat: "acc", Num: 4, Den: 5, Condition: "move.category == 'physical'"}}},
	"chlorophyll": {Name: "chlorophyll", StatMods: []StatMod{{Stat: "spe", Num: 2, Den: 1, Condition: "field.weather == 'sun'"}}},
	"swift-swim":  {Name: "swift-swim", StatMods: []StatMod{{Stat: "spe", Num: 2, Den: 1, Condition: "field.weather == 'rain'"}}},
	"sand-rush":   {Name: "sand-rush", IntroducedIn: 5, StatMods: []StatMod{{Stat: "spe", Num: 2, Den: 1, Condition: "field.weather == 'sandstorm'"}}},
	"slush-rush":  {Name: "slush-rush", IntroducedIn: 7, StatMods: []StatMod{{Stat: "spe", Num: 2, Den: 1, Condition: "field.weather == 'hail' || field.weather == 'snow'"}}},
	"solar-power": {
		Name: "solar-power", IntroducedIn: 4,
		StatMods: []StatMod{{Stat: "spa", Num: 3, Den: 2, Condition: "field.weather == 'sun'"}},
	},
	"thick-fat": {
		Name: "thick-fat",
		DefenseMods: []PowerMod{
			{MoveType: "fire", Num: 1, Den: 2},
			{MoveType: "ice", Num: 1, Den: 2},
		},
	},
	"filter":      {Name: "filter", IntroducedIn: 4, DefenseMods: []PowerMod{{Num: 3, Den: 4, Condition: "effectiveness > 1.0"}}},
	"solid-rock":  {Name: "solid-rock", IntroducedIn: 4, DefenseMods: []PowerMod{{Num: 3, Den: 4, Condition: "effectiveness > 1.0"}}},
	"multiscale":  {Name: "multiscale", IntroducedIn: 5, DefenseMods: []PowerMod{{Num: 1, Den: 2, Condition: "target.hp == target.max_hp"}}},
	"tinted-lens": {Name: "tinted-lens", IntroducedIn: 4, TintedLens: true},

	"levitate":      {Name: "levitate", ImmuneType: "ground"},
	"volt-absorb":   {Name: "volt-absorb", ImmuneType: "electric", AbsorbHealPercent: 25},
	"water-absorb":  {Name: "water-absorb", ImmuneType: "water", AbsorbHealPercent: 25},
	"flash-fire":    {Name: "flash-fire", ImmuneType: "fire"},
	"lightning-rod": {Name: "lightning-rod", IntroducedIn: 5, ImmuneType: "electric", AbsorbStat: "spa"},
	"storm-drain":   {Name: "storm-drain", IntroducedIn: 5, ImmuneType: "water", AbsorbStat: "spa"},
	"motor-drive":   {Name: "motor-drive", IntroducedIn: 4, ImmuneType: "electric", AbsorbStat: "spe"},
	"sap-sipper":    {Name: "sap-sipper", IntroducedIn: 5, ImmuneType: "grass", AbsorbStat: "atk"},
	"wonder-guard":  {Name: "wonder-guard", WonderGuard: true},

	"limber":      {Name: "limber", BlocksStatus: []string{"par"}},
	"immunity":    {Name: "immunity", BlocksStatus: []string{"psn", "tox"}},
	"insomnia":    {Name: "insomnia", BlocksStatus: []string{"slp"}},
	"vital-spirit": {Name: "vital-spirit", BlocksStatus: []string{"slp"}},
	"water-veil":  {Name: "water-veil", BlocksStatus: []string{"brn"}},
	"magma-armor": {Name: "magma-armor", BlocksStatus: []string{"frz"}},
	"inner-focus": {Name: "inner-focus", BlocksFlinch: true},
	"own-tempo":   {Name: "own-tempo", BlocksStatus: []string{"confusion"}},
	"oblivious":   {Name: "oblivious", BlocksStatus: []string{"infatuation"}},
	"soundproof":  {Name: "soundproof", BlocksSound: true},
	"bulletproof": {Name: "bulletproof", IntroducedIn: 6, BlocksBullet: true},
	"clear-body":  {Name: "clear-body", BlocksStatDrops: true},
	"white-smoke": {Name: "white-smoke", BlocksStatDrops: true},
	"hyper-cutter": {Name: "hyper-cutter", BlockedStats: []string{"atk"}},
	"keen-eye":    {Name: "keen-eye", BlockedStats: []string{"acc"}},

	"static": {
		Name:      "static",
		OnContact: &ContactEffect{Status: "par", Chance: 30},
	},
	"poison-point": {Name: "poison-point", OnContact: &ContactEffect{Status: "psn", Chance: 30}},
	"flame-body":   {Name: "flame-body", OnContact: &ContactEffect{Status: "brn", Chance: 30}},
	"effect-spore": {Name: "effect-spore", OnContact: &ContactEffect{Status: "random", Chance: 30}},
	"cute-charm":   {Name: "cute-charm", OnContact: &ContactEffect{Volatile: "infatuation", Chance: 30}},
	"rough-skin":   {Name: "rough-skin", OnContact: &ContactEffect{DamagePercent: 13, Chance: 100}},
	"iron-barbs":   {Name: "iron-barbs", IntroducedIn: 5, OnContact: &ContactEffect{DamagePercent: 13, Chance: 100}},
	"gooey":        {Name: "gooey", IntroducedIn: 6, OnContact: &ContactEffect{StatChanges: map[string]int{"spe": -1}, Chance: 100}},
	"tangling-hair": {Name: "tangling-hair", IntroducedIn: 7, OnContact: &ContactEffect{StatChanges: map[string]int{"spe": -1}, Chance: 100}},

	"aftermath":  {Name: "aftermath", IntroducedIn: 4, OnFaintDamagePercent: 25},
	"moxie":      {Name: "moxie", IntroducedIn: 5, OnKOStats: map[string]int{"atk": 1}},
	"beast-boost": {Name: "beast-boost", IntroducedIn: 7, OnKOStats: map[string]int{"atk": 1}},
	"intimidate": {Name: "intimidate", OnSwitchInStats: map[string]int{"atk": -1}},
	"weak-armor": {Name: "weak-armor", IntroducedIn: 5, OnDamagedStats: map[string]int{"def": -1, "spe": 2}},
	"stamina":    {Name: "stamina", IntroducedIn: 7, OnDamagedStats: map[string]int{"def": 1}},
	"justified":  {Name: "justified", IntroducedIn: 5, OnDamagedStats: map[string]int{"atk": 1}},
	"berserk":    {Name: "berserk", IntroducedIn: 7, OnDamagedStats: map[string]int{"spa": 1}},

	"no-guard":     {Name: "no-guard", IntroducedIn: 4, NoGuard: true},
	"compound-eyes": {Name: "compound-eyes", StatMods: []StatMod{{Stat: "acc", Num: 13, Den: 10}}},
	"sand-veil":    {Name: "sand-veil", StatMods: []StatMod{{Stat: "eva", Num: 5, Den: 4, Condition: "field.weather == 'sandstorm'"}}},
	"snow-cloak":   {Name: "snow-cloak", IntroducedIn: 4, StatMods: []StatMod{{Stat: "eva", Num: 5, Den: 4, Condition: "field.weather == 'hail' || field.weather == 'snow'"}}},

	"battle-armor": {Name: "battle-armor", CritImmune: true},
	"shell-armor":  {Name: "shell-armor", CritImmune: true},
	"super-luck":   {Name: "super-luck", IntroducedIn: 4, CritStageBonus: 1},
	"sniper":       {Name: "sniper", IntroducedIn: 4, CritDamageBonus: true},
	"skill-link":   {Name: "skill-link", IntroducedIn: 4, MultiHitAlwaysMax: true},
	"serene-grace": {Name: "serene-grace", DoublesEffectChance: true},
	"sturdy":       {Name: "sturdy", SurviveFullHP: true, BlocksOHKO: true},
	"rock-head":    {Name: "rock-head", PreventsRecoil: true},
	"unaware":      {Name: "unaware", IntroducedIn: 4, IgnoresStages: true},
	"mold-breaker": {Name: "mold-breaker", IntroducedIn: 4, IgnoresBlockers: true},
	"teravolt":     {Name: "teravolt", IntroducedIn: 5, IgnoresBlockers: true},
	"turboblaze":   {Name: "turboblaze", IntroducedIn: 5, IgnoresBlockers: true},
	"scrappy":      {Name: "scrappy", IntroducedIn: 4, HitsGhosts: true},
	"corrosion":    {Name: "corrosion", IntroducedIn: 7, CorrosiveStatus: true},
	"cloud-nine":   {Name: "cloud-nine", NegatesWeather: true},
	"air-lock":     {Name: "air-lock", NegatesWeather: true},
	"magic-guard":  {Name: "magic-guard", IntroducedIn: 4, MagicGuard: true},
	"liquid-ooze":  {Name: "liquid-ooze", LiquidOoze: true},

	"drizzle":        {Name: "drizzle", Weather: "rain"},
	"drought":        {Name: "drought", Weather: "sun"},
	"sand-stream":    {Name: "sand-stream", Weather: "sandstorm"},
	"snow-warning":   {Name: "snow-warning", IntroducedIn: 4, Weather: "hail"},
	"primordial-sea": {Name: "primordial-sea", IntroducedIn: 6, Weather: "heavy-rain"},
	"desolate-land":  {Name: "desolate-land", IntroducedIn: 6, Weather: "extremely-harsh-sunlight"},
	"delta-stream":   {Name: "delta-stream", IntroducedIn: 6, Weather: "strong-winds"},
	"electric-surge": {Name: "electric-surge", IntroducedIn: 7, Terrain: "electric"},
	"grassy-surge":   {Name: "grassy-surge", IntroducedIn: 7, Terrain: "grassy"},
	"misty-surge":    {Name: "misty-surge", IntroducedIn: 7, Terrain: "misty"},
	"psychic-surge":  {Name: "psychic-surge", IntroducedIn: 7, Terrain: "psychic"},

	"dark-aura":  {Name: "dark-aura", IntroducedIn: 6, Aura: "dark-aura"},
	"fairy-aura": {Name: "fairy-aura", IntroducedIn: 6, Aura: "fairy-aura"},

	"tablets-of-ruin": {Name: "tablets-of-ruin", IntroducedIn: 9, Aura: "ruin:atk"},
	"sword-of-ruin":   {Name: "sword-of-ruin", IntroducedIn: 9, Aura: "ruin:def"},
	"vessel-of-ruin":  {Name: "vessel-of-ruin", IntroducedIn: 9, Aura: "ruin:spa"},
	"beads-of-ruin":   {Name: "beads-of-ruin", IntroducedIn: 9, Aura: "ruin:spd"},

	// Slow start is handled in the stat engine with a turn counter; the
	// record only has to exist so lookups succeed.
	"slow-start": {Name: "slow-start", IntroducedIn: 4},
	"technician": {
		Name: "technician", IntroducedIn: 4,
		PowerMods: []PowerMod{{Num: 3, Den: 2, Condition: "move.power <= 60"}},
	},
	"iron-fist": {
		Name: "iron-fist", IntroducedIn: 4,
		PowerMods: []PowerMod{{Num: 6, Den: 5, Condition: "move.punch"}},
	},
	"strong-jaw": {
		Name: "strong-jaw", IntroducedIn: 6,
		PowerMods: []PowerMod{{Num: 3, Den: 2, Condition: "move.bite"}},
	},
	"mega-launcher": {
		Name: "mega-launcher", IntroducedIn: 6,
		PowerMods: []PowerMod{{Num: 3, Den: 2, Condition: "move.pulse"}},
	},
	"sharpness": {
		Name: "sharpness", IntroducedIn: 9,
		PowerMods: []PowerMod{{Num: 3, Den: 2, Condition: "move.slicing"}},
	},
	"adaptability": {Name: "adaptability", IntroducedIn: 4},
}
