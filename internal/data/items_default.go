package data

// defaultItems is the built-in baseline held-item table.
var defaultItems = map[string]ItemRecord{
	"choice-band":  {Name: "choice-band", IntroducedIn: 3, ChoiceLock: true, StatMods: []StatMod{{Stat: "atk", Num: 3, Den: 2}}},
	"choice-specs": {Name: "choice-specs", IntroducedIn: 4, ChoiceLock: true, StatMods: []StatMod{{Stat: "spa", Num: 3, Den: 2}}},
	"choice-scarf": {Name: "choice-scarf", IntroducedIn: 4, ChoiceLock: true, StatMods: []StatMod{{Stat: "spe", Num: 3, Den: 2}}},

	"light-ball": {
		Name: "light-ball", IntroducedIn: 2, SpeciesOnly: []string{"pikachu"},
		StatMods: []StatMod{{Stat: "atk", Num: 2, Den: 1}, {Stat: "spa", Num: 2, Den: 1}},
	},
	"thick-club": {
		Name: "thick-club", IntroducedIn: 2, SpeciesOnly: []string{"cubone", "marowak"},
		StatMods: []StatMod{{Stat: "atk", Num: 2, Den: 1}},
	},
	"eviolite": {
		Name: "eviolite", IntroducedIn: 5, EvolutionGate: true,
		StatMods: []StatMod{{Stat: "def", Num: 3, Den: 2}, {Stat: "spd", Num: 3, Den: 2}},
	},
	"assault-vest": {
		Name: "assault-vest", IntroducedIn: 6,
		StatMods: []StatMod{{Stat: "spd", Num: 3, Den: 2}},
	},

	"life-orb": {
		Name: "life-orb", IntroducedIn: 4, RecoilPercent: 10,
		PowerMods: []PowerMod{{Num: 13, Den: 10}},
	},
	"expert-belt": {
		Name: "expert-belt", IntroducedIn: 4,
		PowerMods: []PowerMod{{Num: 6, Den: 5, Condition: "effectiveness > 1.0"}},
	},
	"muscle-band": {Name: "muscle-band", IntroducedIn: 4, PowerMods: []PowerMod{{Num: 11, Den: 10, Condition: "move.category == 'physical'"}}},
	"wise-glasses": {Name: "wise-glasses", IntroducedIn: 4, PowerMods: []PowerMod{{Num: 11, Den: 10, Condition: "move.category == 'special'"}}},
	"charcoal":     {Name: "charcoal", IntroducedIn: 2, PowerMods: []PowerMod{{MoveType: "fire", Num: 6, Den: 5}}},
	"mystic-water": {Name: "mystic-water", IntroducedIn: 2, PowerMods: []PowerMod{{MoveType: "water", Num: 6, Den: 5}}},
	"magnet":       {Name: "magnet", IntroducedIn: 2, PowerMods: []PowerMod{{MoveType: "electric", Num: 6, Den: 5}}},
	"miracle-seed": {Name: "miracle-seed", IntroducedIn: 2, PowerMods: []PowerMod{{MoveType: "grass", Num: 6, Den: 5}}},

	"leftovers":   {Name: "leftovers", IntroducedIn: 2, EndTurnHealNum: 1, EndTurnHealDen: 16},
	"black-sludge": {Name: "black-sludge", IntroducedIn: 4, EndTurnHealNum: 1, EndTurnHealDen: 16},

	"sitrus-berry": {
		Name: "sitrus-berry", IntroducedIn: 3, Berry: true, SingleUse: true,
		HealPercent: 25, HealThresholdPercent: 50,
	},
	"oran-berry": {
		Name: "oran-berry", IntroducedIn: 3, Berry: true, SingleUse: true,
		HealFixed: 10, HealThresholdPercent: 50,
	},
	"lum-berry": {
		Name: "lum-berry", IntroducedIn: 3, Berry: true, SingleUse: true,
		CuresStatus: []string{"any"},
	},
	"cheri-berry":  {Name: "cheri-berry", IntroducedIn: 3, Berry: true, SingleUse: true, CuresStatus: []string{"par"}},
	"chesto-berry": {Name: "chesto-berry", IntroducedIn: 3, Berry: true, SingleUse: true, CuresStatus: []string{"slp"}},
	"pecha-berry":  {Name: "pecha-berry", IntroducedIn: 3, Berry: true, SingleUse: true, CuresStatus: []string{"psn", "tox"}},
	"rawst-berry":  {Name: "rawst-berry", IntroducedIn: 3, Berry: true, SingleUse: true, CuresStatus: []string{"brn"}},
	"aspear-berry": {Name: "aspear-berry", IntroducedIn: 3, Berry: true, SingleUse: true, CuresStatus: []string{"frz"}},

	"focus-sash":  {Name: "focus-sash", IntroducedIn: 4, SingleUse: true, SurviveFullHP: true},
	"focus-band":  {Name: "focus-band", IntroducedIn: 2, SurviveChance: 10},
	"kings-rock":  {Name: "kings-rock", IntroducedIn: 2, FlinchChance: 10},
	"razor-fang":  {Name: "razor-fang", IntroducedIn: 4, FlinchChance: 10},
	"rocky-helmet": {Name: "rocky-helmet", IntroducedIn: 5, ContactDamage: 6},
	"scope-lens":  {Name: "scope-lens", IntroducedIn: 2, CritStageBonus: 1},
	"razor-claw":  {Name: "razor-claw", IntroducedIn: 4, CritStageBonus: 1},
	"weakness-policy": {Name: "weakness-policy", IntroducedIn: 6, SingleUse: true, WeaknessPolicy: true},

	"bright-powder": {Name: "bright-powder", IntroducedIn: 2, StatMods: []StatMod{{Stat: "eva", Num: 10, Den: 9}}},
	"wide-lens":     {Name: "wide-lens", IntroducedIn: 4, StatMods: []StatMod{{Stat: "acc", Num: 11, Den: 10}}},
}
