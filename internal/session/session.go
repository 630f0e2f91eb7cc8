// Package session manages the cohesive loop of one battle: it owns the
// configuration, the executor stack, the RNG and the field, maps script
// sides onto roster combatants, and appends every resolved action to the
// replay store.
package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/config"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/effects"
	"github.com/urdoggydeewata-star/dexbattle/internal/executor"
	"github.com/urdoggydeewata-star/dexbattle/internal/replay"
	"github.com/urdoggydeewata-star/dexbattle/internal/roster"
	"github.com/urdoggydeewata-star/dexbattle/internal/script"
)

// Store defines the dependency required by Session to persist transcripts.
type Store interface {
	Begin(h replay.Header) error
	Append(e replay.Entry) error
}

// Session is one running battle.
type Session struct {
	cfg   *config.Battle
	exec  *executor.Executor
	fx    *effects.Applier
	rng   *battle.RNG
	field *battle.Field

	mons  map[string]*battle.Combatant
	sides []string // battle order, indexed by SideIndex

	store    Store
	battleID string
	seed     int64
	turn     int
}

// TurnReport is the outcome of one executed script statement.
type TurnReport struct {
	Turn    int
	Results []*battle.Result
	Lines   []string
}

// New bootstraps a battle session from user settings and a roster. A nil
// store disables transcript persistence. A zero seed picks one from the
// clock; the chosen seed is always recorded so the battle can be replayed.
func New(settings config.Settings, r *roster.Roster, store Store) (*Session, error) {
	reg := data.NewRegistry()
	if err := reg.LoadDir(settings.DataDirs...); err != nil {
		return nil, err
	}
	cfg, err := config.New(settings.Generation, reg)
	if err != nil {
		return nil, err
	}

	mons, err := r.Materialize(cfg.Gen)
	if err != nil {
		return nil, err
	}
	if len(mons) != 2 {
		return nil, fmt.Errorf("a battle needs exactly 2 sides, roster has %d", len(mons))
	}
	sides := make([]string, 2)
	for name, c := range mons {
		sides[c.SideIndex%2] = name
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	field := battle.NewField(int(cfg.Gen))
	rng := battle.NewRNG(seed)

	return &Session{
		cfg:      cfg,
		exec:     executor.New(cfg, field, rng),
		fx:       effects.NewApplier(cfg),
		rng:      rng,
		field:    field,
		mons:     mons,
		sides:    sides,
		store:    store,
		battleID: replay.NewBattleID(),
		seed:     seed,
	}, nil
}

// Start writes the transcript header and fires the switch-in hooks for
// both combatants, slower lead first so the faster one's ability weather
// wins. Returns the opening narrative.
func (s *Session) Start(rosterPath, scriptPath string) ([]string, error) {
	if s.store != nil {
		err := s.store.Begin(replay.Header{
			BattleID:   s.battleID,
			Generation: int(s.cfg.Gen),
			Seed:       s.seed,
			Roster:     rosterPath,
			Script:     scriptPath,
		})
		if err != nil {
			return nil, err
		}
	}

	log := &battle.Log{}
	log.Add("%s sent out %s!", title(s.sides[0]), s.mons[s.sides[0]].Species)
	log.Add("%s sent out %s!", title(s.sides[1]), s.mons[s.sides[1]].Species)

	a, b := s.mons[s.sides[0]], s.mons[s.sides[1]]
	if s.exec.Speed(a) > s.exec.Speed(b) {
		a, b = b, a
	}
	s.exec.Reactions().OnSwitchIn(a, s.opponentOf(a), s.field, s.rng, log)
	s.exec.Reactions().OnSwitchIn(b, s.opponentOf(b), s.field, s.rng, log)
	return log.Lines(), nil
}

// BattleID identifies this battle in the transcript store.
func (s *Session) BattleID() string { return s.battleID }

// Seed is the RNG seed in effect, after any clock fallback.
func (s *Session) Seed() int64 { return s.seed }

// Generation is the resolved era.
func (s *Session) Generation() int { return int(s.cfg.Gen) }

// Sides lists the two side names in battle order.
func (s *Session) Sides() []string { return s.sides }

// Combatant returns the combatant fighting for the named side.
func (s *Session) Combatant(side string) (*battle.Combatant, bool) {
	c, ok := s.mons[side]
	return c, ok
}

// Over reports whether either combatant has fainted.
func (s *Session) Over() bool {
	return s.mons[s.sides[0]].Fainted() || s.mons[s.sides[1]].Fainted()
}

// Winner names the surviving side, or "" while the battle runs or when
// both sides went down together.
func (s *Session) Winner() string {
	a, b := s.mons[s.sides[0]], s.mons[s.sides[1]]
	switch {
	case a.Fainted() && !b.Fainted():
		return s.sides[1]
	case b.Fainted() && !a.Fainted():
		return s.sides[0]
	}
	return ""
}

// Execute runs one raw script line, for interactive clients.
func (s *Session) Execute(input string) (*TurnReport, error) {
	parsed, err := script.Parse(input)
	if err != nil {
		return nil, err
	}
	parsed.Normalize()
	var report *TurnReport
	for _, st := range parsed.Statements {
		r, err := s.ExecuteStatement(st)
		if err != nil {
			return nil, err
		}
		if report == nil {
			report = r
		} else {
			report.Turn = r.Turn
			report.Results = append(report.Results, r.Results...)
			report.Lines = append(report.Lines, r.Lines...)
		}
	}
	return report, nil
}

// ExecuteStatement runs one parsed statement: a turn, or a field override
// between turns.
func (s *Session) ExecuteStatement(st *script.Statement) (*TurnReport, error) {
	switch {
	case st.Weather != nil:
		return s.forceWeather(st.Weather.Kind), nil
	case st.Terrain != nil:
		return s.forceTerrain(st.Terrain.Kind), nil
	case st.Turn != nil:
		return s.runTurn(st.Turn.Actions)
	}
	return nil, fmt.Errorf("empty statement")
}

func (s *Session) forceWeather(kind string) *TurnReport {
	log := &battle.Log{}
	s.fx.SetWeather(s.field, battle.Weather(kind), log)
	return &TurnReport{Turn: s.turn, Lines: log.Lines()}
}

func (s *Session) forceTerrain(kind string) *TurnReport {
	log := &battle.Log{}
	s.fx.SetTerrain(s.field, battle.Terrain(kind), log)
	return &TurnReport{Turn: s.turn, Lines: log.Lines()}
}

// runTurn resolves one declared turn: actions sort into priority brackets,
// ties break on effective speed, and a full tie costs one RNG draw.
// End-of-turn residuals run afterwards in speed order.
func (s *Session) runTurn(declared []*script.ActionExpr) (*TurnReport, error) {
	if len(declared) == 0 {
		return nil, fmt.Errorf("turn %d declares no actions", s.turn+1)
	}
	actions := make([]executor.Action, 0, len(declared))
	for _, d := range declared {
		user, ok := s.mons[d.Side]
		if !ok {
			return nil, fmt.Errorf("unknown side %q, roster has %v", d.Side, s.sides)
		}
		actions = append(actions, executor.Action{
			User:   user,
			Target: s.opponentOf(user),
			Move:   d.Move,
		})
	}
	s.order(actions)

	s.turn++
	report := &TurnReport{Turn: s.turn}
	log := &battle.Log{}
	for i, a := range actions {
		if a.User.Fainted() || a.Target.Fainted() {
			continue
		}
		a.User.MovedAfterTarget = i > 0
		res := s.exec.Resolve(a)
		report.Results = append(report.Results, res)
		for _, line := range res.Lines {
			log.Add("%s", line)
		}
		if s.store != nil {
			err := s.store.Append(replay.Entry{
				BattleID: s.battleID,
				Turn:     s.turn,
				Actor:    s.sideOf(a.User),
				Result:   res,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	first, second := s.mons[s.sides[0]], s.mons[s.sides[1]]
	if s.exec.Speed(second) > s.exec.Speed(first) {
		first, second = second, first
	}
	if !first.Fainted() && !second.Fainted() {
		s.exec.EndOfTurn(first, second, log)
	}

	report.Lines = log.Lines()
	return report, nil
}

// order sorts the declared actions in place into execution order.
func (s *Session) order(actions []executor.Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		pi, pj := s.exec.Priority(actions[i].Move), s.exec.Priority(actions[j].Move)
		if pi != pj {
			return pi > pj
		}
		si, sj := s.exec.Speed(actions[i].User), s.exec.Speed(actions[j].User)
		if si != sj {
			return si > sj
		}
		return s.rng.Chance(1, 2)
	})
}

func (s *Session) opponentOf(c *battle.Combatant) *battle.Combatant {
	if s.mons[s.sides[0]] == c {
		return s.mons[s.sides[1]]
	}
	return s.mons[s.sides[0]]
}

func (s *Session) sideOf(c *battle.Combatant) string {
	if s.mons[s.sides[0]] == c {
		return s.sides[0]
	}
	return s.sides[1]
}

func title(id string) string {
	out := []byte(id)
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out[0] -= 'a' - 'A'
	}
	return string(out)
}
