package battle

import "fmt"

// Outcome tags the structured result of an action. A failing move is core
// game semantics, not an error.
type Outcome string

const (
	OutcomeHit         Outcome = "hit"
	OutcomeMiss        Outcome = "miss"
	OutcomeImmune      Outcome = "immune"
	OutcomeProtected   Outcome = "blocked-by-protection"
	OutcomeAbilityStop Outcome = "blocked-by-ability"
	OutcomeFailed      Outcome = "failed-precondition"
	OutcomeBanned      Outcome = "banned-in-this-era"
	OutcomeIntegrity   Outcome = "integrity-error"
)

// Result is the output of one resolved action: the HP change inflicted, the
// outcome tag and the ordered narrative. Every outcome maps to at least one
// line; nothing fails silently.
type Result struct {
	Move     string   `json:"move"`
	Outcome  Outcome  `json:"outcome"`
	Damage   int      `json:"damage"`
	Hits     int      `json:"hits,omitempty"`
	Crit     bool     `json:"crit,omitempty"`
	TypeMult float64  `json:"type_mult,omitempty"`
	Lines    []string `json:"lines"`
}

// Log accumulates narrative lines in order.
type Log struct {
	lines []string
}

// Add appends one formatted narrative line.
func (l *Log) Add(format string, args ...any) {
	if len(args) == 0 {
		l.lines = append(l.lines, format)
		return
	}
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Merge appends previously collected lines in order.
func (l *Log) Merge(lines []string) { l.lines = append(l.lines, lines...) }

// Lines returns the accumulated narrative.
func (l *Log) Lines() []string { return l.lines }

// Len reports how many lines have been collected.
func (l *Log) Len() int { return len(l.lines) }
