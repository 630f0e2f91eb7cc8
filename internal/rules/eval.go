// Package rules evaluates the condition formulas attached to ability and
// item records. Formulas are CEL expressions ("user.hp * 3 <= user.max_hp",
// "field.weather == 'rain'") compiled once at battle setup and evaluated
// per action.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/data"
)

// Evaluator wraps a CEL environment configured for condition formulas.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates the CEL environment with the variables every
// condition formula may reference.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		ext.Strings(),

		cel.Variable("user", cel.DynType),
		cel.Variable("target", cel.DynType),
		cel.Variable("move", cel.DynType),
		cel.Variable("field", cel.DynType),
		cel.Variable("effectiveness", cel.DoubleType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Program is one compiled condition formula.
type Program struct {
	source string
	prg    cel.Program
}

// Compile compiles a formula once. The empty formula compiles to a program
// that is always true, so records without conditions cost nothing special.
func (ev *Evaluator) Compile(formula string) (*Program, error) {
	if formula == "" {
		return &Program{source: ""}, nil
	}
	ast, issues := ev.env.Compile(formula)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error in %q: %w", formula, issues.Err())
	}
	prg, err := ev.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error in %q: %w", formula, err)
	}
	return &Program{source: formula, prg: prg}, nil
}

// Bool evaluates the program against ctx. Evaluation errors count as false:
// a malformed condition disables its modifier instead of corrupting the
// action.
func (p *Program) Bool(ctx map[string]any) bool {
	if p == nil || p.prg == nil {
		return true
	}
	out, _, err := p.prg.Eval(ctx)
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// Source returns the original formula text.
func (p *Program) Source() string {
	if p == nil {
		return ""
	}
	return p.source
}

// Context assembles the CEL evaluation context for one action. Nil
// combatants become empty maps so formulas never hit an undeclared field.
func Context(user, target *battle.Combatant, move data.MoveRecord, power int, field *battle.Field, effectiveness float64) map[string]any {
	ctx := map[string]any{
		"move":          moveToMap(move, power),
		"effectiveness": effectiveness,
	}
	if user != nil {
		ctx["user"] = combatantToMap(user)
	} else {
		ctx["user"] = map[string]any{}
	}
	if target != nil {
		ctx["target"] = combatantToMap(target)
	} else {
		ctx["target"] = map[string]any{}
	}
	if field != nil {
		ctx["field"] = fieldToMap(field)
	} else {
		ctx["field"] = map[string]any{}
	}
	return ctx
}

// combatantToMap exposes the fields condition formulas can reference, with
// CEL's int64 convention.
func combatantToMap(c *battle.Combatant) map[string]any {
	return map[string]any{
		"species":    c.Species,
		"level":      int64(c.Level),
		"hp":         int64(c.CurHP),
		"max_hp":     int64(c.MaxHP),
		"status":     string(c.Status),
		"types":      c.Types,
		"ability":    c.EffectiveAbility(),
		"item":       c.Item,
		"gender":     c.Gender,
		"friendship": int64(c.Friendship),
		"weight_kg":  c.WeightKg,
	}
}

func moveToMap(m data.MoveRecord, power int) map[string]any {
	return map[string]any{
		"name":     m.Name,
		"type":     m.Type,
		"category": string(m.Category),
		"power":    int64(power),
		"priority": int64(m.Priority),
		"contact":  m.Contact,
		"sound":    m.Sound,
		"punch":    m.Punch,
		"bite":     m.Bite,
		"pulse":    m.Pulse,
		"bullet":   m.Bullet,
		"slicing":  m.Slicing,
		"wind":     m.Wind,
	}
}

func fieldToMap(f *battle.Field) map[string]any {
	return map[string]any{
		"weather": string(f.EffectiveWeather()),
		"terrain": string(f.Terrain),
		"gen":     int64(f.Generation),
	}
}
