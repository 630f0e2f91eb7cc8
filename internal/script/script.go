package script

import (
	"fmt"
	"os"

	"github.com/urdoggydeewata-star/dexbattle/internal/data"
)

// Parse parses battle script source.
func Parse(source string) (*Script, error) {
	s, err := Build().ParseString("", source)
	if err != nil {
		return nil, MapError(source, err)
	}
	if len(s.Statements) == 0 {
		return nil, fmt.Errorf("the script has no statements")
	}
	return s, nil
}

// ParseFile reads and parses a script file.
func ParseFile(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(string(raw))
}

// Normalize canonicalizes every side, move, weather and terrain name in
// place so lookups downstream hit the registry keys.
func (s *Script) Normalize() {
	for _, st := range s.Statements {
		switch {
		case st.Turn != nil:
			for _, a := range st.Turn.Actions {
				a.Side = data.Normalize(a.Side)
				a.Move = data.Normalize(a.Move)
			}
		case st.Weather != nil:
			st.Weather.Kind = data.Normalize(st.Weather.Kind)
		case st.Terrain != nil:
			st.Terrain.Kind = data.Normalize(st.Terrain.Kind)
		}
	}
}

// Sides lists every side name a script references, in first-seen order.
func (s *Script) Sides() []string {
	seen := map[string]bool{}
	var out []string
	for _, st := range s.Statements {
		if st.Turn == nil {
			continue
		}
		for _, a := range st.Turn.Actions {
			if !seen[a.Side] {
				seen[a.Side] = true
				out = append(out, a.Side)
			}
		}
	}
	return out
}
