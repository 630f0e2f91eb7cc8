package script

import (
	"fmt"
	"strings"
)

// MapError converts a raw participle error into guidance the script author
// can act on.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("the script is empty")
	}

	first := strings.ToLower(strings.Fields(input)[0])
	switch first {
	case "turn":
		return fmt.Errorf("a turn statement must be: turn <side>: <move> [and] <side>: <move>")
	case "weather":
		return fmt.Errorf("a weather statement must be: weather: <rain|sun|sandstorm|hail|snow>")
	case "terrain":
		return fmt.Errorf("a terrain statement must be: terrain: <electric|grassy|misty|psychic>")
	}
	return fmt.Errorf("unrecognized script statement: %w", err)
}
