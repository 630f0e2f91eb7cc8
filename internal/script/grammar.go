// Package script parses battle scripts: the line-oriented DSL the simulate
// command feeds to the executor. A script is a sequence of turn, weather
// and terrain statements.
package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw tokens for the grammar in this file. Identifiers keep
// their hyphens so move names tokenize whole.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(?:turn|weather|terrain|and)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:]`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// Build creates the parser from the struct tags on the AST types.
func Build() *participle.Parser[Script] {
	return participle.MustBuild[Script](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
	)
}

// Script is a parsed battle script: an ordered statement list.
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one script line.
type Statement struct {
	Turn    *TurnStmt    `parser:"( @@"`
	Weather *WeatherStmt `parser:"| @@"`
	Terrain *TerrainStmt `parser:"| @@ )"`
}

// TurnStmt declares one battle turn: each side's chosen move.
type TurnStmt struct {
	Keyword string        `parser:"@(\"turn\"|\"Turn\"|\"TURN\")"`
	Actions []*ActionExpr `parser:"@@ ( \"and\"? @@ )*"`
}

// ActionExpr is "side: move".
type ActionExpr struct {
	Side string `parser:"@Ident \":\""`
	Move string `parser:"@Ident"`
}

// WeatherStmt forces field weather between turns (scenario setup).
type WeatherStmt struct {
	Keyword string `parser:"@(\"weather\"|\"Weather\") \":\""`
	Kind    string `parser:"@Ident"`
}

// TerrainStmt forces field terrain between turns.
type TerrainStmt struct {
	Keyword string `parser:"@(\"terrain\"|\"Terrain\") \":\""`
	Kind    string `parser:"@Ident"`
}
