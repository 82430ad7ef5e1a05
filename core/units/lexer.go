package units

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// quantityLexer splits "<number><unit>" inputs; the unit may carry the
// micro sign, Greek mu or a degree mark.
var quantityLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Number", Pattern: `[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?`},
	{Name: "Unit", Pattern: `[a-zA-Zµμ°]+`},
})

// quantity is the whole grammar: a number with an optional unit token.
type quantity struct {
	Value float64 `@Number`
	Unit  string  `@Unit?`
}

var quantityParser = participle.MustBuild[quantity](
	participle.Lexer(quantityLexer),
	participle.Elide("Whitespace"),
)
