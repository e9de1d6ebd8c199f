package diag

// Phase identifies which stage of compile_frontend raised a Diagnostic.
// Diagnostics are produced lexer-first, then parser, then semantic
// analyzer, so a single ordered Bag naturally groups entries by Phase
// (spec.md section 6's "diagnostics aggregates lexical, syntactic, and
// semantic entries in that phase order").
type Phase uint8

const (
	Lex Phase = iota
	Syntax
	Semantic
)

func (p Phase) String() string {
	switch p {
	case Lex:
		return "Lex"
	case Syntax:
		return "Syntax"
	case Semantic:
		return "Semantic"
	default:
		return "Unknown"
	}
}
