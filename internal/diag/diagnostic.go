package diag

import "fmt"

// Diagnostic is a single lexical, syntactic, or semantic fault, per
// spec.md section 3's Diagnostic shape: { phase, line, message,
// suggestion? }.
type Diagnostic struct {
	Phase      Phase
	Line       int
	Message    string
	Suggestion string
}

// Render formats the diagnostic per spec.md section 6:
//
//	Syntax:   Syntax Error on line <L>: <message>
//	          optionally followed by    -> Suggestion: <suggestion>
//	Semantic: Semantic Error: <message> on line <L>
//
// Lexical diagnostics follow the Syntax template's shape (spec.md gives no
// literal rendering for Lex, only that it exists as a phase in section 7).
func (d Diagnostic) Render() string {
	switch d.Phase {
	case Semantic:
		return fmt.Sprintf("Semantic Error: %s on line %d", d.Message, d.Line)
	case Lex:
		return fmt.Sprintf("Lexical Error on line %d: %s", d.Line, d.Message)
	default:
		out := fmt.Sprintf("Syntax Error on line %d: %s", d.Line, d.Message)
		if d.Suggestion != "" {
			out += fmt.Sprintf("\n   -> Suggestion: %s", d.Suggestion)
		}
		return out
	}
}
