// Package driver wires the lexer, parser, and semantic analyzer into the
// single pure entry point spec.md section 6 describes:
// compile_frontend(source) -> (tokens, ast, diagnostics).
package driver

import (
	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/lexer"
	"simplec/internal/parser"
	"simplec/internal/sema"
	"simplec/internal/token"
)

// Result is the three-part product of CompileFrontend: the full token
// stream, the AST rooted at Program (non-nil whenever the lexer produced
// at least EOF), and every diagnostic raised across all three phases, in
// phase order (lex, then syntax, then semantic).
type Result struct {
	Tokens      []token.Token
	AST         *ast.Program
	Diagnostics []diag.Diagnostic
}

// CompileFrontend runs the lexer, parser, and semantic analyzer over
// source and returns their combined product. It never returns an error:
// every phase degrades gracefully, and failure is signaled by a non-empty
// Diagnostics slice, per spec.md section 7's propagation policy.
//
// Each call owns its own lexer cursor, parser state, symbol stack, and
// diagnostic bag — nothing is shared across concurrent invocations, so
// compile_frontend is safe to call from independent goroutines.
func CompileFrontend(source string) Result {
	bag := diag.NewBag(0) // unbounded: a single source file cannot exhaust memory here
	tokens := lexer.Lex(source, bag)
	program := parser.Parse(tokens, bag)
	sema.Check(program, bag)
	return Result{Tokens: tokens, AST: program, Diagnostics: bag.Snapshot()}
}

// HasErrors reports whether compilation produced any diagnostic.
func (r Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}
