// Package parser implements SimpleC's recursive-descent parser with
// panic-mode error recovery, follow-set resynchronization, and synthetic
// token insertion, per spec.md section 4.2. Parse never fails: a
// structurally unusable construct degrades to an ast.ErrorNode and the
// parser always makes progress.
package parser

import (
	"fmt"

	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/token"
)

// Parser holds the cursor over a token sequence and the shared diagnostic
// collector every phase reports through.
type Parser struct {
	toks     []token.Token
	pos      int
	reporter diag.Reporter
}

// Parse builds the Program rooted AST for toks, which must end in EOF.
// Syntax diagnostics are reported into r as recovery encounters them.
func Parse(toks []token.Token, r diag.Reporter) *ast.Program {
	p := &Parser{toks: toks, reporter: r}
	return p.program()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF sentinel
	}
	return p.toks[idx]
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// advance consumes and returns the current token. It never moves past EOF.
func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) emit(line int, msg, suggestion string) {
	if p.reporter == nil {
		return
	}
	p.reporter.Emit(diag.Diagnostic{Phase: diag.Syntax, Line: line, Message: msg, Suggestion: suggestion})
}

func isKeyword(t token.Token, lexeme string) bool {
	return t.Kind == token.Keyword && t.Lexeme == lexeme
}

func isDelim(t token.Token, lexeme string) bool {
	return t.Kind == token.Delim && t.Lexeme == lexeme
}

func isOp(t token.Token, lexeme string) bool {
	return t.Kind == token.Op && t.Lexeme == lexeme
}

func isTypeKeyword(t token.Token) bool {
	return isKeyword(t, "int") || isKeyword(t, "float")
}

// program parses "program := statement*", per spec.md's grammar.
func (p *Parser) program() *ast.Program {
	prog := &ast.Program{}
	for !p.atEOF() {
		if s, ok := p.statement(); ok {
			prog.Children = append(prog.Children, s)
		}
	}
	return prog
}

// statement parses "statement := var_decl | if_stmt | block | assign_stmt".
// When the current token starts none of those, rule 3 (statement-level
// panic) fires: a diagnostic is emitted, exactly one token is consumed,
// and the caller's loop simply omits the nil result, guaranteeing the
// parser always makes progress.
func (p *Parser) statement() (ast.Stmt, bool) {
	switch {
	case isTypeKeyword(p.cur()):
		return p.varDecl(), true
	case isKeyword(p.cur(), "if"):
		return p.ifStmt(), true
	case isDelim(p.cur(), "{"):
		return p.block(), true
	case p.cur().Kind == token.Ident && isOp(p.peekAt(1), "="):
		return p.assignStmt(), true
	default:
		line := p.cur().Line
		observed := p.cur().Describe()
		p.advance()
		p.emit(line, fmt.Sprintf("Unexpected token %s at start of statement", observed), suggestion(ruleUnexpectedStatement))
		return nil, false
	}
}
