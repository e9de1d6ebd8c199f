package parser

import "simplec/internal/ast"

// block parses "'{' statement* '}'". Per spec.md section 4.2.1 rule 1: if
// the block runs to EOF without a closing '}', emit one diagnostic per
// still-open block and return the partial result. Each enclosing call to
// block on the parser's call stack is itself sitting at EOF when its own
// loop exits, so nested unclosed blocks naturally emit innermost-first as
// the call stack unwinds — no explicit counting is needed.
func (p *Parser) block() ast.Stmt {
	openTok := p.advance() // '{'
	b := &ast.Block{Ln: openTok.Line}

	for !isDelim(p.cur(), "}") && !p.atEOF() {
		if s, ok := p.statement(); ok {
			b.Statements = append(b.Statements, s)
		}
	}

	if isDelim(p.cur(), "}") {
		p.advance()
		return b
	}

	// EOF reached with the block still open: terminal fault, no suggestion.
	p.emit(p.cur().Line, "Missing '}' to close block. Encountered "+p.cur().Describe(), "")
	return b
}
