package parser

import "simplec/internal/ast"

// assignStmt parses "ID '=' expr ';'". The caller (statement dispatch)
// has already confirmed the current token is an identifier followed by
// '=' via one-token lookahead, so both are consumed unconditionally here.
func (p *Parser) assignStmt() ast.Stmt {
	idTok := p.advance()
	left := &ast.Variable{Name: idTok.Lexeme, Ln: idTok.Line}
	opTok := p.advance() // '='
	right := p.expr()

	p.consumeOrRecoverSemi("Expected ';' after expression statement. Encountered %s")

	return &ast.Assign{Left: left, Op: opTok.Lexeme, Right: right, Ln: idTok.Line}
}
