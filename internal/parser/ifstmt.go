package parser

import (
	"simplec/internal/ast"
	"simplec/internal/source"
)

// ifStmt parses "'if' '(' expr ')' statement ('else' statement)?".
func (p *Parser) ifStmt() ast.Stmt {
	ifTok := p.advance() // 'if'
	line := ifTok.Line

	if isDelim(p.cur(), "(") {
		p.advance()
	}

	cond := p.expr()

	p.consumeOrRecoverCloseParen()

	// Rule 2: unexpected ';' immediately after the condition.
	if isDelim(p.cur(), ";") {
		semiLine := p.cur().Line
		p.advance()
		p.emit(semiLine, "Unexpected ';' after if-condition. This creates an empty 'if' statement.", suggestion(ruleStraySemicolon))
		ifBody := ast.Stmt(&ast.Block{Ln: semiLine})
		elseBody := p.maybeElse()
		return &ast.If{Cond: cond, IfBody: ifBody, ElseBody: elseBody, Ln: line}
	}

	ifBody := p.statementOrError()
	elseBody := p.maybeElse()
	return &ast.If{Cond: cond, IfBody: ifBody, ElseBody: elseBody, Ln: line}
}

func (p *Parser) maybeElse() ast.Stmt {
	if !isKeyword(p.cur(), "else") {
		return nil
	}
	p.advance()
	return p.statementOrError()
}

// statementOrError parses a statement in a slot that requires a non-nil
// Stmt (an if/else body). If rule 3 fires and the statement loop would
// normally just omit the result, here it is wrapped as an ErrorNode
// instead so the body slot is never left nil.
func (p *Parser) statementOrError() ast.Stmt {
	s, ok := p.statement()
	if !ok {
		return &ast.ErrorNode{RecoveredFrom: source.At(p.cur().Line)}
	}
	return s
}
