package parser

import (
	"fmt"
	"strings"

	"simplec/internal/ast"
	"simplec/internal/token"
)

// expr parses "expr := rel".
func (p *Parser) expr() ast.Expr {
	return p.rel()
}

// rel parses "rel := add (REL_OP add)?" — a single, non-chaining
// comparison.
func (p *Parser) rel() ast.Expr {
	left := p.add()
	if p.cur().Kind == token.Op && p.cur().IsRelOp() {
		opTok := p.advance()
		right := p.add()
		return &ast.BinOp{Op: opTok.Lexeme, Left: left, Right: right, Ln: opTok.Line}
	}
	return left
}

// add parses "add := mul (('+'|'-') mul)*".
func (p *Parser) add() ast.Expr {
	left := p.mul()
	for isOp(p.cur(), "+") || isOp(p.cur(), "-") {
		opTok := p.advance()
		right := p.mul()
		left = &ast.BinOp{Op: opTok.Lexeme, Left: left, Right: right, Ln: opTok.Line}
	}
	return left
}

// mul parses "mul := unary (('*'|'/') unary)*".
func (p *Parser) mul() ast.Expr {
	left := p.unary()
	for isOp(p.cur(), "*") || isOp(p.cur(), "/") {
		opTok := p.advance()
		right := p.unary()
		left = &ast.BinOp{Op: opTok.Lexeme, Left: left, Right: right, Ln: opTok.Line}
	}
	return left
}

// unary parses "unary := NUMBER | ID | '(' expr ')'". When the current
// token can start none of those, rule 4 (expression-slot failure) fires:
// emit a diagnostic and substitute Number(0) without advancing.
func (p *Parser) unary() ast.Expr {
	switch {
	case p.cur().Kind == token.Number:
		tok := p.advance()
		return &ast.Number{Value: tok.Lexeme, IsFloat: strings.Contains(tok.Lexeme, "."), Ln: tok.Line}
	case p.cur().Kind == token.Ident:
		tok := p.advance()
		return &ast.Variable{Name: tok.Lexeme, Ln: tok.Line}
	case isDelim(p.cur(), "("):
		p.advance()
		inner := p.expr()
		if isDelim(p.cur(), ")") {
			p.advance()
		} else {
			line := p.cur().Line
			hint := suggestionForTerminator(")")
			if p.atEOF() {
				hint = ""
			}
			p.emit(line, fmt.Sprintf("Missing ')' after parenthesized expression. Encountered %s", p.cur().Describe()), hint)
		}
		return inner
	default:
		line := p.cur().Line
		p.emit(line, fmt.Sprintf("Expected expression. Encountered %s", p.cur().Describe()), suggestion(ruleExpectedExpression))
		return &ast.Number{Value: "0", Ln: line}
	}
}
