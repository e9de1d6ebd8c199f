package parser

import (
	"fmt"

	"simplec/internal/ast"
	"simplec/internal/source"
	"simplec/internal/token"
)

// varDecl parses "type ID ('=' expr)? ';'".
func (p *Parser) varDecl() ast.Stmt {
	typeTok := p.advance()
	line := typeTok.Line
	typeNode := &ast.Type{Name: typeTok.Lexeme, Ln: typeTok.Line}

	varNode := p.expectIdent()

	var value ast.Expr
	if isOp(p.cur(), "=") {
		p.advance()
		value = p.expr()
		// Leftover tokens that neither end the declaration nor start what
		// follows it mean the initializer was malformed: an ErrorNode
		// stands in for it.
		if !isDelim(p.cur(), ";") && !declFollow(p.cur()) {
			value = &ast.ErrorNode{RecoveredFrom: source.At(value.Line()).Cover(source.At(p.cur().Line))}
		}
	}

	p.consumeOrRecoverSemi("Missing ';' after declaration. Encountered %s")

	return &ast.VarDecl{TypeNode: typeNode, VarNode: varNode, Value: value, Ln: line}
}

// expectIdent implements spec.md section 4.2.1 rule 4 (expression-slot
// failure) in its l-value form: when the identifier a declaration needs
// isn't there, emit a diagnostic and substitute a
// placeholder Variable without consuming the offending token.
func (p *Parser) expectIdent() *ast.Variable {
	if p.cur().Kind == token.Ident {
		tok := p.advance()
		return &ast.Variable{Name: tok.Lexeme, Ln: tok.Line}
	}
	line := p.cur().Line
	p.emit(line, fmt.Sprintf("Expected expression. Encountered %s", p.cur().Describe()), suggestion(ruleExpectedExpression))
	return &ast.Variable{Name: "<error>", Ln: line}
}
