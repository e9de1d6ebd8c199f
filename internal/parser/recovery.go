package parser

import (
	"fmt"

	"simplec/internal/token"
)

// expectTerminator implements spec.md section 4.2.1 rule 1 for ';' and
// ')': if the current token isn't the expected terminator, emit a
// diagnostic built from messageFmt (which takes the observed token's
// Describe() text) with a terminator suggestion, then either synthesize
// the terminator (when the current token is in follow) without advancing,
// or panic-skip forward to the first token in follow.
//
// The caller is responsible for consuming the terminator itself when it is
// genuinely present (this function only runs once the mismatch is known).
func (p *Parser) expectTerminator(missing string, follow func(token.Token) bool, messageFmt string) {
	line := p.cur().Line
	msg := fmt.Sprintf(messageFmt, p.cur().Describe())
	hint := suggestionForTerminator(missing)
	if p.atEOF() {
		hint = "" // terminal EOF faults have nothing left to insert a token before
	}
	p.emit(line, msg, hint)
	if follow(p.cur()) {
		return // synthesize: proceed without consuming
	}
	p.skipToFollow(follow)
}

// consumeOrRecoverSemi expects ';' using the declaration/assignment/
// expression-statement follow set. messageFmt differs by caller because
// spec.md uses distinct wording for var_decl ("Missing ';' after
// declaration...") and assign_stmt ("Expected ';' after expression
// statement...") even though both are the same structural fault.
func (p *Parser) consumeOrRecoverSemi(messageFmt string) {
	if isDelim(p.cur(), ";") {
		p.advance()
		return
	}
	p.expectTerminator(";", declFollow, messageFmt)
}

// consumeOrRecoverCloseParen expects ')' after an if-condition, using the
// if-condition follow set from spec.md section 4.2.1.
func (p *Parser) consumeOrRecoverCloseParen() {
	if isDelim(p.cur(), ")") {
		p.advance()
		return
	}
	p.expectTerminator(")", ifCondFollow, "Missing ')' after if-condition. Encountered %s")
}
