package parser

import "simplec/internal/token"

// declFollow is the follow set for a declaration, assignment, or
// expression-statement, per spec.md section 4.2.1: any of these tokens
// implies the missing ';' can be synthesized rather than skipped over.
func declFollow(t token.Token) bool {
	switch {
	case isKeyword(t, "if"), isTypeKeyword(t):
		return true
	case t.Kind == token.Ident:
		return true
	case isDelim(t, "}"):
		return true
	case t.Kind == token.EOF:
		return true
	default:
		return false
	}
}

// ifCondFollow is the follow set for an if-condition: any of these tokens
// implies the missing ')' can be synthesized. EOF is deliberately absent
// per the spec's table, but skipToFollow always stops at EOF regardless so
// termination still holds.
func ifCondFollow(t token.Token) bool {
	switch {
	case isDelim(t, "{"):
		return true
	case isKeyword(t, "if"), isTypeKeyword(t):
		return true
	case t.Kind == token.Ident:
		return true
	default:
		return false
	}
}

// skipToFollow advances the cursor until it sees a token satisfying
// follow, or EOF — whichever comes first. Used when the current token is
// not eligible for synthesis and the terminator must instead be
// panic-skipped to. No additional diagnostic is emitted during the skip:
// exactly one diagnostic is raised per recoverable fault.
func (p *Parser) skipToFollow(follow func(token.Token) bool) {
	for !follow(p.cur()) && !p.atEOF() {
		p.advance()
	}
}
