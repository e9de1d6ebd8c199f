// Package lexer turns SimpleC source text into a token stream, per
// spec.md section 4.1. It never aborts: every input, including malformed
// ones, yields a complete token sequence terminated by EOF.
package lexer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"simplec/internal/diag"
	"simplec/internal/token"
)

var relOps = []string{"==", "!=", ">=", "<="}
var singleOps = "+-*/=><"
var delims = "(){};,"

// Lex scans src into a token sequence ending in EOF, reporting lexical
// diagnostics into r as it goes.
func Lex(src string, r diag.Reporter) []token.Token {
	c := newCursor(src)
	var toks []token.Token
	lastLine := 1

	for {
		skipTrivia(&c)
		if c.eof() {
			break
		}
		lastLine = c.line
		ch := c.peek()
		switch {
		case isIdentStart(ch):
			toks = append(toks, scanIdent(&c))
		case isDigit(ch):
			toks = append(toks, scanNumber(&c))
		case ch == '"':
			toks = append(toks, scanString(&c, r))
		case matchesAny(&c, relOps):
			toks = append(toks, scanRelOp(&c))
		case strings.IndexByte(singleOps, ch) >= 0:
			toks = append(toks, scanOne(&c, token.Op))
		case strings.IndexByte(delims, ch) >= 0:
			toks = append(toks, scanOne(&c, token.Delim))
		default:
			line := c.line
			c.bump()
			if r != nil {
				r.Emit(diag.Diagnostic{
					Phase:   diag.Lex,
					Line:    line,
					Message: fmt.Sprintf("Unexpected character '%c'", ch),
				})
			}
		}
	}

	toks = append(toks, token.Token{Kind: token.EOF, Lexeme: "", Line: lastLine})
	return toks
}

func skipTrivia(c *cursor) {
	for {
		switch {
		case c.eof():
			return
		case c.peek() == ' ' || c.peek() == '\t' || c.peek() == '\r' || c.peek() == '\n':
			c.bump()
		case c.peek() == '/' && c.peekAt(1) == '/':
			for !c.eof() && c.peek() != '\n' {
				c.bump()
			}
		default:
			return
		}
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanIdent reads a keyword or identifier. Lexemes are passed through
// Unicode Normalization Form C, but identifiers are made only of ASCII
// letters, digits and '_', so the fold leaves them unchanged; a non-ASCII
// byte is never part of an identifier and is reported by Lex as an
// unexpected character.
func scanIdent(c *cursor) token.Token {
	line := c.line
	start := c.off
	for !c.eof() && isIdentCont(c.peek()) {
		c.bump()
	}
	lexeme := norm.NFC.String(c.src[start:c.off])
	kind := token.Ident
	if token.IsKeyword(lexeme) {
		kind = token.Keyword
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// scanNumber reads one or more digits, optionally followed by '.' and more
// digits, per spec.md section 4.1.
func scanNumber(c *cursor) token.Token {
	line := c.line
	start := c.off
	for !c.eof() && isDigit(c.peek()) {
		c.bump()
	}
	if !c.eof() && c.peek() == '.' && isDigit(c.peekAt(1)) {
		c.bump()
		for !c.eof() && isDigit(c.peek()) {
			c.bump()
		}
	}
	return token.Token{Kind: token.Number, Lexeme: c.src[start:c.off], Line: line}
}

// scanString reads a double-quoted literal. An unterminated string is
// closed at end of line or end of input and reported as a lexical
// diagnostic; the lexeme includes both quotes when the closing quote was
// found, and only the opening quote and whatever was scanned otherwise.
func scanString(c *cursor, r diag.Reporter) token.Token {
	line := c.line
	start := c.off
	c.bump() // opening quote
	for !c.eof() && c.peek() != '"' && c.peek() != '\n' {
		if c.peek() == '\\' && c.peekAt(1) != 0 {
			c.bump()
		}
		c.bump()
	}
	if !c.eof() && c.peek() == '"' {
		c.bump()
	} else if r != nil {
		r.Emit(diag.Diagnostic{
			Phase:   diag.Lex,
			Line:    line,
			Message: "Unterminated string literal",
		})
	}
	return token.Token{Kind: token.String, Lexeme: c.src[start:c.off], Line: line}
}

func matchesAny(c *cursor, ops []string) bool {
	for _, op := range ops {
		if strings.HasPrefix(c.src[c.off:], op) {
			return true
		}
	}
	return false
}

func scanRelOp(c *cursor) token.Token {
	line := c.line
	for _, op := range relOps {
		if strings.HasPrefix(c.src[c.off:], op) {
			c.off += len(op)
			return token.Token{Kind: token.Op, Lexeme: op, Line: line}
		}
	}
	panic("lexer: scanRelOp called without a matching operator")
}

func scanOne(c *cursor, kind token.Kind) token.Token {
	line := c.line
	b := c.bump()
	return token.Token{Kind: kind, Lexeme: string(b), Line: line}
}
