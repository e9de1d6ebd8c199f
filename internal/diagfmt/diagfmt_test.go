package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"simplec/internal/diagfmt"
	"simplec/internal/driver"
	"simplec/internal/token"
)

func TestFormatTokensPrettyMatchesSpecRendering(t *testing.T) {
	var buf bytes.Buffer
	toks := []token.Token{{Kind: token.Keyword, Lexeme: "if", Line: 3}}
	if err := diagfmt.FormatTokensPretty(&buf, toks); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	want := "Token(KEYWORD, 'if', L3)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyDiagnosticsIncludeSourceLine(t *testing.T) {
	res := driver.CompileFrontend("int x = 1 @ 2;")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, "int x = 1 @ 2;", res.Diagnostics, diagfmt.PrettyOpts{Color: false})
	out := buf.String()
	if !strings.Contains(out, "Unexpected character '@'") {
		t.Errorf("output missing rendered diagnostic: %s", out)
	}
	if !strings.Contains(out, "int x = 1 @ 2;") {
		t.Errorf("output missing quoted source line: %s", out)
	}
}

func TestBuildPayloadAndJSONRoundtrip(t *testing.T) {
	res := driver.CompileFrontend("int a = 1;")
	payload := diagfmt.BuildPayload(res.Tokens, res.AST, res.Diagnostics)
	var buf bytes.Buffer
	if err := diagfmt.WriteJSON(&buf, payload); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded diagfmt.Payload
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.AST) != 1 || decoded.AST[0]["kind"] != "VarDecl" {
		t.Errorf("decoded AST = %v", decoded.AST)
	}
}

func TestFormatASTNestsIfAndBlock(t *testing.T) {
	res := driver.CompileFrontend("if (a > 0) { a = 1; }")
	var buf bytes.Buffer
	if err := diagfmt.FormatAST(&buf, res.AST); err != nil {
		t.Fatalf("FormatAST: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "If(") || !strings.Contains(out, "Block") || !strings.Contains(out, "Assign(a = 1)") {
		t.Errorf("unexpected AST dump: %s", out)
	}
}
