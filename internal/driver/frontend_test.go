package driver_test

import (
	"testing"

	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/driver"
	"simplec/internal/token"
)

func TestCompileFrontendCleanProgram(t *testing.T) {
	res := driver.CompileFrontend("int a = 1; int b = 2;")
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if len(res.AST.Children) != 2 {
		t.Fatalf("expected two VarDecls, got %d", len(res.AST.Children))
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("token stream must end in EOF, got %v", last)
	}
}

func TestCompileFrontendAlwaysProducesProgram(t *testing.T) {
	res := driver.CompileFrontend("@@@")
	if res.AST == nil {
		t.Fatalf("AST must be non-nil whenever lexing produced at least EOF")
	}
	if _, ok := interface{}(res.AST).(*ast.Program); !ok {
		t.Fatalf("AST root must be a Program")
	}
}

func TestCompileFrontendAggregatesPhasesInOrder(t *testing.T) {
	// Lexical fault, then a semantic fault: diagnostics must come back
	// lex-phase first, semantic-phase last.
	res := driver.CompileFrontend("int x = 1 @ 2; y = 3;")
	if len(res.Diagnostics) < 2 {
		t.Fatalf("expected at least a lexical and a semantic diagnostic, got %v", res.Diagnostics)
	}
	first := res.Diagnostics[0]
	last := res.Diagnostics[len(res.Diagnostics)-1]
	if first.Phase != diag.Lex {
		t.Errorf("first diagnostic phase = %v, want Lex", first.Phase)
	}
	if last.Message != "Variable 'y' not declared on line 1" {
		t.Errorf("last diagnostic = %+v, want the undeclared-y semantic fault", last)
	}
}
