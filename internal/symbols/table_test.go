package symbols_test

import (
	"testing"

	"simplec/internal/symbols"
)

func TestDeclareAndLookup(t *testing.T) {
	tb := symbols.NewTable()
	if redeclared := tb.Declare("x", symbols.Symbol{DeclaredType: "int", DeclLine: 1}); redeclared {
		t.Fatalf("first declaration reported as redeclared")
	}
	sym, ok := tb.Lookup("x")
	if !ok || sym.DeclaredType != "int" || sym.DeclLine != 1 {
		t.Fatalf("Lookup(x) = %+v, %v", sym, ok)
	}
}

func TestRedeclarationInSameScope(t *testing.T) {
	tb := symbols.NewTable()
	tb.Declare("x", symbols.Symbol{DeclaredType: "int", DeclLine: 1})
	if redeclared := tb.Declare("x", symbols.Symbol{DeclaredType: "float", DeclLine: 2}); !redeclared {
		t.Fatalf("expected redeclaration to be reported")
	}
}

func TestNestedScopeShadowsWithoutRedeclaration(t *testing.T) {
	tb := symbols.NewTable()
	tb.Declare("x", symbols.Symbol{DeclaredType: "int", DeclLine: 1})
	tb.Push()
	if redeclared := tb.Declare("x", symbols.Symbol{DeclaredType: "float", DeclLine: 5}); redeclared {
		t.Fatalf("a nested scope may shadow an outer declaration")
	}
	sym, _ := tb.Lookup("x")
	if sym.DeclaredType != "float" {
		t.Errorf("inner scope did not shadow: got %+v", sym)
	}
	tb.Pop()
	sym, _ = tb.Lookup("x")
	if sym.DeclaredType != "int" {
		t.Errorf("outer declaration not restored after Pop: got %+v", sym)
	}
}

func TestLookupMissing(t *testing.T) {
	tb := symbols.NewTable()
	if _, ok := tb.Lookup("missing"); ok {
		t.Fatalf("Lookup of an undeclared name should fail")
	}
}
