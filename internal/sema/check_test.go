package sema_test

import (
	"testing"

	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/sema"
	"simplec/internal/source"
)

func varDecl(name, typ string, line int, value ast.Expr) *ast.VarDecl {
	return &ast.VarDecl{
		TypeNode: &ast.Type{Name: typ, Ln: line},
		VarNode:  &ast.Variable{Name: name, Ln: line},
		Value:    value,
		Ln:       line,
	}
}

func TestCleanProgramNoDiagnostics(t *testing.T) {
	prog := &ast.Program{Children: []ast.Stmt{
		varDecl("a", "int", 1, &ast.Number{Value: "1", Ln: 1}),
		varDecl("b", "int", 2, &ast.Number{Value: "2", Ln: 2}),
	}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	if b.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", b.Snapshot())
	}
}

func TestRedeclarationInSameScope(t *testing.T) {
	prog := &ast.Program{Children: []ast.Stmt{
		varDecl("x", "int", 1, nil),
		varDecl("x", "float", 2, nil),
	}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	snap := b.Snapshot()
	if len(snap) != 1 || snap[0].Message != "Variable 'x' redeclared on line 2" {
		t.Fatalf("unexpected diagnostics: %v", snap)
	}
}

func TestUndeclaredAssignTarget(t *testing.T) {
	prog := &ast.Program{Children: []ast.Stmt{
		&ast.Assign{Left: &ast.Variable{Name: "z", Ln: 1}, Right: &ast.Number{Value: "1", Ln: 1}, Ln: 1},
	}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	snap := b.Snapshot()
	if len(snap) != 1 || snap[0].Message != "Variable 'z' not declared on line 1" {
		t.Fatalf("unexpected diagnostics: %v", snap)
	}
}

func TestUndeclaredUseInsideElse(t *testing.T) {
	// int x = 1; if (x > 0) { x = 2; } else { z = 3; } -> one diagnostic for z.
	prog := &ast.Program{Children: []ast.Stmt{
		varDecl("x", "int", 1, &ast.Number{Value: "1", Ln: 1}),
		&ast.If{
			Cond: &ast.BinOp{Op: ">", Left: &ast.Variable{Name: "x", Ln: 1}, Right: &ast.Number{Value: "0", Ln: 1}, Ln: 1},
			IfBody: &ast.Block{Ln: 1, Statements: []ast.Stmt{
				&ast.Assign{Left: &ast.Variable{Name: "x", Ln: 1}, Right: &ast.Number{Value: "2", Ln: 1}, Ln: 1},
			}},
			ElseBody: &ast.Block{Ln: 1, Statements: []ast.Stmt{
				&ast.Assign{Left: &ast.Variable{Name: "z", Ln: 1}, Right: &ast.Number{Value: "3", Ln: 1}, Ln: 1},
			}},
			Ln: 1,
		},
	}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	snap := b.Snapshot()
	if len(snap) != 1 || snap[0].Message != "Variable 'z' not declared on line 1" {
		t.Fatalf("unexpected diagnostics: %v", snap)
	}
}

func TestScopeDoesNotLeakOutOfBlock(t *testing.T) {
	prog := &ast.Program{Children: []ast.Stmt{
		&ast.Block{Ln: 1, Statements: []ast.Stmt{
			varDecl("inner", "int", 1, nil),
		}},
		&ast.Assign{Left: &ast.Variable{Name: "inner", Ln: 2}, Right: &ast.Number{Value: "1", Ln: 2}, Ln: 2},
	}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	if !b.HasErrors() {
		t.Fatalf("expected 'inner' to be out of scope after its block closes")
	}
}

func TestErrorNodeIsSkipped(t *testing.T) {
	prog := &ast.Program{Children: []ast.Stmt{&ast.ErrorNode{RecoveredFrom: source.At(1)}}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	if b.HasErrors() {
		t.Fatalf("ErrorNode must never be recursed into: %v", b.Snapshot())
	}
}

func TestSelfReferentialInitializerUsesOuterScope(t *testing.T) {
	// int x = x; -- the RHS 'x' must resolve before the new x is declared.
	prog := &ast.Program{Children: []ast.Stmt{
		varDecl("x", "int", 1, &ast.Variable{Name: "x", Ln: 1}),
	}}
	b := diag.NewBag(10)
	sema.Check(prog, b)
	snap := b.Snapshot()
	if len(snap) != 1 || snap[0].Message != "Variable 'x' not declared on line 1" {
		t.Fatalf("unexpected diagnostics: %v", snap)
	}
}
