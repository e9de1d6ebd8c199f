// Package sema implements the SimpleC semantic analyzer: a scoped pass over
// the parser's AST that resolves variable declarations and references,
// per spec.md section 4.3. It never mutates the AST and never aborts.
package sema

import (
	"fmt"

	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/symbols"
)

// Check walks program, emitting semantic diagnostics into r.
func Check(program *ast.Program, r diag.Reporter) {
	c := &checker{table: symbols.NewTable(), reporter: r}
	for _, stmt := range program.Children {
		c.stmt(stmt)
	}
}

type checker struct {
	table    *symbols.Table
	reporter diag.Reporter
}

func (c *checker) emit(line int, msg string) {
	if c.reporter == nil {
		return
	}
	c.reporter.Emit(diag.Diagnostic{Phase: diag.Semantic, Line: line, Message: msg})
}

// stmt dispatches over the closed Stmt family. ErrorNode is skipped, never
// recursed into, per spec.md section 4.3.
func (c *checker) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		c.varDecl(n)
	case *ast.Assign:
		c.assign(n)
	case *ast.If:
		c.ifStmt(n)
	case *ast.Block:
		c.block(n)
	case *ast.ErrorNode:
		// skipped
	}
}

// varDecl visits the initializer before binding the new name, so a
// self-referential initializer ("int x = x;") correctly resolves against
// the enclosing scope rather than the declaration being introduced.
func (c *checker) varDecl(n *ast.VarDecl) {
	if n.Value != nil {
		c.expr(n.Value)
	}
	sym := symbols.Symbol{DeclaredType: n.TypeNode.Name, DeclLine: n.Ln}
	if redeclared := c.table.Declare(n.VarNode.Name, sym); redeclared {
		c.emit(n.Ln, fmt.Sprintf("Variable '%s' redeclared on line %d", n.VarNode.Name, n.Ln))
	}
}

func (c *checker) assign(n *ast.Assign) {
	c.expr(n.Right)
	if _, ok := c.table.Lookup(n.Left.Name); !ok {
		c.emit(n.Left.Ln, fmt.Sprintf("Variable '%s' not declared on line %d", n.Left.Name, n.Left.Ln))
	}
}

func (c *checker) ifStmt(n *ast.If) {
	c.expr(n.Cond)
	c.stmt(n.IfBody)
	if n.ElseBody != nil {
		c.stmt(n.ElseBody)
	}
}

func (c *checker) block(n *ast.Block) {
	c.table.Push()
	for _, s := range n.Statements {
		c.stmt(s)
	}
	c.table.Pop()
}

// expr dispatches over the closed Expr family. ErrorNode is skipped.
func (c *checker) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.BinOp:
		c.expr(n.Left)
		c.expr(n.Right)
	case *ast.Variable:
		if _, ok := c.table.Lookup(n.Name); !ok {
			c.emit(n.Ln, fmt.Sprintf("Variable '%s' not declared on line %d", n.Name, n.Ln))
		}
	case *ast.Number:
		// no-op
	case *ast.ErrorNode:
		// skipped
	}
}
