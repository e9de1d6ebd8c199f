package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"simplec/internal/ast"
)

// FormatAST writes a readable, indented dump of prog for the "parse" and
// "compile" subcommands. There is no spec-mandated wire format for this;
// it exists purely for human inspection and tests.
func FormatAST(w io.Writer, prog *ast.Program) error {
	for _, s := range prog.Children {
		if _, err := io.WriteString(w, dumpStmt(s, 0)); err != nil {
			return err
		}
	}
	return nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func dumpStmt(s ast.Stmt, depth int) string {
	pad := indent(depth)
	switch n := s.(type) {
	case *ast.VarDecl:
		out := fmt.Sprintf("%sVarDecl(%s %s", pad, n.TypeNode.Name, n.VarNode.Name)
		if n.Value != nil {
			out += " = " + dumpExpr(n.Value)
		}
		return out + fmt.Sprintf(") L%d\n", n.Ln)
	case *ast.Assign:
		return fmt.Sprintf("%sAssign(%s %s %s) L%d\n", pad, n.Left.Name, n.Op, dumpExpr(n.Right), n.Ln)
	case *ast.If:
		out := fmt.Sprintf("%sIf(%s) L%d\n", pad, dumpExpr(n.Cond), n.Ln)
		out += dumpStmt(n.IfBody, depth+1)
		if n.ElseBody != nil {
			out += pad + "Else\n"
			out += dumpStmt(n.ElseBody, depth+1)
		}
		return out
	case *ast.Block:
		out := fmt.Sprintf("%sBlock L%d\n", pad, n.Ln)
		for _, stmt := range n.Statements {
			out += dumpStmt(stmt, depth+1)
		}
		return out
	case *ast.ErrorNode:
		return fmt.Sprintf("%sErrorNode %s\n", pad, n.RecoveredFrom)
	default:
		return fmt.Sprintf("%s<unknown stmt %T>\n", pad, s)
	}
}

func dumpExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.BinOp:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(n.Left), n.Op, dumpExpr(n.Right))
	case *ast.Variable:
		return n.Name
	case *ast.Number:
		return n.Value
	case *ast.ErrorNode:
		return "<error>"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}
