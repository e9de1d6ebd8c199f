package diagfmt

import (
	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/token"
)

// Payload is the serializable form of a compile_frontend result, shared by
// the JSON and msgpack encoders.
type Payload struct {
	Tokens      []TokenDTO      `json:"tokens" msgpack:"tokens"`
	AST         []map[string]any `json:"ast" msgpack:"ast"`
	Diagnostics []DiagDTO       `json:"diagnostics" msgpack:"diagnostics"`
}

// TokenDTO is a wire-friendly Token: spec.md's three fields, nothing more.
type TokenDTO struct {
	Kind   string `json:"kind" msgpack:"kind"`
	Lexeme string `json:"lexeme" msgpack:"lexeme"`
	Line   int    `json:"line" msgpack:"line"`
}

// DiagDTO is a wire-friendly Diagnostic.
type DiagDTO struct {
	Phase      string `json:"phase" msgpack:"phase"`
	Line       int    `json:"line" msgpack:"line"`
	Message    string `json:"message" msgpack:"message"`
	Suggestion string `json:"suggestion,omitempty" msgpack:"suggestion,omitempty"`
}

// BuildPayload converts the frontend's native types into Payload.
func BuildPayload(toks []token.Token, prog *ast.Program, diags []diag.Diagnostic) Payload {
	p := Payload{}
	for _, t := range toks {
		p.Tokens = append(p.Tokens, TokenDTO{Kind: t.Kind.String(), Lexeme: t.Lexeme, Line: t.Line})
	}
	if prog != nil {
		for _, s := range prog.Children {
			p.AST = append(p.AST, stmtNode(s))
		}
	}
	for _, d := range diags {
		p.Diagnostics = append(p.Diagnostics, DiagDTO{
			Phase: d.Phase.String(), Line: d.Line, Message: d.Message, Suggestion: d.Suggestion,
		})
	}
	return p
}

func stmtNode(s ast.Stmt) map[string]any {
	switch n := s.(type) {
	case *ast.VarDecl:
		node := map[string]any{"kind": "VarDecl", "type": n.TypeNode.Name, "name": n.VarNode.Name, "line": n.Ln}
		if n.Value != nil {
			node["value"] = exprNode(n.Value)
		}
		return node
	case *ast.Assign:
		return map[string]any{"kind": "Assign", "left": n.Left.Name, "op": n.Op, "right": exprNode(n.Right), "line": n.Ln}
	case *ast.If:
		node := map[string]any{"kind": "If", "cond": exprNode(n.Cond), "ifBody": stmtNode(n.IfBody), "line": n.Ln}
		if n.ElseBody != nil {
			node["elseBody"] = stmtNode(n.ElseBody)
		}
		return node
	case *ast.Block:
		stmts := make([]map[string]any, 0, len(n.Statements))
		for _, st := range n.Statements {
			stmts = append(stmts, stmtNode(st))
		}
		return map[string]any{"kind": "Block", "statements": stmts, "line": n.Ln}
	case *ast.ErrorNode:
		return map[string]any{"kind": "ErrorNode", "line": n.RecoveredFrom.StartLine}
	default:
		return map[string]any{"kind": "Unknown"}
	}
}

func exprNode(e ast.Expr) map[string]any {
	switch n := e.(type) {
	case *ast.BinOp:
		return map[string]any{"kind": "BinOp", "op": n.Op, "left": exprNode(n.Left), "right": exprNode(n.Right), "line": n.Ln}
	case *ast.Variable:
		return map[string]any{"kind": "Variable", "name": n.Name, "line": n.Ln}
	case *ast.Number:
		return map[string]any{"kind": "Number", "value": n.Value, "isFloat": n.IsFloat, "line": n.Ln}
	case *ast.ErrorNode:
		return map[string]any{"kind": "ErrorNode", "line": n.RecoveredFrom.StartLine}
	default:
		return map[string]any{"kind": "Unknown"}
	}
}
