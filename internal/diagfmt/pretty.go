// Package diagfmt renders compile_frontend's three products — tokens, AST,
// and diagnostics — for the CLI, in plain text, JSON, and msgpack.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"simplec/internal/diag"
)

// PrettyOpts controls human-readable rendering.
type PrettyOpts struct {
	Color bool
}

var (
	syntaxLabel   = color.New(color.FgRed, color.Bold)
	semanticLabel = color.New(color.FgMagenta, color.Bold)
	lexLabel      = color.New(color.FgYellow, color.Bold)
	suggestLabel  = color.New(color.FgCyan)
)

// Pretty writes each diagnostic's rendered form (spec.md section 6) to w,
// one per line, optionally color-coded by phase and followed by the
// offending source line when src is non-empty.
func Pretty(w io.Writer, src string, diags []diag.Diagnostic, opts PrettyOpts) {
	lines := strings.Split(src, "\n")
	gutterWidth := runewidth.StringWidth(fmt.Sprintf("%d", len(lines)))

	for _, d := range diags {
		label, plain := labelFor(d.Phase)
		if opts.Color {
			label.Fprint(w, plain+" ")
		} else {
			fmt.Fprint(w, plain+" ")
		}
		fmt.Fprintln(w, d.Render())

		if src != "" && d.Line >= 1 && d.Line <= len(lines) {
			gutter := fmt.Sprintf("%*d", gutterWidth, d.Line)
			fmt.Fprintf(w, "  %s | %s\n", gutter, lines[d.Line-1])
		}
	}
}

func labelFor(p diag.Phase) (*color.Color, string) {
	switch p {
	case diag.Lex:
		return lexLabel, "[lex]"
	case diag.Semantic:
		return semanticLabel, "[sema]"
	default:
		return syntaxLabel, "[syntax]"
	}
}
