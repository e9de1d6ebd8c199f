package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"simplec/internal/ast"
	"simplec/internal/diag"
	"simplec/internal/diagfmt"
	"simplec/internal/token"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode == "auto" && isTerminal(os.Stderr))
}

func readSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// printDiagnostics writes diags to stderr, colorized per the --color flag,
// with the offending source line quoted beneath each one.
func printDiagnostics(cmd *cobra.Command, src string, diags []diag.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	diagfmt.Pretty(os.Stderr, src, diags, diagfmt.PrettyOpts{Color: useColor(cmd)})
}

// writeResult renders toks/prog/diags to stdout in the format requested by
// --format, or just the requested artifact when one of toks/prog is nil.
// --quiet suppresses this artifact dump entirely; diagnostics on stderr are
// unaffected.
func writeResult(cmd *cobra.Command, toks []token.Token, prog *ast.Program, diags []diag.Diagnostic) error {
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		return nil
	}
	format, _ := cmd.Root().PersistentFlags().GetString("format")
	switch format {
	case "pretty":
		if toks != nil {
			if err := diagfmt.FormatTokensPretty(os.Stdout, toks); err != nil {
				return err
			}
		}
		if prog != nil {
			return diagfmt.FormatAST(os.Stdout, prog)
		}
		return nil
	case "json":
		return diagfmt.WriteJSON(os.Stdout, diagfmt.BuildPayload(toks, prog, diags))
	case "msgpack":
		return diagfmt.WriteMsgpack(os.Stdout, diagfmt.BuildPayload(toks, prog, diags))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
