package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplec/internal/driver"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.sc>",
	Short: "Run the full front-end (lex, parse, check) and print tokens, AST, and diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	res := driver.CompileFrontend(src)
	printDiagnostics(cmd, src, res.Diagnostics)
	if err := writeResult(cmd, res.Tokens, res.AST, res.Diagnostics); err != nil {
		return err
	}
	if res.HasErrors() {
		return fmt.Errorf("%d diagnostic(s)", len(res.Diagnostics))
	}
	return nil
}
