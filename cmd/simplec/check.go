package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplec/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.sc>",
	Short: "Run the full front-end and report diagnostics, without printing the AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	res := driver.CompileFrontend(src)
	printDiagnostics(cmd, src, res.Diagnostics)
	if res.HasErrors() {
		return fmt.Errorf("%d diagnostic(s)", len(res.Diagnostics))
	}
	return nil
}
