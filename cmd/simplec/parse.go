package main

import (
	"github.com/spf13/cobra"

	"simplec/internal/diag"
	"simplec/internal/lexer"
	"simplec/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.sc>",
	Short: "Lex and parse a SimpleC source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiags)
	toks := lexer.Lex(src, bag)
	prog := parser.Parse(toks, bag)

	printDiagnostics(cmd, src, bag.Snapshot())
	return writeResult(cmd, nil, prog, bag.Snapshot())
}
