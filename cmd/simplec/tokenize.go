package main

import (
	"github.com/spf13/cobra"

	"simplec/internal/diag"
	"simplec/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.sc>",
	Short: "Lex a SimpleC source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiags)
	toks := lexer.Lex(src, bag)

	printDiagnostics(cmd, src, bag.Snapshot())
	return writeResult(cmd, toks, nil, bag.Snapshot())
}
