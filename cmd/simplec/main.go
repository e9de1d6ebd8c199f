// Command simplec is the CLI front-end for the SimpleC compiler front-end:
// tokenize, parse, check, and compile a single source file or a directory
// of them, rendering the result as pretty text, JSON, or msgpack.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"simplec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "simplec",
	Short: "SimpleC compiler front-end",
	Long:  `simplec lexes, parses, and semantically checks SimpleC source, with error-recovering diagnostics.`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json|msgpack)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
