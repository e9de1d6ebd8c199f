package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplec/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print simplec's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.BuildDate)
		}
		return nil
	},
}
