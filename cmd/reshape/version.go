package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reshape/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		colorize, err := useColor(cmd)
		if err != nil {
			return err
		}
		v := version.Version
		if colorize {
			v = version.Pretty()
		}
		fmt.Printf("reshape %s\n", v)
		if version.GitCommit != "" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
