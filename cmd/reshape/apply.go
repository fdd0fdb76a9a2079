package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reshape/internal/driver"
)

var applyCmd = &cobra.Command{
	Use:   "apply [flags] <path> [path...]",
	Short: "Rewrite tree files in place",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().String("config", "", "path to reshape.toml")
}

func runApply(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	results, err := driver.ProcessPaths(cmd.Context(), args, driver.Options{Apply: true, Jobs: jobs, Config: cfg})
	if err != nil {
		return err
	}

	var hasErrors bool
	changed := 0
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "apply: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		changed++
		if !quiet {
			fmt.Printf("rewrote %s (%d findings)\n", res.Path, res.Bag.Len())
		}
	}

	if !quiet {
		fmt.Printf("%d of %d files rewritten\n", changed, len(results))
	}
	if hasErrors {
		return fmt.Errorf("apply: failed to rewrite some files")
	}
	return nil
}
