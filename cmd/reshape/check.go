package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reshape/internal/config"
	"reshape/internal/diag"
	"reshape/internal/driver"
	"reshape/internal/treefmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Report findings without rewriting anything",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().String("config", "", "path to reshape.toml")
	checkCmd.Flags().String("fail-on", "warning", "exit non-zero when findings at or above this severity exist (info|warning|error)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	failOn, err := cmd.Flags().GetString("fail-on")
	if err != nil {
		return err
	}
	threshold, err := diag.ParseSeverity(failOn)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	results, err := driver.ProcessPaths(cmd.Context(), args, driver.Options{Jobs: jobs, Config: cfg})
	if err != nil {
		return err
	}

	colorize, err := useColor(cmd)
	if err != nil {
		return err
	}

	var hasErrors, failing bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Bag.AtOrAbove(threshold) > 0 {
			failing = true
		}
		switch outputFormat {
		case "text":
			if err := treefmt.DiagnosticsPretty(os.Stdout, res.Path, res.Bag.Items(), treefmt.Options{Color: colorize}); err != nil {
				return err
			}
		case "json":
			if err := treefmt.DiagnosticsJSON(os.Stdout, res.Path, res.Bag.Items()); err != nil {
				return err
			}
		default:
			return fmt.Errorf("check: unsupported output format %q", outputFormat)
		}
	}

	if hasErrors {
		return fmt.Errorf("check: failed to process some files")
	}
	if failing {
		return fmt.Errorf("check: findings at or above %q severity", failOn)
	}
	return nil
}
