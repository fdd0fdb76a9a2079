package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reshape/internal/treefmt"
	"reshape/internal/treeio"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <file>",
	Short: "Print the structure of a serialized tree file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", "text", "output format (text|json)")
	dumpCmd.Flags().Bool("source", false, "print the reconstructed source text instead of the structure")
}

func runDump(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	showSource, err := cmd.Flags().GetBool("source")
	if err != nil {
		return err
	}

	root, err := treeio.Load(args[0])
	if err != nil {
		return err
	}

	if showSource {
		fmt.Print(root.Text())
		return nil
	}

	switch outputFormat {
	case "text":
		return treefmt.TreePretty(os.Stdout, root)
	case "json":
		return treefmt.TreeJSON(os.Stdout, root)
	default:
		return fmt.Errorf("dump: unsupported output format %q", outputFormat)
	}
}
