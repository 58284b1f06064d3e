package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available backends",
	Long:  `Shows a list of all renderer backends compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default settings file",
	Long: `Prints the built-in settings as YAML. Save it as ~/.tetris/config.yaml
or ./configs/tetris.yaml and edit it to change keys, colors and logging.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
	},
}

func runBackends(cmd *cobra.Command, _ []string) {
	backends := registry.List()
	out := cmd.OutOrStdout()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	fmt.Fprintln(out, "Available backends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tetris <id> <rows> <columns>' to play.")
}
