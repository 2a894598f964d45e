// ABOUTME: CLI commands for exporting and importing liftlog data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports JSON.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/state"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export training data",
	Long: `Export training data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Per-week progress tables for the active program

EXAMPLES:

  liftlog export json                 # Export all data as JSON
  liftlog export json -o backup.json  # Save to file
  liftlog export markdown             # Progress overview`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, p, err := loadState()
		if err != nil {
			return err
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = state.ExportJSON(st)
		case "yaml":
			data, err = state.ExportYAML(st)
		case "markdown", "md":
			data = []byte(state.ExportMarkdown(st, p))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import training data from JSON",
	Long: `Import training data from a JSON export.

The file replaces the current program, cursor, one-rep maxes and log. A file
that fails validation is rejected and nothing is written.

EXAMPLES:

  liftlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		st, err := state.ImportJSON(data, reg)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := saveState(st); err != nil {
			return err
		}

		color.Green("✓ Imported from %s", args[0])
		fmt.Printf("  %d logged sessions, at week %d day %d of %s\n", len(st.Logs), st.Cursor.Week, st.Cursor.Day, st.ProgramID)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
