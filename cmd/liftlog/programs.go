// ABOUTME: CLI commands for listing and selecting training programs.
// ABOUTME: Selecting a program resets the cursor but keeps the log.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var programsCmd = &cobra.Command{
	Use:     "programs",
	Aliases: []string{"ls"},
	Short:   "List training programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadState()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		for _, info := range reg.List() {
			marker := "  "
			if info.ID == st.ProgramID {
				marker = color.GreenString("* ")
			}
			fmt.Fprintf(out, "%s%s %s\n", marker, padRight(info.ID, 14), faint.Sprint(info.Name))
		}
		return nil
	},
}

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage the active program",
}

var programUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Switch to a program",
	Long: `Switch the active program and move to week 1 day 1.

Logged sessions are kept. They are stored by week and day, so switching back
to a program shows its earlier log.

Example:
  liftlog program use 6week_2split`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadState()
		if err != nil {
			return err
		}
		if err := st.SelectProgram(reg, args[0]); err != nil {
			return err
		}
		if err := saveState(st); err != nil {
			return err
		}

		color.Green("✓ Now following %s", args[0])
		return nil
	},
}

func init() {
	programCmd.AddCommand(programUseCmd)
	rootCmd.AddCommand(programsCmd)
	rootCmd.AddCommand(programCmd)
}
