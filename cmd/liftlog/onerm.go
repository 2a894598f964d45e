// ABOUTME: CLI commands for one-rep maxes.
// ABOUTME: Lists every lift's max and updates one by name or alias.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/models"
)

var oneRMCmd = &cobra.Command{
	Use:     "1rm",
	Aliases: []string{"max"},
	Short:   "Show one-rep maxes",
	Long: `Show the one-rep maxes used to compute target weights.

Set one with 'liftlog 1rm set <lift> <kg>'. Lifts accept short names:
sn, cj, dl, bench, bs, fs, pp.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadState()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, lift := range models.AllLifts {
			fmt.Fprintf(out, "%s %6g kg\n", padRight(string(lift), 14), st.OneRM[lift])
		}
		return nil
	},
}

var oneRMSetCmd = &cobra.Command{
	Use:   "set <lift> <kg>",
	Short: "Set a one-rep max",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}
		kg, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[1])
		}

		st, _, err := loadState()
		if err != nil {
			return err
		}
		if err := st.SetOneRM(lift, kg); err != nil {
			return err
		}
		if err := saveState(st); err != nil {
			return err
		}

		color.Green("✓ %s 1RM set to %g kg", lift, kg)
		return nil
	},
}

func init() {
	oneRMCmd.AddCommand(oneRMSetCmd)
	rootCmd.AddCommand(oneRMCmd)
}
