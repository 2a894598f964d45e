// ABOUTME: CLI commands for logging main sets and accessories.
// ABOUTME: Also provides clear, which removes one session's log.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/models"
)

var (
	logNotes string
	logWeek  int
	logDay   int

	accWeight float64
	accReps   string
	accWeek   int
	accDay    int

	clearWeek int
	clearDay  int
)

var logCmd = &cobra.Command{
	Use:     "log <row> <set> <kg>",
	Aliases: []string{"l"},
	Short:   "Log the weight for one set",
	Long: `Log the weight lifted for one set of a main row.

Rows are numbered across the session as shown by 'liftlog show'. Sets start
at 1. A weight of 0 marks the set as not done.

EXAMPLES:

  liftlog log 0 1 60                     # Row 0, set 1, 60 kg
  liftlog log 3 2 82.5 --notes "paused"  # With a note on the row
  liftlog log 0 1 100 --week 2 --day 1   # Log a different session`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid row: %s", args[0])
		}
		set, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid set: %s", args[1])
		}
		kg, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[2])
		}

		st, p, err := loadState()
		if err != nil {
			return err
		}
		key, err := sessionKey(st, logWeek, logDay)
		if err != nil {
			return err
		}
		if err := st.LogSet(p, key, row, set-1, kg); err != nil {
			return err
		}
		if logNotes != "" {
			if err := st.SetRowNotes(p, key, row, logNotes); err != nil {
				return err
			}
		}
		if err := saveState(st); err != nil {
			return err
		}

		color.Green("✓ Logged row %d set %d: %g kg", row, set, kg)
		return nil
	},
}

var accCmd = &cobra.Command{
	Use:   "acc <index> <sets-completed>",
	Short: "Log an accessory",
	Long: `Log an accessory by its number in 'liftlog show'.

Sets completed is recorded on its own; weight and reps are optional.

EXAMPLES:

  liftlog acc 0 3                       # 3 sets done
  liftlog acc 1 4 --weight 30 --reps 12`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[0])
		}
		sets, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid sets: %s", args[1])
		}

		entry := models.AccessoryLog{SetsCompleted: sets}
		if cmd.Flags().Changed("weight") {
			w := accWeight
			entry.Weight = &w
		}
		if accReps != "" {
			reps := models.ParseReps(accReps)
			entry.Reps = &reps
		}

		st, p, err := loadState()
		if err != nil {
			return err
		}
		key, err := sessionKey(st, accWeek, accDay)
		if err != nil {
			return err
		}
		if err := st.LogAccessory(p, key, idx, entry); err != nil {
			return err
		}
		if err := saveState(st); err != nil {
			return err
		}

		color.Green("✓ Logged accessory %d: %d sets", idx, sets)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a session's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadState()
		if err != nil {
			return err
		}
		key, err := sessionKey(st, clearWeek, clearDay)
		if err != nil {
			return err
		}
		st.ClearDay(key)
		if err := saveState(st); err != nil {
			return err
		}

		color.Green("✓ Cleared week %d day %d", key.Week, key.Day)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the row")
	logCmd.Flags().IntVar(&logWeek, "week", 0, "week number (default: current)")
	logCmd.Flags().IntVar(&logDay, "day", 0, "day number (default: current)")

	accCmd.Flags().Float64Var(&accWeight, "weight", 0, "weight used in kg")
	accCmd.Flags().StringVar(&accReps, "reps", "", "reps performed")
	accCmd.Flags().IntVar(&accWeek, "week", 0, "week number (default: current)")
	accCmd.Flags().IntVar(&accDay, "day", 0, "day number (default: current)")

	clearCmd.Flags().IntVar(&clearWeek, "week", 0, "week number (default: current)")
	clearCmd.Flags().IntVar(&clearDay, "day", 0, "day number (default: current)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(accCmd)
	rootCmd.AddCommand(clearCmd)
}
