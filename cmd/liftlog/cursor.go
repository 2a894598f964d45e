// ABOUTME: CLI commands for moving through the program.
// ABOUTME: goto jumps to a session; next and prev step across week boundaries.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/models"
)

var gotoCmd = &cobra.Command{
	Use:   "goto <week> <day>",
	Short: "Jump to a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week: %s", args[0])
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day: %s", args[1])
		}

		st, p, err := loadState()
		if err != nil {
			return err
		}
		if err := st.Goto(p, models.Cursor{Week: week, Day: day}); err != nil {
			return err
		}
		if err := saveState(st); err != nil {
			return err
		}

		sess, _ := st.Session(p)
		color.Green("✓ Week %d Day %d: %s", week, day, sess.Title)
		return nil
	},
}

var nextCmd = &cobra.Command{
	Use:     "next",
	Aliases: []string{"n"},
	Short:   "Move to the next session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(1)
	},
}

var prevCmd = &cobra.Command{
	Use:     "prev",
	Aliases: []string{"p"},
	Short:   "Move to the previous session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(-1)
	},
}

func step(delta int) error {
	st, p, err := loadState()
	if err != nil {
		return err
	}
	if !st.Step(p, delta) {
		edge := "last"
		if delta < 0 {
			edge = "first"
		}
		color.Yellow("Already at the %s session (week %d day %d)", edge, st.Cursor.Week, st.Cursor.Day)
		return nil
	}
	if err := saveState(st); err != nil {
		return err
	}

	sess, _ := st.Session(p)
	color.Green("✓ Week %d Day %d: %s", st.Cursor.Week, st.Cursor.Day, sess.Title)
	return nil
}

func init() {
	rootCmd.AddCommand(gotoCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
}
