// ABOUTME: CLI command for session and program progress.
// ABOUTME: Prints completion bars for the current session and the whole program.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show session and program progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, p, err := loadState()
		if err != nil {
			return err
		}
		sess, err := st.Session(p)
		if err != nil {
			return err
		}
		pos, err := progress.Program(p, st.Cursor)
		if err != nil {
			return err
		}
		cur := progress.Session(sess, st.Logs[st.Cursor])

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s · Week %d Day %d · %s\n", p.Name, st.Cursor.Week, st.Cursor.Day, sess.Title)
		fmt.Fprintf(out, "Session %s %3d%% (%d/%d sets)\n", progressBar(cur.Percent, 20), cur.Percent, cur.Done, cur.Total)
		fmt.Fprintf(out, "Program %s %3d%%\n", progressBar(pos, 20), pos)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
