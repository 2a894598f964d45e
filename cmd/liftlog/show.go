// ABOUTME: CLI command for displaying a session.
// ABOUTME: Renders warm-up, main rows with targets and logs, accessories and progress bars.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/state"
)

var (
	showWeek int
	showDay  int
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"today"},
	Short:   "Show a session",
	Long: `Show the current session, or another one with --week and --day.

Main rows are numbered across the whole session; use that number with
'liftlog log'. Accessories are numbered separately for 'liftlog acc'.

EXAMPLES:

  liftlog show                   # Current session
  liftlog show --week 3 --day 2  # Any session in the program`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, p, err := loadState()
		if err != nil {
			return err
		}
		key, err := sessionKey(st, showWeek, showDay)
		if err != nil {
			return err
		}
		v, err := st.View(p, key)
		if err != nil {
			return err
		}

		renderSession(cmd.OutOrStdout(), p.Name, v, key == st.Cursor)
		return nil
	},
}

func renderSession(w io.Writer, programName string, v state.SessionView, current bool) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	cyan := color.New(color.FgCyan)

	header := fmt.Sprintf("%s · Week %d Day %d", programName, v.Week, v.Day)
	if current {
		header += faint.Sprint(" (current)")
	}
	fmt.Fprintln(w, header)
	bold.Fprintln(w, v.Title)

	if len(v.Warmup) > 0 {
		fmt.Fprintln(w)
		faint.Fprintln(w, "Warm-up")
		for _, line := range v.Warmup {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}

	for _, b := range v.Blocks {
		fmt.Fprintln(w)
		title := b.Lift
		if b.Note != "" {
			title += faint.Sprintf(" (%s)", b.Note)
		}
		cyan.Fprintln(w, title)
		for _, r := range b.Rows {
			fmt.Fprintf(w, "  [%d] %s %s%s\n", r.Index, prescription(r), logged(r.Logged), rowNotes(r))
		}
	}

	if len(v.Accessories) > 0 {
		fmt.Fprintln(w)
		cyan.Fprintln(w, "Accessories")
		for _, a := range v.Accessories {
			detail := fmt.Sprintf("%d/%d sets", a.SetsCompleted, a.Sets)
			if a.Weight != nil {
				detail += fmt.Sprintf(" @ %g kg", *a.Weight)
			}
			if a.LoggedReps != "" {
				detail += fmt.Sprintf(" × %s", a.LoggedReps)
			}
			fmt.Fprintf(w, "  [%d] %s %d×%s  %s\n", a.Index, a.Name, a.Sets, a.Reps, faint.Sprint(detail))
		}
	}

	if v.Notes != "" {
		fmt.Fprintln(w)
		faint.Fprintln(w, v.Notes)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Session %s %3d%% (%d/%d)\n", progressBar(v.Session.Percent, 20), v.Session.Percent, v.Session.Done, v.Session.Total)
	fmt.Fprintf(w, "Program %s %3d%%\n", progressBar(v.ProgramProgress, 20), v.ProgramProgress)
}

func prescription(r state.RowView) string {
	var b strings.Builder
	if r.Percent > 0 {
		fmt.Fprintf(&b, "%g%% ", r.Percent)
	}
	fmt.Fprintf(&b, "%d×%s", r.Sets, r.Reps)
	if r.Target > 0 {
		fmt.Fprintf(&b, " → %g kg", r.Target)
	}
	if r.Note != "" {
		fmt.Fprintf(&b, " (%s)", r.Note)
	}
	return padRight(b.String(), 28)
}

func logged(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		if w > 0 {
			parts[i] = color.GreenString("%g", w)
		} else {
			parts[i] = color.New(color.Faint).Sprint("·")
		}
	}
	return strings.Join(parts, " ")
}

func rowNotes(r state.RowView) string {
	if r.Notes == "" {
		return ""
	}
	return color.New(color.Faint).Sprintf("  %s", truncate(r.Notes, 40))
}

// progressBar renders pct (0-100) as a bar of width cells.
func progressBar(pct, width int) string {
	filled := min(max(pct*width/100, 0), width)
	return color.GreenString(strings.Repeat("█", filled)) + color.New(color.Faint).Sprint(strings.Repeat("░", width-filled))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	showCmd.Flags().IntVar(&showWeek, "week", 0, "week number")
	showCmd.Flags().IntVar(&showDay, "day", 0, "day number")
	rootCmd.AddCommand(showCmd)
}
