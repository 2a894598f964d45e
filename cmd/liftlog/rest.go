// ABOUTME: CLI command for the rest timer.
// ABOUTME: Counts up in place until the limit or Ctrl-C.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/resttimer"
)

var restLimit time.Duration

var restCmd = &cobra.Command{
	Use:         "rest",
	Short:       "Run a rest timer",
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if restLimit <= 0 {
			return fmt.Errorf("limit must be positive: %s", restLimit)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		timer := resttimer.New(restLimit)
		limit := resttimer.Format(timer.Limit())
		err := timer.Run(ctx, func(secs int) {
			pct := int(timer.Fraction() * 100)
			fmt.Fprintf(out, "\r%s %s / %s", progressBar(pct, 30), resttimer.Format(secs), limit)
		})
		fmt.Fprintln(out)

		if errors.Is(err, context.Canceled) {
			color.Yellow("Rest stopped at %s", resttimer.Format(timer.Seconds()))
			return nil
		}
		if err != nil {
			return err
		}
		color.Green("✓ Rest over, next set\a")
		return nil
	},
}

func init() {
	restCmd.Flags().DurationVar(&restLimit, "limit", resttimer.DefaultLimit, "rest length")
	rootCmd.AddCommand(restCmd)
}
