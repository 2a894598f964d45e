// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Refuses to overwrite a destination that already holds data unless forced.
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/config"
	"github.com/harperreed/liftlog/internal/storage"
)

var (
	migrateFrom  string
	migrateTo    string
	migrateForce bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy every stored key from one backend to another.

Backends: ` + strings.Join(config.Backends, ", ") + `

Both backends use the configured data directory. After migrating, set
"backend" in the config file (or LIFTLOG_BACKEND) to start using the new one.

EXAMPLES:

  liftlog migrate --from sqlite --to badger
  liftlog migrate --from charm --to sqlite --force`,
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, b := range []string{migrateFrom, migrateTo} {
			if !slices.Contains(config.Backends, b) {
				return fmt.Errorf("unknown backend: %q (use %s)", b, strings.Join(config.Backends, ", "))
			}
		}
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are both %s", migrateFrom)
		}

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dir := c.GetDataDir()

		if migrateTo == config.BackendBadger && !migrateForce {
			nonEmpty, err := storage.IsDirNonEmpty(storage.BadgerPath(dir))
			if err != nil {
				return err
			}
			if nonEmpty {
				return fmt.Errorf("destination %s is not empty (use --force to overwrite)", storage.BadgerPath(dir))
			}
		}

		src, err := config.OpenBackend(migrateFrom, dir)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", migrateFrom, err)
		}
		defer func() { _ = src.Close() }()

		dst, err := config.OpenBackend(migrateTo, dir)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", migrateTo, err)
		}
		defer func() { _ = dst.Close() }()

		if !migrateForce {
			existing, err := dst.Keys()
			if err != nil {
				return fmt.Errorf("failed to list %s keys: %w", migrateTo, err)
			}
			if len(existing) > 0 {
				return fmt.Errorf("destination %s already has %d keys (use --force to overwrite)", migrateTo, len(existing))
			}
		}

		logger.Debug("migrating", "from", migrateFrom, "to", migrateTo, "dir", dir)
		summary, err := storage.Migrate(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s → %s", migrateFrom, migrateTo)
		fmt.Printf("  Keys: %d\n", summary.Keys)
		fmt.Printf("  Bytes: %d\n", summary.Bytes)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", config.BackendSQLite, "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", config.BackendBadger, "destination backend")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite keys in a non-empty destination")
	rootCmd.AddCommand(migrateCmd)
}
