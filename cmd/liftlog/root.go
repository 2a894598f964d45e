// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Opens config, logger and storage in PersistentPreRunE and closes storage afterwards.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/config"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/program"
	"github.com/harperreed/liftlog/internal/state"
	"github.com/harperreed/liftlog/internal/storage"
)

// noStore marks commands that open storage themselves or not at all.
const noStore = "no-store"

var (
	verbose bool

	cfg    *config.Config
	logger *log.Logger
	store  storage.Store
	reg    = program.DefaultRegistry()
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Weightlifting program tracker",
	Long: `liftlog walks you through a fixed weightlifting program one session at a
time and records what you lifted.

PROGRAMS:

  10week         10-Week WL: snatch, clean & jerk, squat and deadlift, 4 days a week
  6week_2split   6-Week 2-Split: bench + squat and back + deadlift, 3 days a week

QUICK START:

  $ liftlog programs                  # List programs
  $ liftlog program use 6week_2split  # Switch program (resets to week 1 day 1)
  $ liftlog show                      # Today's session with target weights
  $ liftlog log 0 1 60                # Row 0, set 1: 60 kg
  $ liftlog acc 0 3 --weight 30       # Accessory 0: 3 sets at 30 kg
  $ liftlog next                      # Move to the next session

ONE-REP MAXES:

  Target weights are percentages of your 1RM, rounded to 2.5 kg.

  $ liftlog 1rm                       # Show all maxes
  $ liftlog 1rm set snatch 75         # Update one

STORAGE:

  Data lives in SQLite at ~/.local/share/liftlog/liftlog.db by default.
  Set "backend" in ~/.config/liftlog/config.json (or LIFTLOG_BACKEND) to
  sqlite, badger or charm.

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "liftlog"})

		if cmd.Name() == "help" || cmd.Annotations[noStore] != "" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("opening storage", "backend", cfg.GetBackend(), "dir", cfg.GetDataDir())

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// Execute runs the root command and releases storage even when a command fails.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// loadState loads persisted state and builds its program.
func loadState() (*state.State, models.Program, error) {
	st, err := state.Load(store, reg, logger)
	if err != nil {
		return nil, models.Program{}, fmt.Errorf("failed to load state: %w", err)
	}
	p, err := st.Program(reg)
	if err != nil {
		return nil, models.Program{}, err
	}
	return st, p, nil
}

func saveState(st *state.State) error {
	if err := state.Save(store, st); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// sessionKey returns the session named by --week and --day, or the cursor
// when neither is set.
func sessionKey(st *state.State, week, day int) (models.DayKey, error) {
	if week == 0 && day == 0 {
		return st.Cursor, nil
	}
	if week == 0 || day == 0 {
		return models.DayKey{}, fmt.Errorf("--week and --day must be given together")
	}
	return models.DayKey{Week: week, Day: day}, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
