// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and shares storage with the CLI.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "liftlog": {
        "command": "liftlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_programs    List programs and the active one
  select_program   Switch program (resets to week 1 day 1)
  get_session      Session prescription, targets and log
  set_cursor       Move to a week and day
  log_set          Record weight for one main set
  log_accessory    Record an accessory
  get_progress     Session completion and program position
  set_one_rm       Update a one-rep max

AVAILABLE RESOURCES:

  liftlog://session    Current session with its log
  liftlog://progress   Current progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, reg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
