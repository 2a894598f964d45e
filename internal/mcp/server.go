// ABOUTME: MCP server setup for the liftlog training log.
// ABOUTME: Wraps the MCP server with a key-value store and the program registry.
package mcp

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/liftlog/internal/program"
	"github.com/harperreed/liftlog/internal/state"
	"github.com/harperreed/liftlog/internal/storage"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	reg       *program.Registry
	logger    *log.Logger

	// mu serializes load-modify-save cycles.
	mu sync.Mutex
}

// NewServer creates a new MCP server with the given storage.
func NewServer(store storage.Store, reg *program.Registry, logger *log.Logger) (*Server, error) {
	if reg == nil {
		reg = program.DefaultRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "liftlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		reg:       reg,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("mcp server starting", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// update loads state, applies fn and saves the result if fn succeeds.
func (s *Server) update(fn func(st *state.State) error) (*state.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := state.Load(s.store, s.reg, s.logger)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := state.Save(s.store, st); err != nil {
		return nil, err
	}
	return st, nil
}

// read loads state without saving.
func (s *Server) read() (*state.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return state.Load(s.store, s.reg, s.logger)
}
