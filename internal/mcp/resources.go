// ABOUTME: MCP resource implementations for the training log.
// ABOUTME: Provides liftlog://session and liftlog://progress resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	sessionURI  = "liftlog://session"
	progressURI = "liftlog://progress"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         sessionURI,
		Name:        "Current Session",
		Description: "The session at the cursor with targets and logged sets",
		MIMEType:    "application/json",
	}, s.handleSessionResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         progressURI,
		Name:        "Training Progress",
		Description: "Completion of the current session and position within the program",
		MIMEType:    "application/json",
	}, s.handleProgressResource)
}

// Resource handlers

func (s *Server) handleSessionResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	p, err := st.Program(s.reg)
	if err != nil {
		return nil, err
	}
	v, err := st.View(p, st.Cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to build session: %w", err)
	}
	return jsonResource(sessionURI, v)
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	out, err := s.progressFor(st, st.Cursor)
	if err != nil {
		return nil, err
	}
	return jsonResource(progressURI, out)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
