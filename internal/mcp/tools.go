// ABOUTME: MCP tool implementations for the training log.
// ABOUTME: Each mutating tool loads state, applies one validated change and saves.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/progress"
	"github.com/harperreed/liftlog/internal/state"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_programs",
		Description: "List the available training programs and mark the active one",
	}, s.handleListPrograms)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "select_program",
		Description: "Switch the active program and move to week 1 day 1. Logs are kept",
	}, s.handleSelectProgram)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session",
		Description: "Get a session's prescription, targets and log. Defaults to the current session",
	}, s.handleGetSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_cursor",
		Description: "Move the current session to the given week and day",
	}, s.handleSetCursor)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Record the weight lifted for one set of a main row",
	}, s.handleLogSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_accessory",
		Description: "Record sets completed, and optionally weight and reps, for an accessory",
	}, s.handleLogAccessory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get completion for a session and the position within the program",
	}, s.handleGetProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_one_rm",
		Description: "Set the one-rep max used to compute target weights for a lift",
	}, s.handleSetOneRM)
}

// Tool input/output types

type emptyInput struct{}

type programEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type programsOutput struct {
	Programs []programEntry `json:"programs"`
}

type selectProgramInput struct {
	ID string `json:"id" jsonschema:"Program ID, e.g. 10week or 6week_2split"`
}

type sessionInput struct {
	Week int `json:"week,omitempty" jsonschema:"Week number (defaults to the current session)"`
	Day  int `json:"day,omitempty" jsonschema:"Day number (defaults to the current session)"`
}

type cursorInput struct {
	Week int `json:"week" jsonschema:"Week number, starting at 1"`
	Day  int `json:"day" jsonschema:"Day number within the week, starting at 1"`
}

type cursorOutput struct {
	ProgramID string `json:"program_id"`
	Week      int    `json:"week"`
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

type logSetInput struct {
	Row    int     `json:"row" jsonschema:"Main row index across the session's blocks, starting at 0"`
	Set    int     `json:"set" jsonschema:"Set number, starting at 1"`
	Weight float64 `json:"weight" jsonschema:"Weight lifted in kg"`
	Notes  string  `json:"notes,omitempty" jsonschema:"Optional notes for the row"`
	Week   int     `json:"week,omitempty" jsonschema:"Week number (defaults to the current session)"`
	Day    int     `json:"day,omitempty" jsonschema:"Day number (defaults to the current session)"`
}

type logAccessoryInput struct {
	Index         int      `json:"index" jsonschema:"Accessory position in the session, starting at 0"`
	SetsCompleted int      `json:"sets_completed" jsonschema:"Number of sets completed"`
	Weight        *float64 `json:"weight,omitempty" jsonschema:"Weight used in kg"`
	Reps          string   `json:"reps,omitempty" jsonschema:"Reps performed, a number or free text"`
	Week          int      `json:"week,omitempty" jsonschema:"Week number (defaults to the current session)"`
	Day           int      `json:"day,omitempty" jsonschema:"Day number (defaults to the current session)"`
}

type logOutput struct {
	Week    int             `json:"week"`
	Day     int             `json:"day"`
	Session progress.Result `json:"session_progress"`
	Message string          `json:"message"`
}

type progressOutput struct {
	ProgramID string          `json:"program_id"`
	Week      int             `json:"week"`
	Day       int             `json:"day"`
	Session   progress.Result `json:"session_progress"`
	Program   int             `json:"program_progress"`
}

type setOneRMInput struct {
	Lift string  `json:"lift" jsonschema:"Lift name, e.g. Snatch, Clean & Jerk, Back Squat"`
	Kg   float64 `json:"kg" jsonschema:"One-rep max in kg"`
}

type oneRMOutput struct {
	Lift    string       `json:"lift"`
	Kg      float64      `json:"kg"`
	OneRM   models.OneRM `json:"one_rm"`
	Message string       `json:"message"`
}

// Tool handlers

func (s *Server) handleListPrograms(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, programsOutput, error) {
	st, err := s.read()
	if err != nil {
		return nil, programsOutput{}, fmt.Errorf("failed to load state: %w", err)
	}

	out := programsOutput{Programs: []programEntry{}}
	for _, info := range s.reg.List() {
		out.Programs = append(out.Programs, programEntry{
			ID:     info.ID,
			Name:   info.Name,
			Active: info.ID == st.ProgramID,
		})
	}
	return nil, out, nil
}

func (s *Server) handleSelectProgram(ctx context.Context, req *mcp.CallToolRequest, input selectProgramInput) (*mcp.CallToolResult, cursorOutput, error) {
	st, err := s.update(func(st *state.State) error {
		return st.SelectProgram(s.reg, input.ID)
	})
	if err != nil {
		return nil, cursorOutput{}, fmt.Errorf("failed to select program: %w", err)
	}
	return s.cursorResult(st, fmt.Sprintf("Selected %s", st.ProgramID))
}

func (s *Server) handleGetSession(ctx context.Context, req *mcp.CallToolRequest, input sessionInput) (*mcp.CallToolResult, state.SessionView, error) {
	st, err := s.read()
	if err != nil {
		return nil, state.SessionView{}, fmt.Errorf("failed to load state: %w", err)
	}
	p, err := st.Program(s.reg)
	if err != nil {
		return nil, state.SessionView{}, err
	}
	key, err := resolveKey(st, input.Week, input.Day)
	if err != nil {
		return nil, state.SessionView{}, err
	}
	v, err := st.View(p, key)
	if err != nil {
		return nil, state.SessionView{}, fmt.Errorf("failed to get session: %w", err)
	}
	return nil, v, nil
}

func (s *Server) handleSetCursor(ctx context.Context, req *mcp.CallToolRequest, input cursorInput) (*mcp.CallToolResult, cursorOutput, error) {
	st, err := s.update(func(st *state.State) error {
		p, err := st.Program(s.reg)
		if err != nil {
			return err
		}
		return st.Goto(p, models.Cursor{Week: input.Week, Day: input.Day})
	})
	if err != nil {
		return nil, cursorOutput{}, fmt.Errorf("failed to set cursor: %w", err)
	}
	return s.cursorResult(st, fmt.Sprintf("Moved to week %d day %d", st.Cursor.Week, st.Cursor.Day))
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logOutput, error) {
	var key models.DayKey
	st, err := s.update(func(st *state.State) error {
		p, err := st.Program(s.reg)
		if err != nil {
			return err
		}
		if key, err = resolveKey(st, input.Week, input.Day); err != nil {
			return err
		}
		if err := st.LogSet(p, key, input.Row, input.Set-1, input.Weight); err != nil {
			return err
		}
		if input.Notes != "" {
			return st.SetRowNotes(p, key, input.Row, input.Notes)
		}
		return nil
	})
	if err != nil {
		return nil, logOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	out, err := s.logResult(st, key)
	if err != nil {
		return nil, logOutput{}, err
	}
	out.Message = fmt.Sprintf("Logged row %d set %d: %g kg", input.Row, input.Set, input.Weight)
	return nil, out, nil
}

func (s *Server) handleLogAccessory(ctx context.Context, req *mcp.CallToolRequest, input logAccessoryInput) (*mcp.CallToolResult, logOutput, error) {
	entry := models.AccessoryLog{
		Weight:        input.Weight,
		SetsCompleted: input.SetsCompleted,
	}
	if input.Reps != "" {
		reps := models.ParseReps(input.Reps)
		entry.Reps = &reps
	}

	var key models.DayKey
	st, err := s.update(func(st *state.State) error {
		p, err := st.Program(s.reg)
		if err != nil {
			return err
		}
		if key, err = resolveKey(st, input.Week, input.Day); err != nil {
			return err
		}
		return st.LogAccessory(p, key, input.Index, entry)
	})
	if err != nil {
		return nil, logOutput{}, fmt.Errorf("failed to log accessory: %w", err)
	}

	out, err := s.logResult(st, key)
	if err != nil {
		return nil, logOutput{}, err
	}
	out.Message = fmt.Sprintf("Logged accessory %d: %d sets", input.Index, input.SetsCompleted)
	return nil, out, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input sessionInput) (*mcp.CallToolResult, progressOutput, error) {
	st, err := s.read()
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to load state: %w", err)
	}
	key, err := resolveKey(st, input.Week, input.Day)
	if err != nil {
		return nil, progressOutput{}, err
	}
	out, err := s.progressFor(st, key)
	if err != nil {
		return nil, progressOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleSetOneRM(ctx context.Context, req *mcp.CallToolRequest, input setOneRMInput) (*mcp.CallToolResult, oneRMOutput, error) {
	lift, err := models.ParseLift(input.Lift)
	if err != nil {
		return nil, oneRMOutput{}, err
	}
	st, err := s.update(func(st *state.State) error {
		return st.SetOneRM(lift, input.Kg)
	})
	if err != nil {
		return nil, oneRMOutput{}, fmt.Errorf("failed to set one-rep max: %w", err)
	}
	return nil, oneRMOutput{
		Lift:    string(lift),
		Kg:      input.Kg,
		OneRM:   st.OneRM,
		Message: fmt.Sprintf("Set %s 1RM to %g kg", lift, input.Kg),
	}, nil
}

// resolveKey returns the session addressed by week and day, or the cursor
// when both are zero.
func resolveKey(st *state.State, week, day int) (models.DayKey, error) {
	if week == 0 && day == 0 {
		return st.Cursor, nil
	}
	if week == 0 || day == 0 {
		return models.DayKey{}, fmt.Errorf("week and day must be given together")
	}
	return models.DayKey{Week: week, Day: day}, nil
}

func (s *Server) cursorResult(st *state.State, msg string) (*mcp.CallToolResult, cursorOutput, error) {
	p, err := st.Program(s.reg)
	if err != nil {
		return nil, cursorOutput{}, err
	}
	sess, err := st.Session(p)
	if err != nil {
		return nil, cursorOutput{}, err
	}
	return nil, cursorOutput{
		ProgramID: st.ProgramID,
		Week:      st.Cursor.Week,
		Day:       st.Cursor.Day,
		Title:     sess.Title,
		Message:   msg,
	}, nil
}

func (s *Server) logResult(st *state.State, key models.DayKey) (logOutput, error) {
	pr, err := s.progressFor(st, key)
	if err != nil {
		return logOutput{}, err
	}
	return logOutput{Week: key.Week, Day: key.Day, Session: pr.Session}, nil
}

func (s *Server) progressFor(st *state.State, key models.DayKey) (progressOutput, error) {
	p, err := st.Program(s.reg)
	if err != nil {
		return progressOutput{}, err
	}
	v, err := st.View(p, key)
	if err != nil {
		return progressOutput{}, fmt.Errorf("failed to get progress: %w", err)
	}
	return progressOutput{
		ProgramID: st.ProgramID,
		Week:      key.Week,
		Day:       key.Day,
		Session:   v.Session,
		Program:   v.ProgramProgress,
	}, nil
}
