// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Handlers are called directly against an in-memory store.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/program"
	"github.com/harperreed/liftlog/internal/progress"
	"github.com/harperreed/liftlog/internal/state"
	"github.com/harperreed/liftlog/internal/storage"
)

// setupTestServer creates a server over an empty in-memory store.
func setupTestServer(t *testing.T) (*Server, storage.Store) {
	t.Helper()

	store := storage.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	server, err := NewServer(store, program.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, store
}

// setupSixWeek creates a server with the six-week program selected.
func setupSixWeek(t *testing.T) (*Server, storage.Store) {
	t.Helper()

	server, store := setupTestServer(t)
	_, _, err := server.handleSelectProgram(context.Background(), &mcp.CallToolRequest{}, selectProgramInput{ID: program.SixWeekID})
	if err != nil {
		t.Fatalf("select_program failed: %v", err)
	}
	return server, store
}

func loadState(t *testing.T, store storage.Store) *state.State {
	t.Helper()
	st, err := state.Load(store, program.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return st
}

func TestNewServer(t *testing.T) {
	server, _ := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
	if server.reg == nil || server.logger == nil {
		t.Error("Expected defaults for registry and logger")
	}
}

func TestHandleListPrograms(t *testing.T) {
	server, _ := setupTestServer(t)

	_, output, err := server.handleListPrograms(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []programEntry{
		{ID: program.TenWeekID, Name: "10-Week WL", Active: true},
		{ID: program.SixWeekID, Name: "6-Week 2-Split", Active: false},
	}
	if diff := cmp.Diff(want, output.Programs); diff != "" {
		t.Errorf("programs mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleSelectProgram(t *testing.T) {
	server, store := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleSetCursor(ctx, &mcp.CallToolRequest{}, cursorInput{Week: 3, Day: 2})
	if err != nil {
		t.Fatalf("set_cursor failed: %v", err)
	}

	_, output, err := server.handleSelectProgram(ctx, &mcp.CallToolRequest{}, selectProgramInput{ID: program.SixWeekID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.ProgramID != program.SixWeekID || output.Week != 1 || output.Day != 1 {
		t.Errorf("output = %+v, want 6week_2split at 1-1", output)
	}
	if output.Title == "" || output.Message == "" {
		t.Error("Expected title and message")
	}
	if st := loadState(t, store); st.ProgramID != program.SixWeekID {
		t.Errorf("persisted ProgramID = %q", st.ProgramID)
	}

	_, _, err = server.handleSelectProgram(ctx, &mcp.CallToolRequest{}, selectProgramInput{ID: "5x5"})
	var unknown *program.UnknownProgramError
	if !errors.As(err, &unknown) {
		t.Errorf("error = %v, want *UnknownProgramError", err)
	}
	if st := loadState(t, store); st.ProgramID != program.SixWeekID {
		t.Error("rejected selection changed the stored program")
	}
}

func TestHandleSetCursor(t *testing.T) {
	server, store := setupSixWeek(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   cursorInput
		wantErr bool
	}{
		{"valid", cursorInput{Week: 2, Day: 3}, false},
		{"day outside week", cursorInput{Week: 1, Day: 4}, true},
		{"week outside program", cursorInput{Week: 7, Day: 1}, true},
		{"zero", cursorInput{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleSetCursor(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				if !errors.Is(err, progress.ErrInvalidCursor) {
					t.Errorf("error = %v, want ErrInvalidCursor", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if output.Week != tt.input.Week || output.Day != tt.input.Day {
				t.Errorf("output = %+v", output)
			}
		})
	}

	if st := loadState(t, store); st.Cursor != (models.Cursor{Week: 2, Day: 3}) {
		t.Errorf("persisted cursor = %v, want 2-3", st.Cursor)
	}
}

func TestHandleLogSet(t *testing.T) {
	server, store := setupSixWeek(t)
	ctx := context.Background()

	_, output, err := server.handleLogSet(ctx, &mcp.CallToolRequest{}, logSetInput{
		Row:    3,
		Set:    2,
		Weight: 77.5,
		Notes:  "paused",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Week != 1 || output.Day != 1 {
		t.Errorf("logged to %d-%d, want the cursor 1-1", output.Week, output.Day)
	}
	if output.Session.Done != 1 {
		t.Errorf("Session.Done = %d, want 1", output.Session.Done)
	}
	if output.Message == "" {
		t.Error("Expected non-empty Message")
	}

	st := loadState(t, store)
	row := st.Logs[models.DayKey{Week: 1, Day: 1}].Main[3]
	if diff := cmp.Diff(models.RowLog{SetWeights: []float64{0, 77.5, 0}, Notes: "paused"}, row); diff != "" {
		t.Errorf("row log mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleLogSetExplicitSession(t *testing.T) {
	server, store := setupSixWeek(t)

	_, _, err := server.handleLogSet(context.Background(), &mcp.CallToolRequest{}, logSetInput{
		Row: 0, Set: 1, Weight: 100, Week: 4, Day: 2,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	st := loadState(t, store)
	if _, ok := st.Logs[models.DayKey{Week: 4, Day: 2}]; !ok {
		t.Error("expected log for 4-2")
	}
	if st.Cursor != (models.Cursor{Week: 1, Day: 1}) {
		t.Errorf("logging moved the cursor to %v", st.Cursor)
	}
}

func TestHandleLogSetErrors(t *testing.T) {
	server, store := setupSixWeek(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   logSetInput
		wantErr error
	}{
		{"set zero", logSetInput{Row: 0, Set: 0, Weight: 60}, state.ErrSetOutOfRange},
		{"set past end", logSetInput{Row: 0, Set: 4, Weight: 60}, state.ErrSetOutOfRange},
		{"row past end", logSetInput{Row: 6, Set: 1, Weight: 60}, state.ErrRowOutOfRange},
		{"session outside program", logSetInput{Row: 0, Set: 1, Weight: 60, Week: 9, Day: 1}, progress.ErrInvalidCursor},
		{"week without day", logSetInput{Row: 0, Set: 1, Weight: 60, Week: 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleLogSet(ctx, &mcp.CallToolRequest{}, tt.input)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if st := loadState(t, store); len(st.Logs) != 0 {
		t.Errorf("rejected writes changed logs: %v", st.Logs)
	}
}

func TestHandleLogAccessory(t *testing.T) {
	server, store := setupSixWeek(t)
	ctx := context.Background()

	w := 30.0
	_, output, err := server.handleLogAccessory(ctx, &mcp.CallToolRequest{}, logAccessoryInput{
		Index:         1,
		SetsCompleted: 3,
		Weight:        &w,
		Reps:          "12",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Session.Done != 3 {
		t.Errorf("Session.Done = %d, want 3", output.Session.Done)
	}

	st := loadState(t, store)
	got := st.Logs[models.DayKey{Week: 1, Day: 1}].Accessories[1]
	reps := models.RepsN(12)
	want := models.AccessoryLog{Weight: &w, Reps: &reps, SetsCompleted: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("accessory log mismatch (-want +got):\n%s", diff)
	}

	_, _, err = server.handleLogAccessory(ctx, &mcp.CallToolRequest{}, logAccessoryInput{Index: 99, SetsCompleted: 1})
	if !errors.Is(err, state.ErrAccessoryOutOfRange) {
		t.Errorf("error = %v, want ErrAccessoryOutOfRange", err)
	}
}

func TestHandleGetSession(t *testing.T) {
	server, _ := setupSixWeek(t)
	ctx := context.Background()

	_, current, err := server.handleGetSession(ctx, &mcp.CallToolRequest{}, sessionInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if current.Program != program.SixWeekID || current.Week != 1 || current.Day != 1 {
		t.Errorf("session = %s %d-%d, want the cursor", current.Program, current.Week, current.Day)
	}
	if len(current.Blocks) != 2 || current.Blocks[0].Rows[0].Target != 90 {
		t.Errorf("blocks = %+v", current.Blocks)
	}

	_, technique, err := server.handleGetSession(ctx, &mcp.CallToolRequest{}, sessionInput{Week: 2, Day: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if technique.Week != 2 || technique.Day != 3 {
		t.Errorf("session = %d-%d, want 2-3", technique.Week, technique.Day)
	}

	if _, _, err := server.handleGetSession(ctx, &mcp.CallToolRequest{}, sessionInput{Week: 2, Day: 9}); !errors.Is(err, progress.ErrInvalidCursor) {
		t.Errorf("error = %v, want ErrInvalidCursor", err)
	}
}

func TestHandleGetProgress(t *testing.T) {
	server, _ := setupSixWeek(t)
	ctx := context.Background()

	_, output, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, sessionInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Program != 0 || output.Session.Done != 0 || output.Session.Total == 0 {
		t.Errorf("fresh progress = %+v", output)
	}

	_, last, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, sessionInput{Week: 6, Day: 3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if last.Program != 100 {
		t.Errorf("Program = %d at the last session, want 100", last.Program)
	}
}

func TestHandleSetOneRM(t *testing.T) {
	server, store := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   setOneRMInput
		want    models.Lift
		wantErr bool
	}{
		{"display name", setOneRMInput{Lift: "Snatch", Kg: 75}, models.LiftSnatch, false},
		{"alias", setOneRMInput{Lift: "cj", Kg: 95}, models.LiftCleanJerk, false},
		{"unknown lift", setOneRMInput{Lift: "Curl", Kg: 40}, "", true},
		{"negative", setOneRMInput{Lift: "Bench", Kg: -5}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleSetOneRM(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if output.Lift != string(tt.want) || output.OneRM[tt.want] != tt.input.Kg {
				t.Errorf("output = %+v", output)
			}
		})
	}

	st := loadState(t, store)
	if st.OneRM[models.LiftSnatch] != 75 || st.OneRM[models.LiftCleanJerk] != 95 {
		t.Errorf("persisted OneRM = %v", st.OneRM)
	}
	if st.OneRM[models.LiftBench] != models.DefaultOneRM()[models.LiftBench] {
		t.Error("rejected update changed Bench Press")
	}
}

func TestHandleSessionResource(t *testing.T) {
	server, _ := setupSixWeek(t)

	result, err := server.handleSessionResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("len(Contents) = %d, want 1", len(result.Contents))
	}
	c := result.Contents[0]
	if c.URI != "liftlog://session" {
		t.Errorf("URI = %s, want liftlog://session", c.URI)
	}
	if c.MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", c.MIMEType)
	}

	var v state.SessionView
	if err := json.Unmarshal([]byte(c.Text), &v); err != nil {
		t.Fatalf("Failed to parse resource: %v", err)
	}
	if v.Program != program.SixWeekID || v.Title == "" {
		t.Errorf("session = %+v", v)
	}
}

func TestHandleProgressResource(t *testing.T) {
	server, _ := setupTestServer(t)

	result, err := server.handleProgressResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	c := result.Contents[0]
	if c.URI != "liftlog://progress" {
		t.Errorf("URI = %s, want liftlog://progress", c.URI)
	}
	for _, want := range []string{`"program_id": "10week"`, `"session_progress"`, `"program_progress": 0`} {
		if !strings.Contains(c.Text, want) {
			t.Errorf("resource missing %s:\n%s", want, c.Text)
		}
	}
}
