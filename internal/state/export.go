// ABOUTME: Export and import functionality for liftlog state.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; JSON imports back.
package state

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/program"
	"github.com/harperreed/liftlog/internal/progress"
)

const (
	exportVersion = "1.0"
	exportTool    = "liftlog"
)

// ExportData represents the full export format for liftlog state.
type ExportData struct {
	Version    string          `json:"version"`
	ID         uuid.UUID       `json:"id"`
	ExportedAt time.Time       `json:"exported_at"`
	Tool       string          `json:"tool"`
	ProgramID  string          `json:"program_id"`
	Cursor     models.Cursor   `json:"cursor"`
	OneRM      models.OneRM    `json:"one_rm"`
	Logs       models.LogStore `json:"logs"`
}

// Snapshot captures st for export.
func Snapshot(st *State) *ExportData {
	return &ExportData{
		Version:    exportVersion,
		ID:         uuid.New(),
		ExportedAt: time.Now().UTC(),
		Tool:       exportTool,
		ProgramID:  st.ProgramID,
		Cursor:     st.Cursor,
		OneRM:      st.OneRM.Clone(),
		Logs:       st.Logs,
	}
}

// ExportJSON exports st as indented JSON.
func ExportJSON(st *State) ([]byte, error) {
	return json.MarshalIndent(Snapshot(st), "", "  ")
}

// ImportJSON decodes an export and validates it against reg. Unlike Load it
// fails closed: any invalid value is returned as a MalformedLogError.
func ImportJSON(data []byte, reg *program.Registry) (*State, error) {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, &MalformedLogError{Key: "export", Err: err}
	}

	if !reg.Has(export.ProgramID) {
		return nil, &MalformedLogError{Key: KeyProgramID, Err: &program.UnknownProgramError{ID: export.ProgramID}}
	}
	p, err := reg.Build(export.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	if !p.Contains(export.Cursor) {
		return nil, &MalformedLogError{Key: KeyWeek, Err: fmt.Errorf("cursor %s: %w", export.Cursor, progress.ErrInvalidCursor)}
	}
	if err := validateOneRM(export.OneRM); err != nil {
		return nil, &MalformedLogError{Key: KeyOneRM, Err: err}
	}

	logs := export.Logs
	if logs == nil {
		logs = models.LogStore{}
	}
	return &State{
		ProgramID: export.ProgramID,
		Cursor:    export.Cursor,
		OneRM:     withDefaults(export.OneRM),
		Logs:      logs,
	}, nil
}

// ExportYAML exports st as YAML with logs flattened into a list of sessions.
func ExportYAML(st *State) ([]byte, error) {
	snap := Snapshot(st)

	yamlData := struct {
		Version    string             `yaml:"version"`
		ID         string             `yaml:"id"`
		ExportedAt string             `yaml:"exported_at"`
		Tool       string             `yaml:"tool"`
		ProgramID  string             `yaml:"program_id"`
		Week       int                `yaml:"week"`
		Day        int                `yaml:"day"`
		OneRM      map[string]float64 `yaml:"one_rm"`
		Logs       []yamlDayLog       `yaml:"logs"`
	}{
		Version:    snap.Version,
		ID:         snap.ID.String(),
		ExportedAt: snap.ExportedAt.Format(time.RFC3339),
		Tool:       snap.Tool,
		ProgramID:  snap.ProgramID,
		Week:       snap.Cursor.Week,
		Day:        snap.Cursor.Day,
		OneRM:      make(map[string]float64, len(snap.OneRM)),
		Logs:       make([]yamlDayLog, 0, len(snap.Logs)),
	}

	for lift, kg := range snap.OneRM {
		yamlData.OneRM[string(lift)] = kg
	}
	for _, key := range sortedKeys(snap.Logs) {
		day := snap.Logs[key]
		yamlData.Logs = append(yamlData.Logs, yamlDayLog{
			Session:     key.String(),
			Main:        day.Main,
			Accessories: day.Accessories,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlDayLog struct {
	Session     string                      `yaml:"session"`
	Main        map[int]models.RowLog       `yaml:"main,omitempty"`
	Accessories map[int]models.AccessoryLog `yaml:"accessories,omitempty"`
}

// ExportMarkdown renders a per-session progress table for program p.
func ExportMarkdown(st *State, p models.Program) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# liftlog Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Program: %s (%s)\n\n", p.Name, p.ID))

	if pct, err := progress.Program(p, st.Cursor); err == nil {
		sb.WriteString(fmt.Sprintf("Current: week %d, day %d (%d%% through program)\n\n", st.Cursor.Week, st.Cursor.Day, pct))
	}

	for _, w := range p.Weeks {
		sb.WriteString(fmt.Sprintf("## Week %d (%s)\n\n", w.Week, w.SquatType))
		sb.WriteString("| Day | Session | Done | Total | Progress |\n")
		sb.WriteString("|-----|---------|------|-------|----------|\n")
		for _, d := range w.Days {
			key := models.DayKey{Week: w.Week, Day: d.Day}
			res := progress.Session(d, st.Logs[key])
			marker := ""
			if key == st.Cursor {
				marker = " ←"
			}
			sb.WriteString(fmt.Sprintf("| %d | %s%s | %d | %d | %d%% |\n",
				d.Day, d.Title, marker, res.Done, res.Total, res.Percent))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func sortedKeys(logs models.LogStore) []models.DayKey {
	keys := make([]models.DayKey, 0, len(logs))
	for k := range logs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Week != keys[j].Week {
			return keys[i].Week < keys[j].Week
		}
		return keys[i].Day < keys[j].Day
	})
	return keys
}
