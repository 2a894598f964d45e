// ABOUTME: Read model joining a session's prescription with its log and targets.
// ABOUTME: Rendered by the CLI and returned as JSON by the MCP server.
package state

import (
	"github.com/harperreed/liftlog/internal/logbook"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/progress"
)

// RowView is one main row with its target and padded log.
type RowView struct {
	Index   int       `json:"index"`
	Lift    string    `json:"lift"`
	Percent float64   `json:"percent,omitempty"`
	Sets    int       `json:"sets"`
	Reps    string    `json:"reps"`
	Note    string    `json:"note,omitempty"`
	Target  float64   `json:"target_kg,omitempty"`
	Logged  []float64 `json:"logged"`
	Notes   string    `json:"notes,omitempty"`
}

// BlockView is one main lift and its rows.
type BlockView struct {
	Lift string    `json:"lift"`
	Note string    `json:"note,omitempty"`
	Rows []RowView `json:"rows"`
}

// AccessoryView is one accessory with its log.
type AccessoryView struct {
	Index         int      `json:"index"`
	Name          string   `json:"name"`
	Sets          int      `json:"sets"`
	Reps          string   `json:"reps"`
	SetsCompleted int      `json:"sets_completed"`
	Weight        *float64 `json:"weight,omitempty"`
	LoggedReps    string   `json:"logged_reps,omitempty"`
}

// SessionView is a session ready for display.
type SessionView struct {
	Program         string          `json:"program"`
	Week            int             `json:"week"`
	Day             int             `json:"day"`
	Title           string          `json:"title"`
	Warmup          []string        `json:"warmup"`
	Blocks          []BlockView     `json:"blocks"`
	Accessories     []AccessoryView `json:"accessories"`
	Notes           string          `json:"notes,omitempty"`
	Session         progress.Result `json:"session_progress"`
	ProgramProgress int             `json:"program_progress"`
}

// View builds the display model for the session at key.
func (s *State) View(p models.Program, key models.DayKey) (SessionView, error) {
	sess, err := s.session(p, key)
	if err != nil {
		return SessionView{}, err
	}
	day := logbook.Day(s.Logs, key)
	pos, err := progress.Program(p, key)
	if err != nil {
		return SessionView{}, err
	}

	v := SessionView{
		Program:         p.ID,
		Week:            key.Week,
		Day:             key.Day,
		Title:           sess.Title,
		Warmup:          sess.Warmup,
		Notes:           sess.Notes,
		Session:         progress.Session(sess, day),
		ProgramProgress: pos,
	}

	offsets := sess.RowOffsets()
	for bi, b := range sess.Main {
		bv := BlockView{Lift: string(b.Lift), Note: b.Note, Rows: []RowView{}}
		for i, sc := range b.Scheme {
			idx := offsets[bi] + i
			entry := day.Main[idx]
			bv.Rows = append(bv.Rows, RowView{
				Index:   idx,
				Lift:    string(b.Lift),
				Percent: sc.Percent,
				Sets:    sc.Sets,
				Reps:    sc.Reps.String(),
				Note:    sc.Note,
				Target:  s.OneRM.Target(b.Lift, sc.Percent),
				Logged:  logbook.Padded(entry, sc.Sets),
				Notes:   entry.Notes,
			})
		}
		v.Blocks = append(v.Blocks, bv)
	}

	for i, a := range sess.Accessories {
		entry := day.Accessories[i]
		av := AccessoryView{
			Index:         i,
			Name:          a.Name,
			Sets:          a.Sets,
			Reps:          a.Reps.String(),
			SetsCompleted: entry.SetsCompleted,
			Weight:        entry.Weight,
		}
		if entry.Reps != nil {
			av.LoggedReps = entry.Reps.String()
		}
		v.Accessories = append(v.Accessories, av)
	}

	return v, nil
}
