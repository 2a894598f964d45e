// ABOUTME: Validated log and settings mutations shared by the CLI and MCP server.
// ABOUTME: Each checks the address against the program, then applies a copy-on-write update.
package state

import (
	"errors"
	"fmt"

	"github.com/harperreed/liftlog/internal/logbook"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/progress"
)

var (
	// ErrRowOutOfRange is returned for a main row index the session lacks.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrSetOutOfRange is returned for a set number beyond the row's sets.
	ErrSetOutOfRange = errors.New("set out of range")
	// ErrAccessoryOutOfRange is returned for an accessory index the session lacks.
	ErrAccessoryOutOfRange = errors.New("accessory out of range")
)

func (s *State) session(p models.Program, key models.DayKey) (models.Session, error) {
	sess, ok := p.Session(key.Week, key.Day)
	if !ok {
		return models.Session{}, fmt.Errorf("week %d day %d: %w", key.Week, key.Day, progress.ErrInvalidCursor)
	}
	return sess, nil
}

// LogSet records weight for one set of a main row. row is the global row
// index and set is zero-based.
func (s *State) LogSet(p models.Program, key models.DayKey, row, set int, weight float64) error {
	sess, err := s.session(p, key)
	if err != nil {
		return err
	}
	r, ok := sess.Row(row)
	if !ok {
		return fmt.Errorf("row %d of %d: %w", row, sess.RowCount(), ErrRowOutOfRange)
	}
	if set < 0 || set >= r.Scheme.Sets {
		return fmt.Errorf("set %d of %d: %w", set+1, r.Scheme.Sets, ErrSetOutOfRange)
	}
	if weight < 0 {
		return fmt.Errorf("weight must not be negative: %v", weight)
	}
	s.Logs = logbook.SetWeight(s.Logs, key, row, set, r.Scheme.Sets, weight)
	return nil
}

// SetRowNotes attaches notes to a main row.
func (s *State) SetRowNotes(p models.Program, key models.DayKey, row int, notes string) error {
	sess, err := s.session(p, key)
	if err != nil {
		return err
	}
	if _, ok := sess.Row(row); !ok {
		return fmt.Errorf("row %d of %d: %w", row, sess.RowCount(), ErrRowOutOfRange)
	}
	s.Logs = logbook.SetNotes(s.Logs, key, row, notes)
	return nil
}

// LogAccessory replaces an accessory's log.
func (s *State) LogAccessory(p models.Program, key models.DayKey, idx int, entry models.AccessoryLog) error {
	sess, err := s.session(p, key)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(sess.Accessories) {
		return fmt.Errorf("accessory %d of %d: %w", idx, len(sess.Accessories), ErrAccessoryOutOfRange)
	}
	if entry.SetsCompleted < 0 {
		return fmt.Errorf("sets completed must not be negative: %d", entry.SetsCompleted)
	}
	s.Logs = logbook.SetAccessoryRow(s.Logs, key, idx, entry)
	return nil
}

// ClearDay removes a session's log.
func (s *State) ClearDay(key models.DayKey) {
	s.Logs = logbook.Clear(s.Logs, key)
}

// SetOneRM updates one lift's max.
func (s *State) SetOneRM(lift models.Lift, kg float64) error {
	if !lift.IsValid() {
		return fmt.Errorf("unknown lift: %q", lift)
	}
	if kg < 0 {
		return fmt.Errorf("one-rep max must not be negative: %v", kg)
	}
	rm := s.OneRM.Clone()
	rm[lift] = kg
	s.OneRM = rm
	return nil
}
