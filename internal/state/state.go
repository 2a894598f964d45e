// ABOUTME: Persisted application state: selected program, cursor, one-rep maxes and logs.
// ABOUTME: Load falls back to defaults per key; only storage failures are returned.
package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/program"
	"github.com/harperreed/liftlog/internal/progress"
	"github.com/harperreed/liftlog/internal/storage"
)

// Storage keys. They match the keys used by earlier releases so existing
// data imports unchanged.
const (
	KeyProgramID = "programId"
	KeyWeek      = "wl_week"
	KeyDay       = "wl_day"
	KeyOneRM     = "wl_1rm"
	KeyLogs      = "wl_log_v2"
)

// Keys lists every key Save writes.
var Keys = []string{KeyProgramID, KeyWeek, KeyDay, KeyOneRM, KeyLogs}

// MalformedLogError reports a persisted value that failed to decode or validate.
type MalformedLogError struct {
	Key string
	Err error
}

func (e *MalformedLogError) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.Key, e.Err)
}

func (e *MalformedLogError) Unwrap() error { return e.Err }

// State is everything liftlog persists.
type State struct {
	ProgramID string
	Cursor    models.Cursor
	OneRM     models.OneRM
	Logs      models.LogStore
}

// Default returns the first-run state.
func Default(reg *program.Registry) *State {
	return &State{
		ProgramID: reg.Default().ID,
		Cursor:    models.Cursor{Week: 1, Day: 1},
		OneRM:     models.DefaultOneRM(),
		Logs:      models.LogStore{},
	}
}

// Load reads state from store. Missing keys take their default; malformed
// values are logged and replaced by their default. An unknown program falls
// back to the registry's first entry and a cursor outside the program is
// pulled back inside it.
func Load(store storage.Store, reg *program.Registry, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.Default()
	}
	st := Default(reg)

	warn := func(err error) {
		var malformed *MalformedLogError
		if errors.As(err, &malformed) {
			logger.Warn("falling back to default", "key", malformed.Key, "err", malformed.Err)
		}
	}

	var id string
	if ok, err := readKey(store, KeyProgramID, &id); err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		warn(err)
	} else if ok {
		st.ProgramID = id
	}

	var week, day int
	if ok, err := readKey(store, KeyWeek, &week); err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		warn(err)
	} else if ok {
		st.Cursor.Week = week
	}
	if ok, err := readKey(store, KeyDay, &day); err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		warn(err)
	} else if ok {
		st.Cursor.Day = day
	}

	var rm models.OneRM
	if ok, err := readKey(store, KeyOneRM, &rm); err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		warn(err)
	} else if ok {
		if err := validateOneRM(rm); err != nil {
			warn(&MalformedLogError{Key: KeyOneRM, Err: err})
		} else {
			st.OneRM = withDefaults(rm)
		}
	}

	var logs models.LogStore
	if ok, err := readKey(store, KeyLogs, &logs); err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		warn(err)
	} else if ok && logs != nil {
		st.Logs = logs
	}

	p, found, err := reg.Resolve(st.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	if !found {
		logger.Warn("unknown program, using default", "program", st.ProgramID, "default", p.ID)
		st.ProgramID = p.ID
	}

	if healed := heal(p, st.Cursor); healed != st.Cursor {
		logger.Debug("cursor outside program, resetting", "from", st.Cursor, "to", healed)
		st.Cursor = healed
	}

	return st, nil
}

// Save writes every key.
func Save(store storage.Store, st *State) error {
	values := map[string]any{
		KeyProgramID: st.ProgramID,
		KeyWeek:      st.Cursor.Week,
		KeyDay:       st.Cursor.Day,
		KeyOneRM:     st.OneRM,
		KeyLogs:      st.Logs,
	}
	for _, k := range Keys {
		data, err := json.Marshal(values[k])
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		if err := store.Set(k, data); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}
	return nil
}

// Program builds the selected program.
func (s *State) Program(reg *program.Registry) (models.Program, error) {
	return reg.Build(s.ProgramID)
}

// Session returns the session at the cursor.
func (s *State) Session(p models.Program) (models.Session, error) {
	sess, ok := p.Session(s.Cursor.Week, s.Cursor.Day)
	if !ok {
		return models.Session{}, progress.ErrInvalidCursor
	}
	return sess, nil
}

// SelectProgram switches to id and resets the cursor to the first session.
// Logs are kept; they are keyed by position, not by program.
func (s *State) SelectProgram(reg *program.Registry, id string) error {
	if !reg.Has(id) {
		return &program.UnknownProgramError{ID: id}
	}
	s.ProgramID = id
	s.Cursor = models.Cursor{Week: 1, Day: 1}
	return nil
}

// Goto moves the cursor to c if p contains it.
func (s *State) Goto(p models.Program, c models.Cursor) error {
	if !p.Contains(c) {
		return fmt.Errorf("week %d day %d: %w", c.Week, c.Day, progress.ErrInvalidCursor)
	}
	s.Cursor = c
	return nil
}

// Step moves the cursor delta sessions through the program, crossing week
// boundaries. It stops at either end and reports whether the cursor moved.
func (s *State) Step(p models.Program, delta int) bool {
	cursors := p.Cursors()
	pos := -1
	for i, c := range cursors {
		if c == s.Cursor {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	next := min(max(pos+delta, 0), len(cursors)-1)
	if next == pos {
		return false
	}
	s.Cursor = cursors[next]
	return true
}

// heal resets an out-of-range week to 1 and an out-of-range day to 1.
func heal(p models.Program, c models.Cursor) models.Cursor {
	if _, ok := p.Week(c.Week); !ok {
		c.Week = 1
	}
	if _, ok := p.Session(c.Week, c.Day); !ok {
		c.Day = 1
	}
	return c
}

// readKey decodes key into v. It reports false for a missing key and wraps
// decode failures in MalformedLogError.
func readKey(store storage.Store, key string, v any) (bool, error) {
	data, err := store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &MalformedLogError{Key: key, Err: err}
	}
	return true, nil
}

func isMalformed(err error) bool {
	var malformed *MalformedLogError
	return errors.As(err, &malformed)
}

func validateOneRM(rm models.OneRM) error {
	for lift, kg := range rm {
		if !lift.IsValid() {
			return fmt.Errorf("unknown lift %q", lift)
		}
		if kg < 0 {
			return fmt.Errorf("negative one-rep max for %s", lift)
		}
	}
	return nil
}

// withDefaults fills lifts missing from rm with their default values.
func withDefaults(rm models.OneRM) models.OneRM {
	out := models.DefaultOneRM()
	for lift, kg := range rm {
		out[lift] = kg
	}
	return out
}
