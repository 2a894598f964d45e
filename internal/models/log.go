// ABOUTME: Training log types: per-row set weights, accessory outcomes, day and store maps.
// ABOUTME: Cursor doubles as the "<week>-<day>" key used in persisted log stores.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Cursor addresses one session of a program. It encodes as "<week>-<day>".
type Cursor struct {
	Week int
	Day  int
}

// DayKey is the LogStore key for one session.
type DayKey = Cursor

func (c Cursor) String() string {
	return strconv.Itoa(c.Week) + "-" + strconv.Itoa(c.Day)
}

// MarshalText implements encoding.TextMarshaler so LogStore encodes as a JSON object.
func (c Cursor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cursor) UnmarshalText(text []byte) error {
	parsed, err := ParseCursor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCursor parses "<week>-<day>".
func ParseCursor(s string) (Cursor, error) {
	w, d, ok := strings.Cut(s, "-")
	if !ok {
		return Cursor{}, fmt.Errorf("invalid day key %q: want <week>-<day>", s)
	}
	week, err := strconv.Atoi(w)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid day key %q: %w", s, err)
	}
	day, err := strconv.Atoi(d)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid day key %q: %w", s, err)
	}
	if week < 1 || day < 1 {
		return Cursor{}, fmt.Errorf("invalid day key %q: week and day start at 1", s)
	}
	return Cursor{Week: week, Day: day}, nil
}

// RowLog records the weights lifted for one scheme row. A zero weight means
// the set has not been logged.
type RowLog struct {
	SetWeights []float64 `json:"setWeights" yaml:"set_weights"`
	Notes      string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// AccessoryLog records one accessory. SetsCompleted is tracked independently
// of Weight and Reps.
type AccessoryLog struct {
	Weight        *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Reps          *Reps    `json:"reps,omitempty" yaml:"reps,omitempty"`
	SetsCompleted int      `json:"setsCompleted" yaml:"sets_completed"`
}

// DayLog holds one session's log. Main is keyed by global row index and
// Accessories by position in the session's accessory list.
type DayLog struct {
	Main        map[int]RowLog       `json:"main" yaml:"main"`
	Accessories map[int]AccessoryLog `json:"accessories" yaml:"accessories"`
}

// EmptyDayLog returns a DayLog with both maps allocated.
func EmptyDayLog() DayLog {
	return DayLog{Main: map[int]RowLog{}, Accessories: map[int]AccessoryLog{}}
}

// IsEmpty reports whether nothing has been logged.
func (d DayLog) IsEmpty() bool {
	return len(d.Main) == 0 && len(d.Accessories) == 0
}

// LogStore maps each session key to its DayLog.
type LogStore map[DayKey]DayLog
