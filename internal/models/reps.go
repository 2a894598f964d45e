// ABOUTME: Reps value that is either a plain count or a free-form descriptor.
// ABOUTME: Encodes as a JSON/YAML number for counts and a string for descriptors.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Reps is a prescribed or performed rep count. Text, when set, wins over Count
// and carries notations like "1+1" or "8–10".
type Reps struct {
	Count int
	Text  string
}

// RepsN returns a numeric Reps.
func RepsN(n int) Reps { return Reps{Count: n} }

// RepsText returns a descriptor Reps.
func RepsText(s string) Reps { return Reps{Text: s} }

// IsCount reports whether r is a plain integer count.
func (r Reps) IsCount() bool { return r.Text == "" }

func (r Reps) String() string {
	if r.Text != "" {
		return r.Text
	}
	return strconv.Itoa(r.Count)
}

// MarshalJSON implements json.Marshaler.
func (r Reps) MarshalJSON() ([]byte, error) {
	if r.Text != "" {
		return json.Marshal(r.Text)
	}
	return json.Marshal(r.Count)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reps) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ParseReps(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("reps: expected number or string: %w", err)
	}
	*r = Reps{Count: int(f)}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Reps) MarshalYAML() (any, error) {
	if r.Text != "" {
		return r.Text, nil
	}
	return r.Count, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Reps) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*r = ParseReps(s)
	return nil
}

// ParseReps turns user input into Reps: integers become counts, anything else
// is kept verbatim as a descriptor.
func ParseReps(s string) Reps {
	if n, err := strconv.Atoi(s); err == nil {
		return Reps{Count: n}
	}
	return Reps{Text: s}
}
