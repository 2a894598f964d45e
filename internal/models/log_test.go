// ABOUTME: Tests for log store encoding, day keys, reps, lifts and one-rep-max targets.
// ABOUTME: Checks the persisted JSON shape matches the "<week>-<day>" keyed format.
package models

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseCursor(t *testing.T) {
	tests := []struct {
		in      string
		want    Cursor
		wantErr bool
	}{
		{"1-1", Cursor{1, 1}, false},
		{"10-4", Cursor{10, 4}, false},
		{"0-1", Cursor{}, true},
		{"1", Cursor{}, true},
		{"a-b", Cursor{}, true},
		{"", Cursor{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCursor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCursor(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCursor(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCursor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogStoreJSONShape(t *testing.T) {
	w := 40.0
	store := LogStore{
		{Week: 1, Day: 2}: {
			Main:        map[int]RowLog{0: {SetWeights: []float64{60, 0}}},
			Accessories: map[int]AccessoryLog{1: {Weight: &w, SetsCompleted: 2}},
		},
	}

	data, err := json.Marshal(store)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"1-2":{"main":{"0":{"setWeights":[60,0]}},"accessories":{"1":{"weight":40,"setsCompleted":2}}}}`
	if string(data) != want {
		t.Errorf("Marshal = %s\nwant %s", data, want)
	}

	var back LogStore
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	day, ok := back[Cursor{1, 2}]
	if !ok {
		t.Fatal("expected key 1-2 after round trip")
	}
	if day.Main[0].SetWeights[0] != 60 {
		t.Errorf("SetWeights[0] = %v, want 60", day.Main[0].SetWeights[0])
	}
	if *day.Accessories[1].Weight != 40 {
		t.Errorf("Weight = %v, want 40", *day.Accessories[1].Weight)
	}
}

func TestLogStoreRejectsBadKey(t *testing.T) {
	var store LogStore
	err := json.Unmarshal([]byte(`{"week1":{"main":{},"accessories":{}}}`), &store)
	if err == nil {
		t.Error("expected error for malformed day key")
	}
}

func TestRepsJSON(t *testing.T) {
	tests := []struct {
		name string
		reps Reps
		json string
	}{
		{"count", RepsN(5), `5`},
		{"complex", RepsText("1+1"), `"1+1"`},
		{"range", RepsText("8–10"), `"8–10"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.reps)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.json {
				t.Errorf("Marshal = %s, want %s", data, tt.json)
			}
			var back Reps
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if back != tt.reps {
				t.Errorf("round trip = %+v, want %+v", back, tt.reps)
			}
		})
	}
}

func TestRepsNumericString(t *testing.T) {
	var r Reps
	if err := json.Unmarshal([]byte(`"12"`), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !r.IsCount() || r.Count != 12 {
		t.Errorf("got %+v, want count 12", r)
	}
	if err := json.Unmarshal([]byte(`true`), &r); err == nil {
		t.Error("expected error for boolean reps")
	}
}

func TestRepsYAML(t *testing.T) {
	doc := struct {
		A Reps `yaml:"a"`
		B Reps `yaml:"b"`
	}{RepsN(3), RepsText("1+1")}

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "a: 3") || !strings.Contains(string(data), "b: 1+1") {
		t.Errorf("unexpected yaml:\n%s", data)
	}

	var back struct {
		A Reps `yaml:"a"`
		B Reps `yaml:"b"`
	}
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if back.A != doc.A || back.B != doc.B {
		t.Errorf("round trip = %+v, want %+v", back, doc)
	}
}

func TestParseLift(t *testing.T) {
	tests := []struct {
		in      string
		want    Lift
		wantErr bool
	}{
		{"Snatch", LiftSnatch, false},
		{"cj", LiftCleanJerk, false},
		{"Clean & Jerk", LiftCleanJerk, false},
		{" BENCH ", LiftBench, false},
		{"front-squat", LiftFrontSquat, false},
		{"pp", LiftPushPress, false},
		{"curl", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLift(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLift(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLift(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !got.IsValid() {
			t.Errorf("%q should be valid", got)
		}
	}
}

func TestOneRMTarget(t *testing.T) {
	rm := DefaultOneRM()

	tests := []struct {
		lift    Lift
		percent float64
		want    float64
	}{
		{LiftSnatch, 55, 37.5},
		{LiftBackSquat, 75, 97.5},
		{LiftDeadlift, 85, 165},
		{LiftCleanJerk, 65, 57.5},
		{LiftBench, 72.5, 80},
		{LiftSnatch, 0, 0},
		{Lift("Curl"), 80, 0},
	}
	for _, tt := range tests {
		if got := rm.Target(tt.lift, tt.percent); got != tt.want {
			t.Errorf("Target(%s, %v) = %v, want %v", tt.lift, tt.percent, got, tt.want)
		}
	}
}

func TestRoundToHalfUp(t *testing.T) {
	if got := RoundTo(1.25, 2.5); got != 2.5 {
		t.Errorf("RoundTo(1.25, 2.5) = %v, want 2.5", got)
	}
	if got := RoundTo(1.24, 2.5); got != 0 {
		t.Errorf("RoundTo(1.24, 2.5) = %v, want 0", got)
	}
}

func TestOneRMClone(t *testing.T) {
	rm := DefaultOneRM()
	c := rm.Clone()
	c[LiftSnatch] = 1
	if rm[LiftSnatch] != 70 {
		t.Error("Clone shares storage with original")
	}
}
