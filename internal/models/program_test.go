// ABOUTME: Tests for session row flattening and program navigation.
// ABOUTME: Verifies global row indices stay contiguous across one or two main blocks.
package models

import "testing"

func twoBlockSession() Session {
	return Session{
		Day:   1,
		Title: "Bench + Squat Day",
		Main: []MainBlock{
			{Lift: LiftBackSquat, Scheme: []Scheme{
				{Percent: 70, Sets: 3, Reps: RepsN(5)},
				{Percent: 75, Sets: 2, Reps: RepsN(5)},
				{Percent: 80, Sets: 1, Reps: RepsN(5)},
			}},
			{Lift: LiftBench, Scheme: []Scheme{
				{Percent: 70, Sets: 3, Reps: RepsN(5)},
				{Percent: 75, Sets: 2, Reps: RepsN(5)},
			}},
		},
		Accessories: []Accessory{
			{Name: "Leg Press", Sets: 4, Reps: RepsText("10–15")},
		},
	}
}

func TestRowOffsets(t *testing.T) {
	s := twoBlockSession()
	offsets := s.RowOffsets()
	if len(offsets) != 2 || offsets[0] != 0 || offsets[1] != 3 {
		t.Errorf("RowOffsets() = %v, want [0 3]", offsets)
	}
}

func TestRowsContiguous(t *testing.T) {
	s := twoBlockSession()
	rows := s.Rows()
	if len(rows) != s.RowCount() {
		t.Fatalf("len(Rows()) = %d, RowCount() = %d", len(rows), s.RowCount())
	}
	for i, r := range rows {
		if r.Index != i {
			t.Errorf("rows[%d].Index = %d, want %d", i, r.Index, i)
		}
	}
	if rows[3].Lift != LiftBench || rows[3].Block != 1 {
		t.Errorf("rows[3] = %+v, want first Bench Press row in block 1", rows[3])
	}
	if rows[3].Scheme.Sets != 3 {
		t.Errorf("rows[3].Scheme.Sets = %d, want 3", rows[3].Scheme.Sets)
	}
}

func TestRowLookup(t *testing.T) {
	s := twoBlockSession()

	tests := []struct {
		index    int
		wantOK   bool
		wantLift Lift
		wantPct  float64
	}{
		{0, true, LiftBackSquat, 70},
		{2, true, LiftBackSquat, 80},
		{3, true, LiftBench, 70},
		{4, true, LiftBench, 75},
		{5, false, "", 0},
		{-1, false, "", 0},
	}
	for _, tt := range tests {
		r, ok := s.Row(tt.index)
		if ok != tt.wantOK {
			t.Errorf("Row(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			continue
		}
		if ok && (r.Lift != tt.wantLift || r.Scheme.Percent != tt.wantPct) {
			t.Errorf("Row(%d) = %+v, want %s @ %v", tt.index, r, tt.wantLift, tt.wantPct)
		}
	}
}

func TestSingleBlockSessionRows(t *testing.T) {
	s := Session{Main: []MainBlock{{Lift: LiftSnatch, Scheme: []Scheme{{Sets: 2}, {Sets: 2}}}}}
	if got := s.RowOffsets(); len(got) != 1 || got[0] != 0 {
		t.Errorf("RowOffsets() = %v, want [0]", got)
	}
	if s.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", s.RowCount())
	}
}

func TestEmptySchemeBlock(t *testing.T) {
	s := Session{
		Main:        []MainBlock{{Lift: LiftSnatch, Note: "technique"}},
		Accessories: []Accessory{{Name: "Benchmark", Sets: 1}},
	}
	if s.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", s.RowCount())
	}
	if _, ok := s.Row(0); ok {
		t.Error("Row(0) should not exist for an empty scheme")
	}
	if s.TotalSets() != 1 {
		t.Errorf("TotalSets() = %d, want 1", s.TotalSets())
	}
}

func TestSetTotals(t *testing.T) {
	s := twoBlockSession()
	if s.MainSets() != 11 {
		t.Errorf("MainSets() = %d, want 11", s.MainSets())
	}
	if s.AccessorySets() != 4 {
		t.Errorf("AccessorySets() = %d, want 4", s.AccessorySets())
	}
	if s.TotalSets() != 15 {
		t.Errorf("TotalSets() = %d, want 15", s.TotalSets())
	}
}

func TestProgramCursors(t *testing.T) {
	p := Program{Weeks: []WeekData{
		{Week: 1, Days: []Session{{Day: 1}, {Day: 2}}},
		{Week: 2, Days: []Session{{Day: 1}, {Day: 3}}},
	}}

	got := p.Cursors()
	want := []Cursor{{1, 1}, {1, 2}, {2, 1}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("Cursors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cursors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if !p.Contains(Cursor{2, 3}) {
		t.Error("expected program to contain 2-3")
	}
	if p.Contains(Cursor{2, 2}) {
		t.Error("day 2 of week 2 does not exist")
	}
	if _, ok := p.Week(3); ok {
		t.Error("week 3 does not exist")
	}
}
