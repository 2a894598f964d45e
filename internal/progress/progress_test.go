// ABOUTME: Tests for session completion and program position percentages.
// ABOUTME: Includes the capping property and the 7-of-13 worked example.
package progress

import (
	"errors"
	"testing"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/program"
)

func exampleSession() models.Session {
	return models.Session{
		Day: 1,
		Main: []models.MainBlock{{Lift: models.LiftSnatch, Scheme: []models.Scheme{
			{Percent: 60, Sets: 2, Reps: models.RepsN(3)},
			{Percent: 65, Sets: 2, Reps: models.RepsN(3)},
			{Percent: 70, Sets: 3, Reps: models.RepsN(2)},
		}}},
		Accessories: []models.Accessory{
			{Name: "Face Pull", Sets: 3, Reps: models.RepsN(12)},
			{Name: "Dead Bug", Sets: 3, Reps: models.RepsN(12)},
		},
	}
}

func TestSessionWorkedExample(t *testing.T) {
	day := models.DayLog{
		Main: map[int]models.RowLog{
			0: {SetWeights: []float64{40, 40}},
			1: {SetWeights: []float64{45, 0}},
			2: {SetWeights: []float64{}},
		},
		Accessories: map[int]models.AccessoryLog{
			0: {SetsCompleted: 3},
			1: {SetsCompleted: 1},
		},
	}

	got := Session(exampleSession(), day)
	want := Result{Done: 7, Total: 13, Percent: 54}
	if got != want {
		t.Errorf("Session() = %+v, want %+v", got, want)
	}
}

func TestSessionEmptyLog(t *testing.T) {
	got := Session(exampleSession(), models.EmptyDayLog())
	if got.Done != 0 || got.Percent != 0 || got.Total != 13 {
		t.Errorf("Session() = %+v, want 0/13 at 0%%", got)
	}
}

func TestSessionComplete(t *testing.T) {
	day := models.DayLog{
		Main: map[int]models.RowLog{
			0: {SetWeights: []float64{40, 40}},
			1: {SetWeights: []float64{45, 45}},
			2: {SetWeights: []float64{50, 50, 50}},
		},
		Accessories: map[int]models.AccessoryLog{0: {SetsCompleted: 3}, 1: {SetsCompleted: 3}},
	}
	if got := Session(exampleSession(), day); got.Percent != 100 || got.Done != 13 {
		t.Errorf("Session() = %+v, want 100%%", got)
	}
}

func TestSessionCapping(t *testing.T) {
	day := models.DayLog{
		Main: map[int]models.RowLog{
			2: {SetWeights: []float64{50, 50, 50, 50, 50}},
		},
		Accessories: map[int]models.AccessoryLog{0: {SetsCompleted: 9}, 1: {SetsCompleted: -2}},
	}
	got := Session(exampleSession(), day)
	if got.Done != 6 {
		t.Errorf("Done = %d, want 6 (3 capped main + 3 capped accessory)", got.Done)
	}
}

func TestSessionIgnoresNonPositiveWeights(t *testing.T) {
	day := models.DayLog{Main: map[int]models.RowLog{0: {SetWeights: []float64{0, -5}}}}
	if got := Session(exampleSession(), day); got.Done != 0 {
		t.Errorf("Done = %d, want 0", got.Done)
	}
}

func TestSessionTwoBlocks(t *testing.T) {
	p, err := program.Generate(program.SixWeekID)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	s, _ := p.Session(1, 1)

	// Row 3 is the first bench row, after three squat rows.
	day := models.DayLog{Main: map[int]models.RowLog{3: {SetWeights: []float64{80, 80, 80}}}}
	got := Session(s, day)
	if got.Done != 3 {
		t.Errorf("Done = %d, want 3", got.Done)
	}
	if got.Total != s.TotalSets() {
		t.Errorf("Total = %d, want %d", got.Total, s.TotalSets())
	}
}

func TestSessionNoSets(t *testing.T) {
	if got := Session(models.Session{}, models.EmptyDayLog()); got != (Result{}) {
		t.Errorf("Session() = %+v, want zero", got)
	}
}

func TestProgram(t *testing.T) {
	p, err := program.Generate(program.TenWeekID)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	tests := []struct {
		cursor models.Cursor
		want   int
	}{
		{models.Cursor{Week: 1, Day: 1}, 0},
		{models.Cursor{Week: 2, Day: 1}, 10},
		{models.Cursor{Week: 5, Day: 4}, 49},
		{models.Cursor{Week: 10, Day: 4}, 100},
	}
	for _, tt := range tests {
		got, err := Program(p, tt.cursor)
		if err != nil {
			t.Errorf("Program(%v) error: %v", tt.cursor, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Program(%v) = %d, want %d", tt.cursor, got, tt.want)
		}
	}
}

func TestProgramInvalidCursor(t *testing.T) {
	p, err := program.Generate(program.SixWeekID)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	for _, c := range []models.Cursor{{Week: 7, Day: 1}, {Week: 1, Day: 4}, {}} {
		if _, err := Program(p, c); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("Program(%v) error = %v, want ErrInvalidCursor", c, err)
		}
	}
}

func TestProgramSingleSession(t *testing.T) {
	p := models.Program{Weeks: []models.WeekData{{Week: 1, Days: []models.Session{{Day: 1}}}}}
	got, err := Program(p, models.Cursor{Week: 1, Day: 1})
	if err != nil {
		t.Fatalf("Program() error: %v", err)
	}
	if got != 100 {
		t.Errorf("Program() = %d, want 100", got)
	}
}

func TestProgramEmpty(t *testing.T) {
	got, err := Program(models.Program{}, models.Cursor{Week: 1, Day: 1})
	if err != nil || got != 0 {
		t.Errorf("Program(empty) = %d, %v; want 0, nil", got, err)
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{7, 13, 54},
		{1, 8, 13},
		{1, 200, 1},
		{1, 3, 33},
		{2, 3, 67},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.done, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}
