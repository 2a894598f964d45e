// ABOUTME: Completion percentages for a session and position within a program.
// ABOUTME: Logged work counts only up to what was prescribed.
package progress

import (
	"errors"
	"math"

	"github.com/harperreed/liftlog/internal/logbook"
	"github.com/harperreed/liftlog/internal/models"
)

// ErrInvalidCursor is returned when a cursor does not address a session.
var ErrInvalidCursor = errors.New("cursor is not part of the program")

// Result is a session's completed and prescribed set counts.
type Result struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Session counts logged sets against the prescription. A main row counts the
// strictly positive weights in its padded view; an accessory counts
// SetsCompleted up to its Sets.
func Session(s models.Session, day models.DayLog) Result {
	total := s.TotalSets()
	done := 0

	for _, r := range s.Rows() {
		logged := 0
		for _, w := range logbook.Padded(day.Main[r.Index], r.Scheme.Sets) {
			if w > 0 {
				logged++
			}
		}
		done += logged
	}

	for i, a := range s.Accessories {
		completed := day.Accessories[i].SetsCompleted
		if completed < 0 {
			completed = 0
		}
		done += min(completed, a.Sets)
	}

	return Result{Done: done, Total: total, Percent: Percent(done, total)}
}

// Program returns the cursor's position as a percentage of the program's
// sessions, with the first at 0 and the last at 100.
func Program(p models.Program, c models.Cursor) (int, error) {
	cursors := p.Cursors()
	if len(cursors) == 0 {
		return 0, nil
	}
	pos := -1
	for i, pc := range cursors {
		if pc == c {
			pos = i
			break
		}
	}
	if pos < 0 {
		return 0, ErrInvalidCursor
	}
	// The only session is both first and last; it reports as finished.
	if len(cursors) == 1 {
		return 100, nil
	}
	return Percent(pos, len(cursors)-1), nil
}

// Percent is round(100*done/total), halves away from zero. A zero total is 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
