// ABOUTME: Building blocks for program tables: scheme lookups and seeded rotation.
// ABOUTME: Pick reproduces the accessory rotation exactly for a given pool and seed.
package program

import "github.com/harperreed/liftlog/internal/models"

// Pick rotates list left by seed mod len(list) and returns the first count
// names. count is clamped to len(list), so a name never repeats within one
// pick. The result never aliases list.
func Pick(list []string, count, seed int) []string {
	n := len(list)
	if n == 0 || count <= 0 {
		return []string{}
	}
	if count > n {
		count = n
	}
	rot := ((seed % n) + n) % n
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, list[(rot+i)%n])
	}
	return out
}

// pickOne is Pick with count 1.
func pickOne(list []string, seed int) string {
	picked := Pick(list, 1, seed)
	if len(picked) == 0 {
		return ""
	}
	return picked[0]
}

func pct(p float64, sets int, reps models.Reps, note ...string) models.Scheme {
	s := models.Scheme{Percent: p, Sets: sets, Reps: reps}
	if len(note) > 0 {
		s.Note = note[0]
	}
	return s
}

func n(reps int) models.Reps { return models.RepsN(reps) }

func txt(reps string) models.Reps { return models.RepsText(reps) }

// schemeTable holds week-specific prescriptions for one lift, with an
// optional base used for weeks that have no entry.
type schemeTable struct {
	lift  models.Lift
	base  []models.Scheme
	weeks map[int][]models.Scheme
}

// lookup returns a fresh copy of the rows for week.
func (t schemeTable) lookup(programID string, week int) ([]models.Scheme, error) {
	if rows, ok := t.weeks[week]; ok {
		return cloneSchemes(rows), nil
	}
	if t.base != nil {
		return cloneSchemes(t.base), nil
	}
	return nil, &MissingSchemeError{Program: programID, Lift: t.lift, Week: week}
}

func cloneSchemes(rows []models.Scheme) []models.Scheme {
	out := make([]models.Scheme, len(rows))
	copy(out, rows)
	return out
}

func accessories(names []string, sets int, reps models.Reps) []models.Accessory {
	out := make([]models.Accessory, 0, len(names))
	for _, name := range names {
		out = append(out, models.Accessory{Name: name, Sets: sets, Reps: reps})
	}
	return out
}
