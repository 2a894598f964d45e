// ABOUTME: Program structure types: weeks, sessions, main lift blocks, schemes, accessories.
// ABOUTME: Sessions flatten their main blocks into globally indexed rows on demand.
package models

// Scheme is one prescription row of a main lift. Percent is a share of the
// lift's one-rep max; zero means the row carries no intensity target.
type Scheme struct {
	Percent float64 `json:"percent,omitempty" yaml:"percent,omitempty"`
	Sets    int     `json:"sets" yaml:"sets"`
	Reps    Reps    `json:"reps" yaml:"reps"`
	Note    string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// HasPercent reports whether the row prescribes an intensity.
func (s Scheme) HasPercent() bool { return s.Percent > 0 }

// MainBlock pairs a lift with its ordered scheme rows.
type MainBlock struct {
	Lift   Lift     `json:"lift" yaml:"lift"`
	Note   string   `json:"note,omitempty" yaml:"note,omitempty"`
	Scheme []Scheme `json:"scheme" yaml:"scheme"`
}

// Accessory is secondary work with no intensity target.
type Accessory struct {
	Name string `json:"name" yaml:"name"`
	Sets int    `json:"sets" yaml:"sets"`
	Reps Reps   `json:"reps" yaml:"reps"`
}

// Session is one training day.
type Session struct {
	Day         int         `json:"day" yaml:"day"`
	Title       string      `json:"title" yaml:"title"`
	Warmup      []string    `json:"warmup" yaml:"warmup"`
	Main        []MainBlock `json:"main" yaml:"main"`
	Accessories []Accessory `json:"accessories" yaml:"accessories"`
	Notes       string      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Row is a scheme row addressed by its global index across all main blocks.
type Row struct {
	Index  int
	Block  int
	Lift   Lift
	Scheme Scheme
}

// RowOffsets returns the global index of the first row of each main block.
func (s Session) RowOffsets() []int {
	offsets := make([]int, len(s.Main))
	base := 0
	for i, b := range s.Main {
		offsets[i] = base
		base += len(b.Scheme)
	}
	return offsets
}

// Rows flattens the main blocks in order. Row i of block k has global index
// offsets[k]+i.
func (s Session) Rows() []Row {
	var rows []Row
	base := 0
	for bi, b := range s.Main {
		for i, sc := range b.Scheme {
			rows = append(rows, Row{Index: base + i, Block: bi, Lift: b.Lift, Scheme: sc})
		}
		base += len(b.Scheme)
	}
	return rows
}

// RowCount is the number of scheme rows across all main blocks.
func (s Session) RowCount() int {
	n := 0
	for _, b := range s.Main {
		n += len(b.Scheme)
	}
	return n
}

// Row looks up a scheme row by global index.
func (s Session) Row(index int) (Row, bool) {
	if index < 0 {
		return Row{}, false
	}
	base := 0
	for bi, b := range s.Main {
		if index < base+len(b.Scheme) {
			return Row{Index: index, Block: bi, Lift: b.Lift, Scheme: b.Scheme[index-base]}, true
		}
		base += len(b.Scheme)
	}
	return Row{}, false
}

// MainSets sums prescribed sets over every main row.
func (s Session) MainSets() int {
	total := 0
	for _, b := range s.Main {
		for _, sc := range b.Scheme {
			total += sc.Sets
		}
	}
	return total
}

// AccessorySets sums prescribed accessory sets.
func (s Session) AccessorySets() int {
	total := 0
	for _, a := range s.Accessories {
		total += a.Sets
	}
	return total
}

// TotalSets is MainSets plus AccessorySets.
func (s Session) TotalSets() int {
	return s.MainSets() + s.AccessorySets()
}

// WeekData is one week of a program.
type WeekData struct {
	Week      int       `json:"week" yaml:"week"`
	SquatType Lift      `json:"squatType" yaml:"squat_type"`
	Days      []Session `json:"days" yaml:"days"`
}

// Program is a fully materialized multi-week prescription.
type Program struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Weeks []WeekData `json:"weeks" yaml:"weeks"`
}

// Week returns the week with the given ordinal.
func (p Program) Week(n int) (WeekData, bool) {
	for _, w := range p.Weeks {
		if w.Week == n {
			return w, true
		}
	}
	return WeekData{}, false
}

// Session returns the session at (week, day).
func (p Program) Session(week, day int) (Session, bool) {
	w, ok := p.Week(week)
	if !ok {
		return Session{}, false
	}
	for _, d := range w.Days {
		if d.Day == day {
			return d, true
		}
	}
	return Session{}, false
}

// Cursors enumerates every session position, week-major then day-minor.
func (p Program) Cursors() []Cursor {
	var out []Cursor
	for _, w := range p.Weeks {
		for _, d := range w.Days {
			out = append(out, Cursor{Week: w.Week, Day: d.Day})
		}
	}
	return out
}

// Contains reports whether c addresses a session of p.
func (p Program) Contains(c Cursor) bool {
	_, ok := p.Session(c.Week, c.Day)
	return ok
}
