// ABOUTME: Ordered registry mapping program identifiers to generators.
// ABOUTME: Build is strict; Resolve falls back to the first entry for persisted state.
package program

import "github.com/harperreed/liftlog/internal/models"

// Generator produces the weeks of one program.
type Generator func() ([]models.WeekData, error)

// Entry is one registered program.
type Entry struct {
	ID       string
	Name     string
	Generate Generator
}

// Info describes a program for selection lists.
type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Registry is an ordered set of programs. The first entry is the default.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry from entries in order.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make([]Entry, len(entries))}
	copy(r.entries, entries)
	return r
}

// DefaultRegistry registers the built-in programs.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Entry{ID: TenWeekID, Name: "10-Week WL", Generate: TenWeek},
		Entry{ID: SixWeekID, Name: "6-Week 2-Split", Generate: SixWeek},
	)
}

// List returns the registered programs in order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, Info{ID: e.ID, Name: e.Name})
	}
	return out
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.lookup(id)
	return ok
}

// Default returns the first entry's info. It is zero for an empty registry.
func (r *Registry) Default() Info {
	if len(r.entries) == 0 {
		return Info{}
	}
	return Info{ID: r.entries[0].ID, Name: r.entries[0].Name}
}

// Build generates the program with the given id.
func (r *Registry) Build(id string) (models.Program, error) {
	e, ok := r.lookup(id)
	if !ok {
		return models.Program{}, &UnknownProgramError{ID: id}
	}
	return build(e)
}

// Resolve is Build with a fallback to the first entry for unknown ids. The
// bool reports whether id was found.
func (r *Registry) Resolve(id string) (models.Program, bool, error) {
	if e, ok := r.lookup(id); ok {
		p, err := build(e)
		return p, true, err
	}
	if len(r.entries) == 0 {
		return models.Program{}, false, &UnknownProgramError{ID: id}
	}
	p, err := build(r.entries[0])
	return p, false, err
}

func (r *Registry) lookup(id string) (Entry, bool) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func build(e Entry) (models.Program, error) {
	weeks, err := e.Generate()
	if err != nil {
		return models.Program{}, err
	}
	return models.Program{ID: e.ID, Name: e.Name, Weeks: weeks}, nil
}

// Generate builds a built-in program by id.
func Generate(id string) (models.Program, error) {
	return DefaultRegistry().Build(id)
}
