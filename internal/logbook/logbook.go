// ABOUTME: Copy-on-write updates over the training log store.
// ABOUTME: Every write returns a new store; inputs are never mutated.
package logbook

import "github.com/harperreed/liftlog/internal/models"

// Day returns the log for key, or an empty DayLog when nothing is stored.
func Day(store models.LogStore, key models.DayKey) models.DayLog {
	d, ok := store[key]
	if !ok {
		return models.EmptyDayLog()
	}
	if d.Main == nil {
		d.Main = map[int]models.RowLog{}
	}
	if d.Accessories == nil {
		d.Accessories = map[int]models.AccessoryLog{}
	}
	return d
}

// SetMainRow replaces the row log at a global row index.
func SetMainRow(store models.LogStore, key models.DayKey, row int, entry models.RowLog) models.LogStore {
	prev := Day(store, key)
	day := models.DayLog{
		Main:        make(map[int]models.RowLog, len(prev.Main)+1),
		Accessories: copyAccessories(prev.Accessories),
	}
	for k, v := range prev.Main {
		day.Main[k] = v
	}
	entry.SetWeights = cloneWeights(entry.SetWeights)
	day.Main[row] = entry
	return withDay(store, key, day)
}

// SetAccessoryRow replaces the accessory log at an index.
func SetAccessoryRow(store models.LogStore, key models.DayKey, idx int, entry models.AccessoryLog) models.LogStore {
	prev := Day(store, key)
	day := models.DayLog{
		Main:        make(map[int]models.RowLog, len(prev.Main)),
		Accessories: copyAccessories(prev.Accessories),
	}
	for k, v := range prev.Main {
		day.Main[k] = v
	}
	day.Accessories[idx] = entry
	return withDay(store, key, day)
}

// Padded returns the row's weights resized to the prescribed number of sets.
// Missing slots are zero. The result never aliases row.SetWeights.
func Padded(row models.RowLog, sets int) []float64 {
	if sets < 0 {
		sets = 0
	}
	out := make([]float64, sets)
	copy(out, row.SetWeights)
	return out
}

// SetWeight records one set of a main row. set is zero-based and must be
// below sets, the prescribed set count; the stored weights are padded to it.
func SetWeight(store models.LogStore, key models.DayKey, row, set, sets int, weight float64) models.LogStore {
	current := Day(store, key).Main[row]
	weights := Padded(current, sets)
	if set >= 0 && set < len(weights) {
		weights[set] = weight
	}
	return SetMainRow(store, key, row, models.RowLog{SetWeights: weights, Notes: current.Notes})
}

// SetNotes attaches free-text notes to a main row, keeping its weights.
func SetNotes(store models.LogStore, key models.DayKey, row int, notes string) models.LogStore {
	current := Day(store, key).Main[row]
	return SetMainRow(store, key, row, models.RowLog{SetWeights: current.SetWeights, Notes: notes})
}

// Clear returns a store without key's log.
func Clear(store models.LogStore, key models.DayKey) models.LogStore {
	out := make(models.LogStore, len(store))
	for k, v := range store {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func withDay(store models.LogStore, key models.DayKey, day models.DayLog) models.LogStore {
	out := make(models.LogStore, len(store)+1)
	for k, v := range store {
		out[k] = v
	}
	out[key] = day
	return out
}

func copyAccessories(in map[int]models.AccessoryLog) map[int]models.AccessoryLog {
	out := make(map[int]models.AccessoryLog, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneWeights(in []float64) []float64 {
	if in == nil {
		return []float64{}
	}
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
