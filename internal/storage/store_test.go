// ABOUTME: Contract tests run against every Store backend.
// ABOUTME: Uses temp directories for SQLite and Badger so tests never touch real data.
package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func setupStores(t *testing.T) map[string]Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "liftlog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	bs, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger() failed: %v", err)
	}
	t.Cleanup(func() { _ = bs.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": db,
		"badger": bs,
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get("wl_week"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSetGet(t *testing.T) {
	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set("wl_week", []byte("3")); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			got, err := s.Get("wl_week")
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if string(got) != "3" {
				t.Errorf("Get() = %q, want %q", got, "3")
			}

			if err := s.Set("wl_week", []byte("4")); err != nil {
				t.Fatalf("Set() overwrite failed: %v", err)
			}
			got, _ = s.Get("wl_week")
			if string(got) != "4" {
				t.Errorf("Get() after overwrite = %q, want %q", got, "4")
			}
		})
	}
}

func TestStoreKeysAndDelete(t *testing.T) {
	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"wl_day", "programId", "wl_week"} {
				if err := s.Set(k, []byte("1")); err != nil {
					t.Fatalf("Set(%q) failed: %v", k, err)
				}
			}
			keys, err := s.Keys()
			if err != nil {
				t.Fatalf("Keys() failed: %v", err)
			}
			if diff := cmp.Diff([]string{"programId", "wl_day", "wl_week"}, keys); diff != "" {
				t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
			}

			if err := s.Delete("wl_day"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, err := s.Get("wl_day"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
			}
			if err := s.Delete("never-set"); err != nil {
				t.Errorf("Delete() of missing key failed: %v", err)
			}
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	in := []byte("abc")
	_ = m.Set("k", in)
	in[0] = 'z'
	out, _ := m.Get("k")
	if string(out) != "abc" {
		t.Errorf("stored value aliased input: %q", out)
	}
	out[0] = 'y'
	again, _ := m.Get("k")
	if string(again) != "abc" {
		t.Errorf("returned value aliased storage: %q", again)
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "liftlog.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := db.Set("programId", []byte(`"6week_2split"`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()
	got, err := db.Get("programId")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `"6week_2split"` {
		t.Errorf("Get() = %s", got)
	}
	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataDir(); got != "/tmp/xdg/liftlog" {
		t.Errorf("DataDir() = %q, want /tmp/xdg/liftlog", got)
	}
	if got := DBPath("/d"); got != "/d/liftlog.db" {
		t.Errorf("DBPath() = %q", got)
	}
	if got := BadgerPath("/d"); got != "/d/badger" {
		t.Errorf("BadgerPath() = %q", got)
	}
}
