package histutil

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDB(t *testing.T) *DBStore {
	t.Helper()
	s, err := OpenDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDBStore_RoundTrip(t *testing.T) {
	s := testDB(t)
	cmds := []string{"echo hi", "ls -l", "echo hi"}
	for _, cmd := range cmds {
		if err := s.Add(cmd); err != nil {
			t.Fatalf("Add(%q): %v", cmd, err)
		}
	}
	got, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if diff := cmp.Diff(cmds, got); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
}

func TestDBStore_EmptyAll(t *testing.T) {
	s := testDB(t)
	got, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("All() = %v, want empty", got)
	}
}

func TestDBStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	if err := s.Add("pwd"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if diff := cmp.Diff([]string{"pwd"}, got); diff != "" {
		t.Errorf("All() after reopen (-want +got):\n%s", diff)
	}
}
