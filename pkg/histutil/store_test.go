package histutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemStore_AdjacentDedup(t *testing.T) {
	s := NewMemStore(10)
	if !s.Add("ls") {
		t.Errorf("first Add returned false")
	}
	if s.Add("ls") {
		t.Errorf("adjacent duplicate Add returned true")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestMemStore_NonAdjacentDuplicatesKept(t *testing.T) {
	s := NewMemStore(10)
	s.Add("ls")
	s.Add("pwd")
	s.Add("ls")
	want := []string{"ls", "pwd", "ls"}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
}

func TestMemStore_EvictsOldest(t *testing.T) {
	s := NewMemStore(3)
	for _, cmd := range []string{"a", "b", "c", "d"} {
		s.Add(cmd)
	}
	want := []string{"b", "c", "d"}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	if got := s.Get(0); got != "b" {
		t.Errorf("Get(0) = %q, want %q", got, "b")
	}
}

func TestMemStore_ZeroCapacityIsUnbounded(t *testing.T) {
	s := NewMemStore(0)
	for _, cmd := range []string{"a", "b", "c"} {
		s.Add(cmd)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}
