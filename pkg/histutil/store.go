// Package histutil provides the command history stores: a bounded in-memory
// store the editor browses, and a bbolt-backed store that persists accepted
// commands across sessions.
package histutil

// MemStore is a bounded, ordered log of accepted commands, oldest first.
// Appending a command equal to the newest entry is a no-op, so no two
// adjacent entries are ever equal; equal non-adjacent entries are allowed.
// When the capacity is exceeded the oldest entries are evicted.
//
// The zero capacity (or a negative one) means unbounded.
type MemStore struct {
	capacity int
	cmds     []string
}

// NewMemStore creates a MemStore holding at most capacity commands.
func NewMemStore(capacity int) *MemStore {
	return &MemStore{capacity: capacity}
}

// Add appends cmd and reports whether the store changed. It returns false
// when cmd equals the newest entry.
func (s *MemStore) Add(cmd string) bool {
	if n := len(s.cmds); n > 0 && s.cmds[n-1] == cmd {
		return false
	}
	s.cmds = append(s.cmds, cmd)
	if s.capacity > 0 && len(s.cmds) > s.capacity {
		s.cmds = s.cmds[len(s.cmds)-s.capacity:]
	}
	return true
}

// Len returns the number of stored commands.
func (s *MemStore) Len() int { return len(s.cmds) }

// Get returns the i-th command, oldest first. It panics if i is out of
// range; callers index only within [0, Len()).
func (s *MemStore) Get(i int) string { return s.cmds[i] }

// All returns all stored commands, oldest first. The returned slice is a
// copy and may be retained.
func (s *MemStore) All() []string {
	cmds := make([]string, len(s.cmds))
	copy(cmds, s.cmds)
	return cmds
}
