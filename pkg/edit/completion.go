package edit

// session tracks an active completion: the candidate list, the selected
// index, and enough of the pre-completion line to substitute idempotently.
// A nil *session means no completion is active.
type session struct {
	items    []string
	selected int
	prefix   string
	// anchor is the byte offset in snapshot where prefix begins;
	// substitutions are always relative to it.
	anchor   int
	snapshot string
}

// startSession begins a session over the given non-empty candidate list,
// with the first candidate selected.
func startSession(buf string, dot int, prefix string, items []string) *session {
	anchor := dot - len(prefix)
	if anchor < 0 {
		anchor = 0
	}
	return &session{items: items, prefix: prefix, anchor: anchor, snapshot: buf}
}

// apply substitutes the selected candidate into the snapshot and returns the
// new line and dot. Because the substitution always starts from the
// snapshot, repeated application does not compound.
func (s *session) apply() (string, int) {
	item := s.items[s.selected]
	end := s.anchor + len(s.prefix)
	text := s.snapshot[:s.anchor] + item + s.snapshot[end:]
	return text, s.anchor + len(item)
}

// cycleNext advances the selection, wrapping past the last candidate.
func (s *session) cycleNext() {
	s.selected = (s.selected + 1) % len(s.items)
}
