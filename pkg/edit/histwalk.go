package edit

// histWalk is the active history-browsing state: an index into the history
// store whose entry currently fills the buffer. A nil *histWalk means the
// editor is not browsing.
type histWalk struct {
	index int
}

// navigateHistory implements the Up (up=true) and Down key behavior. Moving
// up from a fresh line starts browsing at the newest entry; moving down past
// the newest entry stops browsing and clears the line. Out-of-range moves
// are no-ops.
func (ed *Editor) navigateHistory(up bool) {
	n := ed.store.Len()
	if n == 0 {
		return
	}
	switch {
	case ed.walker == nil && up:
		ed.walker = &histWalk{n - 1}
	case ed.walker == nil:
		return
	case up && ed.walker.index > 0:
		ed.walker.index--
	case up:
		return // already at the oldest entry
	case ed.walker.index < n-1:
		ed.walker.index++
	default:
		// Down past the newest entry: leave browsing and clear the line.
		ed.walker = nil
		ed.sess = nil
		ed.buf.clear()
		ed.r.Redraw("", 0)
		return
	}
	// Replacing the buffer invalidates any completion session.
	ed.sess = nil
	ed.buf.setText(ed.store.Get(ed.walker.index))
	ed.r.Redraw(ed.buf.text, ed.buf.dot)
}
