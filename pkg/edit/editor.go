// Package edit implements the interactive line editor: an editable buffer
// with a movable cursor, history recall, and stateful tab completion.
//
// The editor is a synchronous state machine. The caller feeds it one key
// event at a time through HandleKey and acts on the returned Action; the
// editor requests drawing through the Renderer it was given. It never
// touches the terminal itself.
package edit

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/wshell/wsh/pkg/edit/complete"
	"github.com/wshell/wsh/pkg/histutil"
	"github.com/wshell/wsh/pkg/ui"
)

// Action tells the caller what to do after a key event.
type Action int

const (
	// Continue: keep feeding key events.
	Continue Action = iota
	// CommandReady: the accompanying string is the accepted command line.
	// The editor keeps its state; the caller appends to history and calls
	// Reset before the next line.
	CommandReady
	// Exit: leave the interactive loop.
	Exit
)

// Renderer is the drawing surface the editor requests output on.
type Renderer interface {
	// Redraw repaints the whole line with the given buffer content and
	// cursor position.
	Redraw(buf string, dot int)
	// MoveCursor moves the terminal cursor by cols display columns
	// (negative for left) without repainting.
	MoveCursor(cols int)
	// ShowSummary displays the completion candidates around the selection.
	ShowSummary(items []string, selected int)
}

// Editor is the key-event state machine owning the live buffer and cursor.
type Editor struct {
	r     Renderer
	store *histutil.MemStore
	// cfg is called on each first Tab press, so alias or path changes made
	// between keystrokes are picked up.
	cfg func() complete.Config

	buf    buffer
	walker *histWalk // nil when not browsing history
	sess   *session  // nil when no completion is active
}

// NewEditor creates an Editor that draws on r, browses history from store,
// and completes against the environment cfg describes.
func NewEditor(r Renderer, store *histutil.MemStore, cfg func() complete.Config) *Editor {
	return &Editor{r: r, store: store, cfg: cfg}
}

// Buffer returns the current line and cursor position.
func (ed *Editor) Buffer() (text string, dot int) {
	return ed.buf.text, ed.buf.dot
}

// Reset clears the buffer, the completion session and the history cursor,
// preparing for the next line. The caller is expected to invoke it after
// consuming a CommandReady action.
func (ed *Editor) Reset() {
	ed.buf.clear()
	ed.walker = nil
	ed.sess = nil
}

// HandleKey processes one key event and returns the resulting action. For
// CommandReady the returned string is the accepted command line; it is empty
// for every other action. Unrecognized keys are ignored.
func (ed *Editor) HandleKey(k ui.Key) (Action, string) {
	switch k {
	case ui.K('C', ui.Ctrl):
		return Exit, ""
	case ui.K('D', ui.Ctrl):
		// End-of-input exits only when nothing has been typed.
		if ed.buf.text == "" {
			return Exit, ""
		}
		return Continue, ""
	case ui.K(ui.Enter):
		return CommandReady, ed.buf.text
	case ui.K(ui.Backspace):
		ed.sess = nil
		if ed.buf.backspace() {
			ed.r.Redraw(ed.buf.text, ed.buf.dot)
		}
		return Continue, ""
	case ui.K(ui.Delete):
		ed.sess = nil
		if ed.buf.del() {
			ed.r.Redraw(ed.buf.text, ed.buf.dot)
		}
		return Continue, ""
	case ui.K(ui.Left):
		if r, ok := ed.buf.left(); ok {
			ed.r.MoveCursor(-runewidth.RuneWidth(r))
		}
		return Continue, ""
	case ui.K(ui.Right):
		if r, ok := ed.buf.right(); ok {
			ed.r.MoveCursor(runewidth.RuneWidth(r))
		}
		return Continue, ""
	case ui.K(ui.Home):
		if cols := runewidth.StringWidth(ed.buf.text[:ed.buf.dot]); cols > 0 {
			ed.r.MoveCursor(-cols)
		}
		ed.buf.dot = 0
		return Continue, ""
	case ui.K(ui.End):
		if cols := runewidth.StringWidth(ed.buf.text[ed.buf.dot:]); cols > 0 {
			ed.r.MoveCursor(cols)
		}
		ed.buf.dot = len(ed.buf.text)
		return Continue, ""
	case ui.K(ui.Up):
		ed.navigateHistory(true)
		return Continue, ""
	case ui.K(ui.Down):
		ed.navigateHistory(false)
		return Continue, ""
	case ui.K(ui.Tab):
		ed.handleTab()
		return Continue, ""
	}

	if k.Mod == 0 && k.Rune > 0 && unicode.IsPrint(k.Rune) {
		ed.sess = nil
		ed.buf.insert(k.Rune)
		ed.r.Redraw(ed.buf.text, ed.buf.dot)
	}
	return Continue, ""
}

// handleTab starts a completion session on the first press and cycles
// through the candidates on subsequent presses. A Tab with no candidates is
// a no-op.
func (ed *Editor) handleTab() {
	if ed.sess == nil {
		prefix, items := complete.Generate(
			ed.cfg(), ed.buf.text, ed.buf.dot, ed.store.All())
		if len(items) == 0 {
			return
		}
		ed.sess = startSession(ed.buf.text, ed.buf.dot, prefix, items)
	} else {
		ed.sess.cycleNext()
	}
	ed.buf.text, ed.buf.dot = ed.sess.apply()
	if len(ed.sess.items) > 1 {
		ed.r.ShowSummary(ed.sess.items, ed.sess.selected)
	}
	ed.r.Redraw(ed.buf.text, ed.buf.dot)
}
