package edit

import "unicode/utf8"

// buffer is the editable command line: text plus a cursor ("dot"). The dot
// is a byte offset into text that always falls on a rune boundary, so
// insertion and deletion never split a multi-byte rune.
type buffer struct {
	text string
	dot  int
}

func (b *buffer) insert(r rune) {
	s := string(r)
	b.text = b.text[:b.dot] + s + b.text[b.dot:]
	b.dot += len(s)
}

// backspace removes the rune before dot, reporting whether anything changed.
func (b *buffer) backspace() bool {
	if b.dot == 0 {
		return false
	}
	_, w := utf8.DecodeLastRuneInString(b.text[:b.dot])
	b.text = b.text[:b.dot-w] + b.text[b.dot:]
	b.dot -= w
	return true
}

// del removes the rune at dot, reporting whether anything changed.
func (b *buffer) del() bool {
	if b.dot == len(b.text) {
		return false
	}
	_, w := utf8.DecodeRuneInString(b.text[b.dot:])
	b.text = b.text[:b.dot] + b.text[b.dot+w:]
	return true
}

// left moves dot one rune left and returns the rune crossed.
func (b *buffer) left() (rune, bool) {
	if b.dot == 0 {
		return 0, false
	}
	r, w := utf8.DecodeLastRuneInString(b.text[:b.dot])
	b.dot -= w
	return r, true
}

// right moves dot one rune right and returns the rune crossed.
func (b *buffer) right() (rune, bool) {
	if b.dot == len(b.text) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(b.text[b.dot:])
	b.dot += w
	return r, true
}

// setText replaces the whole line and puts dot at the end.
func (b *buffer) setText(s string) {
	b.text = s
	b.dot = len(s)
}

func (b *buffer) clear() {
	b.text = ""
	b.dot = 0
}
