package term

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/wshell/wsh/pkg/edit/complete"
)

// Writer renders the single edit line. All output for one operation is
// buffered and written in a single Write call to avoid flicker.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer that writes to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out}
}

// Redraw repaints the whole line: carriage return, clear below, prompt and
// buffer, then backs the cursor up to dot. The prompt may contain styling
// escape sequences; the buffer may not.
func (w *Writer) Redraw(prompt, buf string, dot int) error {
	var b bytes.Buffer
	b.WriteString("\r\x1b[J")
	b.WriteString(prompt)
	b.WriteString(buf)
	if back := runewidth.StringWidth(buf[dot:]); back > 0 {
		fmt.Fprintf(&b, "\x1b[%dD", back)
	}
	_, err := w.out.Write(b.Bytes())
	return err
}

// MoveCursor moves the cursor cols columns to the right (negative for left)
// without repainting anything.
func (w *Writer) MoveCursor(cols int) error {
	var err error
	switch {
	case cols > 0:
		_, err = fmt.Fprintf(w.out, "\x1b[%dC", cols)
	case cols < 0:
		_, err = fmt.Fprintf(w.out, "\x1b[%dD", -cols)
	}
	return err
}

// Newline moves to the start of the next line. Raw mode disables output
// post-processing, so the carriage return is explicit.
func (w *Writer) Newline() error {
	_, err := io.WriteString(w.out, "\r\n")
	return err
}

// ShowSummary prints the completion candidates in a window around the
// selection, marking the selected one. The caller is expected to redraw the
// edit line afterwards.
func (w *Writer) ShowSummary(items []string, sel int) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "\r\nCompletions (%d/%d):\r\n", sel+1, len(items))
	start := complete.WindowStart(sel, len(items))
	end := start + complete.MaxDisplay
	if end > len(items) {
		end = len(items)
	}
	for i := start; i < end; i++ {
		marker := " "
		if i == sel {
			marker = ">"
		}
		fmt.Fprintf(&b, "  %s%s\r\n", marker, items[i])
	}
	if len(items) > complete.MaxDisplay {
		fmt.Fprintf(&b, "  ... (%d more)\r\n", len(items)-complete.MaxDisplay)
	}
	_, err := w.out.Write(b.Bytes())
	return err
}
