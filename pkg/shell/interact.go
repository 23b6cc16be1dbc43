package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/wshell/wsh/pkg/cli/term"
	"github.com/wshell/wsh/pkg/edit"
)

// Interact runs the interactive loop: it reads key events, feeds them to
// the editor, and dispatches accepted commands, until the user exits or a
// terminal I/O failure occurs. Raw mode is entered once and restored on
// every exit path.
func (p *Program) Interact() error {
	if !isatty.IsTerminal(p.in.Fd()) {
		return errors.New("standard input is not a terminal")
	}

	p.openHistoryDB()
	if p.db != nil {
		defer p.db.Close()
	}

	p.print("Welcome to wsh!")
	p.print("Type 'help' for available commands or 'exit' to quit.")

	raw, err := term.Setup(p.in)
	if err != nil {
		return err
	}
	p.raw = raw
	defer func() {
		p.raw = nil
		raw.Restore()
	}()
	// Raw mode disables output post-processing; line breaks need an
	// explicit carriage return from here on.
	p.eol = "\r\n"
	defer func() { p.eol = "\n" }()

	rd := term.NewReader(p.in)
	w := term.NewWriter(p.out)
	r := &renderer{p: p, w: w}
	ed := edit.NewEditor(r, p.store, p.completeConfig)

	r.Redraw("", 0)
	for {
		if r.err != nil {
			return fmt.Errorf("redraw: %w", r.err)
		}
		k, err := rd.ReadKey()
		if err != nil {
			if term.IsBadSequence(err) {
				logger.Printf("ignored: %v", err)
				continue
			}
			if errors.Is(err, io.EOF) {
				w.Newline()
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		}

		action, line := ed.HandleKey(k)
		switch action {
		case edit.CommandReady:
			w.Newline()
			if cmd := strings.TrimSpace(line); cmd != "" {
				p.addHistory(cmd)
				if err := p.execute(cmd); err != nil {
					if errors.Is(err, errExit) {
						p.print("Goodbye!")
						return nil
					}
					p.printError(err)
				}
			}
			ed.Reset()
			r.Redraw("", 0)
		case edit.Exit:
			w.Newline()
			p.print("Goodbye!")
			return nil
		}
	}
}

// renderer adapts the term.Writer to the editor's Renderer interface,
// prepending the live prompt. Write failures are sticky; the loop treats
// them as fatal before reading the next key.
type renderer struct {
	p   *Program
	w   *term.Writer
	err error
}

func (r *renderer) Redraw(buf string, dot int) {
	r.setErr(r.w.Redraw(r.p.promptString(), buf, dot))
}

func (r *renderer) MoveCursor(cols int) {
	r.setErr(r.w.MoveCursor(cols))
}

func (r *renderer) ShowSummary(items []string, selected int) {
	r.setErr(r.w.ShowSummary(items, selected))
}

func (r *renderer) setErr(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}
