// Package term provides the terminal layer used by the line editor: raw
// mode setup, decoding of key escape sequences, and single-line rendering.
package term

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/wshell/wsh/pkg/ui"
)

// Reader decodes terminal input into key events.
type Reader interface {
	// ReadKey reads one key event, blocking until input is available.
	// Unrecognized escape sequences are reported as errors satisfying
	// IsBadSequence; callers may log and ignore those. Other errors are
	// real I/O failures.
	ReadKey() (ui.Key, error)
}

// NewReader creates a Reader that reads from f.
func NewReader(f *os.File) Reader {
	return &reader{fileReader{f}}
}

type reader struct {
	fr fileReader
}

func (rd *reader) ReadKey() (ui.Key, error) {
	return readKey(rd.fr)
}

// byteReaderWithTimeout can read single bytes with a timeout. A negative
// timeout means to wait indefinitely.
type byteReaderWithTimeout interface {
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

var errTimeout = errors.New("timed out")

// seqError is the error for an unrecognized or incomplete escape sequence.
type seqError struct {
	msg string
	seq string
}

func (e seqError) Error() string {
	return fmt.Sprintf("bad escape sequence: %s (%q)", e.msg, e.seq)
}

// IsBadSequence reports whether err was caused by an unrecognized or
// malformed escape sequence, as opposed to a real I/O failure.
func IsBadSequence(err error) bool {
	var se seqError
	return errors.As(err, &se)
}

// Used by the sequence parser to signal end of the current sequence.
const runeEndOfSeq rune = -1

// Timeout for bytes in escape sequences. Modern terminal emulators send
// escape sequences very fast, so 10ms is more than sufficient.
var keySeqTimeout = 10 * time.Millisecond

func readKey(rd byteReaderWithTimeout) (ui.Key, error) {
	r, err := readRune(rd, -1)
	if err != nil {
		return ui.Key{}, err
	}

	currentSeq := string(r)
	// Reads a rune within keySeqTimeout, or runeEndOfSeq if the sequence
	// has ended.
	next := func() rune {
		r, err := readRune(rd, keySeqTimeout)
		if err != nil {
			return runeEndOfSeq
		}
		currentSeq += string(r)
		return r
	}
	badSeq := func(msg string) (ui.Key, error) {
		return ui.Key{}, seqError{msg, currentSeq}
	}

	if r != 0x1b {
		return ctrlModify(r), nil
	}

	r2 := next()
	// rxvt and derivatives prepend another ESC to a CSI-style or G3-style
	// sequence to signal Alt.
	hasTwoLeadingESC := false
	if r2 == 0x1b {
		hasTwoLeadingESC = true
		r2 = next()
	}
	switch r2 {
	case runeEndOfSeq:
		// Nothing follows. Taken as a lone Escape.
		return ui.K('[', ui.Ctrl), nil
	case '[':
		// CSI-style function key sequence.
		r = next()
		if r == runeEndOfSeq {
			return ui.K('[', ui.Alt), nil
		}
		nums := make([]int, 0, 2)
	CSISeq:
		for {
			switch {
			case r == ';':
				nums = append(nums, 0)
			case '0' <= r && r <= '9':
				if len(nums) == 0 {
					nums = append(nums, 0)
				}
				cur := len(nums) - 1
				nums[cur] = nums[cur]*10 + int(r-'0')
			case r == runeEndOfSeq:
				return badSeq("incomplete CSI")
			default: // Treat as a terminator.
				break CSISeq
			}
			r = next()
		}
		k := parseCSI(nums, r)
		if k == (ui.Key{}) {
			return badSeq("unknown CSI")
		}
		if hasTwoLeadingESC {
			k.Mod |= ui.Alt
		}
		return k, nil
	case 'O':
		// G3-style function key sequence: read one rune.
		r = next()
		if r == runeEndOfSeq {
			// Nothing follows after 'O'. Taken as Alt-O.
			return ui.K('O', ui.Alt), nil
		}
		k, ok := g3Seq[r]
		if !ok {
			return badSeq("unknown G3")
		}
		if hasTwoLeadingESC {
			k.Mod |= ui.Alt
		}
		return k, nil
	default:
		// Something other than '[' or 'O' follows. Taken as an
		// Alt-modified key, possibly also modified by Ctrl.
		k := ctrlModify(r2)
		k.Mod |= ui.Alt
		return k, nil
	}
}

// readRune reads a possibly multi-byte UTF-8 rune. The timeout applies to
// the first byte; continuation bytes use the sequence timeout.
func readRune(rd byteReaderWithTimeout, timeout time.Duration) (rune, error) {
	b, err := rd.ReadByteWithTimeout(timeout)
	if err != nil {
		return 0, err
	}
	if b < utf8.RuneSelf {
		return rune(b), nil
	}
	var buf [utf8.UTFMax]byte
	buf[0] = b
	n := 1
	for !utf8.FullRune(buf[:n]) && n < len(buf) {
		b, err := rd.ReadByteWithTimeout(keySeqTimeout)
		if err != nil {
			break
		}
		buf[n] = b
		n++
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r, nil
}

// ctrlModify determines whether a byte corresponds to a Ctrl-modified key
// and returns the ui.Key it represents.
func ctrlModify(r rune) ui.Key {
	switch r {
	case 0x0:
		return ui.K('`', ui.Ctrl) // ^@
	case 0x1e:
		return ui.K('6', ui.Ctrl) // ^^
	case 0x1f:
		return ui.K('/', ui.Ctrl) // ^_
	case '\r':
		// Raw mode disables ICRNL, so Enter arrives as CR.
		return ui.K(ui.Enter)
	case ui.Tab, ui.Enter, ui.Backspace: // ^I ^J ^?
		// Ambiguous Ctrl keys; prefer the non-Ctrl form as they are more
		// likely.
		return ui.K(r)
	default:
		if 0x1 <= r && r <= 0x1d {
			return ui.K(r+0x40, ui.Ctrl)
		}
	}
	return ui.K(r)
}

// G3-style key sequences: \eO followed by exactly one character. They cannot
// carry modifiers other than a leading \e for Alt; terminals switch to a
// CSI-style sequence when other modifier keys are pressed.
var g3Seq = map[rune]ui.Key{
	// xterm, tmux
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	'H': ui.K(ui.Home), 'F': ui.K(ui.End), 'M': ui.K(ui.Insert),
	// urxvt
	'a': ui.K(ui.Up, ui.Ctrl), 'b': ui.K(ui.Down, ui.Ctrl),
	'c': ui.K(ui.Right, ui.Ctrl), 'd': ui.K(ui.Left, ui.Ctrl),
	// xterm, urxvt, tmux
	'P': ui.K(ui.F1), 'Q': ui.K(ui.F2), 'R': ui.K(ui.F3), 'S': ui.K(ui.F4),
}

// CSI-style key sequences identified by the last rune. When modified, two
// numerical arguments are added, the first always being 1 and the second
// identifying the modifier. For instance, \e[1;5A is Ctrl-Up.
var csiSeqByLast = map[rune]ui.Key{
	// xterm, urxvt, tmux
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	// urxvt
	'a': ui.K(ui.Up, ui.Shift), 'b': ui.K(ui.Down, ui.Shift),
	'c': ui.K(ui.Right, ui.Shift), 'd': ui.K(ui.Left, ui.Shift),
	// xterm
	'H': ui.K(ui.Home), 'F': ui.K(ui.End),
	// xterm, urxvt, tmux
	'Z': ui.K(ui.Tab, ui.Shift),
}

// CSI-style key sequences ending with '~', with one or two numerical
// arguments. The first argument identifies the key and the optional second
// one the modifier. For instance, \e[3~ is Delete, and \e[3;5~ is
// Ctrl-Delete.
var csiSeqTilde = map[int]rune{
	// tmux
	1: ui.Home, 4: ui.End,
	// xterm, urxvt, tmux
	2: ui.Insert,
	3: ui.Delete,
	5: ui.PageUp, 6: ui.PageDown,
	// urxvt
	7: ui.Home, 8: ui.End,
	11: ui.F1, 12: ui.F2, 13: ui.F3, 14: ui.F4,
	// xterm, urxvt, tmux
	15: ui.F5, 17: ui.F6, 18: ui.F7, 19: ui.F8,
	20: ui.F9, 21: ui.F10, 23: ui.F11, 24: ui.F12,
}

// parseCSI parses a CSI-style key sequence.
func parseCSI(nums []int, last rune) ui.Key {
	if k, ok := csiSeqByLast[last]; ok {
		if len(nums) == 0 {
			// Unmodified: \e[A (Up)
			return k
		} else if len(nums) == 2 && nums[0] == 1 {
			// Modified: \e[1;5A (Ctrl-Up)
			return xtermModify(k, nums[1])
		}
		return ui.Key{}
	}

	switch last {
	case '~':
		if len(nums) == 1 || len(nums) == 2 {
			if r, ok := csiSeqTilde[nums[0]]; ok {
				k := ui.K(r)
				if len(nums) == 1 {
					// Unmodified: \e[5~ (e.g. PageUp)
					return k
				}
				// Modified: \e[5;5~ (e.g. Ctrl-PageUp)
				return xtermModify(k, nums[1])
			}
		}
	case '$', '^', '@':
		// urxvt's modifier encoding changes the last rune instead of
		// adding an argument: '$' for Shift, '^' for Ctrl, '@' for both.
		if len(nums) == 1 {
			if r, ok := csiSeqTilde[nums[0]]; ok {
				var mod ui.Mod
				switch last {
				case '$':
					mod = ui.Shift
				case '^':
					mod = ui.Ctrl
				case '@':
					mod = ui.Shift | ui.Ctrl
				}
				return ui.K(r, mod)
			}
		}
	}

	return ui.Key{}
}

func xtermModify(k ui.Key, mod int) ui.Key {
	if mod < 0 || mod > 16 {
		return ui.Key{}
	}
	if mod == 0 {
		return k
	}
	modFlags := mod - 1
	if modFlags&0x1 != 0 {
		k.Mod |= ui.Shift
	}
	if modFlags&0x2 != 0 {
		k.Mod |= ui.Alt
	}
	if modFlags&0x4 != 0 {
		k.Mod |= ui.Ctrl
	}
	if modFlags&0x8 != 0 {
		// This should be Meta, but we conflate Meta and Alt.
		k.Mod |= ui.Alt
	}
	return k
}
