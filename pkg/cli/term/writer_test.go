package term

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestWriter_Redraw(t *testing.T) {
	tests := []struct {
		prompt, buf string
		dot         int
		want        string
	}{
		{"$ ", "", 0, "\r\x1b[J$ "},
		{"$ ", "hello", 5, "\r\x1b[J$ hello"},
		{"$ ", "hello", 1, "\r\x1b[J$ hello\x1b[4D"},
		// The cursor moves by display width, not bytes: 世 is 3 bytes but
		// 2 columns wide.
		{"$ ", "a世b", 1, "\r\x1b[J$ a世b\x1b[3D"},
	}
	for _, test := range tests {
		var b bytes.Buffer
		if err := NewWriter(&b).Redraw(test.prompt, test.buf, test.dot); err != nil {
			t.Fatalf("Redraw: %v", err)
		}
		if got := b.String(); got != test.want {
			t.Errorf("Redraw(%q, %q, %d) wrote %q, want %q",
				test.prompt, test.buf, test.dot, got, test.want)
		}
	}
}

func TestWriter_MoveCursor(t *testing.T) {
	tests := []struct {
		cols int
		want string
	}{
		{2, "\x1b[2C"},
		{-3, "\x1b[3D"},
		{0, ""},
	}
	for _, test := range tests {
		var b bytes.Buffer
		if err := NewWriter(&b).MoveCursor(test.cols); err != nil {
			t.Fatalf("MoveCursor: %v", err)
		}
		if got := b.String(); got != test.want {
			t.Errorf("MoveCursor(%d) wrote %q, want %q", test.cols, got, test.want)
		}
	}
}

func TestWriter_ShowSummary(t *testing.T) {
	var b bytes.Buffer
	if err := NewWriter(&b).ShowSummary([]string{"cat", "cd"}, 0); err != nil {
		t.Fatalf("ShowSummary: %v", err)
	}
	want := "\r\nCompletions (1/2):\r\n  >cat\r\n   cd\r\n"
	if got := b.String(); got != want {
		t.Errorf("ShowSummary wrote %q, want %q", got, want)
	}
}

func TestWriter_ShowSummary_Window(t *testing.T) {
	items := make([]string, 15)
	for i := range items {
		items[i] = fmt.Sprintf("cmd%02d", i)
	}
	var b bytes.Buffer
	if err := NewWriter(&b).ShowSummary(items, 7); err != nil {
		t.Fatalf("ShowSummary: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "Completions (8/15):") {
		t.Errorf("missing header in %q", got)
	}
	// Window starts at 2: cmd01 is scrolled out, cmd02 visible, cmd07
	// selected, cmd11 is the last visible entry.
	if strings.Contains(got, " cmd01\r\n") {
		t.Errorf("cmd01 should be outside the window:\n%q", got)
	}
	for _, want := range []string{"  >cmd07\r\n", "   cmd02\r\n", "   cmd11\r\n", "  ... (5 more)\r\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}
