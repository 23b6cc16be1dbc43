package complete

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wshell/wsh/pkg/fsutil"
)

var builtins = []string{"cd", "pwd", "exit", "help", "alias", "history"}

func TestGenerate_CommandMode(t *testing.T) {
	bin1 := t.TempDir()
	bin2 := t.TempDir()
	writeFile(t, filepath.Join(bin1, "echo"), 0o755)
	writeFile(t, filepath.Join(bin2, "echo"), 0o755) // same name in a second dir
	writeFile(t, filepath.Join(bin1, "grep"), 0o755)
	writeFile(t, filepath.Join(bin1, "data"), 0o644) // not executable
	if err := os.Mkdir(filepath.Join(bin1, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		Builtins:     builtins,
		AliasKeys:    []string{"gs"},
		SearchDirs:   []string{bin1, bin2},
		IsExecutable: fsutil.IsExecutable,
	}
	history := []string{"echo hi", "git status"}

	tests := []struct {
		buffer     string
		wantPrefix string
		wantItems  []string
	}{
		// The "echo" from the second search dir and from history dedups
		// into a single candidate.
		{"ec", "ec", []string{"echo"}},
		{"g", "g", []string{"git", "grep", "gs"}},
		{"cd", "cd", []string{"cd"}},
		{"", "", []string{
			"alias", "cd", "echo", "exit", "git", "grep", "gs", "help",
			"history", "pwd",
		}},
		{"nomatch", "nomatch", nil},
	}
	for _, test := range tests {
		prefix, items := Generate(cfg, test.buffer, len(test.buffer), history)
		if prefix != test.wantPrefix {
			t.Errorf("Generate(%q) prefix = %q, want %q",
				test.buffer, prefix, test.wantPrefix)
		}
		if diff := cmp.Diff(test.wantItems, items); diff != "" {
			t.Errorf("Generate(%q) items (-want +got):\n%s", test.buffer, diff)
		}
	}
}

func TestGenerate_CommandMode_MissingSearchDirs(t *testing.T) {
	cfg := Config{SearchDirs: []string{"/no/such/dir"}}
	prefix, items := Generate(cfg, "x", 1, nil)
	if prefix != "x" || items != nil {
		t.Errorf("Generate = (%q, %v), want (%q, nil)", prefix, items, "x")
	}
}

func TestGenerate_PathMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"), 0o644)
	writeFile(t, filepath.Join(dir, ".bashrc"), 0o644)
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "sub", "inner.txt"), 0o644)
	chdir(t, dir)

	cfg := Config{Home: dir}

	tests := []struct {
		name       string
		buffer     string
		wantPrefix string
		wantItems  []string
	}{
		{"new argument", "ls ", "", []string{"notes.txt", "sub/"}},
		{"name filter", "ls no", "no", []string{"notes.txt"}},
		{"hidden files need a dot filter", "ls .", ".", []string{".bashrc"}},
		{"trailing slash scans that dir", "ls sub/", "sub/", []string{"sub/inner.txt"}},
		{"relative parent", "ls sub/in", "sub/in", []string{"sub/inner.txt"}},
		{"absolute path", "ls " + dir + "/no", dir + "/no", []string{dir + "/notes.txt"}},
		{"tilde expansion", "ls ~/no", "~/no", []string{dir + "/notes.txt"}},
		{"later argument", "cp a ", "", []string{"notes.txt", "sub/"}},
		{"unreadable dir", "ls /no/such/dir/", "/no/such/dir/", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prefix, items := Generate(cfg, test.buffer, len(test.buffer), nil)
			if prefix != test.wantPrefix {
				t.Errorf("prefix = %q, want %q", prefix, test.wantPrefix)
			}
			if diff := cmp.Diff(test.wantItems, items); diff != "" {
				t.Errorf("items (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate_ClassifiesOnCursorSlice(t *testing.T) {
	// Only the part of the buffer before dot matters: with the cursor
	// inside the first token, this is still command completion even though
	// the full line has two tokens.
	cfg := Config{Builtins: builtins}
	prefix, items := Generate(cfg, "he world", 2, nil)
	if prefix != "he" {
		t.Errorf("prefix = %q, want %q", prefix, "he")
	}
	if diff := cmp.Diff([]string{"help"}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

var windowStartTests = []struct {
	sel, n int
	want   int
}{
	{0, 5, 0},
	{9, 10, 0},
	{0, 30, 0},
	{4, 30, 0},
	{5, 30, 0},
	{6, 30, 1},
	{15, 30, 10},
	{25, 30, 20},
	{26, 30, 20},
	{29, 30, 20},
}

func TestWindowStart(t *testing.T) {
	for _, test := range windowStartTests {
		if got := WindowStart(test.sel, test.n); got != test.want {
			t.Errorf("WindowStart(%d, %d) = %d, want %d",
				test.sel, test.n, got, test.want)
		}
	}
}

func writeFile(t *testing.T, path string, perm os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), perm); err != nil {
		t.Fatal(err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
