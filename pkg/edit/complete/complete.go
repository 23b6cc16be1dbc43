// Package complete implements candidate generation for tab completion.
//
// Candidates are generated in one of two modes, chosen by where the cursor
// sits in the tokenized line. When the cursor is still inside the first
// token (or the line is empty), completion is for a command name; everywhere
// else it is for a filesystem path. Generation is pure with respect to the
// process environment: the search directories, home directory and alias set
// are all injected through Config.
package complete

import (
	"os"
	"sort"
	"strings"

	"github.com/wshell/wsh/pkg/fsutil"
	"github.com/wshell/wsh/pkg/parse"
)

// Config carries the environment that candidates are drawn from.
type Config struct {
	// Builtins are the names of the shell's builtin commands.
	Builtins []string
	// AliasKeys are the names of the configured aliases.
	AliasKeys []string
	// SearchDirs are the entries of $PATH.
	SearchDirs []string
	// Home is the home directory used for ~ expansion; empty disables it.
	Home string
	// IsExecutable reports whether a file may be executed. A nil predicate
	// accepts every regular file.
	IsExecutable func(path string) bool
}

// Generate classifies the cursor context of buffer[:dot] and returns the
// prefix being completed along with the sorted candidate list. Candidate
// sources that fail (an unreadable directory, an empty search path) simply
// contribute nothing.
func Generate(cfg Config, buffer string, dot int, history []string) (string, []string) {
	before := buffer[:dot]
	tokens := parse.Tokenize(before)

	if len(tokens) == 0 || (len(tokens) == 1 && !strings.HasSuffix(before, " ")) {
		prefix := ""
		if len(tokens) == 1 {
			prefix = tokens[0]
		}
		return prefix, commandCandidates(cfg, prefix, history)
	}

	// Path mode. A trailing space means a new argument has not been typed
	// yet, so the prefix is empty.
	prefix := ""
	if !strings.HasSuffix(before, " ") {
		prefix = tokens[len(tokens)-1]
	}
	return prefix, pathCandidates(prefix, cfg.Home)
}

// commandCandidates returns the union of builtins, alias keys, executables
// on the search path, and first tokens of history entries, each filtered by
// prefix, sorted and deduplicated.
func commandCandidates(cfg Config, prefix string, history []string) []string {
	var items []string
	for _, b := range cfg.Builtins {
		if strings.HasPrefix(b, prefix) {
			items = append(items, b)
		}
	}
	for _, a := range cfg.AliasKeys {
		if strings.HasPrefix(a, prefix) {
			items = append(items, a)
		}
	}

	// Only the first hit for a name surfaces, even if the name exists in
	// several search directories.
	seen := make(map[string]bool)
	for _, dir := range cfg.SearchDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, prefix) || seen[name] {
				continue
			}
			// Symlinked executables are common on $PATH; the predicate
			// stats through them, so only directories are rejected here.
			if entry.IsDir() {
				continue
			}
			if cfg.IsExecutable != nil && !cfg.IsExecutable(dir+"/"+name) {
				continue
			}
			items = append(items, name)
			seen[name] = true
		}
	}

	for _, cmd := range history {
		tokens := parse.Tokenize(cmd)
		if len(tokens) > 0 && strings.HasPrefix(tokens[0], prefix) {
			items = append(items, tokens[0])
		}
	}

	sort.Strings(items)
	return dedup(items)
}

// pathCandidates lists the entries matching prefix in the directory the
// prefix points into. Dot-files are hidden unless the name part of the
// prefix itself starts with a dot. Directory candidates get a trailing /.
func pathCandidates(prefix, home string) []string {
	expanded := fsutil.TildeExpand(prefix, home)

	var dir, filePrefix string
	switch i := strings.LastIndex(expanded, "/"); {
	case strings.HasSuffix(expanded, "/"):
		dir, filePrefix = expanded, ""
	case i < 0:
		dir, filePrefix = ".", expanded
	case i == 0:
		dir, filePrefix = "/", expanded[1:]
	default:
		dir, filePrefix = expanded[:i], expanded[i+1:]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var items []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(filePrefix, ".") {
			continue
		}
		var item string
		switch {
		case dir == ".":
			item = name
		case strings.HasSuffix(dir, "/"):
			item = dir + name
		default:
			item = dir + "/" + name
		}
		if entry.IsDir() {
			item += "/"
		}
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

func dedup(sorted []string) []string {
	var items []string
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			items = append(items, s)
		}
	}
	return items
}
