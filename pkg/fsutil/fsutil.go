// Package fsutil provides filesystem helpers shared by the shell and the
// completion engine.
package fsutil

import (
	"os"
	"strings"
)

// TildeExpand replaces a leading ~ in path with home. The path is returned
// unchanged when it does not start with ~ or when home is empty.
func TildeExpand(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	return home + path[1:]
}

// Getwd returns the working directory for display in the prompt, with the
// home directory abbreviated to ~. It returns "unknown" when the working
// directory cannot be determined.
func Getwd(home string) string {
	wd, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	if home != "" && strings.HasPrefix(wd, home) {
		return "~" + wd[len(home):]
	}
	return wd
}
