//go:build unix

package fsutil

import "os"

// IsExecutable reports whether path is a regular file executable by anyone,
// following symlinks. It returns false when path cannot be stat'ed.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0o111 != 0
}
