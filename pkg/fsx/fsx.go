// Package fsx provides the filesystem primitives the search engine runs on:
// existence checks and a deterministic, batch-reading tree walker with
// symlink control.
package fsx

import (
	"errors"
	"os"
)

// PathExists stats a path, reporting whether it exists. The FileInfo is
// returned alongside so callers can test IsDir without a second stat.
func PathExists(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, true
}

// IsDir reports whether the path exists and is a directory (following
// symlinks).
func IsDir(path string) bool {
	info, ok := PathExists(path)
	return ok && info.IsDir()
}

// IsPermission reports whether err is a permission failure, unwrapping as
// needed.
func IsPermission(err error) bool {
	return errors.Is(err, os.ErrPermission)
}
