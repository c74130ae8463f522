package searchpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a single directory specification in a SearchPath: a scope name
// identifying the directory's role (e.g. "project", "user") and the
// directory itself.
//
// An Entry with an empty Dir means "optional directory absent" and is
// dropped silently during normalization. An Entry with an empty Scope is
// auto-named "dir0", "dir1", ... by its position among the unnamed entries.
type Entry struct {
	Scope string
	Dir   string
}

// Dir builds an unnamed entry from a bare directory path. The entry receives
// an auto-generated scope name during normalization. An empty path yields an
// entry that is dropped silently.
func Dir(path string) Entry {
	return Entry{Dir: path}
}

// Scoped builds an entry with an explicit scope name. An empty path yields
// an entry that is dropped silently, which makes optional directories easy
// to pass inline.
func Scoped(scope, path string) Entry {
	return Entry{Scope: scope, Dir: path}
}

// normalizeEntries converts heterogeneous entry specifications into the
// canonical ordered list: absent directories dropped, unnamed entries
// auto-named by position, paths tilde-expanded and resolved to absolute
// form. Resolution does not require the directories to exist.
//
// Returns a ConfigurationError when the same scope name maps to two
// different directories.
func normalizeEntries(entries []Entry) ([]Entry, error) {
	normalized := make([]Entry, 0, len(entries))
	byScope := make(map[string]string, len(entries))

	autoIdx := 0
	for _, e := range entries {
		scope := e.Scope
		if scope == "" && e.Dir != "" {
			scope = fmt.Sprintf("dir%d", autoIdx)
			autoIdx++
		}
		if e.Dir == "" {
			// Optional directory: skip the whole entry, no placeholder.
			continue
		}

		dir, err := resolveDir(e.Dir)
		if err != nil {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("cannot resolve directory %q for scope %q: %v", e.Dir, scope, err),
			}
		}

		if prev, ok := byScope[scope]; ok && prev != dir {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("scope %q maps to both %q and %q", scope, prev, dir),
			}
		}
		byScope[scope] = dir

		normalized = append(normalized, Entry{Scope: scope, Dir: dir})
	}

	return normalized, nil
}

// resolveDir expands a leading ~ and resolves the path to absolute form.
func resolveDir(path string) (string, error) {
	expanded, err := expandTilde(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// expandTilde replaces a leading ~ with the current user's home directory.
// Paths without a leading ~ are returned unchanged. ~user forms are not
// supported and pass through untouched.
func expandTilde(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
