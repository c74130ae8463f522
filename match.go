package searchpath

import (
	"path/filepath"
	"strings"
)

// Match is the result of a lookup: the absolute path that matched plus its
// provenance, the scope name and source directory of the entry that
// produced it. Matches are plain immutable values with no back-references
// to the SearchPath that created them.
type Match struct {
	// Path is the absolute path of the matched file or directory.
	Path string
	// Scope is the scope name of the owning entry.
	Scope string
	// Source is the owning entry's absolute directory. Path is always equal
	// to Source or a descendant of it.
	Source string
}

// Relative returns the path of this match relative to its source directory,
// slash-separated regardless of platform. For matches emitted by a lookup
// this never fails; a hand-built Match whose Path is not under Source
// returns "".
func (m Match) Relative() string {
	rel, err := filepath.Rel(m.Source, m.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

// String renders the match as "scope: path", the form used in log output.
func (m Match) String() string {
	return m.Scope + ": " + m.Path
}
