package searchpath

import (
	"path/filepath"
	"strings"

	"github.com/tbhb/searchpath/pkg/fsx"
)

// SearchPath is an immutable ordered sequence of directory entries. Entry
// order is search priority order: the first entry wins ties during
// deduplication. All composition operations return a new SearchPath, so
// instances are safe to share across concurrent lookups.
type SearchPath struct {
	entries []Entry
}

// New builds a SearchPath from the given entries, in priority order. Entries
// with an empty directory are dropped silently, unnamed entries are
// auto-named "dir0", "dir1", ... by position, ~ is expanded, and paths are
// resolved to absolute form without requiring them to exist.
//
// Returns a ConfigurationError when the same scope name maps to two
// different directories.
func New(entries ...Entry) (*SearchPath, error) {
	normalized, err := normalizeEntries(entries)
	if err != nil {
		return nil, err
	}
	return &SearchPath{entries: normalized}, nil
}

// fromEntries builds a SearchPath from already-normalized entries without
// re-parsing, for the composition operations.
func fromEntries(entries []Entry) *SearchPath {
	return &SearchPath{entries: entries}
}

// Len returns the number of entries.
func (sp *SearchPath) Len() int {
	return len(sp.entries)
}

// Dirs returns the directories in priority order.
func (sp *SearchPath) Dirs() []string {
	dirs := make([]string, len(sp.entries))
	for i, e := range sp.entries {
		dirs[i] = e.Dir
	}
	return dirs
}

// Scopes returns the scope names in priority order.
func (sp *SearchPath) Scopes() []string {
	scopes := make([]string, len(sp.entries))
	for i, e := range sp.entries {
		scopes[i] = e.Scope
	}
	return scopes
}

// Items returns a copy of the (scope, directory) entries in priority order.
func (sp *SearchPath) Items() []Entry {
	items := make([]Entry, len(sp.entries))
	copy(items, sp.entries)
	return items
}

// String renders the search path as "scope: dir, scope: dir", the form used
// in error messages. An empty search path renders as "(empty)".
func (sp *SearchPath) String() string {
	if len(sp.entries) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(sp.entries))
	for i, e := range sp.entries {
		parts[i] = e.Scope + ": " + e.Dir
	}
	return strings.Join(parts, ", ")
}

// WithSuffix returns a new SearchPath with the given path components
// appended to every entry's directory, preserving scope names. Existence is
// not checked.
func (sp *SearchPath) WithSuffix(parts ...string) *SearchPath {
	entries := make([]Entry, len(sp.entries))
	for i, e := range sp.entries {
		entries[i] = Entry{Scope: e.Scope, Dir: filepath.Join(append([]string{e.Dir}, parts...)...)}
	}
	return fromEntries(entries)
}

// Filter returns a new SearchPath keeping only the entries whose directory
// satisfies the predicate, preserving order and scope names.
func (sp *SearchPath) Filter(predicate func(dir string) bool) *SearchPath {
	var entries []Entry
	for _, e := range sp.entries {
		if predicate(e.Dir) {
			entries = append(entries, e)
		}
	}
	return fromEntries(entries)
}

// Existing returns a new SearchPath keeping only the entries whose directory
// exists right now. This is a snapshot, not a live check.
func (sp *SearchPath) Existing() *SearchPath {
	return sp.Filter(func(dir string) bool {
		_, ok := fsx.PathExists(dir)
		return ok
	})
}

// Append concatenates two search paths: the receiver's entries first (taking
// priority), then the other's. Duplicate scope names across the two operands
// are permitted; the entries stay independent, they are not merged.
func (sp *SearchPath) Append(other *SearchPath) *SearchPath {
	entries := make([]Entry, 0, len(sp.entries)+len(other.entries))
	entries = append(entries, sp.entries...)
	entries = append(entries, other.entries...)
	return fromEntries(entries)
}

// First returns the absolute path of the first match in priority order, or
// "" with a nil error when nothing matches. Traversal short-circuits as soon
// as a match is found: entries after the winning one, and remaining
// candidates within it, are never visited.
func (sp *SearchPath) First(pattern string, opts ...Option) (string, error) {
	m, err := sp.FirstMatch(pattern, opts...)
	if err != nil || m == nil {
		return "", err
	}
	return m.Path, nil
}

// FirstMatch is First with provenance: it returns the first Match in
// priority order, or nil with a nil error when nothing matches.
func (sp *SearchPath) FirstMatch(pattern string, opts ...Option) (*Match, error) {
	found, err := sp.collect(pattern, buildSearchOptions(opts), true)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

// All returns the absolute paths of every match, in entry priority order and
// lexicographic relative-path order within an entry. Results are
// deduplicated by relative path unless WithDedupe(false) is given.
func (sp *SearchPath) All(pattern string, opts ...Option) ([]string, error) {
	found, err := sp.Matches(pattern, opts...)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(found))
	for i, m := range found {
		paths[i] = m.Path
	}
	return paths, nil
}

// Matches is All with provenance: every match as a Match record, same order
// and deduplication semantics.
func (sp *SearchPath) Matches(pattern string, opts ...Option) ([]Match, error) {
	return sp.collect(pattern, buildSearchOptions(opts), false)
}
