package searchpath

import "fmt"

// PathMatcher is the pattern-matching capability a lookup runs on. A matcher
// compiles a pattern set once; the resulting CompiledSet is pure, stateless,
// and safe for concurrent use.
//
// The package provides glob, regex, and gitignore variants. Callers needing
// another dialect implement this interface directly; it is the extension
// point, there is no open-ended inheritance behind it.
type PathMatcher interface {
	// Name identifies the matcher variant (e.g. "glob").
	Name() string
	// Compile validates and compiles a pattern set. Invalid patterns are
	// reported as *PatternSyntaxError.
	Compile(set PatternSet) (CompiledSet, error)
}

// CompiledSet is a compiled pattern set ready for testing paths. Match is a
// set-level test: for glob and regex variants a path matches when any
// pattern matches; the gitignore variant evaluates the whole set in order so
// negation patterns can re-include paths.
type CompiledSet interface {
	// Match tests a slash-separated path relative to the search root. isDir
	// lets directory-only patterns apply.
	Match(relPath string, isDir bool) bool
}

var matchers = map[string]PathMatcher{}

// RegisterMatcher adds a matcher to the name registry used by MatcherFor.
// The built-in variants register themselves; embedding programs may register
// their own implementations under new names.
func RegisterMatcher(m PathMatcher) {
	matchers[m.Name()] = m
}

// MatcherFor returns the registered matcher with the given name, or a
// ConfigurationError when no such matcher exists.
func MatcherFor(name string) (PathMatcher, error) {
	if m, ok := matchers[name]; ok {
		return m, nil
	}
	return nil, &ConfigurationError{Message: fmt.Sprintf("unknown matcher %q", name)}
}

func init() {
	RegisterMatcher(NewGlobMatcher())
	RegisterMatcher(NewRegexMatcher())
	RegisterMatcher(NewGitignoreMatcher())
}

// emptyPatternError builds the PatternSyntaxError shared by all variants for
// blank patterns, pointing at the originating file when there is one.
func emptyPatternError(p Pattern) *PatternSyntaxError {
	msg := "empty pattern"
	if p.Source != "" {
		msg = fmt.Sprintf("empty pattern (from %s:%d)", p.Source, p.Line)
	}
	return &PatternSyntaxError{Pattern: p.Text, Message: msg, Position: 0}
}
