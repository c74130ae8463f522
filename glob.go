package searchpath

import "github.com/gobwas/glob"

// MatcherGlob is the registry name of the glob variant.
const MatcherGlob = "glob"

// GlobMatcher matches paths with glob-style patterns: * (any run excluding
// /), ** (any run including /), ? (single character), and bracket character
// classes. Matching is full-path against the path relative to the search
// root, never substring. No negation, no anchoring beyond what the pattern
// literally encodes.
//
// It is the default matcher for all lookups.
type GlobMatcher struct{}

// NewGlobMatcher returns the glob variant.
func NewGlobMatcher() *GlobMatcher {
	return &GlobMatcher{}
}

// Name implements PathMatcher.
func (m *GlobMatcher) Name() string {
	return MatcherGlob
}

// Compile implements PathMatcher. Each pattern is compiled with / as the
// separator so that * stays within a path component while ** crosses them.
func (m *GlobMatcher) Compile(set PatternSet) (CompiledSet, error) {
	compiled := make(globSet, 0, len(set))
	for _, p := range set {
		if p.Text == "" {
			return nil, emptyPatternError(p)
		}
		g, err := glob.Compile(p.Text, '/')
		if err != nil {
			return nil, &PatternSyntaxError{Pattern: p.Text, Message: err.Error(), Position: -1}
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

type globSet []glob.Glob

// Match reports whether any pattern in the set matches the whole path.
func (s globSet) Match(relPath string, _ bool) bool {
	for _, g := range s {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
