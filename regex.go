package searchpath

import "regexp"

// MatcherRegex is the registry name of the regex variant.
const MatcherRegex = "regex"

// RegexMatcher matches paths with regular expressions. A path matches only
// when the entire relative path matches the pattern, not a substring of it:
// pattern "foo" does not match "foobar". Most users expect path patterns to
// be anchored, so partial-match semantics would make broad accidental
// matches far too easy.
type RegexMatcher struct{}

// NewRegexMatcher returns the regex variant.
func NewRegexMatcher() *RegexMatcher {
	return &RegexMatcher{}
}

// Name implements PathMatcher.
func (m *RegexMatcher) Name() string {
	return MatcherRegex
}

// Compile implements PathMatcher. Patterns are wrapped in \A(?:...)\z to
// enforce whole-string matching.
func (m *RegexMatcher) Compile(set PatternSet) (CompiledSet, error) {
	compiled := make(regexSet, 0, len(set))
	for _, p := range set {
		if p.Text == "" {
			return nil, emptyPatternError(p)
		}
		re, err := regexp.Compile(`\A(?:` + p.Text + `)\z`)
		if err != nil {
			return nil, &PatternSyntaxError{Pattern: p.Text, Message: err.Error(), Position: -1}
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

type regexSet []*regexp.Regexp

// Match reports whether any pattern in the set matches the whole path.
func (s regexSet) Match(relPath string, _ bool) bool {
	for _, re := range s {
		if re.MatchString(relPath) {
			return true
		}
	}
	return false
}
