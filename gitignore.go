package searchpath

import (
	gitignore "github.com/sabhiram/go-gitignore"
)

// MatcherGitignore is the registry name of the gitignore variant.
const MatcherGitignore = "gitignore"

// GitignoreMatcher matches paths with gitignore semantics, delegating to the
// go-gitignore engine. On top of the glob forms it supports negation
// (!pattern), directory-only patterns (pattern/), and root-anchored patterns
// (/pattern). Patterns are evaluated in set order, so a later negation can
// re-include a path an earlier pattern matched.
type GitignoreMatcher struct{}

// NewGitignoreMatcher returns the gitignore variant.
func NewGitignoreMatcher() *GitignoreMatcher {
	return &GitignoreMatcher{}
}

// Name implements PathMatcher.
func (m *GitignoreMatcher) Name() string {
	return MatcherGitignore
}

// Compile implements PathMatcher. The whole set compiles into a single
// gitignore spec because negation is defined across the set, not per
// pattern.
func (m *GitignoreMatcher) Compile(set PatternSet) (CompiledSet, error) {
	for _, p := range set {
		if p.Text == "" {
			return nil, emptyPatternError(p)
		}
	}
	return &gitignoreSet{spec: gitignore.CompileIgnoreLines(set.Texts()...)}, nil
}

type gitignoreSet struct {
	spec *gitignore.GitIgnore
}

// Match evaluates the set with gitignore semantics. Directory candidates are
// also tested with a trailing slash so directory-only patterns apply.
func (s *gitignoreSet) Match(relPath string, isDir bool) bool {
	if s.spec.MatchesPath(relPath) {
		return true
	}
	if isDir {
		return s.spec.MatchesPath(relPath + "/")
	}
	return false
}
