package searchpath

// One-shot equivalents of the SearchPath lookups, for callers that build the
// entry list and search in a single call. Parameter semantics are identical
// to the instance methods.

// First finds the first matching path across the given entries, in priority
// order. Returns "" with a nil error when nothing matches.
func First(pattern string, entries []Entry, opts ...Option) (string, error) {
	sp, err := New(entries...)
	if err != nil {
		return "", err
	}
	return sp.First(pattern, opts...)
}

// FirstMatch finds the first matching path with provenance. Returns nil with
// a nil error when nothing matches.
func FirstMatch(pattern string, entries []Entry, opts ...Option) (*Match, error) {
	sp, err := New(entries...)
	if err != nil {
		return nil, err
	}
	return sp.FirstMatch(pattern, opts...)
}

// All finds every matching path across the given entries.
func All(pattern string, entries []Entry, opts ...Option) ([]string, error) {
	sp, err := New(entries...)
	if err != nil {
		return nil, err
	}
	return sp.All(pattern, opts...)
}

// Matches finds every matching path with provenance.
func Matches(pattern string, entries []Entry, opts ...Option) ([]Match, error) {
	sp, err := New(entries...)
	if err != nil {
		return nil, err
	}
	return sp.Matches(pattern, opts...)
}
