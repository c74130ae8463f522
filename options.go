package searchpath

import "fmt"

// DefaultPattern matches everything; it is used when a lookup is called with
// an empty pattern.
const DefaultPattern = "**"

// Kind bounds what a lookup enumerates.
type Kind int

const (
	// KindFiles matches non-directories only. The default.
	KindFiles Kind = iota
	// KindDirs matches directories only.
	KindDirs
	// KindBoth matches files and directories.
	KindBoth
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFiles:
		return "files"
	case KindDirs:
		return "dirs"
	case KindBoth:
		return "both"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromString parses "files", "dirs", or "both". Anything else is a
// ConfigurationError.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "files":
		return KindFiles, nil
	case "dirs":
		return KindDirs, nil
	case "both":
		return KindBoth, nil
	default:
		return KindFiles, &ConfigurationError{Message: fmt.Sprintf("unknown kind %q (want files, dirs, or both)", s)}
	}
}

// searchOptions carries the per-lookup configuration. Lookups build one from
// defaults plus the caller's Option values.
type searchOptions struct {
	kind                 Kind
	include              []string
	includeFrom          []string
	includeFromAncestors string
	exclude              []string
	excludeFrom          []string
	excludeFromAncestors string
	matcher              PathMatcher
	followSymlinks       bool
	dedupe               bool
}

func defaultSearchOptions() searchOptions {
	return searchOptions{
		kind:           KindFiles,
		followSymlinks: true,
		dedupe:         true,
	}
}

func buildSearchOptions(opts []Option) searchOptions {
	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option customizes a single lookup.
type Option func(*searchOptions)

// WithKind bounds the lookup to files, directories, or both. Defaults to
// files.
func WithKind(k Kind) Option {
	return func(o *searchOptions) { o.kind = k }
}

// WithInclude adds inline include patterns. When the include set is
// non-empty a candidate must match at least one of its patterns; when empty,
// all candidates pass.
func WithInclude(patterns ...string) Option {
	return func(o *searchOptions) { o.include = append(o.include, patterns...) }
}

// WithIncludeFrom adds include patterns loaded from the given pattern files,
// in argument order. A missing file is a PatternFileError.
func WithIncludeFrom(files ...string) Option {
	return func(o *searchOptions) { o.includeFrom = append(o.includeFrom, files...) }
}

// WithIncludeFromAncestors adds include patterns discovered by walking from
// each entry directory upward to the filesystem root, reading any file with
// the given name. Missing marker files are skipped silently.
func WithIncludeFromAncestors(marker string) Option {
	return func(o *searchOptions) { o.includeFromAncestors = marker }
}

// WithExclude adds inline exclude patterns. A candidate matching any exclude
// pattern is dropped. Exclusion applies strictly after inclusion.
func WithExclude(patterns ...string) Option {
	return func(o *searchOptions) { o.exclude = append(o.exclude, patterns...) }
}

// WithExcludeFrom adds exclude patterns loaded from the given pattern files,
// in argument order. A missing file is a PatternFileError.
func WithExcludeFrom(files ...string) Option {
	return func(o *searchOptions) { o.excludeFrom = append(o.excludeFrom, files...) }
}

// WithExcludeFromAncestors adds exclude patterns discovered through the
// ancestor cascade, like WithIncludeFromAncestors.
func WithExcludeFromAncestors(marker string) Option {
	return func(o *searchOptions) { o.excludeFromAncestors = marker }
}

// WithMatcher selects the pattern dialect. Defaults to the glob variant.
func WithMatcher(m PathMatcher) Option {
	return func(o *searchOptions) { o.matcher = m }
}

// WithFollowSymlinks controls whether symlinked directories are descended
// into. Defaults to true. When false a symlink itself may still be reported
// as a match if it fits the lookup kind.
func WithFollowSymlinks(follow bool) Option {
	return func(o *searchOptions) { o.followSymlinks = follow }
}

// WithDedupe controls deduplication by relative path across entries for All
// and Matches. Defaults to true: the first (highest-priority) occurrence
// wins, enabling override semantics. First and FirstMatch stop at one result
// and are unaffected.
func WithDedupe(dedupe bool) Option {
	return func(o *searchOptions) { o.dedupe = dedupe }
}
