package searchpath

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/tbhb/searchpath/pkg/fsx"
	"github.com/tbhb/searchpath/pkg/logx"
)

// compiledFilters is the filtering pipeline for one entry: the primary
// pattern gate, then the include gate, then the exclude gate. A nil primary
// or include passes everything; a nil exclude drops nothing.
type compiledFilters struct {
	primary CompiledSet
	include CompiledSet
	exclude CompiledSet
}

// accepts runs a candidate through the three gates in order. Exclusion is
// applied strictly after inclusion, never interleaved.
func (f compiledFilters) accepts(rel string, isDir bool) bool {
	if f.primary != nil && !f.primary.Match(rel, isDir) {
		return false
	}
	if f.include != nil && !f.include.Match(rel, isDir) {
		return false
	}
	if f.exclude != nil && f.exclude.Match(rel, isDir) {
		return false
	}
	return true
}

// collect runs the ordered traversal: entries in priority order, each
// walked deterministically, candidates filtered through the matcher
// pipeline, results deduplicated by relative path when asked. With
// firstOnly, traversal stops entirely at the first surviving candidate.
func (sp *SearchPath) collect(pattern string, opts searchOptions, firstOnly bool) ([]Match, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matcher := opts.matcher
	if matcher == nil {
		matcher = NewGlobMatcher()
	}

	baseInclude, err := resolvePatternSet(opts.include, opts.includeFrom)
	if err != nil {
		return nil, err
	}
	baseExclude, err := resolvePatternSet(opts.exclude, opts.excludeFrom)
	if err != nil {
		return nil, err
	}

	searchID := uuid.NewString()
	logx.As().Debug().
		Str("search_id", searchID).
		Str("pattern", pattern).
		Str("matcher", matcher.Name()).
		Str("kind", opts.kind.String()).
		Int("entries", len(sp.entries)).
		Msg("Starting lookup")

	seen := map[string]struct{}{}
	var out []Match

	for _, e := range sp.entries {
		info, ok := fsx.PathExists(e.Dir)
		if !ok || !info.IsDir() {
			logx.As().Debug().
				Str("search_id", searchID).
				Str("scope", e.Scope).
				Str("dir", e.Dir).
				Msg("Entry directory missing, contributing nothing")
			continue
		}

		filters, err := compileEntryFilters(matcher, pattern, e.Dir, baseInclude, baseExclude, opts)
		if err != nil {
			return nil, err
		}

		entryMatches := scanEntry(e, filters, opts, firstOnly, searchID)

		for _, m := range entryMatches {
			if opts.dedupe && !firstOnly {
				rel := m.Relative()
				if _, dup := seen[rel]; dup {
					continue
				}
				seen[rel] = struct{}{}
			}
			out = append(out, m)
			if firstOnly {
				return out, nil
			}
		}
	}

	return out, nil
}

// compileEntryFilters builds the per-entry pipeline. The ancestor cascade is
// resolved here because it is anchored at the entry directory; compilation
// happens per entry so pattern errors carry the active matcher's diagnosis.
func compileEntryFilters(matcher PathMatcher, pattern, dir string, include, exclude PatternSet, opts searchOptions) (compiledFilters, error) {
	var f compiledFilters
	var err error

	if pattern != DefaultPattern {
		f.primary, err = matcher.Compile(inlinePatterns([]string{pattern}))
		if err != nil {
			return f, err
		}
	}

	if opts.includeFromAncestors != "" {
		include = append(include[:len(include):len(include)], collectAncestorPatterns(dir, opts.includeFromAncestors)...)
	}
	if len(include) > 0 {
		f.include, err = matcher.Compile(include)
		if err != nil {
			return f, err
		}
	}

	if opts.excludeFromAncestors != "" {
		exclude = append(exclude[:len(exclude):len(exclude)], collectAncestorPatterns(dir, opts.excludeFromAncestors)...)
	}
	if len(exclude) > 0 {
		f.exclude, err = matcher.Compile(exclude)
		if err != nil {
			return f, err
		}
	}

	return f, nil
}

// scanEntry walks one entry directory and returns its surviving candidates
// sorted lexicographically by relative path. Filesystem failures inside the
// entry are logged and swallowed: one bad directory in a cascade must not
// abort the whole search.
func scanEntry(e Entry, filters compiledFilters, opts searchOptions, firstOnly bool, searchID string) []Match {
	var found []Match

	walker := fsx.NewWalker(fsx.DefaultBatchSize, opts.followSymlinks)
	err := walker.Walk(e.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Descent into this path already failed; swallowing the error
			// keeps the rest of the entry contributing.
			logx.As().Debug().
				Str("search_id", searchID).
				Str("scope", e.Scope).
				Str("path", path).
				Err(err).
				Msg("Skipping inaccessible path")
			return nil
		}
		if path == e.Dir {
			return nil
		}

		rel, relErr := filepath.Rel(e.Dir, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		isDir := info.IsDir()

		// Prune excluded directories before descending; the subtree can
		// never produce results that survive the exclude gate.
		if isDir && filters.exclude != nil && filters.exclude.Match(rel, true) {
			return filepath.SkipDir
		}

		if !kindAllows(opts.kind, isDir) {
			return nil
		}
		if !filters.accepts(rel, isDir) {
			return nil
		}

		found = append(found, Match{Path: path, Scope: e.Scope, Source: e.Dir})
		if firstOnly {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		// Walk already swallows the skip sentinels; anything else is a
		// traversal failure this entry absorbs.
		logx.As().Debug().
			Str("search_id", searchID).
			Str("scope", e.Scope).
			Str("dir", e.Dir).
			Err(err).
			Msg("Entry traversal ended early")
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Relative() < found[j].Relative()
	})
	return found
}

func kindAllows(k Kind, isDir bool) bool {
	switch k {
	case KindFiles:
		return !isDir
	case KindDirs:
		return isDir
	default:
		return true
	}
}
