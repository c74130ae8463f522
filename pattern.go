package searchpath

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// PatternOrigin records where a pattern came from, kept so that error
// reporting can point at the file and line that produced a bad pattern.
type PatternOrigin int

const (
	// OriginInline marks a pattern passed as a literal argument.
	OriginInline PatternOrigin = iota
	// OriginFile marks a pattern loaded from an explicitly referenced file.
	OriginFile
	// OriginAncestor marks a pattern discovered through the ancestor
	// cascade.
	OriginAncestor
)

// Pattern is a single pattern string together with its origin.
type Pattern struct {
	// Text is the raw pattern, whitespace-trimmed.
	Text string
	// Origin says whether the pattern came from a literal, a file, or the
	// ancestor cascade.
	Origin PatternOrigin
	// Source is the pattern file the pattern was read from, empty for
	// inline patterns.
	Source string
	// Line is the 1-indexed line in Source, zero for inline patterns.
	Line int
}

// PatternSet is an ordered collection of patterns. Order is preserved from
// resolution (inline, then files in argument order, then ancestors outermost
// first) because matchers with negation give later patterns the last word.
type PatternSet []Pattern

// Texts returns just the pattern strings, in set order.
func (s PatternSet) Texts() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Text
	}
	return out
}

// inlinePatterns wraps literal pattern arguments into a PatternSet.
func inlinePatterns(texts []string) PatternSet {
	set := make(PatternSet, 0, len(texts))
	for _, t := range texts {
		set = append(set, Pattern{Text: t, Origin: OriginInline})
	}
	return set
}

// LoadPatternFile reads a pattern file: one pattern per line, leading and
// trailing whitespace stripped, blank lines and lines starting with # are
// skipped. The file must be UTF-8 text.
//
// A missing or unreadable file is a PatternFileError: explicitly referenced
// pattern files are configuration, not discovery, so their absence is not
// swallowed.
func LoadPatternFile(path string) (PatternSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &PatternFileError{Path: path, Message: readFailureReason(err)}
	}
	if !utf8.Valid(content) {
		return nil, &PatternFileError{Path: path, Message: "invalid encoding: not valid UTF-8"}
	}
	return parsePatternLines(string(content), path, OriginFile), nil
}

// readFailureReason maps common read errors onto the short messages used in
// PatternFileError.
func readFailureReason(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "file not found"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}

// parsePatternLines splits file content into patterns, tracking line numbers
// for error reporting.
func parsePatternLines(content, source string, origin PatternOrigin) PatternSet {
	var set PatternSet
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		set = append(set, Pattern{Text: trimmed, Origin: origin, Source: source, Line: i + 1})
	}
	return set
}

// resolvePatternSet merges inline patterns with patterns from explicit
// files, in that order. File loading is strict.
func resolvePatternSet(inline []string, files []string) (PatternSet, error) {
	set := inlinePatterns(inline)
	for _, f := range files {
		fromFile, err := LoadPatternFile(f)
		if err != nil {
			return nil, err
		}
		set = append(set, fromFile...)
	}
	return set, nil
}

// collectAncestorPatterns walks from root upward to the filesystem root,
// reading the marker-named pattern file in each directory once. Missing
// marker files are skipped; a permission failure is a boundary the walk
// cannot cross, so collection stops there without failing.
//
// The returned set lists the outermost ancestor's patterns first and the
// root directory's own patterns last, so the nearest directory wins under
// negation-capable matchers.
func collectAncestorPatterns(root, marker string) PatternSet {
	var levels []PatternSet

	dir := root
	for {
		set, stop := loadPatternFileLenient(filepath.Join(dir, marker))
		if len(set) > 0 {
			levels = append(levels, set)
		}
		if stop {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// levels is nearest-first; flatten outermost-first.
	var merged PatternSet
	for i := len(levels) - 1; i >= 0; i-- {
		merged = append(merged, levels[i]...)
	}
	return merged
}

// loadPatternFileLenient reads a cascade marker file, returning the parsed
// patterns and whether the upward walk should stop. Missing files and
// non-text content contribute nothing; permission denial stops the walk.
func loadPatternFileLenient(path string) (PatternSet, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, true
		}
		return nil, false
	}
	if !utf8.Valid(content) {
		return nil, false
	}
	return parsePatternLines(string(content), path, OriginAncestor), false
}
