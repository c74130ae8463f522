package searchpath

import (
	"errors"
	"fmt"
)

// searchPathError marks the error types raised by this package. "Not found"
// is never an error; everything implementing this interface indicates a
// misconfiguration the caller must fix.
type searchPathError interface {
	error
	isSearchPathError()
}

// IsSearchPathError reports whether err belongs to this package's error
// taxonomy (pattern syntax, pattern file, or configuration errors),
// unwrapping as needed.
func IsSearchPathError(err error) bool {
	var spe searchPathError
	return errors.As(err, &spe)
}

// PatternSyntaxError is returned when a pattern fails to compile under the
// active matcher. It is raised at lookup time, not at option-building time,
// since validity depends on which matcher is supplied.
type PatternSyntaxError struct {
	// Pattern is the pattern that failed to compile.
	Pattern string
	// Message describes the syntax problem.
	Message string
	// Position is the character offset of the problem, or -1 when the
	// underlying engine does not report one.
	Position int
}

func (e *PatternSyntaxError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("invalid pattern %q at position %d: %s", e.Pattern, e.Position, e.Message)
	}
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Message)
}

func (e *PatternSyntaxError) isSearchPathError() {}

// PatternFileError is returned when an explicitly referenced pattern file
// cannot be read or decoded. Pattern files discovered through the ancestor
// cascade are loaded leniently and never produce this error.
type PatternFileError struct {
	// Path is the pattern file that failed.
	Path string
	// Message describes the failure.
	Message string
	// Line is the 1-indexed line where the problem occurred, or 0 when the
	// failure concerns the whole file.
	Line int
}

func (e *PatternFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pattern file %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("pattern file %s: %s", e.Path, e.Message)
}

func (e *PatternFileError) isSearchPathError() {}

// ConfigurationError is returned for malformed entry specifications,
// duplicate conflicting scope names, and unknown matcher names.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "invalid search path configuration: " + e.Message
}

func (e *ConfigurationError) isSearchPathError() {}
