// Package searchpath locates files across an ordered list of directories,
// reporting not just the matching paths but which directory produced each
// one. It is built for configuration cascades, plugin discovery, and
// theme/asset resolution, where the same logical file may exist in several
// candidate locations and the caller needs to know which one won.
//
// # Basic Usage
//
//	sp, err := searchpath.New(
//	    searchpath.Scoped("project", "/project/.config"),
//	    searchpath.Scoped("user", "~/.config/myapp"),
//	)
//	if err != nil {
//	    // duplicate conflicting scope names, etc.
//	}
//
//	// First matching path in priority order.
//	path, err := sp.First("config.toml")
//
//	// Same lookup with provenance.
//	m, err := sp.FirstMatch("config.toml")
//	if m != nil {
//	    fmt.Println(m.Scope, m.Path) // "project" /project/.config/config.toml
//	}
//
// Entries are searched in order; the first entry wins ties. An entry with an
// empty directory is dropped silently, which makes optional directories easy
// to express:
//
//	sp, _ := searchpath.New(
//	    searchpath.Scoped("system", "/etc/myapp"),
//	    searchpath.Scoped("user", maybeEmpty), // skipped when ""
//	)
//
// # Filtering
//
// Lookups accept include and exclude pattern sets from inline strings,
// pattern files, and ancestor-directory cascades:
//
//	files, err := sp.All("**/*.py",
//	    searchpath.WithExclude("**/tests/**"),
//	    searchpath.WithExcludeFromAncestors(".searchignore"),
//	)
//
// Exclusion is applied strictly after inclusion, so a broad include plus a
// narrow exclude reliably removes the excluded subset.
//
// # Matchers
//
// Three pattern dialects are provided: glob (default), regex with
// whole-string matching, and gitignore with negation and directory-only
// patterns. Callers may implement PathMatcher to plug in their own dialect.
//
// # Errors
//
// "Not found" is an absent result, never an error. Errors are reserved for
// misconfiguration: invalid patterns, missing pattern files that were named
// explicitly, duplicate conflicting scopes. Missing or unreadable search
// directories contribute nothing and raise nothing.
//
// # Thread Safety
//
// SearchPath, Match, and compiled pattern sets are immutable after
// construction, so a single SearchPath may serve concurrent lookups from
// multiple goroutines without coordination.
package searchpath
