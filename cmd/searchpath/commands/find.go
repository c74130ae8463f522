package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tbhb/searchpath"
	"github.com/tbhb/searchpath/pkg/logx"
)

var (
	flagDirs                 []string
	flagKind                 string
	flagInclude              []string
	flagIncludeFrom          []string
	flagIncludeFromAncestors string
	flagExclude              []string
	flagExcludeFrom          []string
	flagExcludeFromAncestors string
	flagMatcher              string
	flagFirst                bool
	flagNoDedupe             bool
	flagNoFollowSymlinks     bool
	flagPathsOnly            bool
)

var findCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "Find files across the configured directories",
	Long: `Find files matching a pattern across an ordered list of directories.

Directories are searched in the order given; the first directory wins ties.
Each --dir takes either a bare path or a scope=path pair:

  searchpath find "config.toml" --dir project=./.config --dir user=~/.config/myapp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringArrayVarP(&flagDirs, "dir", "d", nil, "directory to search, as path or scope=path (repeatable, priority order)")
	findCmd.Flags().StringVar(&flagKind, "kind", "files", "what to match: files, dirs, or both")
	findCmd.Flags().StringArrayVar(&flagInclude, "include", nil, "include pattern (repeatable)")
	findCmd.Flags().StringArrayVar(&flagIncludeFrom, "include-from", nil, "file with include patterns, one per line (repeatable)")
	findCmd.Flags().StringVar(&flagIncludeFromAncestors, "include-from-ancestors", "", "filename to collect include patterns from ancestor directories")
	findCmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "exclude pattern (repeatable)")
	findCmd.Flags().StringArrayVar(&flagExcludeFrom, "exclude-from", nil, "file with exclude patterns, one per line (repeatable)")
	findCmd.Flags().StringVar(&flagExcludeFromAncestors, "exclude-from-ancestors", "", "filename to collect exclude patterns from ancestor directories")
	findCmd.Flags().StringVar(&flagMatcher, "matcher", searchpath.MatcherGlob, "pattern dialect: glob, regex, or gitignore")
	findCmd.Flags().BoolVar(&flagFirst, "first", false, "stop at the first match")
	findCmd.Flags().BoolVar(&flagNoDedupe, "no-dedupe", false, "report every directory's match even when relative paths collide")
	findCmd.Flags().BoolVar(&flagNoFollowSymlinks, "no-follow-symlinks", false, "do not descend into symlinked directories")
	findCmd.Flags().BoolVar(&flagPathsOnly, "paths-only", false, "print bare paths without scope provenance")

	_ = findCmd.MarkFlagRequired("dir")
}

func runFind(cmd *cobra.Command, args []string) error {
	pattern := searchpath.DefaultPattern
	if len(args) == 1 {
		pattern = args[0]
	}

	entries, err := parseEntryFlags(flagDirs)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	sp, err := searchpath.New(entries...)
	if err != nil {
		return err
	}

	logx.As().Debug().
		Str("pattern", pattern).
		Str("search_path", sp.String()).
		Msg("Running find")

	if flagFirst {
		m, err := sp.FirstMatch(pattern, opts...)
		if err != nil {
			return err
		}
		if m != nil {
			printMatch(cmd, *m)
		}
		return nil
	}

	found, err := sp.Matches(pattern, opts...)
	if err != nil {
		return err
	}
	for _, m := range found {
		printMatch(cmd, m)
	}
	return nil
}

func printMatch(cmd *cobra.Command, m searchpath.Match) {
	if flagPathsOnly {
		fmt.Fprintln(cmd.OutOrStdout(), m.Path)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Scope, m.Path)
}

// parseEntryFlags converts --dir values into entries. A value is either a
// bare path (auto-named) or scope=path.
func parseEntryFlags(values []string) ([]searchpath.Entry, error) {
	entries := make([]searchpath.Entry, 0, len(values))
	for _, v := range values {
		if v == "" {
			return nil, errors.New("--dir value must not be empty")
		}
		if scope, path, ok := strings.Cut(v, "="); ok {
			if scope == "" {
				return nil, errors.Errorf("--dir value %q has an empty scope", v)
			}
			entries = append(entries, searchpath.Scoped(scope, path))
			continue
		}
		entries = append(entries, searchpath.Dir(v))
	}
	return entries, nil
}

func buildOptions() ([]searchpath.Option, error) {
	kind, err := searchpath.KindFromString(flagKind)
	if err != nil {
		return nil, err
	}
	matcher, err := searchpath.MatcherFor(flagMatcher)
	if err != nil {
		return nil, err
	}

	opts := []searchpath.Option{
		searchpath.WithKind(kind),
		searchpath.WithMatcher(matcher),
		searchpath.WithFollowSymlinks(!flagNoFollowSymlinks),
		searchpath.WithDedupe(!flagNoDedupe),
	}
	if len(flagInclude) > 0 {
		opts = append(opts, searchpath.WithInclude(flagInclude...))
	}
	if len(flagIncludeFrom) > 0 {
		opts = append(opts, searchpath.WithIncludeFrom(flagIncludeFrom...))
	}
	if flagIncludeFromAncestors != "" {
		opts = append(opts, searchpath.WithIncludeFromAncestors(flagIncludeFromAncestors))
	}
	if len(flagExclude) > 0 {
		opts = append(opts, searchpath.WithExclude(flagExclude...))
	}
	if len(flagExcludeFrom) > 0 {
		opts = append(opts, searchpath.WithExcludeFrom(flagExcludeFrom...))
	}
	if flagExcludeFromAncestors != "" {
		opts = append(opts, searchpath.WithExcludeFromAncestors(flagExcludeFromAncestors))
	}
	return opts, nil
}
