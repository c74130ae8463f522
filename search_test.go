package searchpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("data"), 0o644))
	}
}

func TestFirst_FindsFirstMatchingFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "config.toml"), filepath.Join(dir, "other.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.First("*.toml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.toml"), got)
}

func TestFirst_NotFoundIsAbsentNotError(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.First("*.py")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestFirst_EmptySearchPath(t *testing.T) {
	sp := mustNew(t)

	got, err := sp.First("*.py")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestFirst_PriorityOrder(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	touch(t, filepath.Join(dir1, "config.toml"), filepath.Join(dir2, "config.toml"))

	sp := mustNew(t, Scoped("first", dir1), Scoped("second", dir2))

	got, err := sp.First("config.toml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir1, "config.toml"), got)
}

func TestFirst_SkipsMissingDirectories(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "not-created")
	touch(t, filepath.Join(existing, "config.toml"))

	sp := mustNew(t, Scoped("missing", missing), Scoped("existing", existing))

	got, err := sp.First("*.toml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(existing, "config.toml"), got)
}

func TestFirstMatch_CarriesProvenance(t *testing.T) {
	project := t.TempDir()
	user := t.TempDir()
	touch(t, filepath.Join(project, "config.toml"), filepath.Join(user, "config.toml"))

	sp := mustNew(t, Scoped("project", project), Scoped("user", user))

	m, err := sp.FirstMatch("config.toml")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, filepath.Join(project, "config.toml"), m.Path)
	require.Equal(t, "project", m.Scope)
	require.Equal(t, project, m.Source)
	require.Equal(t, "config.toml", m.Relative())
}

func TestFirstMatch_ProvenanceFromLaterEntry(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	touch(t, filepath.Join(dir2, "config.toml"))

	sp := mustNew(t, Scoped("first", dir1), Scoped("second", dir2))

	m, err := sp.FirstMatch("*.toml")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "second", m.Scope)
	require.Equal(t, dir2, m.Source)
}

func TestFirstMatch_NestedRelative(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "src", "utils", "helpers.py"))
	sp := mustNew(t, Scoped("project", dir))

	m, err := sp.FirstMatch("**/*.py")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "src/utils/helpers.py", m.Relative())
}

func TestAll_FindsEverything(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.py"), filepath.Join(dir, "b.py"), filepath.Join(dir, "readme.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("*.py")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.py"), filepath.Join(dir, "b.py")}, got)
}

func TestAll_EmptyResultIsEmptyList(t *testing.T) {
	sp := mustNew(t, Scoped("dir", t.TempDir()))

	got, err := sp.All("*.py")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAll_DedupeByRelativePath(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	touch(t,
		filepath.Join(dir1, "config.toml"),
		filepath.Join(dir2, "config.toml"),
		filepath.Join(dir2, "extra.toml"),
	)
	sp := mustNew(t, Scoped("a", dir1), Scoped("b", dir2))

	got, err := sp.All("*.toml")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir1, "config.toml"), // first entry wins the collision
		filepath.Join(dir2, "extra.toml"),
	}, got)
}

func TestAll_DedupeDisabled(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	touch(t, filepath.Join(dir1, "config.toml"), filepath.Join(dir2, "config.toml"))
	sp := mustNew(t, Scoped("a", dir1), Scoped("b", dir2))

	got, err := sp.All("*.toml", WithDedupe(false))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir1, "config.toml"),
		filepath.Join(dir2, "config.toml"),
	}, got)
}

func TestMatches_DedupeInvariant(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	touch(t,
		filepath.Join(dir1, "shared.txt"),
		filepath.Join(dir1, "only1.txt"),
		filepath.Join(dir2, "shared.txt"),
		filepath.Join(dir2, "only2.txt"),
	)
	sp := mustNew(t, Scoped("a", dir1), Scoped("b", dir2))

	found, err := sp.Matches("*.txt")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, m := range found {
		require.False(t, seen[m.Relative()], "relative path %q emitted twice", m.Relative())
		seen[m.Relative()] = true
	}
	require.Len(t, found, 3)
}

func TestAll_ExcludeWins(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "main.py"))
	sp := mustNew(t, Scoped("dir", dir))

	// Include and exclude both match; exclusion is applied after inclusion.
	got, err := sp.All("**", WithInclude("*.py"), WithExclude("main.*"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAll_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t,
		filepath.Join(dir, "src", "main.py"),
		filepath.Join(dir, "src", "tests", "test_x.py"),
	)
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("**/*.py", WithExclude("test_*", "**/tests/**"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "src", "main.py")}, got)
}

func TestAll_IncludeIsUnionWithinSet(t *testing.T) {
	dir := t.TempDir()
	touch(t,
		filepath.Join(dir, "main.py"),
		filepath.Join(dir, "readme.txt"),
		filepath.Join(dir, "image.png"),
	)
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("**", WithInclude("*.py", "*.txt"))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "main.py"),
		filepath.Join(dir, "readme.txt"),
	}, got)
}

func TestAll_PatternAndIncludeBothGate(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "main.py"), filepath.Join(dir, "util.py"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("*.py", WithInclude("main*"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "main.py")}, got)
}

func TestAll_OptionalEntryContributesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	sp := mustNew(t, Scoped("a", dir), Scoped("b", ""))

	got, err := sp.All("**")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.txt")}, got)
}

func TestAll_KindDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "sub", "file.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("**", WithKind(KindDirs))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "sub")}, got)
}

func TestAll_KindBoth(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "sub", "file.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("**", WithKind(KindBoth))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "sub"),
		filepath.Join(dir, "sub", "file.txt"),
	}, got)
}

func TestAll_ExcludedDirectoryIsPruned(t *testing.T) {
	dir := t.TempDir()
	touch(t,
		filepath.Join(dir, "keep", "a.txt"),
		filepath.Join(dir, "skip", "b.txt"),
	)
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("**", WithExclude("skip"), WithKind(KindBoth))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "keep"),
		filepath.Join(dir, "keep", "a.txt"),
	}, got)
}

func TestAll_IncludeFromFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "main.py"), filepath.Join(dir, "readme.txt"))

	patterns := filepath.Join(t.TempDir(), "include.txt")
	writeFile(t, patterns, "# python only\n*.py\n")

	sp := mustNew(t, Scoped("dir", dir))
	got, err := sp.All("**", WithIncludeFrom(patterns))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "main.py")}, got)
}

func TestAll_ExcludeFromMissingFileFails(t *testing.T) {
	sp := mustNew(t, Scoped("dir", t.TempDir()))

	_, err := sp.All("**", WithExcludeFrom("/no/such/patterns.txt"))
	require.Error(t, err)

	var fileErr *PatternFileError
	require.ErrorAs(t, err, &fileErr)
}

func TestAll_ExcludeFromAncestors(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "workdir")
	touch(t,
		filepath.Join(root, "app.py"),
		filepath.Join(root, "debug.log"),
		filepath.Join(root, "sub", "trace.log"),
	)
	// Marker in an ancestor of the search root. Both forms so log files are
	// dropped at any depth.
	writeFile(t, filepath.Join(parent, ".searchignore"), "*.log\n**/*.log\n")

	sp := mustNew(t, Scoped("dir", root))
	got, err := sp.All("**", WithExcludeFromAncestors(".searchignore"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "app.py")}, got)
}

func TestAll_ExcludeFromAncestorsMarkerInRootItself(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "main.py"), filepath.Join(root, "test_main.py"))
	writeFile(t, filepath.Join(root, ".searchignore"), "test_*\n")

	sp := mustNew(t, Scoped("dir", root))
	got, err := sp.All("*.py", WithExcludeFromAncestors(".searchignore"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "main.py")}, got)
}

func TestAll_IncludeFromAncestors(t *testing.T) {
	root := t.TempDir()
	touch(t,
		filepath.Join(root, "main.py"),
		filepath.Join(root, "readme.txt"),
		filepath.Join(root, "config.json"),
	)
	writeFile(t, filepath.Join(root, ".searchinclude"), "*.py\n*.txt\n")

	sp := mustNew(t, Scoped("dir", root))
	got, err := sp.All("**", WithIncludeFromAncestors(".searchinclude"))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "main.py"),
		filepath.Join(root, "readme.txt"),
	}, got)
}

func TestAll_MissingAncestorMarkerIsSilent(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "main.py"))

	sp := mustNew(t, Scoped("dir", root))
	got, err := sp.All("*.py", WithExcludeFromAncestors(".searchignore-none-xyzzy"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "main.py")}, got)
}

func TestAll_UnreadableSubdirectorySkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "aaa", "hidden.txt"), filepath.Join(dir, "zzz.txt"))

	// The unreadable directory sorts before its sibling, so the walk hits
	// the failure first; the sibling must still be reported.
	locked := filepath.Join(dir, "aaa")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	sp := mustNew(t, Scoped("dir", dir))
	got, err := sp.All("**")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "zzz.txt")}, got)
}

func TestAll_RegexMatcher(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "foo"), filepath.Join(dir, "foobar"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("foo", WithMatcher(NewRegexMatcher()))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "foo")}, got)
}

func TestAll_GitignoreMatcherNegation(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "debug.log"), filepath.Join(dir, "important.log"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("**",
		WithMatcher(NewGitignoreMatcher()),
		WithExclude("*.log", "!important.log"),
	)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "important.log")}, got)
}

func TestAll_PatternSyntaxErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	_, err := sp.All("**", WithExclude("file[unclosed"))
	require.Error(t, err)

	var synErr *PatternSyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestAll_LexicographicOrderWithinEntry(t *testing.T) {
	dir := t.TempDir()
	touch(t,
		filepath.Join(dir, "zeta.txt"),
		filepath.Join(dir, "alpha.txt"),
		filepath.Join(dir, "mid", "beta.txt"),
	)
	sp := mustNew(t, Scoped("dir", dir))

	found, err := sp.Matches("**")
	require.NoError(t, err)

	rels := make([]string, len(found))
	for i, m := range found {
		rels[i] = m.Relative()
	}
	require.Equal(t, []string{"alpha.txt", "mid/beta.txt", "zeta.txt"}, rels)
}

func TestAll_RelativeInvariant(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a", "b", "c.txt"), filepath.Join(dir, "top.txt"))
	sp := mustNew(t, Scoped("dir", dir))

	found, err := sp.Matches("**")
	require.NoError(t, err)
	require.NotEmpty(t, found)

	for _, m := range found {
		require.Equal(t, m.Source, dir)
		require.True(t, strings.HasPrefix(m.Path, m.Source))
		require.NotEmpty(t, m.Relative())
		require.Equal(t, m.Path, filepath.Join(m.Source, filepath.FromSlash(m.Relative())))
	}
}

func TestAll_SymlinkedDirNotDescended(t *testing.T) {
	target := t.TempDir()
	touch(t, filepath.Join(target, "inside.txt"))

	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	sp := mustNew(t, Scoped("dir", dir))

	// Followed: the file inside the symlinked directory is reachable.
	got, err := sp.All("**")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "link", "inside.txt")}, got)

	// Not followed: nothing descends, but the symlink itself is a candidate.
	got, err = sp.All("**", WithFollowSymlinks(false))
	require.NoError(t, err)
	require.Equal(t, []string{link}, got)
}

func TestAll_DefaultPatternOnEmptyString(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "anything.bin"))
	sp := mustNew(t, Scoped("dir", dir))

	got, err := sp.All("")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "anything.bin")}, got)
}
