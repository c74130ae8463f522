package fsx

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// DefaultBatchSize is the number of directory entries read per syscall
// batch. Large directories are read incrementally instead of slurping every
// name at once.
const DefaultBatchSize = 1024

// WalkFunc is called once per visited path. When visiting fails, info may be
// nil and err carries the failure; the callback decides whether that aborts
// the walk. Returning filepath.SkipDir on a directory prevents descending
// into it; returning filepath.SkipAll stops the walk entirely. Both
// sentinels are swallowed by Walk and reported as success.
type WalkFunc func(path string, info os.FileInfo, err error) error

// Walker traverses a file tree in deterministic order: the entries of every
// directory are visited sorted by name, so two walks of an unchanged tree
// always produce the same sequence.
type Walker struct {
	batchSize      int
	followSymlinks bool
}

// NewWalker returns a Walker reading directory entries in batches of
// batchSize (DefaultBatchSize when <= 0). When followSymlinks is true,
// symlinks are resolved and symlinked directories are descended into;
// when false, symlinks are reported as themselves and never descended.
func NewWalker(batchSize int, followSymlinks bool) *Walker {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Walker{batchSize: batchSize, followSymlinks: followSymlinks}
}

// Walk traverses the tree rooted at root, calling fn for root itself and
// every path below it. The root is visited through Stat so a symlinked root
// still walks.
func (w *Walker) Walk(root string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		err = fn(root, nil, err)
	} else {
		err = w.walk(root, info, fn)
	}

	if errors.Is(err, filepath.SkipDir) || errors.Is(err, filepath.SkipAll) {
		return nil
	}
	return err
}

func (w *Walker) walk(path string, info os.FileInfo, fn WalkFunc) error {
	if err := fn(path, info, nil); err != nil {
		if info.IsDir() && errors.Is(err, filepath.SkipDir) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return nil
	}

	names, err := w.readDirNames(path)
	if err != nil {
		// Let the callback decide whether an unreadable directory matters.
		// SkipDir here means "move on": there is nothing left to skip in a
		// directory that would not list, so it must not abort the parent.
		if err := fn(path, info, err); err != nil && !errors.Is(err, filepath.SkipDir) {
			return err
		}
		return nil
	}

	for _, name := range names {
		child := filepath.Join(path, name)
		childInfo, err := w.statChild(child)
		if err != nil {
			if err := fn(child, nil, err); err != nil && !errors.Is(err, filepath.SkipDir) {
				return err
			}
			continue
		}
		if err := w.walk(child, childInfo, fn); err != nil {
			return err
		}
	}
	return nil
}

// statChild resolves a child entry's metadata. Symlinks are followed only
// when the walker is configured to, which is what keeps symlinked
// directories from being descended in the no-follow case.
func (w *Walker) statChild(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink == 0 || !w.followSymlinks {
		return info, nil
	}
	return os.Stat(path)
}

// readDirNames reads all entry names of a directory in batches and returns
// them sorted.
func (w *Walker) readDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var names []string
	for {
		batch, err := f.Readdirnames(w.batchSize)
		names = append(names, batch...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
	}

	slices.Sort(names)
	return names, nil
}
