// Package glob expands recursive glob patterns against the filesystem.
package glob

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// WalkFunc receives one matched path per call. Returning a non-nil error
// stops the walk and propagates that error out of Walk.
type WalkFunc func(path string) error

// Walk expands pattern against the filesystem, calling fn once per match
// in the order the traversal produces them. A `**` segment spans any
// number of directory levels. Matched paths are rejoined with the
// pattern's fixed base, so they come back in the same form the pattern
// used (relative patterns yield relative paths).
//
// A pattern whose fixed base does not exist matches nothing and is not
// an error. A malformed pattern is reported as doublestar.ErrBadPattern.
func Walk(pattern string, fn WalkFunc) error {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	fsys := os.DirFS(base)

	err := doublestar.GlobWalk(fsys, rest, func(path string, d fs.DirEntry) error {
		return fn(filepath.Join(base, path))
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
