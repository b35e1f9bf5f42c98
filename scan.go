package main

import (
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNoFiles is reported when no input pattern matched anything.
var ErrNoFiles = errors.New("no files found")

var supportedExt = mapset.NewSet(
	".png",
	".jpg",
	".jpeg",
	".gif",
	".bmp",
	".webp",
)

func isSupportedExt(path string) bool {
	return supportedExt.Contains(strings.ToLower(filepath.Ext(path)))
}

// Scanner expands path/pattern arguments into a deduplicated file list.
// It works against an afero.Fs so tests can run on an in-memory filesystem.
type Scanner struct {
	fs        afero.Fs
	logger    *zap.Logger
	recursive bool
	globs     []string
}

func NewScanner(fs afero.Fs, logger *zap.Logger, settings *Settings) *Scanner {
	return &Scanner{
		fs:        fs,
		logger:    logger,
		recursive: settings.Recursive,
		globs:     settings.FileGlobs,
	}
}

// Collect expands every pattern and merges the results in first-seen order
// with exact duplicates removed. A directory is scanned (recursively when
// configured); an existing file is taken directly; anything else is split
// into directory plus glob and matched against that directory. Errors on
// individual patterns are logged and swallowed so one bad input never aborts
// the whole scan. An empty result is the caller's cue to report ErrNoFiles.
func (sc *Scanner) Collect(patterns []string) []string {
	seen := mapset.NewSet[string]()
	var list []string
	add := func(p string) {
		if seen.Add(p) {
			list = append(list, p)
		}
	}

	for _, pat := range patterns {
		info, err := sc.fs.Stat(pat)
		switch {
		case err == nil && info.IsDir():
			for _, m := range sc.scanDir(pat) {
				add(m)
			}
		case err == nil:
			add(pat)
		default:
			for _, m := range sc.expandGlob(pat) {
				add(m)
			}
		}
	}

	return list
}

// scanDir returns the matching files under dir in natural name order.
func (sc *Scanner) scanDir(dir string) []string {
	var out []string
	walkFn := func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			// Inaccessible entries are skipped, not fatal.
			sc.logger.Warn("skipping unreadable path",
				zap.String("path", path), zap.Error(err))
			return nil
		}
		if fi.IsDir() {
			if !sc.recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if sc.match(path) {
			out = append(out, path)
		}
		return nil
	}
	if err := afero.Walk(sc.fs, dir, walkFn); err != nil {
		sc.logger.Warn("directory scan failed",
			zap.String("dir", dir), zap.Error(err))
	}
	return NaturalOrdering{}.Apply(out)
}

// expandGlob splits the trailing component off pat and matches it as a glob
// within the remaining directory.
func (sc *Scanner) expandGlob(pat string) []string {
	dir, glob := filepath.Split(pat)
	if dir == "" {
		dir = "."
	}
	matches, err := afero.Glob(sc.fs, filepath.Join(dir, glob))
	if err != nil {
		sc.logger.Warn("skipping bad pattern",
			zap.String("pattern", pat), zap.Error(err))
		return nil
	}
	var out []string
	for _, m := range matches {
		if fi, err := sc.fs.Stat(m); err == nil && !fi.IsDir() {
			out = append(out, m)
		}
	}
	return NaturalOrdering{}.Apply(out)
}

func (sc *Scanner) match(path string) bool {
	if len(sc.globs) == 0 {
		return isSupportedExt(path)
	}
	base := filepath.Base(path)
	for _, g := range sc.globs {
		if ok, err := filepath.Match(g, base); err == nil && ok {
			return true
		}
	}
	return false
}
