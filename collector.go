package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Collector walks directory trees and records file metadata.
type Collector struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewCollector returns a Collector reading from fs.
func NewCollector(fs afero.Fs, logger zerolog.Logger) *Collector {
	return &Collector{fs: fs, log: logger}
}

// Collect walks every directory in order and returns the combined FileDB.
// The first error encountered aborts the whole collection.
func (c *Collector) Collect(directories []string) (FileDB, error) {
	db := make(FileDB)
	// Walk each directory in argument order; a later entry for the same path wins
	for _, dir := range directories {
		if err := c.walkDirectory(db, dir); err != nil {
			return nil, err
		}
	}
	c.log.Debug().Int("files", len(db)).Int("directories", len(directories)).Msg("collection finished")
	return db, nil
}

// walkDirectory records every file-like entry below root into db.
func (c *Collector) walkDirectory(db FileDB, root string) error {
	// The root itself must exist and be a directory (a symlink to one is fine)
	info, err := c.fs.Stat(root)
	if err != nil {
		return &TraversalError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &TraversalError{Path: root, Err: ErrNotDirectory}
	}

	// afero.Walk lstats the root, so a symlinked root needs a trailing
	// separator to be descended into.
	walkRoot := root
	if linfo, ok := c.lstat(root); ok && linfo.Mode()&os.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	c.log.Debug().Str("directory", root).Msg("walking directory")

	return afero.Walk(c.fs, walkRoot, func(path string, info os.FileInfo, err error) error {
		// Any error stops the whole walk, nothing is skipped
		if err != nil {
			return &TraversalError{Path: path, Err: err}
		}

		// Directories are descended into, never recorded
		if info.IsDir() {
			return nil
		}

		// Links are not followed, but a link to a directory counts as a
		// directory entry and is left out. Dangling links stay in.
		if info.Mode()&os.ModeSymlink != 0 && c.pointsToDirectory(path) {
			c.log.Trace().Str("path", path).Msg("skipping link to directory")
			return nil
		}

		// Key by the argument as given plus the path relative to it
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return &TraversalError{Path: path, Err: err}
		}
		filePath := joinPath(root, rel)

		// Size and mtime come from the same Lstat result
		db[filePath] = FileStat{
			ModTime: info.ModTime().Truncate(time.Second),
			Size:    info.Size(),
		}
		c.log.Trace().Str("path", filePath).Int64("size", info.Size()).Msg("recorded file")
		return nil
	})
}

// pointsToDirectory reports whether the symlink at path resolves to a directory.
// A link that cannot be resolved is not a directory.
func (c *Collector) pointsToDirectory(path string) bool {
	target, err := c.fs.Stat(path)
	if err != nil {
		return false
	}
	return target.IsDir()
}

func (c *Collector) lstat(path string) (os.FileInfo, bool) {
	lfs, ok := c.fs.(afero.Lstater)
	if !ok {
		return nil, false
	}
	info, _, err := lfs.LstatIfPossible(path)
	if err != nil {
		return nil, false
	}
	return info, true
}

// joinPath appends rel to root without cleaning root, so paths are printed
// exactly as the directory argument was given.
func joinPath(root, rel string) string {
	if root == "" {
		return rel
	}
	if os.IsPathSeparator(root[len(root)-1]) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}
