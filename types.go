package main

import (
	"fmt"
	"strings"
	"time"
)

// FileStat holds the metadata snapshot taken for a single file.
// Both fields come from the same Lstat call.
type FileStat struct {
	ModTime time.Time
	Size    int64
}

// FileDB maps a constructed file path to its metadata snapshot.
type FileDB map[string]FileStat

// FileRecord is a FileDB entry flattened for sorting and output.
type FileRecord struct {
	Path string
	FileStat
}

// SortKey selects the field the listing is ordered by. Order is always descending.
type SortKey int

const (
	SortByModTime SortKey = iota
	SortBySize
)

func (k SortKey) String() string {
	switch k {
	case SortByModTime:
		return "mtime"
	case SortBySize:
		return "size"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// ParseSortKey converts "mtime" or "size" into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mtime", "modtime":
		return SortByModTime, nil
	case "size", "fsize":
		return SortBySize, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort key %q", ErrInvalidArgument, s)
	}
}
