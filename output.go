package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

const (
	isoTimeLayout   = "2006-01-02T15:04:05"
	humanTimeLayout = time.ANSIC // Mon Jan _2 15:04:05 2006

	kilobyte = 1000
	megabyte = 1000 * kilobyte
	gigabyte = 1000 * megabyte
)

// Reporter prints a FileDB as one line per file, ordered by Key.
type Reporter struct {
	Key   SortKey
	Human bool
	// Location is used to render modification times. Nil means time.Local.
	Location *time.Location
}

// Report sorts db and writes "<time> <size> <path>" lines to w.
func (r *Reporter) Report(w io.Writer, db FileDB) error {
	records, err := SortedRecords(db, r.Key)
	if err != nil {
		return err
	}

	// Times are shown in local time unless a location was given
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}

	// One "<time> <size> <path>" line per file, no header or summary
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		_, err := fmt.Fprintf(bw, "%s %s %s\n",
			FormatTime(rec.ModTime.In(loc), r.Human),
			FormatSize(rec.Size, r.Human),
			rec.Path)
		if err != nil {
			return fmt.Errorf("error writing listing: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing listing: %w", err)
	}
	return nil
}

// SortedRecords returns the entries of db ordered by key, largest first.
// Equal keys are ordered by path, also descending.
func SortedRecords(db FileDB, key SortKey) ([]FileRecord, error) {
	var less func(a, b FileRecord) bool
	switch key {
	case SortByModTime:
		less = func(a, b FileRecord) bool {
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
			return a.Path < b.Path
		}
	case SortBySize:
		less = func(a, b FileRecord) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return a.Path < b.Path
		}
	default:
		return nil, fmt.Errorf("%w: unsupported sort key %s", ErrInvalidArgument, key)
	}

	// Flatten the map; iteration order does not matter since the sort is total
	records := make([]FileRecord, 0, len(db))
	for path, stat := range db {
		records = append(records, FileRecord{Path: path, FileStat: stat})
	}
	sort.Slice(records, func(i, j int) bool {
		return less(records[j], records[i]) // reversed for descending order
	})
	return records, nil
}

// FormatTime renders t as ISO-8601 without offset, or in ctime style when human is set.
func FormatTime(t time.Time, human bool) string {
	if human {
		return t.Format(humanTimeLayout)
	}
	return t.Format(isoTimeLayout)
}

// FormatSize renders n as a byte count, or with a decimal KB/MB/GB suffix when human is set.
func FormatSize(n int64, human bool) string {
	if !human {
		return strconv.FormatInt(n, 10)
	}
	// Decimal units (1000-based), width 8 before the suffix
	switch {
	case n < megabyte:
		return fmt.Sprintf("%8.2fKB", float64(n)/kilobyte)
	case n < gigabyte:
		return fmt.Sprintf("%8.2fMB", float64(n)/megabyte)
	default:
		return fmt.Sprintf("%8.2fGB", float64(n)/gigabyte)
	}
}
