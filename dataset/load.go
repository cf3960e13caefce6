package dataset

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// LineWarning records one input line that was skipped during LoadFile.
// Skipping is non-fatal by design; the caller decides whether to surface it.
type LineWarning struct {
	Line int    // 1-based line number in the source file
	Text string // raw line content after trimming surrounding whitespace
	Err  error  // the parse error that rejected the line
}

// LoadStats summarizes one LoadFile call for the caller's reporting.
type LoadStats struct {
	Lines      int           // physical lines read
	Parsed     int           // lines that parsed as integers (pre-dedup)
	Duplicates int           // values collapsed by deduplication
	Size       int           // final dataset length
	Warnings   []LineWarning // skipped lines, in file order
}

// LoadFile - text-file ingestion.
//
// Description:
//
//	LoadFile reads the file at path as text, one integer per line. Each
//	line is parsed independently: a line that fails integer parsing, or
//	parses but overflows the platform int, is skipped and recorded as a
//	LineWarning - collection continues. After collection the raw values
//	are sorted ascending and consecutive duplicates collapsed, so the
//	strict-increase invariant holds regardless of file content.
//
// Failure modes (whole-operation):
//   - the file cannot be opened or read: the wrapped I/O error is returned
//     (errors.Is against os sentinels such as os.ErrNotExist works);
//   - zero lines parse: ErrNoData - an empty dataset is not a valid result.
//
// On failure the returned Dataset is nil; LoadStats still describes how far
// the read got, so the caller can report line warnings either way.
//
// Complexity: O(L) scan + O(P·log P) sort for L lines, P parsed values.
func LoadFile(path string) (Dataset, LoadStats, error) {
	var stats LoadStats

	f, err := os.Open(path)
	if err != nil {
		return nil, stats, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var raw []int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		stats.Lines++
		text := strings.TrimSpace(sc.Text())
		v, perr := strconv.Atoi(text)
		if perr != nil {
			// Non-fatal: blank, non-numeric, or out-of-range line.
			stats.Warnings = append(stats.Warnings, LineWarning{Line: stats.Lines, Text: text, Err: perr})
			continue
		}
		raw = append(raw, v)
		stats.Parsed++
	}
	if err = sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, stats, fmt.Errorf("dataset: load %s: %w", path, ErrNoData)
	}

	// Sort, then collapse consecutive equal values in place.
	sort.Ints(raw)
	deduped := slices.Compact(raw)

	stats.Duplicates = stats.Parsed - len(deduped)
	stats.Size = len(deduped)

	return Dataset(deduped), stats, nil
}
