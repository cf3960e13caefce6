package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// SaveFile writes d to path in the same format LoadFile reads: plain text,
// one integer per line. An existing file at path is truncated.
//
// Complexity: O(n) time, O(1) extra space beyond the write buffer.
func SaveFile(path string, d Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, v := range d {
		if _, err = w.WriteString(strconv.Itoa(v)); err != nil {
			f.Close()

			return fmt.Errorf("dataset: write %s: %w", path, err)
		}
		if err = w.WriteByte('\n'); err != nil {
			f.Close()

			return fmt.Errorf("dataset: write %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("dataset: flush %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("dataset: close %s: %w", path, err)
	}

	return nil
}
