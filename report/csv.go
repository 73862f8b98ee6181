// Package report writes SLCSP results as CSV
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"runtime"

	"slcsp/decision/slcsp"
)

// Header is the output column layout
var Header = []string{"zipcode", "rate"}

// Writer emits one row per result after a header row
type Writer struct {
	w *csv.Writer
}

// NewWriter targets w with the host's native line terminator
func NewWriter(w io.Writer) *Writer {
	return NewWriterCRLF(w, runtime.GOOS == "windows")
}

// NewWriterCRLF targets w with an explicit line terminator choice
func NewWriterCRLF(w io.Writer, useCRLF bool) *Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = useCRLF
	return &Writer{w: cw}
}

// Write emits the header and every result in order, then flushes
func (rw *Writer) Write(results []slcsp.Result) error {
	if err := rw.w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range results {
		if err := rw.w.Write([]string{r.Zipcode, r.FormattedRate()}); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.Zipcode, err)
		}
	}
	rw.w.Flush()
	if err := rw.w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
