package csv

import (
	"encoding/csv"
	"io"

	"github.com/fwojciec/docscout"
)

// Writer emits website results as CSV with the fixed column set, one row
// per discovered person and a placeholder row for empty or failed sites.
type Writer struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewWriter creates a Writer over w. The header row is written lazily on
// the first result.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteResult writes the result's rows.
func (w *Writer) WriteResult(result *docscout.WebsiteResult) error {
	if !w.wroteHeader {
		if err := w.w.Write(docscout.Columns); err != nil {
			return docscout.Errorf(docscout.EINTERNAL, "writing CSV header: %v", err)
		}
		w.wroteHeader = true
	}

	for _, row := range result.Rows() {
		if err := w.w.Write(row[:]); err != nil {
			return docscout.Errorf(docscout.EINTERNAL, "writing CSV row: %v", err)
		}
	}
	return nil
}

// Flush writes buffered rows to the underlying writer and reports any
// accumulated write error.
func (w *Writer) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return docscout.Errorf(docscout.EINTERNAL, "flushing CSV: %v", err)
	}
	return nil
}
