package export

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/iksnae/listcorpus/internal"
)

// CSVExporter writes the canonical dataset as a flat comma-separated table.
// This is the external sink contract: the fixed column set, with the
// inherited "None" sentinel for messages that start a thread, so the output
// stays interchangeable with existing archive tooling and reloads cleanly.
type CSVExporter struct{}

// Export writes the archive to w in CSV format
func (e *CSVExporter) Export(a *internal.Archive, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(internal.CSVColumns); err != nil {
		return &ExportError{Format: "csv", Err: err}
	}
	for _, rec := range a.Records() {
		inReplyTo := rec.InReplyTo
		if inReplyTo == "" {
			inReplyTo = "None"
		}
		record := []string{
			rec.ID,
			rec.Sender,
			rec.Date.UTC().Format(time.RFC3339),
			inReplyTo,
			strings.Join(rec.References, " "),
			rec.Body,
		}
		if err := cw.Write(record); err != nil {
			return &ExportError{Format: "csv", Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &ExportError{Format: "csv", Err: err}
	}
	return nil
}

// Extension returns the file extension for CSV format
func (e *CSVExporter) Extension() string {
	return "csv"
}
