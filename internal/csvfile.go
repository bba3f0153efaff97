package internal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVColumns is the external flat-file contract: the canonical dataset
// serializes to and from these columns, in this order.
var CSVColumns = []string{"Message-ID", "From", "Date", "In-Reply-To", "References", "Body"}

// LoadCSV reads a previously saved canonical dataset (or any table honoring
// the column contract) and rebuilds an archive from it. Rows pass through
// normalization again, so a hand-edited file cannot smuggle in duplicates
// or bad dates.
func LoadCSV(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	rows, err := ReadCSVRows(f)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "parse", Err: err}
	}
	LogInfo("Read %d row(s) from %s", len(rows), path)
	return NewArchive(rows)
}

// ReadCSVRows parses raw rows from CSV data with a header line.
func ReadCSVRows(r io.Reader) ([]RawMessage, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"Message-ID", "From"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var rows []RawMessage
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, RawMessage{
			MessageID:  field(rec, "Message-ID"),
			From:       field(rec, "From"),
			Date:       field(rec, "Date"),
			InReplyTo:  field(rec, "In-Reply-To"),
			References: field(rec, "References"),
			Body:       field(rec, "Body"),
		})
	}
	return rows, nil
}
