package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iksnae/listcorpus/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(a *internal.Archive, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: csv, json, yaml)", format)
	}
}

// row is the serialized form of one canonical record, shared by the JSON
// and YAML exporters.
type row struct {
	MessageID  string `json:"message_id" yaml:"message_id"`
	From       string `json:"from" yaml:"from"`
	Date       string `json:"date" yaml:"date"`
	InReplyTo  string `json:"in_reply_to,omitempty" yaml:"in_reply_to,omitempty"`
	References string `json:"references,omitempty" yaml:"references,omitempty"`
	Body       string `json:"body,omitempty" yaml:"body,omitempty"`
}

func rowsOf(a *internal.Archive) []row {
	records := a.Records()
	rows := make([]row, len(records))
	for i, rec := range records {
		rows[i] = row{
			MessageID:  rec.ID,
			From:       rec.Sender,
			Date:       rec.Date.UTC().Format(time.RFC3339),
			InReplyTo:  rec.InReplyTo,
			References: strings.Join(rec.References, " "),
			Body:       rec.Body,
		}
	}
	return rows
}
