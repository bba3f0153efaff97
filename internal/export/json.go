package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/listcorpus/internal"
)

// JSONExporter exports the canonical dataset as a single JSON document.
type JSONExporter struct{}

type jsonDocument struct {
	MessageCount int   `json:"message_count"`
	Messages     []row `json:"messages"`
}

// Export writes the archive to w in JSON format
func (e *JSONExporter) Export(a *internal.Archive, w io.Writer) error {
	doc := jsonDocument{
		MessageCount: a.Len(),
		Messages:     rowsOf(a),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return &ExportError{Format: "json", Err: err}
	}
	return nil
}

// Extension returns the file extension for JSON format
func (e *JSONExporter) Extension() string {
	return "json"
}
