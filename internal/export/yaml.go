package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iksnae/listcorpus/internal"
)

// YAMLExporter exports the canonical dataset as a YAML document.
type YAMLExporter struct{}

type yamlDocument struct {
	MessageCount int   `yaml:"message_count"`
	Messages     []row `yaml:"messages"`
}

// Export writes the archive to w in YAML format
func (e *YAMLExporter) Export(a *internal.Archive, w io.Writer) error {
	doc := yamlDocument{
		MessageCount: a.Len(),
		Messages:     rowsOf(a),
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return &ExportError{Format: "yaml", Err: err}
	}
	if _, err := w.Write(data); err != nil {
		return &ExportError{Format: "yaml", Err: err}
	}
	return nil
}

// Extension returns the file extension for YAML format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
