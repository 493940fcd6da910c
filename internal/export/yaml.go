package export

import (
	"io"

	"github.com/iksnae/labchat/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the snapshot as a single YAML document. Multi-line
// turns and code come out as literal blocks, which keeps them readable.
type YAMLExporter struct{}

// Export writes the snapshot and flushes the document end
func (e *YAMLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(session); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// Extension is the suffix /export appends when the path has none
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
