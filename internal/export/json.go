package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/labchat/internal"
)

// JSONExporter writes one indented document holding the transcript, the lab
// panel state and the editor and console contents. Markdown in assistant
// turns is kept as sent, so `<`, `>` and `&` are not escaped.
type JSONExporter struct{}

// Export writes the snapshot
func (e *JSONExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(session)
}

// Extension is the suffix /export appends when the path has none
func (e *JSONExporter) Extension() string {
	return "json"
}
