package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/labchat/internal"
)

// JSONLExporter exports one JSON object per turn, followed by one object
// describing the lab panel
type JSONLExporter struct{}

type jsonlTurn struct {
	Session   string `json:"session"`
	Index     int    `json:"index"`
	Actor     string `json:"actor"`
	Content   string `json:"content"`
	Transient bool   `json:"transient,omitempty"`
}

type jsonlLab struct {
	Session string           `json:"session"`
	Lab     internal.LabInfo `json:"lab"`
}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for i, msg := range session.Messages {
		line := jsonlTurn{
			Session:   session.ID,
			Index:     i,
			Actor:     msg.Actor,
			Content:   msg.Content,
			Transient: msg.Transient,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("failed to encode message %d: %w", i, err)
		}
	}

	if err := enc.Encode(jsonlLab{Session: session.ID, Lab: session.Lab}); err != nil {
		return fmt.Errorf("failed to encode lab state: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
