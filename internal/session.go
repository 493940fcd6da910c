package internal

import "time"

// Session is a snapshot of the current conversation, used for export
type Session struct {
	ID       string    `json:"id" yaml:"id"`
	Source   string    `json:"source" yaml:"source"` // backend base URL
	Messages []Message `json:"messages" yaml:"messages"`
	Lab      LabInfo   `json:"lab" yaml:"lab"`
	Metadata Metadata  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Message is one exported turn
type Message struct {
	Actor     string `json:"actor" yaml:"actor"` // "user", "assistant"
	Content   string `json:"content" yaml:"content"`
	Transient bool   `json:"transient,omitempty" yaml:"transient,omitempty"`
}

// LabInfo captures what the lab panel holds
type LabInfo struct {
	State  string `json:"state" yaml:"state"`
	Visual string `json:"visual,omitempty" yaml:"visual,omitempty"`
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Metadata contains additional session information
type Metadata struct {
	ExportedAt   string `json:"exported_at,omitempty" yaml:"exported_at,omitempty"`
	MessageCount int    `json:"message_count" yaml:"message_count"`
}

// Snapshot captures the controller's state for export
func (c *Controller) Snapshot(source string) *Session {
	turns := c.transcript.Turns()
	messages := make([]Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, Message{
			Actor:     string(turn.Role),
			Content:   turn.Content,
			Transient: turn.Transient,
		})
	}

	lab := LabInfo{
		State:  c.lab.State().String(),
		Visual: c.lab.Visual(),
		Output: c.runner.Output(),
	}
	if c.editor != nil {
		lab.Code = c.editor.Value()
	}

	return &Session{
		ID:       c.sessionID,
		Source:   source,
		Messages: messages,
		Lab:      lab,
		Metadata: Metadata{
			ExportedAt:   time.Now().UTC().Format(time.RFC3339),
			MessageCount: len(messages),
		},
	}
}
