package export

import "github.com/iksnae/labchat/internal"

// testSession builds a snapshot with a finished turn, a pending placeholder
// and a code lab holding a run result
func testSession(id string) *internal.Session {
	return &internal.Session{
		ID:     id,
		Source: "http://127.0.0.1:5000",
		Messages: []internal.Message{
			{Actor: "user", Content: "plot a sine wave"},
			{Actor: "assistant", Content: "*(Visual Generated)*\n```python\nplot(sin)\n```"},
			{Actor: "user", Content: "now cosine"},
			{Actor: "assistant", Content: "Thinking...", Transient: true},
		},
		Lab: internal.LabInfo{
			State:  "code",
			Visual: "![Generated visual](/static/sine.png)",
			Code:   "plot(sin)",
			Output: "ok",
		},
		Metadata: internal.Metadata{
			ExportedAt:   "2026-01-02T03:04:05Z",
			MessageCount: 4,
		},
	}
}
