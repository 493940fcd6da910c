package internal

import (
	"github.com/charmbracelet/glamour"
)

// Formatter renders Markdown for display
type Formatter interface {
	Render(markdown string) (string, error)
}

// NewMarkdownFormatter builds a glamour renderer. style is a glamour
// standard style name; "" or "auto" picks one from the terminal background.
// A nil Formatter is returned on failure and callers fall back to literal text.
func NewMarkdownFormatter(style string, wordWrap int) Formatter {
	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		LogWarn("Markdown renderer unavailable, showing literal text: %v", err)
		return nil
	}
	return r
}
