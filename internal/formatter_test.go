package internal

import (
	"strings"
	"testing"
)

func TestNewMarkdownFormatter(t *testing.T) {
	tests := []struct {
		name  string
		style string
		wrap  int
	}{
		{"ascii style", "ascii", 40},
		{"notty style", "notty", 0},
		{"dark style", "dark", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMarkdownFormatter(tt.style, tt.wrap)
			if f == nil {
				t.Fatal("NewMarkdownFormatter() = nil")
			}
			out, err := f.Render("# Heading\n\nSome **bold** text.")
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(out, "Heading") || !strings.Contains(out, "bold") {
				t.Errorf("Render() lost text: %q", out)
			}
		})
	}
}

func TestNewMarkdownFormatter_WithTranscript(t *testing.T) {
	tr := NewTranscript(NewMarkdownFormatter("ascii", 60))
	tr.AppendTurn("`code`", RoleAssistant, false)
	tr.AppendTurn("`code`", RoleAssistant, true)

	turns := tr.Turns()
	if turns[1].Rendered != "`code`" {
		t.Errorf("transient turn rendered = %q, want literal", turns[1].Rendered)
	}
	if turns[0].Rendered == "" {
		t.Error("formatted turn is empty")
	}
}
