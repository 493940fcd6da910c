package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/labchat/internal"
)

// MarkdownExporter exports sessions in Markdown format. Assistant turns are
// already Markdown and are written unchanged.
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Session %s\n\n", session.ID)
	_, _ = fmt.Fprintf(w, "**Source:** %s  \n", session.Source)
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range session.Messages {
		label := msg.Actor
		if msg.Transient {
			label += " (pending)"
		}
		_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", label, msg.Content)

		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	lab := session.Lab
	if lab.Visual == "" && lab.Code == "" && lab.Output == "" {
		return nil
	}

	_, _ = fmt.Fprintf(w, "## Lab (%s)\n\n", lab.State)
	if lab.Visual != "" {
		_, _ = fmt.Fprintf(w, "### Visual\n\n%s\n\n", lab.Visual)
	}
	if lab.Code != "" {
		fence := fenceFor(lab.Code)
		_, _ = fmt.Fprintf(w, "### Code\n\n%s\n%s\n%s\n\n", fence, lab.Code, fence)
	}
	if lab.Output != "" {
		fence := fenceFor(lab.Output)
		_, _ = fmt.Fprintf(w, "### Output\n\n%s\n%s\n%s\n\n", fence, lab.Output, fence)
	}

	return nil
}

// fenceFor returns a backtick fence longer than any backtick run in text so
// the block cannot be closed early
func fenceFor(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
