package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/labchat/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.Session
		want    []string
		notWant []string
	}{
		{
			name:    "full session",
			session: testSession("s4"),
			want: []string{
				"# Session s4",
				"**Source:** http://127.0.0.1:5000",
				"**Messages:** 4",
				"**user:**\n\nplot a sine wave",
				"**assistant (pending):**\n\nThinking...",
				"## Lab (code)",
				"### Visual\n\n![Generated visual](/static/sine.png)",
				"### Code\n\n```\nplot(sin)\n```",
				"### Output\n\n```\nok\n```",
			},
		},
		{
			name: "no lab content",
			session: &internal.Session{
				ID:       "s5",
				Messages: []internal.Message{{Actor: "user", Content: "hi"}},
				Lab:      internal.LabInfo{State: "closed"},
			},
			want:    []string{"**user:**\n\nhi"},
			notWant: []string{"## Lab", "---\n\n## Lab"},
		},
		{
			name: "code containing fences",
			session: &internal.Session{
				ID:  "s6",
				Lab: internal.LabInfo{State: "code", Code: "print('```')"},
			},
			want: []string{"````\nprint('```')\n````"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&MarkdownExporter{}).Export(tt.session, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.notWant {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestFenceFor(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"plain", "```"},
		{"one ` tick", "```"},
		{"``` fence", "````"},
		{"````` long", "``````"},
	}

	for _, tt := range tests {
		if got := fenceFor(tt.text); got != tt.want {
			t.Errorf("fenceFor(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	if got := (&MarkdownExporter{}).Extension(); got != "md" {
		t.Errorf("MarkdownExporter.Extension() = %v, want md", got)
	}
}
