package internal

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuffer(t *testing.T) {
	var editor Editor = NewBuffer("a")
	if editor.Value() != "a" {
		t.Errorf("Value() = %q", editor.Value())
	}
	editor.SetValue("b")
	if editor.Value() != "b" {
		t.Errorf("Value() after SetValue = %q", editor.Value())
	}
}

func TestTurn_JSONOmitsRendering(t *testing.T) {
	data, err := json.Marshal(Turn{Role: RoleAssistant, Content: "x", Rendered: "\x1b[1mx\x1b[0m"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Rendered") || strings.Contains(string(data), "\\u001b") {
		t.Errorf("rendered text leaked into JSON: %s", data)
	}
	if strings.Contains(string(data), "transient") || strings.Contains(string(data), `"id"`) {
		t.Errorf("empty optional fields should be omitted: %s", data)
	}
}
