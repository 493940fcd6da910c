package internal

import (
	"strings"

	"github.com/google/uuid"
)

const placeholderPrefix = "temp-"

// Transcript is the conversation view: an append-only list of turns where
// only transient placeholders can later be removed or overwritten.
type Transcript struct {
	turns     []*Turn
	formatter Formatter
	follow    func()
}

// NewTranscript creates an empty transcript. formatter may be nil.
func NewTranscript(formatter Formatter) *Transcript {
	return &Transcript{formatter: formatter}
}

// SetFormatter swaps the rich-text formatter, e.g. after a terminal resize.
// Already rendered turns are re-rendered.
func (t *Transcript) SetFormatter(formatter Formatter) {
	t.formatter = formatter
	for _, turn := range t.turns {
		if !turn.Transient {
			turn.Rendered = t.render(turn.Content)
		}
	}
}

// OnAppend registers the hook run after every append; views use it to
// scroll to the newest turn.
func (t *Transcript) OnAppend(fn func()) {
	t.follow = fn
}

// AppendTurn adds a turn at the end and returns its handle. Only transient
// turns get a handle; for the others it is empty. Transient content is kept
// literal so placeholder text is never interpreted as markup.
func (t *Transcript) AppendTurn(content string, role Role, transient bool) string {
	turn := &Turn{
		Role:      role,
		Content:   content,
		Transient: transient,
	}
	if transient {
		turn.ID = placeholderPrefix + uuid.NewString()
		turn.Rendered = content
	} else {
		turn.Rendered = t.render(content)
	}

	t.turns = append(t.turns, turn)
	if t.follow != nil {
		t.follow()
	}
	return turn.ID
}

// Remove deletes the turn with the given handle
func (t *Transcript) Remove(handle string) bool {
	i := t.indexOf(handle)
	if i == -1 {
		return false
	}
	t.turns = append(t.turns[:i], t.turns[i+1:]...)
	return true
}

// Overwrite replaces the text of the turn with the given handle. The new
// text is shown literally.
func (t *Transcript) Overwrite(handle, text string) bool {
	i := t.indexOf(handle)
	if i == -1 {
		return false
	}
	t.turns[i].Content = text
	t.turns[i].Rendered = text
	return true
}

// Turns returns a copy of the transcript in insertion order
func (t *Transcript) Turns() []Turn {
	turns := make([]Turn, len(t.turns))
	for i, turn := range t.turns {
		turns[i] = *turn
	}
	return turns
}

// Len returns the number of turns
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Clear empties the transcript
func (t *Transcript) Clear() {
	t.turns = nil
}

func (t *Transcript) indexOf(handle string) int {
	if handle == "" {
		return -1
	}
	for i, turn := range t.turns {
		if turn.ID == handle {
			return i
		}
	}
	return -1
}

func (t *Transcript) render(content string) string {
	if t.formatter == nil {
		return content
	}
	out, err := t.formatter.Render(content)
	if err != nil {
		LogDebug("Markdown render failed, using literal text: %v", err)
		return content
	}
	return strings.TrimRight(out, "\n")
}
