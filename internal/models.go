package internal

// Role identifies who produced a turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the conversation transcript
type Turn struct {
	ID        string `json:"id,omitempty"` // set only for transient placeholder turns
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Rendered  string `json:"-"`
	Transient bool   `json:"transient,omitempty"`
}

// ImageDirective is an `IMAGE_GENERATED: <url>` line found in assistant text
type ImageDirective struct {
	URL string `json:"url"`
}

// CodeBlock is the first fenced code block found in assistant text
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

// Extraction is the result of scanning one assistant payload
type Extraction struct {
	CleanText string          `json:"clean_text"`
	Image     *ImageDirective `json:"image,omitempty"`
	Code      *CodeBlock      `json:"code,omitempty"`
}

// Editor is the code-editing surface. The TUI backs it with a textarea; the
// one-shot commands use Buffer.
type Editor interface {
	Value() string
	SetValue(s string)
}

// Buffer is a plain in-memory Editor
type Buffer struct {
	text string
}

// NewBuffer creates a Buffer holding text
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// Value returns the buffer contents
func (b *Buffer) Value() string {
	return b.text
}

// SetValue replaces the buffer contents
func (b *Buffer) SetValue(s string) {
	b.text = s
}
