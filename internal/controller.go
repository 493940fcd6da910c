package internal

import (
	"context"
	"strings"
)

// ThinkingText is the placeholder shown while a response is awaited
const ThinkingText = "Thinking..."

// ChatSender delivers chat messages; *Client implements it
type ChatSender interface {
	SendChatMessage(ctx context.Context, text, sessionID string) (string, error)
}

// PendingTurn is a submitted message whose response has not been reconciled
type PendingTurn struct {
	Message       string
	PlaceholderID string
}

// Controller owns the client state (transcript, lab panel, editor and
// output surface) and is its only mutator. It is not safe for concurrent
// use: the event loop calls it, network calls happen in between.
type Controller struct {
	sessionID  string
	chat       ChatSender
	editor     Editor
	transcript *Transcript
	lab        *LabPanel
	runner     *CodeRunner
	pending    int
}

// NewController wires the components together. editor may be nil; code
// directives then only open the panel.
func NewController(sessionID string, chat ChatSender, exec CodeExecutor, editor Editor, formatter Formatter) *Controller {
	return &Controller{
		sessionID:  sessionID,
		chat:       chat,
		editor:     editor,
		transcript: NewTranscript(formatter),
		lab:        NewLabPanel(),
		runner:     NewCodeRunner(exec, editor),
	}
}

// SessionID returns the identifier sent with every chat request
func (c *Controller) SessionID() string { return c.sessionID }

// Transcript returns the conversation view
func (c *Controller) Transcript() *Transcript { return c.transcript }

// Lab returns the lab panel
func (c *Controller) Lab() *LabPanel { return c.lab }

// Runner returns the code runner
func (c *Controller) Runner() *CodeRunner { return c.runner }

// Editor returns the editing surface, possibly nil
func (c *Controller) Editor() Editor { return c.editor }

// SetEditor attaches the editing surface once it exists
func (c *Controller) SetEditor(editor Editor) {
	c.editor = editor
	c.runner.SetEditor(editor)
}

// Awaiting reports whether any submitted message is still unresolved
func (c *Controller) Awaiting() bool {
	return c.pending > 0
}

// Submit starts a turn: the user's message and a transient placeholder are
// appended. Empty or whitespace-only text is ignored and ok is false.
func (c *Controller) Submit(text string) (*PendingTurn, bool) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return nil, false
	}

	c.transcript.AppendTurn(msg, RoleUser, false)
	id := c.transcript.AppendTurn(ThinkingText, RoleAssistant, true)
	c.pending++

	return &PendingTurn{Message: msg, PlaceholderID: id}, true
}

// Exchange performs the network call for a pending turn
func (c *Controller) Exchange(ctx context.Context, p *PendingTurn) (string, error) {
	return c.chat.SendChatMessage(ctx, p.Message, c.sessionID)
}

// Resolve reconciles a response with the transcript. On success the
// placeholder is replaced by the cleaned assistant text and directives take
// effect; on failure the placeholder stays and shows the error.
func (c *Controller) Resolve(p *PendingTurn, response string, err error) *Extraction {
	if c.pending > 0 {
		c.pending--
	}

	if err != nil {
		LogWarn("Chat request failed: %v", err)
		c.transcript.Overwrite(p.PlaceholderID, ErrorText(err))
		return nil
	}

	c.transcript.Remove(p.PlaceholderID)
	ex := c.ProcessResponse(response)
	return &ex
}

// SendMessage runs a whole turn synchronously. The returned error is the
// transport failure shown in the transcript, if any.
func (c *Controller) SendMessage(ctx context.Context, text string) error {
	p, ok := c.Submit(text)
	if !ok {
		return nil
	}
	response, err := c.Exchange(ctx, p)
	c.Resolve(p, response, err)
	return err
}

// ProcessResponse extracts directives from raw assistant text, applies them
// and appends the cleaned text.
func (c *Controller) ProcessResponse(raw string) Extraction {
	ex := Extract(raw)
	c.ApplyDirectives(ex)
	c.transcript.AppendTurn(ex.CleanText, RoleAssistant, false)
	return ex
}

// ApplyDirectives drives the lab panel from an extraction, image first
func (c *Controller) ApplyDirectives(ex Extraction) {
	if ex.Image != nil {
		LogDebug("Image directive: %s", ex.Image.URL)
		c.lab.Open(LabVisual)
		c.lab.SetVisual(ImageRef(ex.Image.URL))
	}

	if ex.Code != nil {
		LogDebug("Code directive: %d bytes (%s)", len(ex.Code.Content), ex.Code.Language)
		c.lab.Open(LabCode)
		if c.editor != nil {
			c.editor.SetValue(ex.Code.Content)
		}
	}
}

// RunCode executes the editor contents synchronously
func (c *Controller) RunCode(ctx context.Context) error {
	return c.runner.RunCode(ctx)
}
