// Package tui is the interactive chat page: transcript on the left, the lab
// panel (visual or code editor with console) on the right, input at the bottom.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iksnae/labchat/internal"
	"github.com/iksnae/labchat/internal/export"
)

type focus int

const (
	focusInput focus = iota
	focusEditor
)

const (
	chromeHeight = 3 // input line, status bar, border
	minWrap      = 20
)

// Message types
type chatResultMsg struct {
	pending  *internal.PendingTurn
	response string
	err      error
}

type runResultMsg struct {
	output string
	err    error
}

// Model is the Bubble Tea model. All controller calls happen in Update;
// commands only perform network calls.
type Model struct {
	ctx    context.Context
	ctrl   *internal.Controller
	source string
	style  string

	input   textinput.Model
	editor  textarea.Model
	history viewport.Model
	console viewport.Model
	spin    spinner.Model

	focus    focus
	width    int
	height   int
	wrap     int
	follow   bool
	ready    bool
	status   string
	quitting bool
}

// New creates the model and attaches its editor to ctrl. source is the
// backend address recorded in exports; style is a glamour style name.
func New(ctx context.Context, ctrl *internal.Controller, source, style string) *Model {
	if style == "" || style == "auto" {
		// resolved once: querying the terminal while the program owns it is unreliable
		style = "light"
		if lipgloss.HasDarkBackground() {
			style = "dark"
		}
	}

	in := textinput.New()
	in.Placeholder = "Ask anything, or /help"
	in.Prompt = "› "
	in.CharLimit = 0
	in.Focus()

	ed := textarea.New()
	ed.Placeholder = "# Code will appear here"
	ed.ShowLineNumbers = true
	ed.CharLimit = 0
	ed.Blur()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := &Model{
		ctx:     ctx,
		ctrl:    ctrl,
		source:  source,
		style:   style,
		input:   in,
		editor:  ed,
		history: viewport.New(80, 20),
		console: viewport.New(40, 5),
		spin:    s,
	}

	ctrl.SetEditor(&m.editor)
	ctrl.Transcript().OnAppend(func() { m.follow = true })
	return m
}

// Run starts the program on the terminal and blocks until it exits
func Run(ctx context.Context, ctrl *internal.Controller, source, style string) error {
	m := New(ctx, ctrl, source, style)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.refresh()
			return m, cmd
		}

	case chatResultMsg:
		m.ctrl.Resolve(msg.pending, msg.response, msg.err)
		m.layout()

	case runResultMsg:
		m.ctrl.Runner().Finish(msg.output, msg.err)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		m.refresh()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.updateFocused(msg))
	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit, true

	case "esc":
		if m.focus == focusEditor {
			m.setFocus(focusInput)
			return nil, true
		}
		m.quitting = true
		return tea.Quit, true

	case "tab":
		if m.ctrl.Lab().State() == internal.LabCodeOpen {
			if m.focus == focusInput {
				m.setFocus(focusEditor)
			} else {
				m.setFocus(focusInput)
			}
			return nil, true
		}
		return nil, m.focus == focusInput

	case "ctrl+r":
		return m.runCode(), true

	case "ctrl+w":
		m.closeLab()
		return nil, true

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return cmd, true

	case "enter":
		if m.focus != focusInput {
			return nil, false
		}
		text := m.input.Value()
		m.input.Reset()
		if strings.HasPrefix(strings.TrimSpace(text), "/") {
			return m.command(strings.TrimSpace(text)), true
		}
		chat := m.submit(text)
		if chat == nil {
			return nil, true
		}
		return tea.Batch(chat, m.spin.Tick), true
	}
	return nil, false
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return cmd
}

// submit starts a chat turn and returns the command performing the request
func (m *Model) submit(text string) tea.Cmd {
	p, ok := m.ctrl.Submit(text)
	if !ok {
		return nil
	}
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		response, err := ctrl.Exchange(ctx, p)
		return chatResultMsg{pending: p, response: response, err: err}
	}
}

// runCode shows the running status and returns the command executing the editor contents
func (m *Model) runCode() tea.Cmd {
	runner := m.ctrl.Runner()
	code, ok := runner.Begin()
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		output, err := runner.Execute(ctx, code)
		return runResultMsg{output: output, err: err}
	}
}

func (m *Model) openLab(kind internal.LabKind) {
	m.ctrl.Lab().Open(kind)
	if kind != internal.LabCode && m.focus == focusEditor {
		m.setFocus(focusInput)
	}
	m.layout()
}

func (m *Model) closeLab() {
	m.ctrl.Lab().Close()
	m.setFocus(focusInput)
	m.layout()
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusEditor {
		m.input.Blur()
		m.editor.Focus()
		return
	}
	m.editor.Blur()
	m.input.Focus()
}

// Commands lists the slash commands understood by the input
const Commands = "/visual /code /close /run /clear /export <file> /session /help /quit"

// command handles slash commands typed into the input
func (m *Model) command(line string) tea.Cmd {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "/visual":
		m.openLab(internal.LabVisual)
	case "/code":
		m.openLab(internal.LabCode)
	case "/close":
		m.closeLab()
	case "/run":
		return m.runCode()
	case "/clear":
		if m.ctrl.Awaiting() {
			m.status = "waiting for a reply; clear afterwards"
			break
		}
		m.ctrl.Transcript().Clear()
		m.status = "transcript cleared"
	case "/session":
		m.status = "session " + m.ctrl.SessionID()
	case "/export":
		m.status = m.exportTo(args)
	case "/quit", "/exit":
		m.quitting = true
		return tea.Quit
	case "/help":
		m.status = Commands + " · tab editor · ctrl+r run · ctrl+w close lab"
	default:
		m.status = fmt.Sprintf("unknown command %s (try /help)", name)
	}
	return nil
}

// exportTo writes the transcript snapshot to the file named in args; the
// format follows the file extension
func (m *Model) exportTo(args []string) string {
	if len(args) != 1 {
		return "usage: /export <file.md|.json|.jsonl|.yaml>"
	}
	path := args[0]
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "md"
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		return err.Error()
	}
	if filepath.Ext(path) == "" {
		path += "." + exporter.Extension()
	}

	f, err := os.Create(path)
	if err != nil {
		internal.LogError("Failed to create export file %s: %v", path, err)
		return (&internal.ExportError{Format: format, Path: path, Err: err}).Error()
	}
	defer f.Close()

	if err := exporter.Export(m.ctrl.Snapshot(m.source), f); err != nil {
		internal.LogError("Failed to export transcript: %v", err)
		return (&internal.ExportError{Format: format, Path: path, Err: err}).Error()
	}
	return "exported to " + path
}

// layout sizes the components for the current window and lab state
func (m *Model) layout() {
	if !m.ready {
		return
	}

	bodyHeight := max(m.height-chromeHeight, 3)
	leftWidth := m.width
	if m.ctrl.Lab().Visible() {
		leftWidth = m.width * 55 / 100
		rightWidth := m.width - leftWidth - 2

		editorHeight := max(bodyHeight*2/3-2, 3)
		m.editor.SetWidth(max(rightWidth-2, 10))
		m.editor.SetHeight(editorHeight)
		m.console.Width = max(rightWidth-2, 10)
		m.console.Height = max(bodyHeight-editorHeight-4, 1)
	}

	m.history.Width = leftWidth
	m.history.Height = bodyHeight
	m.input.Width = max(m.width-4, 10)

	if wrap := max(leftWidth-4, minWrap); wrap != m.wrap {
		m.wrap = wrap
		m.ctrl.Transcript().SetFormatter(internal.NewMarkdownFormatter(m.style, wrap))
		m.follow = true
	}
}

// refresh pushes controller state into the viewports
func (m *Model) refresh() {
	m.history.SetContent(m.renderTranscript())
	if m.follow {
		m.history.GotoBottom()
		m.follow = false
	}
	m.console.SetContent(m.ctrl.Runner().Output())
}
