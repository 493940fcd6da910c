package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iksnae/labchat/internal"
)

var (
	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true)

	literalStyle = lipgloss.NewStyle().
			Padding(0, 2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	labStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	labTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	consoleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("235"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Starting..."
	}

	body := m.history.View()
	if m.ctrl.Lab().Visible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderLab())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.input.View(),
		m.renderStatusBar(),
	)
}

func (m *Model) renderTranscript() string {
	turns := m.ctrl.Transcript().Turns()
	if len(turns) == 0 {
		return placeholderStyle.Render("  No messages yet. Say hello.")
	}

	var b strings.Builder
	for _, turn := range turns {
		switch turn.Role {
		case internal.RoleUser:
			b.WriteString(userLabelStyle.Render("👤 You"))
		default:
			b.WriteString(assistantLabelStyle.Render("🤖 Assistant"))
		}
		b.WriteString("\n")

		switch {
		case turn.Transient && turn.Content == internal.ThinkingText:
			b.WriteString("  " + m.spin.View() + " " + placeholderStyle.Render(turn.Content))
		case turn.Transient:
			b.WriteString(literalStyle.Render(turn.Rendered))
		case turn.Rendered == turn.Content:
			// no formatter: literal text
			b.WriteString(literalStyle.Width(max(m.wrap, minWrap)).Render(turn.Rendered))
		default:
			b.WriteString(turn.Rendered)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m *Model) renderLab() string {
	lab := m.ctrl.Lab()
	width := max(m.width-m.history.Width-4, 10)
	height := max(m.height-chromeHeight-2, 3)

	var content string
	switch {
	case lab.VisualShown():
		content = lipgloss.JoinVertical(lipgloss.Left,
			labTitleStyle.Render("🎨 Visual"),
			"",
			m.renderVisual(width),
		)
	case lab.CodeShown():
		hint := "tab to edit · ctrl+r run · ctrl+w close"
		if m.focus == focusEditor {
			hint = "esc to leave editor · ctrl+r run"
		}
		content = lipgloss.JoinVertical(lipgloss.Left,
			labTitleStyle.Render("🧪 Code Lab")+" "+placeholderStyle.Render(hint),
			m.editor.View(),
			labTitleStyle.Render("Output"),
			consoleStyle.Width(m.console.Width).Render(m.console.View()),
		)
	}

	return labStyle.Width(width).Height(height).Render(content)
}

// renderVisual shows the visual surface. Terminals cannot embed the image,
// so the reference is rendered and the URL is printed to open elsewhere.
func (m *Model) renderVisual(width int) string {
	ref := m.ctrl.Lab().Visual()
	if ref == "" {
		return placeholderStyle.Render("Nothing generated yet.")
	}

	url := ref
	if i := strings.Index(ref, "]("); i != -1 && strings.HasSuffix(ref, ")") {
		url = ref[i+2 : len(ref)-1]
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		placeholderStyle.Render("Generated image:"),
		urlStyle.Width(width-2).Render(url),
	)
}

func (m *Model) renderStatusBar() string {
	state := "idle"
	if m.ctrl.Awaiting() {
		state = "waiting"
	}

	sid := m.ctrl.SessionID()
	if len(sid) > 8 {
		sid = sid[:8]
	}

	parts := []string{"session " + sid, state, "lab " + m.ctrl.Lab().State().String()}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusBarStyle.Width(m.width).Render(strings.Join(parts, " • "))
}
