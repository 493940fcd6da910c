package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/labchat/internal"
	"github.com/iksnae/labchat/internal/export"
	"github.com/spf13/cobra"
)

var (
	sendFormat string
	sendRun    bool
)

var (
	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	labHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <message...>",
	Short: "Send one message and print the reply",
	Long: `Send one message in the current session and print the resulting
transcript and lab state. Use "-" to read the message from stdin.

With --format the transcript is printed as an export (md, json, jsonl, yaml)
instead. With --run a code block in the reply is executed as well.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if text == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read message from stdin: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("message is empty")
		}

		var exporter export.Exporter
		if sendFormat != "" {
			var err error
			if exporter, err = export.NewExporter(sendFormat); err != nil {
				return err
			}
		}

		store, _, sessionID := openSession()
		defer store.Close()

		var formatter internal.Formatter
		if exporter == nil {
			formatter = internal.NewMarkdownFormatter(cfg.Style, internal.TerminalWidth(cfg.WordWrap))
		}

		client := cfg.NewClient()
		ctrl := internal.NewController(sessionID, client, client, internal.NewBuffer(""), formatter)
		ctx := cmd.Context()

		sendErr := internal.ShowProgress(ctx, "Waiting for the assistant...", func() error {
			return ctrl.SendMessage(ctx, text)
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !sendRun && ctrl.Lab().CodeShown() && exporter == nil {
			defer internal.PrintInfo("The reply contains code; add --run to execute it")
		}

		if sendRun && sendErr == nil && ctrl.Lab().CodeShown() {
			runErr := internal.ShowProgress(ctx, "Running code...", func() error {
				return ctrl.RunCode(ctx)
			})
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if runErr != nil {
				internal.LogDebug("Code run failed: %v", runErr)
			}
		}

		out := cmd.OutOrStdout()
		if exporter != nil {
			if err := exporter.Export(ctrl.Snapshot(client.BaseURL()), out); err != nil {
				return &internal.ExportError{Format: sendFormat, Err: err}
			}
		} else {
			for _, turn := range ctrl.Transcript().Turns() {
				displayTurn(out, turn)
			}
			displayLab(out, ctrl)
		}

		if sendErr != nil {
			return fmt.Errorf("chat request failed: %w", sendErr)
		}
		return nil
	},
}

func displayTurn(w io.Writer, turn internal.Turn) {
	header := assistantMessageStyle.Render("🤖 Assistant")
	if turn.Role == internal.RoleUser {
		header = userMessageStyle.Render("👤 You")
	}
	fmt.Fprintln(w, header)

	content := strings.TrimSpace(turn.Rendered)
	switch {
	case content == "":
		fmt.Fprintln(w, messageContentStyle.Foreground(lipgloss.Color("240")).Render("(empty message)"))
	case turn.Rendered == turn.Content:
		fmt.Fprintln(w, messageContentStyle.Render(wrapText(content, cfg.WordWrap)))
	default:
		// already wrapped and styled by the formatter
		fmt.Fprintln(w, turn.Rendered)
		fmt.Fprintln(w)
	}
}

func displayLab(w io.Writer, ctrl *internal.Controller) {
	lab := ctrl.Lab()
	if !lab.Visible() {
		return
	}

	fmt.Fprintln(w, labHeaderStyle.Render(fmt.Sprintf("🧪 Lab (%s)", lab.State())))
	if lab.VisualShown() {
		fmt.Fprintln(w, messageContentStyle.Render(lab.Visual()))
	}
	if lab.CodeShown() {
		if editor := ctrl.Editor(); editor != nil {
			fmt.Fprintln(w, messageContentStyle.Render(editor.Value()))
		}
		if output := ctrl.Runner().Output(); output != "" {
			fmt.Fprintln(w, mutedStyle.Render("Output:"))
			fmt.Fprintln(w, messageContentStyle.Render(output))
		}
	}
}

// wrapText wraps lines longer than width at word boundaries
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var wrapped []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= width {
			wrapped = append(wrapped, line)
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case len(current)+len(word)+1 > width:
				wrapped = append(wrapped, current)
				current = word
			default:
				current += " " + word
			}
		}
		if current != "" {
			wrapped = append(wrapped, current)
		}
	}
	return strings.Join(wrapped, "\n")
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sendFormat, "format", "f", "", "Print the transcript as an export: md, json, jsonl, yaml")
	sendCmd.Flags().BoolVar(&sendRun, "run", false, "Execute a code block from the reply")
}
