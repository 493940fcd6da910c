package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/labchat/internal"
	"github.com/iksnae/labchat/internal/tui"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat",
	Long: `Open the chat in full screen.

Keys:
  enter    send the message, or run a /command
  tab      switch between the input and the code editor
  ctrl+r   run the editor contents
  ctrl+w   close the lab panel
  esc      leave the editor, or quit

Commands:
  ` + tui.Commands,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, paths, sessionID := openSession()
		defer store.Close()

		// the terminal belongs to the TUI; logs go to a file
		if paths.LogFile != "" {
			if err := os.MkdirAll(filepath.Dir(paths.LogFile), 0o755); err == nil {
				if f, err := os.OpenFile(paths.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
					defer f.Close()
					internal.SetLogOutput(f)
					defer internal.SetLogOutput(os.Stderr)
				}
			}
		}
		internal.LogInfo("Starting chat with %s (session %s)", cfg.Server, sessionID)

		client := cfg.NewClient()
		ctrl := internal.NewController(sessionID, client, client, nil, nil)

		if err := tui.Run(cmd.Context(), ctrl, client.BaseURL(), cfg.Style); err != nil {
			return fmt.Errorf("chat exited: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
