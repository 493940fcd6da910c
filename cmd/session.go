package cmd

import (
	"fmt"

	"github.com/iksnae/labchat/internal"
	"github.com/spf13/cobra"
)

var clearSession bool

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Print or reset the session identifier",
	Long: `Print the session identifier sent with every chat message. It is
created on first use and kept in client storage.

With --clear the stored identifier is removed; the next chat starts a new
session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, paths, sessionID := openSession()
		defer store.Close()

		if !clearSession {
			fmt.Fprintln(cmd.OutOrStdout(), sessionID)
			internal.LogDebug("Storage: %s", paths.StorageDB)
			return nil
		}

		if err := internal.ClearSessionID(store); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		internal.PrintSuccess(fmt.Sprintf("Cleared session %s", sessionID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().BoolVar(&clearSession, "clear", false, "Remove the stored session identifier")
}
