package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/labchat/internal"
	"github.com/spf13/cobra"
)

const pingTimeout = 5 * time.Second

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check client storage, session identity and the backend",
	Long: `Check the health of labchat by verifying:
  • Storage path detection
  • Client storage access
  • Session identity
  • Backend reachability

This command is useful for debugging a setup before opening the chat.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("🔍 labchat Health Check"))
		fmt.Fprintln(out)

		// Step 1: Detect storage paths
		fmt.Fprintln(out, infoStyle.Render("Step 1: Detecting storage paths..."))
		paths, err := internal.GetStoragePaths(cfg.Storage)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to detect storage paths:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		fmt.Fprintln(out, successStyle.Render("✅ Storage paths detected"))
		if healthcheckVerbose {
			fmt.Fprintf(out, "   Base path: %s\n", paths.BasePath)
			fmt.Fprintf(out, "   Database: %s\n", paths.StorageDB)
			fmt.Fprintf(out, "   Config: %s\n", paths.ConfigFile)
			fmt.Fprintf(out, "   Log: %s\n", paths.LogFile)
		}
		fmt.Fprintln(out)

		// Step 2: Open client storage
		fmt.Fprintln(out, infoStyle.Render("Step 2: Opening client storage..."))
		existed := paths.StorageExists()
		store, storeErr := internal.OpenClientStorage(paths.StorageDB)
		defer store.Close()
		if storeErr != nil {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Client storage unavailable, using memory:"), storeErr)
		} else {
			fmt.Fprintln(out, successStyle.Render("✅ Client storage ready"))
			if healthcheckVerbose && !existed {
				fmt.Fprintf(out, "   Created: %s\n", paths.StorageDB)
			}
			if sqlite, ok := store.(*internal.SQLiteStorage); ok && healthcheckVerbose {
				if items, err := sqlite.Items(); err == nil {
					fmt.Fprintf(out, "   Items: %d\n", len(items))
				}
			}
		}
		fmt.Fprintln(out)

		// Step 3: Session identity
		fmt.Fprintln(out, infoStyle.Render("Step 3: Checking session identity..."))
		sessionID := internal.GetOrCreateSessionID(store)
		if storeErr != nil {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Session id is not persisted"))
		} else {
			fmt.Fprintln(out, successStyle.Render("✅ Session id available"))
		}
		if healthcheckVerbose {
			fmt.Fprintf(out, "   Session: %s\n", sessionID)
		}
		fmt.Fprintln(out)

		// Step 4: Reach the backend
		fmt.Fprintln(out, infoStyle.Render("Step 4: Contacting the backend..."))
		client := cfg.NewClient()
		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()

		status, pingErr := client.Ping(ctx)
		if pingErr != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Backend unreachable:"), pingErr)
		} else {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Backend answered (%d %s)", status, http.StatusText(status))))
		}
		if healthcheckVerbose {
			fmt.Fprintf(out, "   Server: %s\n", client.BaseURL())
		}
		fmt.Fprintln(out)

		return summarize(out, storeErr, pingErr)
	},
}

func summarize(out io.Writer, storeErr, pingErr error) error {
	fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
	fmt.Fprintln(out)

	switch {
	case pingErr != nil:
		fmt.Fprintln(out, errorStyle.Render("❌ Health check failed"))
		fmt.Fprintln(out, "   • Backend is not reachable")
		fmt.Fprintln(out, "   • Check --server or LABCHAT_SERVER")
		return fmt.Errorf("health check failed: %w", pingErr)
	case storeErr != nil:
		fmt.Fprintln(out, warningStyle.Render("⚠️  Backend reachable but storage unavailable"))
		fmt.Fprintln(out, "   • Chat works")
		fmt.Fprintln(out, "   • A new session starts on every run")
		return nil
	default:
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
		fmt.Fprintln(out, successStyle.Render("   • Storage: Available"))
		fmt.Fprintln(out, successStyle.Render("   • Backend: Reachable"))
		return nil
	}
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckVerbose, "verbose", "v", false, "Show detailed diagnostic information")
}
