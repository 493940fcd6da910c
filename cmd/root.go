package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/iksnae/labchat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	serverURL   string
	configPath  string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"

	// cfg is loaded before any subcommand runs
	cfg = internal.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labchat",
	Short: "Chat with a lab assistant that generates visuals and runnable code",
	Long: `A terminal client for a conversational assistant backend.

The assistant answers in markdown. Replies that announce a generated image
open the visual lab; replies that contain a fenced code block open the code
lab with the code loaded into an editor, ready to run on the backend.

Features:
  • Interactive chat with a side lab panel (visual or code)
  • Session identity kept across restarts
  • One-shot messages and code runs for scripting
  • Transcript export (Markdown, JSON, JSONL, YAML)

Quick Start:
  labchat chat                           # Open the chat
  labchat send "plot a sine wave"        # Send one message and print the reply
  labchat run script.py                  # Run a file on the backend

Configuration is read from config.yaml in the storage directory, then from
LABCHAT_SERVER, LABCHAT_STORAGE, LABCHAT_STYLE and LABCHAT_LOG_LEVEL, then
from flags.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if !verbose {
			internal.SetLogLevel(cfg.Level())
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// loadConfig layers the config file, environment and flags into cfg
func loadConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			internal.LogDebug("No default config location: %v", err)
		} else {
			path = paths.ConfigFile
		}
	}

	loaded, err := internal.LoadConfig(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("server") {
		loaded.Server = serverURL
	}
	if cmd.Flags().Changed("storage") {
		loaded.Storage = storagePath
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

// openSession opens client storage and returns it with the session identifier.
// The store is always usable; it is memory-backed when the database is not.
func openSession() (internal.ClientStorage, internal.StoragePaths, string) {
	paths, err := internal.GetStoragePaths(cfg.Storage)
	if err != nil {
		internal.LogWarn("Failed to resolve storage paths: %v", err)
	}

	store, err := internal.OpenClientStorage(paths.StorageDB)
	if err != nil {
		internal.PrintWarning(fmt.Sprintf("Session id will not survive restarts: %v", err))
	}
	return store, paths, internal.GetOrCreateSessionID(store)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to database file or storage directory)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", internal.DefaultServer, "Backend base URL")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: config.yaml in the storage directory)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
