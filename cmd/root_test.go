package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs rootCmd with args against an isolated storage directory and
// returns what the command wrote to stdout
func execute(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LABCHAT_SERVER", "")
	t.Setenv("LABCHAT_STORAGE", "")
	t.Setenv("LABCHAT_STYLE", "")
	t.Setenv("LABCHAT_LOG_LEVEL", "")

	dir := t.TempDir()
	full := append([]string{}, args...)
	full = append(full,
		"--storage", dir,
		"--config", filepath.Join(dir, "missing.yaml"),
		"--server", server,
	)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(full)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(&bytes.Buffer{})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"chat", "send", "run", "extract", "session", "healthcheck"}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("%s command not found in root command", name)
		}
	}
}

func TestLoadConfig_FlagOverridesDefault(t *testing.T) {
	if _, err := execute(t, "http://from-flag:2", "session", "--clear=false"); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if cfg.Server != "http://from-flag:2" {
		t.Errorf("cfg.Server = %q, want flag value", cfg.Server)
	}
}

func TestLoadConfig_InvalidServer(t *testing.T) {
	_, err := execute(t, "", "session", "--clear=false")
	if err == nil {
		t.Error("expected error for empty server")
	}
}

func TestChatHelpListsCommands(t *testing.T) {
	for _, name := range []string{"/visual", "/code", "/close", "/run", "/clear", "/export", "/session", "/help", "/quit"} {
		if !strings.Contains(chatCmd.Long, name) {
			t.Errorf("chat help does not mention %s", name)
		}
	}
}
