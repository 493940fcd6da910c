package internal

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDetectStoragePaths(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}

	paths, err := DetectStoragePaths()
	if err != nil {
		t.Fatalf("DetectStoragePaths() error = %v", err)
	}

	configDir, _ := os.UserConfigDir()
	expectedBase := filepath.Join(configDir, "labchat")
	if paths.BasePath != expectedBase {
		t.Errorf("BasePath = %v, want %v", paths.BasePath, expectedBase)
	}
	if paths.StorageDB != filepath.Join(expectedBase, "storage.db") {
		t.Errorf("StorageDB = %v", paths.StorageDB)
	}
	if paths.ConfigFile != filepath.Join(expectedBase, "config.yaml") {
		t.Errorf("ConfigFile = %v", paths.ConfigFile)
	}
	if paths.LogFile != filepath.Join(expectedBase, "labchat.log") {
		t.Errorf("LogFile = %v", paths.LogFile)
	}
}

func TestGetStoragePaths(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		custom     string
		wantBase   string
		wantDBPath string
	}{
		{
			name:       "existing directory",
			custom:     dir,
			wantBase:   dir,
			wantDBPath: filepath.Join(dir, "storage.db"),
		},
		{
			name:       "new directory",
			custom:     filepath.Join(dir, "profile"),
			wantBase:   filepath.Join(dir, "profile"),
			wantDBPath: filepath.Join(dir, "profile", "storage.db"),
		},
		{
			name:       "database file",
			custom:     filepath.Join(dir, "other.db"),
			wantBase:   dir,
			wantDBPath: filepath.Join(dir, "other.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := GetStoragePaths(tt.custom)
			if err != nil {
				t.Fatalf("GetStoragePaths() error = %v", err)
			}
			if paths.BasePath != tt.wantBase {
				t.Errorf("BasePath = %v, want %v", paths.BasePath, tt.wantBase)
			}
			if paths.StorageDB != tt.wantDBPath {
				t.Errorf("StorageDB = %v, want %v", paths.StorageDB, tt.wantDBPath)
			}
			if paths.ConfigFile != filepath.Join(tt.wantBase, "config.yaml") {
				t.Errorf("ConfigFile = %v", paths.ConfigFile)
			}
		})
	}
}

func TestStorageExists(t *testing.T) {
	paths := pathsUnder(t.TempDir())
	if paths.StorageExists() {
		t.Fatal("StorageExists() = true before the database is created")
	}

	db, err := OpenDatabase(paths.StorageDB)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	db.Close()

	if !paths.StorageExists() {
		t.Error("StorageExists() = false after the database is created")
	}
}
