package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName      = "labchat"
	storageFileName = "storage.db"
	configFileName  = "config.yaml"
	logFileName     = "labchat.log"
)

var errNoStoragePath = errors.New("no storage path")

// StoragePaths holds the locations of the client's on-disk state
type StoragePaths struct {
	BasePath   string // labchat directory in the user config dir
	StorageDB  string // SQLite database holding ItemTable
	ConfigFile string // optional YAML config
	LogFile    string // log destination while the TUI owns the terminal
}

// DetectStoragePaths returns the default paths under os.UserConfigDir
// (~/.config/labchat on Linux, ~/Library/Application Support/labchat on macOS).
func DetectStoragePaths() (StoragePaths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to get config directory: %w", err)
	}
	return pathsUnder(filepath.Join(configDir, appDirName)), nil
}

// GetStoragePaths resolves storage paths, honouring a custom location. The
// custom path may name the database file itself or a directory to hold it.
func GetStoragePaths(customPath string) (StoragePaths, error) {
	if customPath == "" {
		return DetectStoragePaths()
	}

	absPath, err := filepath.Abs(customPath)
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to resolve storage path: %w", err)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return pathsUnder(absPath), nil
	}

	if filepath.Ext(absPath) == "" {
		// a path that does not exist yet and has no extension is a directory to create
		return pathsUnder(absPath), nil
	}

	paths := pathsUnder(filepath.Dir(absPath))
	paths.StorageDB = absPath
	return paths, nil
}

func pathsUnder(base string) StoragePaths {
	return StoragePaths{
		BasePath:   base,
		StorageDB:  filepath.Join(base, storageFileName),
		ConfigFile: filepath.Join(base, configFileName),
		LogFile:    filepath.Join(base, logFileName),
	}
}

// StorageExists reports whether the storage database has been created
func (sp StoragePaths) StorageExists() bool {
	_, err := os.Stat(sp.StorageDB)
	return err == nil
}
