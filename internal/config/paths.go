package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the blockseq config directory.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "blockseq")
	}
	return filepath.Join(homeDir(), ".config", "blockseq")
}

// DataDir returns the blockseq data directory.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "blockseq")
	}
	return filepath.Join(homeDir(), ".local", "share", "blockseq")
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}
