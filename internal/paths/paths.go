package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// DataDir returns ~/.cardbook.
func DataDir() string {
	return filepath.Join(home(), ".cardbook")
}

// ConfigFile returns ~/.cardbook/config.yaml.
func ConfigFile() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// DataFile returns ~/.cardbook/cards.yaml.
func DataFile() string {
	return filepath.Join(DataDir(), "cards.yaml")
}
