package commands

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/cardbook/internal/config"
)

//go:embed starter.yaml
var starterData []byte

// InitResult lists the files Init wrote and the ones it left alone.
type InitResult struct {
	Written []string
	Skipped []string // already present
}

// Init creates dataDir with a config file and a starter card data file.
// Existing files are kept unless force is set.
func Init(dataDir string, force bool) (*InitResult, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dataDir, err)
	}

	dataFile := filepath.Join(dataDir, "cards.yaml")
	cfg := config.Default()
	cfg.DataFile = dataFile
	cfgData, err := config.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}

	files := []struct {
		path string
		data []byte
	}{
		{filepath.Join(dataDir, "config.yaml"), cfgData},
		{dataFile, starterData},
	}

	result := &InitResult{}
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil && !force {
			result.Skipped = append(result.Skipped, f.path)
			continue
		}
		if err := os.WriteFile(f.path, f.data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.path, err)
		}
		result.Written = append(result.Written, f.path)
	}
	return result, nil
}
