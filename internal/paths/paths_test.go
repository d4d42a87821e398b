package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/cardbook/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestDataDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.DataDir(), home))
	assert.True(t, strings.HasSuffix(paths.DataDir(), ".cardbook"))
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, paths.DataDir(), filepath.Dir(paths.ConfigFile()))
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestDataFile(t *testing.T) {
	assert.Equal(t, paths.DataDir(), filepath.Dir(paths.DataFile()))
	assert.True(t, strings.HasSuffix(paths.DataFile(), "cards.yaml"))
}
