package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/cardbook/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

// isolate points HOME at an empty directory so the user's real config is
// never read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		home := isolate(t)

		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".cardbook", "cards.yaml"), cfg.DataFile)
		assert.Equal(t, 100*time.Millisecond, cfg.SearchDelay)
		assert.Equal(t, 50*time.Millisecond, cfg.IndicatorDelay)
		assert.Equal(t, 64, cfg.CacheSize)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.LogFile)
	})

	t.Run("default config file location", func(t *testing.T) {
		home := isolate(t)
		dir := filepath.Join(home, ".cardbook")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("cache_size: 5\n"), 0644))

		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.CacheSize)
	})

	t.Run("explicit file", func(t *testing.T) {
		isolate(t)
		path := writeConfig(t, `data_file: /tmp/account.yaml
search_delay: 250ms
indicator_delay: 0s
cache_size: 8
log_level: debug
`)
		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/account.yaml", cfg.DataFile)
		assert.Equal(t, 250*time.Millisecond, cfg.SearchDelay)
		assert.Equal(t, time.Duration(0), cfg.IndicatorDelay)
		assert.Equal(t, 8, cfg.CacheSize)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		isolate(t)
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		isolate(t)
		_, err := config.Load(writeConfig(t, "{{{"), nil)
		assert.Error(t, err)
	})

	t.Run("env overrides file", func(t *testing.T) {
		isolate(t)
		t.Setenv("CARDBOOK_CACHE_SIZE", "12")
		t.Setenv("CARDBOOK_SEARCH_DELAY", "1s")

		cfg, err := config.Load(writeConfig(t, "cache_size: 8\n"), nil)
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.CacheSize)
		assert.Equal(t, time.Second, cfg.SearchDelay)
	})

	t.Run("changed flags override env", func(t *testing.T) {
		isolate(t)
		t.Setenv("CARDBOOK_DATA_FILE", "/from/env.yaml")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("data", "", "")
		flags.String("log-file", "", "")
		require.NoError(t, flags.Parse([]string{"--data", "/from/flag.yaml"}))

		cfg, err := config.Load("", flags)
		require.NoError(t, err)
		assert.Equal(t, "/from/flag.yaml", cfg.DataFile)
		assert.Empty(t, cfg.LogFile)
	})

	t.Run("negative cache size rejected", func(t *testing.T) {
		isolate(t)
		_, err := config.Load(writeConfig(t, "cache_size: -1\n"), nil)
		assert.ErrorContains(t, err, "cache_size")
	})
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.DataFile = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.SearchDelay = -time.Second
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.IndicatorDelay = -time.Second
	assert.Error(t, bad.Validate())
}

func TestGalleryOptions(t *testing.T) {
	cfg := config.Config{SearchDelay: time.Second, IndicatorDelay: time.Millisecond, CacheSize: 3}
	opts := cfg.GalleryOptions()
	assert.Equal(t, time.Second, opts.SearchDelay)
	assert.Equal(t, time.Millisecond, opts.IndicatorDelay)
	assert.Equal(t, 3, opts.CacheSize)
}

func TestMarshalConfig(t *testing.T) {
	cfg := config.Config{
		DataFile:       "/data/cards.yaml",
		SearchDelay:    100 * time.Millisecond,
		IndicatorDelay: 50 * time.Millisecond,
		CacheSize:      64,
		LogLevel:       "info",
	}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "/data/cards.yaml", raw["data_file"])
	assert.Equal(t, "100ms", raw["search_delay"])
	assert.Equal(t, 64, raw["cache_size"])
	assert.NotContains(t, raw, "log_file")
}
