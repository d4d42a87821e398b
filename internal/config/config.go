package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ruminaider/cardbook/internal/gallery"
	"github.com/ruminaider/cardbook/internal/paths"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Config is the effective cardbook configuration.
type Config struct {
	DataFile       string        `yaml:"data_file"`
	BonusesFile    string        `yaml:"bonuses_file,omitempty"`
	SearchDelay    time.Duration `yaml:"search_delay"`
	IndicatorDelay time.Duration `yaml:"indicator_delay"`
	CacheSize      int           `yaml:"cache_size"`
	LogFile        string        `yaml:"log_file,omitempty"`
	LogLevel       string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := gallery.DefaultOptions()
	return Config{
		DataFile:       paths.DataFile(),
		SearchDelay:    opts.SearchDelay,
		IndicatorDelay: opts.IndicatorDelay,
		CacheSize:      opts.CacheSize,
		LogLevel:       "info",
	}
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"data_file":    "data",
	"bonuses_file": "bonuses",
	"log_file":     "log-file",
	"log_level":    "log-level",
}

// Load resolves the configuration from defaults, the config file,
// CARDBOOK_* environment variables and finally any changed flags. An empty
// path means ~/.cardbook/config.yaml, which may be absent; an explicit path
// must exist.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CARDBOOK")
	v.AutomaticEnv()

	v.SetDefault("data_file", def.DataFile)
	v.SetDefault("bonuses_file", def.BonusesFile)
	v.SetDefault("search_delay", def.SearchDelay)
	v.SetDefault("indicator_delay", def.IndicatorDelay)
	v.SetDefault("cache_size", def.CacheSize)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	explicit := path != ""
	if !explicit {
		path = paths.ConfigFile()
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		DataFile:       v.GetString("data_file"),
		BonusesFile:    v.GetString("bonuses_file"),
		SearchDelay:    v.GetDuration("search_delay"),
		IndicatorDelay: v.GetDuration("indicator_delay"),
		CacheSize:      v.GetInt("cache_size"),
		LogFile:        v.GetString("log_file"),
		LogLevel:       v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the gallery cannot run with.
func (c Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file must be set")
	}
	if c.SearchDelay < 0 {
		return fmt.Errorf("search_delay must not be negative, got %s", c.SearchDelay)
	}
	if c.IndicatorDelay < 0 {
		return fmt.Errorf("indicator_delay must not be negative, got %s", c.IndicatorDelay)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// GalleryOptions returns the pipeline options for this configuration.
func (c Config) GalleryOptions() gallery.Options {
	return gallery.Options{
		SearchDelay:    c.SearchDelay,
		IndicatorDelay: c.IndicatorDelay,
		CacheSize:      c.CacheSize,
	}
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
