package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/cardbook/internal/config"
	"github.com/ruminaider/cardbook/internal/filter"
	"github.com/ruminaider/cardbook/internal/gallery"
	"github.com/ruminaider/cardbook/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	cfgPath string
	// closeLog is set by setupEnv and run after the command finishes.
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:           "cardbook",
	Short:         "Browse and filter your card collection",
	Long:          "cardbook shows the cards of a collectible-card game account grouped by set, with name search, bonus type and passive/active filters.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// TTY guard: fall back to list when stdin is not a terminal
		// (piping, CI, scripts, etc.)
		if !term.IsTerminal(os.Stdin.Fd()) {
			return listCmd.RunE(cmd, args)
		}
		return galleryCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cardbook %s\n", version)
	},
}

// env is what every data command needs once flags are parsed.
type env struct {
	cfg      config.Config
	taxonomy filter.Taxonomy
	logger   *slog.Logger
}

// setupEnv resolves the configuration, opens the log and loads the bonus
// taxonomy.
func setupEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	closeLog = closer

	tax, err := filter.LoadTaxonomy(cfg.BonusesFile)
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		slog.String("data_file", cfg.DataFile),
		slog.String("bonuses_file", cfg.BonusesFile),
		slog.Duration("search_delay", cfg.SearchDelay))
	return &env{cfg: cfg, taxonomy: tax, logger: logger}, nil
}

// galleryOptions returns the pipeline options with the env logger attached.
func (e *env) galleryOptions() gallery.Options {
	opts := e.cfg.GalleryOptions()
	opts.Logger = e.logger
	return opts
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ~/.cardbook/config.yaml)")
	pf.String("data", "", "card data file (default ~/.cardbook/cards.yaml)")
	pf.String("bonuses", "", "bonus taxonomy file overriding the built-in tables")
	pf.String("log-file", "", "write logs to this file")
	pf.String("log-level", "", "log level: debug, info, warn or error")

	// The root command falls back to list, so it accepts the same filters.
	addListFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(bonusesCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
