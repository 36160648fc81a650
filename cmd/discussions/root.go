// ABOUTME: Root cobra command and shared client setup for the CLI
// ABOUTME: Loads configuration and builds the library client used by subcommands

package main

import (
	"fmt"

	"discussions-app-api/core/domain"
	"discussions-app-api/core/interfaces"
	discussions "discussions-app-api/discussions-lib"
	"discussions-app-api/infrastructure/logger/structured"
	"discussions-app-api/pkg/config"
	"discussions-app-api/pkg/utils/format"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "discussions",
	Short: "Find Hacker News and Reddit discussions about a page",
	Long: `Find Hacker News and Reddit discussions about a web page.

Hacker News is searched for stories linking to the page's host and path.
Reddit is searched by URL, then title, then domain, stopping at the first
search that returns anything.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: quiet)")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(popupCmd)
}

// loadConfig reads defaults, the config file and environment overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if err == nil {
			err = config.ApplyEnvOverrides(cfg)
		}
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	format.SetDateLocale(cfg.Display.DateLayout, loc)

	return cfg, nil
}

// newLogger logs to stderr only when --log-level is set
func newLogger(cfg *config.Config) interfaces.Logger {
	if logLevel == "" {
		return interfaces.NopLogger{}
	}
	return structured.New(structured.Options{Level: logLevel, File: cfg.Log.File})
}

// newClient builds the library client from the loaded configuration
func newClient(cfg *config.Config, logger interfaces.Logger, extra ...discussions.Option) (*discussions.Client, error) {
	opts := []discussions.Option{
		discussions.WithLogger(logger),
		discussions.WithAppConfig(cfg),
	}
	return discussions.NewClient(append(opts, extra...)...)
}

// parseModes reads the --modes flag; "none" disables every mode
func parseModes(value string) (domain.SearchModeSet, error) {
	if value == "none" {
		return domain.SearchModeSet{}, nil
	}
	modes, err := domain.ParseSearchModes(value)
	if err != nil {
		return domain.SearchModeSet{}, err
	}
	if !modes.Any() {
		return domain.DefaultSearchModes(), nil
	}
	return modes, nil
}
