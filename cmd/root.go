package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentic-research/radar/internal/config"
	"github.com/agentic-research/radar/internal/logger"
	"github.com/agentic-research/radar/internal/radar"
)

var (
	configPath string
	logLevel   string
	pretty     bool
	domainName string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "radar.hcl", "Path to radar configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Human-readable log output")
	rootCmd.PersistentFlags().StringVarP(&domainName, "domain", "d", "", "Domain to load (default: selected_domain)")
}

var rootCmd = &cobra.Command{
	Use:           "radar",
	Short:         "Data radar: filter and explore a data catalogue by purpose, retention and storage",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file. A missing default file falls back
// to built-in defaults; a missing explicit file is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, billy.Filesystem, error) {
	dir, name := filepath.Split(configPath)
	if dir == "" {
		dir = "."
	}
	fs := osfs.New(dir)

	if _, err := fs.Stat(name); err != nil {
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.Default(), fs, nil
		}
		return nil, nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	cfg, err := config.Load(fs, name)
	if err != nil {
		return nil, nil, err
	}
	return cfg, fs, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	lc := logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty || pretty,
		Output: cmd.ErrOrStderr(),
	}
	if logLevel != "" {
		lc.Level = logLevel
	}
	return logger.New(lc)
}

// openEngine loads configuration and the selected domain.
func openEngine(cmd *cobra.Command) (*radar.Engine, error) {
	cfg, fs, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s, err := radar.NewSwitcher(fs, cfg, newLogger(cmd, cfg))
	if err != nil {
		return nil, err
	}
	if domainName != "" {
		if err := s.Select(domainName); err != nil {
			return nil, err
		}
	}
	return s.Current(), nil
}
