package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mktree/mktree/cmd/mktree/opts"
	"github.com/mktree/mktree/pkg/config"
	"github.com/mktree/mktree/pkg/log"
)

var (
	// Flags
	configFile  string
	rootDir     string
	verbose     bool
	debug       bool
	search      string
	replace     string
	replaceFile bool
	replaceDir  bool
	ignore      []string
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".mktree.yaml", "config file path")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "directory to build the tree under")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit per-entry progress notices")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&search, "search", "", "literal substring to find in entry names")
	cmd.PersistentFlags().StringVar(&replace, "replace", "", "literal replacement text")
	cmd.PersistentFlags().BoolVar(&replaceFile, "replace-files", false, "apply search/replace to file names")
	cmd.PersistentFlags().BoolVar(&replaceDir, "replace-dirs", false, "apply search/replace to directory names")
	cmd.PersistentFlags().StringArrayVar(&ignore, "ignore", nil, "glob pattern for entries to skip (repeatable)")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// newRootOpts builds the shared options from the config file and parsed
// flags. Flags win over file values.
func newRootOpts(ctx context.Context, cmd *cobra.Command) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("search") {
		cfg.Search = search
	}
	if flags.Changed("replace") {
		cfg.Replace = replace
	}
	if flags.Changed("replace-files") {
		cfg.ReplaceFileNames = replaceFile
	}
	if flags.Changed("replace-dirs") {
		cfg.ReplaceFolderNames = replaceDir
	}
	if len(ignore) > 0 {
		cfg.IgnorePatterns = append(cfg.IgnorePatterns, ignore...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	homeDir, _ := os.UserHomeDir()
	workDir, _ := os.Getwd()

	return &opts.RootOpts{
		Config:  cfg,
		Logger:  log.New(cmd.OutOrStdout(), level, cfg.Verbose),
		Root:    rootDir,
		HomeDir: homeDir,
		WorkDir: workDir,
	}, nil
}
