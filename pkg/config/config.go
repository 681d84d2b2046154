// Package config holds the immutable per-run options and the config file
// loading machinery.
package config

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config file parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the options record for one run. It is constructed once and
// never mutated while the run is in flight.
type Config struct {
	Verbose            bool     `yaml:"verbose,omitempty" hcl:"verbose,optional"`
	Search             string   `yaml:"search,omitempty" hcl:"search,optional"`
	Replace            string   `yaml:"replace,omitempty" hcl:"replace,optional"`
	ReplaceFileNames   bool     `yaml:"replace_file_names,omitempty" hcl:"replace_file_names,optional"`
	ReplaceFolderNames bool     `yaml:"replace_folder_names,omitempty" hcl:"replace_folder_names,optional"`
	IgnorePatterns     []string `yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
}

// 🎯 Load loads the configuration from a file. A missing file is not an
// error: the tool runs fine on a zero-value config.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return &Config{}, nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("path", path).Msg("loaded configuration")
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	for _, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern: %s", pattern)
		}
	}
	if cfg.Replace != "" && cfg.Search == "" {
		return errors.Errorf("replace is set but search is empty")
	}
	return nil
}

// 🔄 SubstituteFileName applies the search/replace pair to a file entry
// name. The replacement is literal and touches only the first occurrence.
func (cfg *Config) SubstituteFileName(name string) string {
	if !cfg.ReplaceFileNames || cfg.Search == "" {
		return name
	}
	return strings.Replace(name, cfg.Search, cfg.Replace, 1)
}

// 🔄 SubstituteFolderName applies the search/replace pair to a directory
// entry name. The replacement is literal and touches only the first
// occurrence.
func (cfg *Config) SubstituteFolderName(name string) string {
	if !cfg.ReplaceFolderNames || cfg.Search == "" {
		return name
	}
	return strings.Replace(name, cfg.Search, cfg.Replace, 1)
}

// 🔍 Ignored reports whether the entry at relPath (relative to the run's
// root) matches any ignore pattern.
func (cfg *Config) Ignored(relPath string) bool {
	for _, pattern := range cfg.IgnorePatterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
