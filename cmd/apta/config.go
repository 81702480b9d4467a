package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geange/apta"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by all commands. Values come from the config file first,
// then from explicitly set flags.
type Config struct {
	LogLevel     string `yaml:"log_level" json:"log_level"`
	Strict       bool   `yaml:"strict" json:"strict"`
	Sort         string `yaml:"sort" json:"sort"`
	PositiveOnly bool   `yaml:"positive_only" json:"positive_only"`
	Verbose      bool   `yaml:"verbose" json:"verbose"`
	AppendSink   bool   `yaml:"append_sink" json:"append_sink"`
	TopDown      bool   `yaml:"top_down" json:"top_down"`
	Format       string `yaml:"format" json:"format"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Sort:     "none",
		Format:   "json",
	}
}

// LoadConfig reads a YAML or JSON config file (chosen by extension) over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set on the command line.
func (cfg *Config) applyFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = f.Value.String()
		case "strict":
			cfg.Strict, _ = flags.GetBool(f.Name)
		case "sort":
			cfg.Sort = f.Value.String()
		case "positive-only":
			cfg.PositiveOnly, _ = flags.GetBool(f.Name)
		case "verbose":
			cfg.Verbose, _ = flags.GetBool(f.Name)
		case "append-sink":
			cfg.AppendSink, _ = flags.GetBool(f.Name)
		case "top-down":
			cfg.TopDown, _ = flags.GetBool(f.Name)
		case "format":
			cfg.Format = f.Value.String()
		}
	})
}

// BuildOptions translates the config into builder options.
func (cfg Config) BuildOptions() ([]apta.BuildOption, error) {
	opts := make([]apta.BuildOption, 0)
	if cfg.Strict {
		opts = append(opts, apta.WithStrict())
	}
	if cfg.PositiveOnly {
		opts = append(opts, apta.WithPositiveOnly())
	}
	switch strings.ToLower(cfg.Sort) {
	case "", "none":
	case "length":
		opts = append(opts, apta.WithSort(apta.SORT_LENGTH))
	case "lex", "lexicographic":
		opts = append(opts, apta.WithSort(apta.SORT_LEXICOGRAPHIC))
	default:
		return nil, fmt.Errorf("unknown sort order %q", cfg.Sort)
	}
	return opts, nil
}
