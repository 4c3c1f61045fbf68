// Package config reads the settings of the tgl tool from an optional YAML
// file and an optional .env file.
//
// Values given on the command line or in the environment take precedence
// over the YAML file, which takes precedence over the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultPath is the configuration file read when none is named.
const DefaultPath = "tgl.yaml"

// Catalog file extensions a catalog may be generated with.
var CatalogExts = []string{"tgl", "egl", "ftl"}

// Config holds the tool configuration.
type Config struct {
	Generate Generate `yaml:"generate"`

	Log struct {
		// Level is a zerolog level name, e.g. "debug".
		Level string `yaml:"level"`
		// Format is "console", "json" or "auto", the latter picking
		// console output on terminals.
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Generate holds the settings of catalog generation.
type Generate struct {
	SourcePath      string   `yaml:"sourcePath"`
	OutputPath      string   `yaml:"outputPath"`
	Extensions      []string `yaml:"extensions"`
	Languages       []string `yaml:"languages"`
	DefaultLanguage string   `yaml:"defaultLanguage"`
	Ext             string   `yaml:"ext"`
	Aliases         []string `yaml:"aliases"`
}

// Defaults returns the built-in generation settings. The output path
// defaults to the working directory.
func Defaults() Generate {
	return Generate{
		OutputPath: ".",
		Extensions: []string{"go"},
		Languages:  []string{"en_US"},
		Ext:        "tgl",
	}
}

// Merge returns g with every unset field taken from base.
func (g Generate) Merge(base Generate) Generate {
	if g.SourcePath == "" {
		g.SourcePath = base.SourcePath
	}
	if g.OutputPath == "" {
		g.OutputPath = base.OutputPath
	}
	if len(g.Extensions) == 0 {
		g.Extensions = base.Extensions
	}
	if len(g.Languages) == 0 {
		g.Languages = base.Languages
	}
	if g.DefaultLanguage == "" {
		g.DefaultLanguage = base.DefaultLanguage
	}
	if g.Ext == "" {
		g.Ext = base.Ext
	}
	if len(g.Aliases) == 0 {
		g.Aliases = base.Aliases
	}
	return g
}

// Validate checks settings that cannot be defaulted.
func (g Generate) Validate() error {
	if g.SourcePath == "" {
		return errors.New("source path is required")
	}
	if !slices.Contains(CatalogExts, g.Ext) {
		return fmt.Errorf("invalid catalog extension %q, must be one of %v", g.Ext, CatalogExts)
	}
	return nil
}

// Load reads the YAML configuration file at path. A missing file yields an
// empty configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().
			Str("path", path).
			Msg("No YAML configuration file found, skipping")
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Msg("Loaded configuration")
	return cfg, nil
}

// LoadEnv adds the variables of the given .env files (".env" when none is
// given) to the environment. Variables already set are kept and missing
// files are ignored.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
	}
	return nil
}
