// Package config loads audit settings from an optional YAML file and from
// PREFLIGHT_* environment variables. Precedence is defaults, then file,
// then environment; explicitly set command-line flags override all of it
// at the command layer.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up beneath the audit root when no
// --config flag is given.
const DefaultFile = ".preflight.yml"

// Report formats accepted by the audit command.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatGHA      = "gha"
)

type Config struct {
	Format  string `yaml:"format" env:"PREFLIGHT_FORMAT"`
	Strict  bool   `yaml:"strict" env:"PREFLIGHT_STRICT"`
	Rules   string `yaml:"rules" env:"PREFLIGHT_RULES"`
	Verbose bool   `yaml:"verbose" env:"PREFLIGHT_VERBOSE"`
}

func Default() Config {
	return Config{Format: FormatText}
}

// Load reads the config file at path and applies environment overrides.
// A missing file is fine unless required is set (the user named the file
// explicitly, so silently ignoring it would hide a typo).
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		log.Debugf("config loaded from %s", path)
	case os.IsNotExist(err) && !required:
		log.Debugf("config %s not found, using defaults", path)
	default:
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate rejects settings no command can act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON, FormatMarkdown, FormatGHA:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text, json, markdown or gha)", c.Format)
	}
}
