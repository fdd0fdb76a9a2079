// Package config loads the engine's TOML configuration. Configuration only
// gates which rules run and at what severity; the rules themselves never
// read it.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"reshape/internal/diag"
)

// DefaultFileName is the manifest looked up next to the processed trees.
const DefaultFileName = "reshape.toml"

// RuleConfig is one [rules.<name>] section.
type RuleConfig struct {
	Enabled  *bool  `toml:"enabled"`
	Severity string `toml:"severity"`
}

// Config is the full manifest.
type Config struct {
	Rules map[string]RuleConfig `toml:"rules"`
}

// Default returns the configuration used when no manifest exists: every
// registered rule enabled at warning severity.
func Default() *Config {
	return &Config{Rules: map[string]RuleConfig{}}
}

// Load parses a manifest file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Rules == nil {
		cfg.Rules = map[string]RuleConfig{}
	}
	for name, rc := range cfg.Rules {
		if rc.Severity == "" {
			continue
		}
		if _, err := diag.ParseSeverity(rc.Severity); err != nil {
			return nil, fmt.Errorf("%s: [rules.%s]: %w", path, name, err)
		}
	}
	return &cfg, nil
}

// RuleEnabled reports whether a rule should run. Rules are enabled unless
// the manifest disables them.
func (c *Config) RuleEnabled(name string) bool {
	rc, ok := c.Rules[name]
	if !ok || rc.Enabled == nil {
		return true
	}
	return *rc.Enabled
}

// RuleSeverity returns the configured severity for a rule, defaulting to
// warning. Load validates severity strings, so this never fails on a loaded
// config.
func (c *Config) RuleSeverity(name string) diag.Severity {
	rc, ok := c.Rules[name]
	if !ok || rc.Severity == "" {
		return diag.SevWarning
	}
	sev, err := diag.ParseSeverity(rc.Severity)
	if err != nil {
		return diag.SevWarning
	}
	return sev
}
