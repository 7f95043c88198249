// Package config loads linkmigrate configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/linkmigrate/internal/linkpolicy"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "linkmigrate.yaml"

// Config represents the application configuration.
type Config struct {
	Correction CorrectionConfig `yaml:"correction"`
	Links      LinksConfig      `yaml:"links"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CorrectionConfig selects and configures the correction backend.
type CorrectionConfig struct {
	Backend BackendType       `yaml:"backend"`
	Timeout string            `yaml:"timeout"`
	Root    string            `yaml:"root,omitempty"` // Working root for relative paths; defaults to cwd
	Command CommandConfig     `yaml:"command"`
	NATS    NATSConfig        `yaml:"nats"`
	Mapping map[string]string `yaml:"mapping,omitempty"` // old target -> new target
}

// CommandConfig describes an external program that reads the prompt on stdin.
type CommandConfig struct {
	Program string   `yaml:"program"`
	Model   string   `yaml:"model,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// NATSConfig describes a NATS request/reply correction service.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
	Name    string `yaml:"name,omitempty"`
}

// LinksConfig overrides the link skip rules.
type LinksConfig struct {
	SchemePrefixes []string `yaml:"scheme_prefixes,omitempty"`
	AnchorPrefixes []string `yaml:"anchor_prefixes,omitempty"`
	EmailHeuristic *bool    `yaml:"email_heuristic,omitempty"`
	SkipCode       bool     `yaml:"skip_code,omitempty"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"` // Prometheus textfile collector output path
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, expands and validates the configuration at path.
// Environment variables from .env/.env.local are loaded first.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	// #nosec G304 -- path is the user-supplied config location
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if envErr := loadEnvFile(); envErr != nil {
			return nil, false, envErr
		}
		return Default(), false, nil
	}
	cfg, err := Load(path)
	return cfg, true, err
}

// Parse decodes YAML content after ${VAR} expansion, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Correction.Backend == "" {
		c.Correction.Backend = BackendCommand
	}
	c.Correction.Backend = NormalizeBackend(string(c.Correction.Backend))
	if c.Correction.Timeout == "" {
		c.Correction.Timeout = "30s"
	}
	if c.Correction.Command.Program == "" {
		c.Correction.Command.Program = "gemini"
		if c.Correction.Command.Model == "" {
			c.Correction.Command.Model = "gemini-2.5-flash"
		}
	}
	if c.Correction.NATS.URL == "" {
		c.Correction.NATS.URL = "nats://127.0.0.1:4222"
	}
	if c.Correction.NATS.Subject == "" {
		c.Correction.NATS.Subject = "linkmigrate.correct"
	}
	if c.Correction.NATS.Name == "" {
		c.Correction.NATS.Name = "linkmigrate"
	}

	defaults := linkpolicy.DefaultRules()
	if len(c.Links.SchemePrefixes) == 0 {
		c.Links.SchemePrefixes = defaults.SchemePrefixes
	}
	if len(c.Links.AnchorPrefixes) == 0 {
		c.Links.AnchorPrefixes = defaults.AnchorPrefixes
	}
	if c.Links.EmailHeuristic == nil {
		enabled := defaults.EmailHeuristic
		c.Links.EmailHeuristic = &enabled
	}

	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
	}
}

// TimeoutDuration parses Correction.Timeout. Validate guarantees it parses.
func (c *CorrectionConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Rules builds the link classification rules.
func (l LinksConfig) Rules() linkpolicy.Rules {
	rules := linkpolicy.DefaultRules()
	if len(l.SchemePrefixes) > 0 {
		rules.SchemePrefixes = append([]string(nil), l.SchemePrefixes...)
	}
	if len(l.AnchorPrefixes) > 0 {
		rules.AnchorPrefixes = append([]string(nil), l.AnchorPrefixes...)
	}
	if l.EmailHeuristic != nil {
		rules.EmailHeuristic = *l.EmailHeuristic
	}
	return rules
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	example := Default()
	example.Correction.Mapping = map[string]string{
		"old/spec.md": "docs/specs/spec.md",
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
