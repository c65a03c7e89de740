// Package config loads the doclinks configuration file.
//
// The configuration is read once, defaulted, validated and then treated as
// immutable. Components receive it through their constructors.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/locale"
)

// EnvDenyWarnings forces strict redirect handling when set to a true value.
const EnvDenyWarnings = "DENY_WARNINGS"

// Config is the top-level configuration.
type Config struct {
	// ContentRoot holds files/<locale>/<slug>/index.md trees.
	ContentRoot    string   `yaml:"content_root"`
	RedirectsFiles []string `yaml:"redirects_files,omitempty"`
	// CatalogFile overlays the built-in localized strings.
	CatalogFile   string        `yaml:"catalog_file,omitempty"`
	DefaultLocale locale.Locale `yaml:"default_locale"`
	// DenyWarnings turns followed redirects into errors.
	DenyWarnings               bool              `yaml:"deny_warnings"`
	LiveSamplesBaseURL         string            `yaml:"live_samples_base_url"`
	InteractiveExamplesBaseURL string            `yaml:"interactive_examples_base_url"`
	Logging                    LoggingConfig     `yaml:"logging"`
	Metrics                    MetricsConfig     `yaml:"metrics"`
	BrokenLinks                BrokenLinksConfig `yaml:"broken_links"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile,omitempty"`
}

// BrokenLinksConfig controls publishing of placeholder events to NATS.
type BrokenLinksConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
	Stream  string `yaml:"stream"`

	// Publish retries. MaxRetries 0 disables retrying.
	RetryBackoff string        `yaml:"retry_backoff,omitempty"` // fixed|linear|exponential
	RetryInitial time.Duration `yaml:"retry_initial,omitempty"`
	RetryMax     time.Duration `yaml:"retry_max,omitempty"`
	MaxRetries   int           `yaml:"max_retries"`
}

// Load reads, expands, defaults and validates the configuration at path.
// ${VAR} references are expanded from the environment after .env files are
// loaded.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load .env file").Build()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
			WithContext("path", path).
			Build()
	}
	return finish(cfg)
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	applyDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ContentRoot == "" {
		cfg.ContentRoot = "./content"
	}
	cfg.DefaultLocale = cfg.DefaultLocale.Or(locale.Default)
	if cfg.LiveSamplesBaseURL == "" {
		cfg.LiveSamplesBaseURL = "https://live.mdnplay.dev"
	}
	if cfg.InteractiveExamplesBaseURL == "" {
		cfg.InteractiveExamplesBaseURL = "https://interactive-examples.mdn.mozilla.net"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = string(LogLevelInfo)
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = string(LogFormatText)
	}
	if cfg.Metrics.Textfile == "" {
		cfg.Metrics.Textfile = "doclinks.prom"
	}
	if cfg.BrokenLinks.NATSURL == "" {
		cfg.BrokenLinks.NATSURL = "nats://127.0.0.1:4222"
	}
	if cfg.BrokenLinks.Subject == "" {
		cfg.BrokenLinks.Subject = "doclinks.broken"
	}
	if cfg.BrokenLinks.Stream == "" {
		cfg.BrokenLinks.Stream = "DOCLINKS"
	}
}

func applyEnv(cfg *Config) error {
	raw, ok := os.LookupEnv(EnvDenyWarnings)
	if !ok || raw == "" {
		return nil
	}
	deny, err := strconv.ParseBool(raw)
	if err != nil {
		return ferrors.ConfigError(fmt.Sprintf("invalid %s value %q", EnvDenyWarnings, raw)).Build()
	}
	if deny {
		cfg.DenyWarnings = true
	}
	return nil
}

// Init writes an example configuration to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).Build()
	}

	example := &Config{
		ContentRoot:    "./content",
		RedirectsFiles: []string{"./content/files/en-us/_redirects.txt"},
		DefaultLocale:  locale.Default,
		BrokenLinks: BrokenLinksConfig{
			NATSURL:      "${NATS_URL}",
			RetryBackoff: "exponential",
			RetryInitial: 200 * time.Millisecond,
			RetryMax:     5 * time.Second,
			MaxRetries:   3,
		},
	}
	applyDefaults(example)

	data, err := yaml.Marshal(example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
