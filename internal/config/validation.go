package config

import (
	"fmt"
	"net/url"

	ferrors "git.home.luguber.info/inful/doclinks/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinks/internal/retry"
)

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if c.ContentRoot == "" {
		return ferrors.ConfigError("content_root is required").Build()
	}
	if !c.DefaultLocale.Valid() {
		return ferrors.ConfigError("default_locale is not a supported locale").Build()
	}
	for field, raw := range map[string]string{
		"live_samples_base_url":         c.LiveSamplesBaseURL,
		"interactive_examples_base_url": c.InteractiveExamplesBaseURL,
	} {
		if err := validateBaseURL(raw); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryConfig, fmt.Sprintf("invalid %s", field)).
				WithContext("value", raw).
				UserAction().
				Build()
		}
	}
	if err := checkEnum("logging.level", c.Logging.Level, logLevels); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid logging configuration").UserAction().Build()
	}
	if err := checkEnum("logging.format", c.Logging.Format, logFormats); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid logging configuration").UserAction().Build()
	}
	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		return ferrors.ConfigError("metrics.textfile is required when metrics are enabled").Build()
	}
	if c.BrokenLinks.Enabled {
		if c.BrokenLinks.NATSURL == "" || c.BrokenLinks.Subject == "" || c.BrokenLinks.Stream == "" {
			return ferrors.ConfigError("broken_links requires nats_url, subject and stream when enabled").Build()
		}
	}
	if c.BrokenLinks.RetryBackoff != "" && retry.ParseMode(c.BrokenLinks.RetryBackoff) == "" {
		return ferrors.ConfigError(fmt.Sprintf("invalid broken_links.retry_backoff %q", c.BrokenLinks.RetryBackoff)).UserAction().Build()
	}
	if c.BrokenLinks.MaxRetries < 0 {
		return ferrors.ConfigError("broken_links.max_retries cannot be negative").Build()
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
