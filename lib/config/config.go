// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable read by [Load].
const EnvVar = "TECHFEED_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development against the fixture backend.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for the live subscription service.
	Production Environment = "production"
)

// Form variants.
const (
	// VariantCompany is the company + categories form.
	VariantCompany = "company"
	// VariantTechTeam is the tech teams + topic form.
	VariantTechTeam = "techteam"
)

// DefaultTopics is the topic list of the tech-team form.
var DefaultTopics = []string{
	"Software Engineering",
	"Data Science",
	"Data Analytics",
	"Software Testing",
	"Product Management",
}

// Config is the master configuration for the techfeed client.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// API configures the backend connection.
	API APIConfig `yaml:"api"`

	// Form selects and configures the subscription form.
	Form FormConfig `yaml:"form"`

	// Display configures the terminal surface.
	Display DisplayConfig `yaml:"display"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API     *APIConfig     `yaml:"api,omitempty"`
	Form    *FormConfig    `yaml:"form,omitempty"`
	Display *DisplayConfig `yaml:"display,omitempty"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the backend root, e.g. http://localhost:5000.
	// Supports ${VAR:-default} expansion.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single request.
	// Default: 10s
	Timeout string `yaml:"timeout"`
}

// FormConfig selects and configures the subscription form.
type FormConfig struct {
	// Variant is "company" or "techteam".
	// Default: techteam
	Variant string `yaml:"variant"`

	// Topics is the topic list of the tech-team form.
	Topics []string `yaml:"topics"`
}

// DisplayConfig configures the terminal surface.
type DisplayConfig struct {
	// ToastDuration is how long a toast stays visible.
	// Default: 3s
	ToastDuration string `yaml:"toast_duration"`

	// MessageDuration is how long the company form shows the server's
	// subscribe message.
	// Default: 5s
	MessageDuration string `yaml:"message_duration"`

	// NoColor disables colour output.
	NoColor bool `yaml:"no_color"`
}

// Default returns the default configuration. It is also the complete
// configuration of a command run without a config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL: "http://localhost:5000",
			Timeout: "10s",
		},
		Form: FormConfig{
			Variant: VariantTechTeam,
			Topics:  slices.Clone(DefaultTopics),
		},
		Display: DisplayConfig{
			ToastDuration:   "3s",
			MessageDuration: "5s",
		},
	}
}

// Load loads configuration from the TECHFEED_CONFIG environment
// variable. It fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your techfeed.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path on top of
// [Default], applies the environment section and expands variables.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.Timeout != "" {
			c.API.Timeout = overrides.API.Timeout
		}
	}

	if overrides.Form != nil {
		if overrides.Form.Variant != "" {
			c.Form.Variant = overrides.Form.Variant
		}
		if len(overrides.Form.Topics) > 0 {
			c.Form.Topics = slices.Clone(overrides.Form.Topics)
		}
	}

	if overrides.Display != nil {
		if overrides.Display.ToastDuration != "" {
			c.Display.ToastDuration = overrides.Display.ToastDuration
		}
		if overrides.Display.MessageDuration != "" {
			c.Display.MessageDuration = overrides.Display.MessageDuration
		}
		// NoColor is a bool, so it is always applied from overrides.
		c.Display.NoColor = overrides.Display.NoColor
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// base URL.
func (c *Config) expandVariables() {
	c.API.BaseURL = expandVars(c.API.BaseURL, nil)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if parsed, err := url.Parse(c.API.BaseURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an absolute http or https URL, got %q", c.API.BaseURL))
	}

	if err := validateDuration("api.timeout", c.API.Timeout); err != nil {
		errs = append(errs, err)
	}

	variants := []string{VariantCompany, VariantTechTeam}
	if !slices.Contains(variants, c.Form.Variant) {
		errs = append(errs, fmt.Errorf("form.variant must be one of: %v", variants))
	}
	if c.Form.Variant == VariantTechTeam && len(c.Form.Topics) == 0 {
		errs = append(errs, fmt.Errorf("form.topics is required for the %s form", VariantTechTeam))
	}

	if err := validateDuration("display.toast_duration", c.Display.ToastDuration); err != nil {
		errs = append(errs, err)
	}
	if err := validateDuration("display.message_duration", c.Display.MessageDuration); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeout returns api.timeout as a duration. Call after Validate.
func (c *Config) RequestTimeout() time.Duration {
	return mustDuration(c.API.Timeout)
}

// ToastDuration returns display.toast_duration as a duration.
func (c *Config) ToastDuration() time.Duration {
	return mustDuration(c.Display.ToastDuration)
}

// MessageDuration returns display.message_duration as a duration.
func (c *Config) MessageDuration() time.Duration {
	return mustDuration(c.Display.MessageDuration)
}

func validateDuration(field, value string) error {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if duration <= 0 {
		return fmt.Errorf("%s must be positive, got %s", field, value)
	}
	return nil
}

// mustDuration parses a validated duration. An unparseable value
// yields zero.
func mustDuration(value string) time.Duration {
	duration, _ := time.ParseDuration(value)
	return duration
}
