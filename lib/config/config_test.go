// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "techfeed.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}

	if cfg.Form.Variant != VariantTechTeam {
		t.Errorf("expected variant=techteam, got %s", cfg.Form.Variant)
	}

	if len(cfg.Form.Topics) != 5 || cfg.Form.Topics[0] != "Software Engineering" {
		t.Errorf("unexpected default topics: %v", cfg.Form.Topics)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}

	if cfg.ToastDuration() != 3*time.Second {
		t.Errorf("expected toast duration 3s, got %s", cfg.ToastDuration())
	}
	if cfg.MessageDuration() != 5*time.Second {
		t.Errorf("expected message duration 5s, got %s", cfg.MessageDuration())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("expected request timeout 10s, got %s", cfg.RequestTimeout())
	}
}

func TestDefaultTopicsAreNotShared(t *testing.T) {
	cfg := Default()
	cfg.Form.Topics[0] = "Changed"
	if DefaultTopics[0] != "Software Engineering" {
		t.Errorf("modifying a Config changed DefaultTopics: %v", DefaultTopics)
	}
}

func TestLoad_RequiresConfigEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when TECHFEED_CONFIG not set, got nil")
	}

	expectedMsg := "TECHFEED_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithConfigEnvVar(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging
api:
  base_url: https://staging.example.com
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}

	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("expected base_url from file, got %s", cfg.API.BaseURL)
	}

	// Unset fields keep their defaults.
	if cfg.API.Timeout != "10s" {
		t.Errorf("expected default timeout, got %s", cfg.API.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging

api:
  base_url: http://backend:8080
  timeout: 2s

form:
  variant: company
  topics: [Mobile, Security]

display:
  toast_duration: 1500ms
  message_duration: 4s
  no_color: true
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.API.BaseURL != "http://backend:8080" {
		t.Errorf("expected base_url=http://backend:8080, got %s", cfg.API.BaseURL)
	}

	if cfg.RequestTimeout() != 2*time.Second {
		t.Errorf("expected timeout 2s, got %s", cfg.RequestTimeout())
	}

	if cfg.Form.Variant != VariantCompany {
		t.Errorf("expected variant=company, got %s", cfg.Form.Variant)
	}

	if len(cfg.Form.Topics) != 2 || cfg.Form.Topics[1] != "Security" {
		t.Errorf("expected topics [Mobile Security], got %v", cfg.Form.Topics)
	}

	if cfg.ToastDuration() != 1500*time.Millisecond {
		t.Errorf("expected toast 1.5s, got %s", cfg.ToastDuration())
	}

	if !cfg.Display.NoColor {
		t.Error("expected no_color=true")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	configPath := writeConfig(t, "api: [not, a, mapping")
	if _, err := LoadFile(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, `
environment: production

api:
  base_url: http://localhost:5000

display:
  no_color: true

production:
  api:
    base_url: https://techfeed.example.com
    timeout: 30s
  form:
    variant: company
  display:
    toast_duration: 5s

development:
  api:
    base_url: http://dev.invalid
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.API.BaseURL != "https://techfeed.example.com" {
		t.Errorf("expected production base_url, got %s", cfg.API.BaseURL)
	}

	if cfg.API.Timeout != "30s" {
		t.Errorf("expected timeout=30s, got %s", cfg.API.Timeout)
	}

	if cfg.Form.Variant != VariantCompany {
		t.Errorf("expected variant=company, got %s", cfg.Form.Variant)
	}

	if cfg.Display.ToastDuration != "5s" {
		t.Errorf("expected toast_duration=5s, got %s", cfg.Display.ToastDuration)
	}

	// The override's display section has no no_color, so the bool
	// override resets it.
	if cfg.Display.NoColor {
		t.Error("expected no_color=false from production display override")
	}
}

func TestBaseURLExpansion(t *testing.T) {
	configPath := writeConfig(t, `
api:
  base_url: ${TECHFEED_TEST_API:-http://localhost:5000}
`)

	t.Setenv("TECHFEED_TEST_API", "")
	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("expected default expansion, got %s", cfg.API.BaseURL)
	}

	t.Setenv("TECHFEED_TEST_API", "https://from-env.example.com")
	cfg, err = LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.BaseURL != "https://from-env.example.com" {
		t.Errorf("expected env expansion, got %s", cfg.API.BaseURL)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOST}/api",
			vars:     map[string]string{"HOST": "http://backend"},
			expected: "http://backend/api",
		},
		{
			input:    "${TECHFEED_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}:${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first:second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:   "company form without topics",
			modify: func(c *Config) { c.Form.Variant = VariantCompany; c.Form.Topics = nil },
		},
		{
			name:    "invalid environment",
			modify:  func(c *Config) { c.Environment = "invalid" },
			wantErr: "invalid environment",
		},
		{
			name:    "empty base URL",
			modify:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api.base_url is required",
		},
		{
			name:    "relative base URL",
			modify:  func(c *Config) { c.API.BaseURL = "localhost:5000" },
			wantErr: "api.base_url must be",
		},
		{
			name:    "unparseable timeout",
			modify:  func(c *Config) { c.API.Timeout = "soon" },
			wantErr: "api.timeout",
		},
		{
			name:    "negative toast duration",
			modify:  func(c *Config) { c.Display.ToastDuration = "-1s" },
			wantErr: "display.toast_duration must be positive",
		},
		{
			name:    "unknown variant",
			modify:  func(c *Config) { c.Form.Variant = "individual" },
			wantErr: "form.variant",
		},
		{
			name:    "techteam form without topics",
			modify:  func(c *Config) { c.Form.Topics = nil },
			wantErr: "form.topics is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
