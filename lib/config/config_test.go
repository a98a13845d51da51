// Copyright 2026 The Hubctl Authors
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
	path := filepath.Join(t.TempDir(), "hubctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
broker:
  host: broker.local
  port: 8883
  username: mqtt-user
  password: mqtt-pass
hub:
  base_topic: home/nuki
  response_timeout: 5s
web:
  username: admin
  password: hub-pass
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Broker.Host != "broker.local" || cfg.Broker.Port != 8883 {
		t.Errorf("broker = %+v", cfg.Broker)
	}
	if cfg.Broker.Username != "mqtt-user" || cfg.Broker.Password != "mqtt-pass" {
		t.Errorf("broker credentials = %q/%q", cfg.Broker.Username, cfg.Broker.Password)
	}
	if cfg.Hub.BaseTopic != "home/nuki" {
		t.Errorf("base topic = %q", cfg.Hub.BaseTopic)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
	if cfg.Web.Username != "admin" || cfg.Web.Password != "hub-pass" {
		t.Errorf("web credentials = %+v", cfg.Web)
	}
}

func TestLoadFileDefaults(t *testing.T) {
	path := writeConfig(t, "broker:\n  host: broker.local\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Broker.Port != 1883 {
		t.Errorf("default port = %d, want 1883", cfg.Broker.Port)
	}
	if cfg.Broker.ClientID != "hubctl" {
		t.Errorf("default client ID = %q", cfg.Broker.ClientID)
	}
	if cfg.Hub.BaseTopic != "lockhub/hub" {
		t.Errorf("default base topic = %q", cfg.Hub.BaseTopic)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("default timeout = %v", cfg.Timeout())
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without HUBCTL_CONFIG")
	}
}

func TestLoadUsesEnvVar(t *testing.T) {
	path := writeConfig(t, "broker:\n  host: broker.local\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Broker.Host != "broker.local" {
		t.Errorf("host = %q", cfg.Broker.Host)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing host", func(c *Config) { c.Broker.Host = "" }, "broker.host"},
		{"port too low", func(c *Config) { c.Broker.Port = 0 }, "broker.port"},
		{"port too high", func(c *Config) { c.Broker.Port = 70000 }, "broker.port"},
		{"empty base topic", func(c *Config) { c.Hub.BaseTopic = "" }, "base_topic"},
		{"bad timeout", func(c *Config) { c.Hub.ResponseTimeout = "soon" }, "response_timeout"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			cfg.Broker.Host = "broker.local"
			test.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate succeeded, want error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q does not mention %q", err, test.wantErr)
			}
		})
	}
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "broker: [not a map\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile accepted malformed YAML")
	}
}
