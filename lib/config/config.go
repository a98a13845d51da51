// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for hubctl.
//
// Configuration is loaded from a single file specified by either the
// HUBCTL_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. This ensures deterministic, auditable
// configuration with no hidden overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "HUBCTL_CONFIG"

// Config is the tool configuration for hubctl.
type Config struct {
	// Broker configures the MQTT broker connection.
	Broker BrokerConfig `yaml:"broker"`

	// Hub configures how the hub is addressed over the bus.
	Hub HubConfig `yaml:"hub"`

	// Web holds the hub web interface's basic-auth credentials, used
	// for artifact downloads. Leave empty when the hub has web
	// authentication disabled.
	Web WebConfig `yaml:"web"`
}

// BrokerConfig configures the MQTT broker connection.
type BrokerConfig struct {
	// Host is the broker's hostname or IP address. Required.
	Host string `yaml:"host"`

	// Port is the broker's TCP port. Default: 1883.
	Port int `yaml:"port"`

	// Username and Password authenticate against the broker. Both may
	// be empty for an open broker.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// ClientID identifies this tool to the broker. Default: hubctl.
	ClientID string `yaml:"client_id"`
}

// HubConfig configures how the hub is addressed over the bus.
type HubConfig struct {
	// BaseTopic is the topic prefix the hub publishes and subscribes
	// under. Default: lockhub/hub.
	BaseTopic string `yaml:"base_topic"`

	// ResponseTimeout is how long to wait for the hub to answer a
	// command or announce its address, as a Go duration string.
	// Default: 10s.
	ResponseTimeout string `yaml:"response_timeout"`
}

// WebConfig holds the hub web interface's basic-auth credentials.
type WebConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the default configuration. The defaults exist to
// give every optional field a sensible value; the config file is still
// required, since only it can name the broker.
func Default() *Config {
	return &Config{
		Broker: BrokerConfig{
			Port:     1883,
			ClientID: "hubctl",
		},
		Hub: HubConfig{
			BaseTopic:       "lockhub/hub",
			ResponseTimeout: "10s",
		},
	}
}

// Load loads configuration from the file named by HUBCTL_CONFIG.
//
// This is the only way to load configuration without an explicit path.
// If HUBCTL_CONFIG is not set, Load fails rather than searching for a
// file.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your hubctl.yaml config file, or use --config", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. The file is
// the single source of truth; environment variables do not override
// its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Broker.Host == "" {
		errs = append(errs, fmt.Errorf("broker.host is required"))
	}
	if c.Broker.Port < 1 || c.Broker.Port > 65535 {
		errs = append(errs, fmt.Errorf("broker.port %d is out of range", c.Broker.Port))
	}
	if c.Hub.BaseTopic == "" {
		errs = append(errs, fmt.Errorf("hub.base_topic is required"))
	}
	if _, err := time.ParseDuration(c.Hub.ResponseTimeout); err != nil {
		errs = append(errs, fmt.Errorf("hub.response_timeout: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Timeout returns the parsed response timeout. Call Validate first;
// an unparseable value falls back to the default here.
func (c *Config) Timeout() time.Duration {
	timeout, err := time.ParseDuration(c.Hub.ResponseTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return timeout
}
