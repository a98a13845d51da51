// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/lockhub-tools/hubctl/bus"
	"github.com/lockhub-tools/hubctl/correlate"
	"github.com/lockhub-tools/hubctl/lib/config"
)

// Session bundles the loaded configuration with a live broker
// connection and a correlator over it. Commands that talk to the hub
// open one Session, use it for the duration of the command, and Close
// it on the way out.
type Session struct {
	Config   *config.Config
	Conn     *bus.MQTTConn
	Exchange *correlate.Exchange
	Logger   *slog.Logger
}

// LoadConfig loads the tool configuration from the --config path, or
// from HUBCTL_CONFIG when the path is empty, and validates it.
func LoadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Connect loads configuration, dials the broker, and builds a
// correlator over the connection.
func Connect(configPath string, logger *slog.Logger) (*Session, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	conn, err := bus.Dial(bus.Config{
		Broker:   cfg.Broker.Host,
		Port:     cfg.Broker.Port,
		Username: cfg.Broker.Username,
		Password: cfg.Broker.Password,
		ClientID: cfg.Broker.ClientID,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	exchange, err := correlate.New(correlate.Options{
		Conn:      conn,
		BaseTopic: cfg.Hub.BaseTopic,
		Timeout:   cfg.Timeout(),
		Logger:    logger,
	})
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Session{
		Config:   cfg,
		Conn:     conn,
		Exchange: exchange,
		Logger:   logger,
	}, nil
}

// Close releases the broker connection.
func (s *Session) Close() {
	s.Conn.Close()
}
