// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package bus

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// defaultDialTimeout bounds how long Dial waits for the broker to
// accept the connection before reporting it unreachable.
const defaultDialTimeout = 10 * time.Second

// Config holds the parameters for dialing the broker.
type Config struct {
	// Broker is the broker hostname or IP.
	Broker string
	// Port is the broker TCP port (1883 for plain MQTT).
	Port int
	// Username and Password authenticate the session. Both empty
	// means an anonymous session.
	Username string
	Password string
	// ClientID identifies this session to the broker. If empty, a
	// per-process ID is generated.
	ClientID string
	// DialTimeout bounds connection establishment. Zero means the
	// default of 10 seconds.
	DialTimeout time.Duration
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// MQTTConn is a live broker session backed by the Eclipse Paho client.
// Paho runs the network read loop and handler dispatch on its own
// goroutines; per-topic delivery order is preserved.
type MQTTConn struct {
	client mqtt.Client
	broker string
	logger *slog.Logger

	mu         sync.Mutex
	subscribed map[string]struct{}
	closed     bool
}

// Compile-time interface check.
var _ Conn = (*MQTTConn)(nil)

// Dial connects to the broker and returns a live session. The returned
// error is a *ConnectionError when the broker cannot be reached within
// the dial timeout.
func Dial(config Config) (*MQTTConn, error) {
	if config.Broker == "" {
		return nil, fmt.Errorf("bus: Broker is required")
	}

	timeout := config.DialTimeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clientID := config.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("hubctl-%d", os.Getpid())
	}

	broker := fmt.Sprintf("%s:%d", config.Broker, config.Port)

	options := mqtt.NewClientOptions()
	options.AddBroker("tcp://" + broker)
	options.SetClientID(clientID)
	options.SetConnectTimeout(timeout)
	if config.Username != "" {
		options.SetUsername(config.Username)
		options.SetPassword(config.Password)
	}

	client := mqtt.NewClient(options)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)
		return nil, &ConnectionError{Broker: broker}
	}
	if err := token.Error(); err != nil {
		return nil, &ConnectionError{Broker: broker, Err: err}
	}

	logger.Info("connected to broker", "broker", broker, "client_id", clientID)

	return &MQTTConn{
		client:     client,
		broker:     broker,
		logger:     logger,
		subscribed: make(map[string]struct{}),
	}, nil
}

// Publish sends a payload to a topic at QoS 0. The broker owns
// delivery from here; there is no end-to-end acknowledgment from the
// device.
func (c *MQTTConn) Publish(topic string, payload []byte) error {
	token := c.client.Publish(topic, 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return &ConnectionError{Broker: c.broker, Err: err}
	}
	return nil
}

// Subscribe registers a handler for a topic. Duplicate subscriptions
// are no-ops: the first handler stays registered.
func (c *MQTTConn) Subscribe(topic string, handler Handler) error {
	c.mu.Lock()
	if _, ok := c.subscribed[topic]; ok {
		c.mu.Unlock()
		return nil
	}
	c.subscribed[topic] = struct{}{}
	c.mu.Unlock()

	token := c.client.Subscribe(topic, 0, func(_ mqtt.Client, message mqtt.Message) {
		handler(Message{Topic: message.Topic(), Payload: message.Payload()})
	})
	token.Wait()
	if err := token.Error(); err != nil {
		c.mu.Lock()
		delete(c.subscribed, topic)
		c.mu.Unlock()
		return &ConnectionError{Broker: c.broker, Err: err}
	}
	return nil
}

// Unsubscribe removes the subscription for a topic. Unsubscribing from
// a topic that was never subscribed is a no-op.
func (c *MQTTConn) Unsubscribe(topic string) error {
	c.mu.Lock()
	if _, ok := c.subscribed[topic]; !ok {
		c.mu.Unlock()
		return nil
	}
	delete(c.subscribed, topic)
	c.mu.Unlock()

	token := c.client.Unsubscribe(topic)
	token.Wait()
	if err := token.Error(); err != nil {
		return &ConnectionError{Broker: c.broker, Err: err}
	}
	return nil
}

// Close disconnects from the broker, allowing a short quiesce for
// in-flight writes. Idempotent.
func (c *MQTTConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.client.Disconnect(250)
	c.logger.Debug("disconnected from broker", "broker", c.broker)
}
