// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package bus

import "fmt"

// Message is one inbound publication delivered to a subscribed
// handler. The payload is raw bytes; every topic hubctl consumes
// carries UTF-8 text.
type Message struct {
	Topic   string
	Payload []byte
}

// Handler receives inbound messages for a subscribed topic. Handlers
// run on the transport's delivery goroutine and must return promptly;
// anything slower than handling a single message stalls the read path.
type Handler func(Message)

// Conn is the publish/subscribe transport contract. The correlator
// and discovery layers depend on this interface, not on a concrete
// broker client.
type Conn interface {
	// Publish sends a payload to a topic. Best-effort: a nil return
	// means the transport accepted the message, not that the device
	// received it.
	Publish(topic string, payload []byte) error

	// Subscribe registers a handler for inbound messages on a topic.
	// Subscribing to an already-subscribed topic is a no-op; the
	// existing handler stays in place.
	Subscribe(topic string, handler Handler) error

	// Unsubscribe removes the subscription for a topic. Unsubscribing
	// from a topic that is not subscribed is a no-op.
	Unsubscribe(topic string) error

	// Close tears down the connection. Safe to call on a connection
	// that never established, and safe to call twice.
	Close()
}

// ConnectionError reports a failure to establish or operate the broker
// session. Connection-level failures abort the whole invocation; they
// are the only error class hubctl does not recover from locally.
type ConnectionError struct {
	// Broker is the host:port the dial or operation targeted.
	Broker string
	// Err is the underlying transport error, if the client produced one.
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bus: broker %s unreachable", e.Broker)
	}
	return fmt.Sprintf("bus: broker %s: %v", e.Broker, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
