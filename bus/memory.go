// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package bus

import "sync"

// Compile-time interface check.
var _ Conn = (*MemoryConn)(nil)

// MemoryConn is an in-process Conn for tests. Publish delivers
// synchronously in the caller's goroutine to every matching handler,
// including the publisher's own subscriptions (a real broker loops
// messages back the same way). Per-topic subscribe and unsubscribe
// counts let tests assert the cleanup invariant: every subscription
// taken during a call must be released by the time it returns.
type MemoryConn struct {
	mu           sync.Mutex
	handlers     map[string]Handler
	published    []Message
	subscribes   map[string]int
	unsubscribes map[string]int
	closed       bool
}

// NewMemoryConn creates an in-process bus with no subscriptions.
func NewMemoryConn() *MemoryConn {
	return &MemoryConn{
		handlers:     make(map[string]Handler),
		subscribes:   make(map[string]int),
		unsubscribes: make(map[string]int),
	}
}

// Publish records the message and delivers it to the subscribed
// handler, if any. The handler runs in the caller's goroutine.
func (c *MemoryConn) Publish(topic string, payload []byte) error {
	c.mu.Lock()
	message := Message{Topic: topic, Payload: payload}
	c.published = append(c.published, message)
	handler := c.handlers[topic]
	c.mu.Unlock()

	if handler != nil {
		handler(message)
	}
	return nil
}

// Subscribe registers a handler. Duplicate subscriptions are counted
// but do not replace the existing handler, matching MQTTConn.
func (c *MemoryConn) Subscribe(topic string, handler Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribes[topic]++
	if _, ok := c.handlers[topic]; ok {
		return nil
	}
	c.handlers[topic] = handler
	return nil
}

// Unsubscribe removes the handler for a topic.
func (c *MemoryConn) Unsubscribe(topic string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unsubscribes[topic]++
	delete(c.handlers, topic)
	return nil
}

// Close marks the connection closed. Idempotent.
func (c *MemoryConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Closed reports whether Close has been called.
func (c *MemoryConn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Published returns a copy of every message published so far, in
// order.
func (c *MemoryConn) Published() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.published...)
}

// SubscribeCount returns how many times Subscribe was called for a
// topic.
func (c *MemoryConn) SubscribeCount(topic string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subscribes[topic]
}

// UnsubscribeCount returns how many times Unsubscribe was called for
// a topic.
func (c *MemoryConn) UnsubscribeCount(topic string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubscribes[topic]
}

// Subscribed reports whether a handler is currently registered for a
// topic.
func (c *MemoryConn) Subscribed(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.handlers[topic]
	return ok
}
