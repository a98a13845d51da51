// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package bus owns the MQTT connection to the broker that fronts the
// lock-hub controller.
//
// [Conn] is the transport contract consumed by the correlator: publish
// a payload to a topic, subscribe a handler to a topic, unsubscribe,
// close. Two implementations exist. [MQTTConn] wraps the Eclipse Paho
// client and is what the CLI dials; its delivery loop runs on
// Paho-managed goroutines, so handlers execute concurrently with the
// caller and must not block for longer than handling a single message.
// [MemoryConn] is an in-process broker for tests: synchronous
// delivery, per-topic subscribe/unsubscribe counters, and a record of
// published messages.
//
// Subscribe and Unsubscribe are idempotent on both implementations.
// Publishing is best-effort: the broker's at-least-once delivery may
// hand subscribers duplicate or reordered messages, and the layers
// above are built to tolerate that.
//
// Topic derivation lives in topic.go: the configured base topic,
// optionally suffixed per target, plus the fixed configuration/action,
// configuration/commandResult, and info/hubIp leaves.
package bus
