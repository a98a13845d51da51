// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package bus

import (
	"testing"

	"github.com/lockhub-tools/hubctl/lib/ref"
)

func TestTopicDerivation(t *testing.T) {
	tests := []struct {
		name   string
		target ref.Target
		action string
		result string
	}{
		{
			name:   "hub shares the base topic",
			target: ref.TargetHub,
			action: "lockhub/hub/configuration/action",
			result: "lockhub/hub/configuration/commandResult",
		},
		{
			name:   "lock under its own segment",
			target: ref.TargetLock,
			action: "lockhub/hub/lock/configuration/action",
			result: "lockhub/hub/lock/configuration/commandResult",
		},
		{
			name:   "opener under its own segment",
			target: ref.TargetOpener,
			action: "lockhub/hub/opener/configuration/action",
			result: "lockhub/hub/opener/configuration/commandResult",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ActionTopic(DefaultBaseTopic, test.target); got != test.action {
				t.Errorf("ActionTopic = %q, want %q", got, test.action)
			}
			if got := ResultTopic(DefaultBaseTopic, test.target); got != test.result {
				t.Errorf("ResultTopic = %q, want %q", got, test.result)
			}
		})
	}
}

func TestAnnounceTopic(t *testing.T) {
	if got := AnnounceTopic("custom/base"); got != "custom/base/info/hubIp" {
		t.Errorf("AnnounceTopic = %q", got)
	}
}

func TestParseTarget(t *testing.T) {
	for _, valid := range []string{"hub", "lock", "opener"} {
		if _, err := ref.ParseTarget(valid); err != nil {
			t.Errorf("ParseTarget(%q) failed: %v", valid, err)
		}
	}
	if _, err := ref.ParseTarget("bridge"); err == nil {
		t.Error("ParseTarget accepted an unknown target")
	}
}

func TestMemoryConnDelivery(t *testing.T) {
	conn := NewMemoryConn()

	var received []Message
	if err := conn.Subscribe("a/topic", func(m Message) {
		received = append(received, m)
	}); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	conn.Publish("a/topic", []byte("one"))
	conn.Publish("other/topic", []byte("ignored"))
	conn.Publish("a/topic", []byte("two"))

	if len(received) != 2 {
		t.Fatalf("received %d messages, want 2", len(received))
	}
	if string(received[0].Payload) != "one" || string(received[1].Payload) != "two" {
		t.Errorf("messages out of order: %q, %q", received[0].Payload, received[1].Payload)
	}
	if len(conn.Published()) != 3 {
		t.Errorf("Published() recorded %d messages, want 3", len(conn.Published()))
	}
}

func TestMemoryConnIdempotentSubscribe(t *testing.T) {
	conn := NewMemoryConn()

	first := 0
	second := 0
	conn.Subscribe("t", func(Message) { first++ })
	conn.Subscribe("t", func(Message) { second++ })

	conn.Publish("t", []byte("x"))

	if first != 1 {
		t.Errorf("first handler called %d times, want 1", first)
	}
	if second != 0 {
		t.Errorf("second handler called %d times, want 0 (duplicate subscribe must not replace)", second)
	}
	if conn.SubscribeCount("t") != 2 {
		t.Errorf("SubscribeCount = %d, want 2", conn.SubscribeCount("t"))
	}
}

func TestMemoryConnUnsubscribe(t *testing.T) {
	conn := NewMemoryConn()

	calls := 0
	conn.Subscribe("t", func(Message) { calls++ })
	conn.Unsubscribe("t")
	conn.Publish("t", []byte("x"))

	if calls != 0 {
		t.Errorf("handler called %d times after unsubscribe, want 0", calls)
	}
	if conn.Subscribed("t") {
		t.Error("Subscribed() reports true after unsubscribe")
	}

	// Unsubscribing a never-subscribed topic is a no-op, not an error.
	if err := conn.Unsubscribe("never"); err != nil {
		t.Errorf("Unsubscribe on unknown topic failed: %v", err)
	}
}

func TestMemoryConnClose(t *testing.T) {
	conn := NewMemoryConn()
	conn.Close()
	conn.Close()
	if !conn.Closed() {
		t.Error("Closed() = false after Close")
	}
}
