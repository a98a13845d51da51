// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package correlate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lockhub-tools/hubctl/bus"
	"github.com/lockhub-tools/hubctl/hubconfig"
	"github.com/lockhub-tools/hubctl/lib/clock"
	"github.com/lockhub-tools/hubctl/lib/ref"
)

// DefaultTimeout is how long a request or discovery session waits for
// the device before giving up.
const DefaultTimeout = 10 * time.Second

// sentinelNoResult is the placeholder the device republishes on the
// result topic when no real result is available yet. The firmware
// reserves this exact two-character string; a real result can never
// be told apart from it, so it is always skipped.
const sentinelNoResult = "--"

// ErrBusy is returned when a request or discovery session is started
// while another is still awaiting its response on the same connection.
var ErrBusy = errors.New("correlate: another request is still outstanding on this connection")

// TimeoutError reports that no response arrived on the awaited topic
// before the deadline. This is an expected, reportable outcome; the
// caller decides whether to retry.
type TimeoutError struct {
	// Topic is the topic that stayed silent.
	Topic string
	// Timeout is the window that elapsed.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("correlate: no response on %s within %s", e.Topic, e.Timeout)
}

// IsTimeout reports whether err is a correlator timeout.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// Response is the device's reply to a configuration command.
type Response struct {
	// Raw is the payload text exactly as received.
	Raw string
	// Value is the payload parsed as JSON. Nil when the payload was
	// not valid JSON; Raw is then the only form available, and that
	// is not an error.
	Value any
}

// Options configures an Exchange.
type Options struct {
	// Conn is the bus connection to correlate over. Required.
	Conn bus.Conn
	// BaseTopic is the hub's base topic. Defaults to
	// bus.DefaultBaseTopic.
	BaseTopic string
	// Timeout bounds each request and discovery session. Defaults to
	// DefaultTimeout.
	Timeout time.Duration
	// Clock drives the deadline. Defaults to the real clock.
	Clock clock.Clock
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Exchange correlates requests with responses over one bus
// connection. At most one session (request or discovery) may be
// awaiting at a time; each session owns its response slot for exactly
// the session's lifetime, so a stale value can never leak into the
// next call.
type Exchange struct {
	conn      bus.Conn
	baseTopic string
	timeout   time.Duration
	clock     clock.Clock
	logger    *slog.Logger
	busy      atomic.Bool
}

// New creates an Exchange over an established bus connection.
func New(options Options) (*Exchange, error) {
	if options.Conn == nil {
		return nil, fmt.Errorf("correlate: Conn is required")
	}
	baseTopic := options.BaseTopic
	if baseTopic == "" {
		baseTopic = bus.DefaultBaseTopic
	}
	timeout := options.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Exchange{
		conn:      options.Conn,
		baseTopic: baseTopic,
		timeout:   timeout,
		clock:     clk,
		logger:    logger,
	}, nil
}

// SendConfig publishes a typed configuration map to the target's
// action topic and waits for the matching result.
//
// The result topic is subscribed before the command is published, so
// a fast device cannot race the subscription. Whatever the outcome,
// the subscription is released before SendConfig returns.
func (e *Exchange) SendConfig(ctx context.Context, target ref.Target, values hubconfig.Map) (*Response, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("correlate: no settings to send")
	}
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	resultTopic := bus.ResultTopic(e.baseTopic, target)
	actionTopic := bus.ActionTopic(e.baseTopic, target)

	// The slot holds at most one resolving payload. The handler runs
	// on the transport's delivery goroutine; the non-blocking send
	// drops duplicates and anything after the first resolving message
	// without ever stalling the read path.
	slot := make(chan string, 1)
	err := e.conn.Subscribe(resultTopic, func(message bus.Message) {
		payload := string(message.Payload)
		if payload == sentinelNoResult {
			return
		}
		select {
		case slot <- payload:
		default:
		}
	})
	if err != nil {
		return nil, fmt.Errorf("correlate: subscribing to %s: %w", resultTopic, err)
	}
	defer e.conn.Unsubscribe(resultTopic)

	payload, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("correlate: encoding configuration: %w", err)
	}

	e.logger.Info("sending configuration command",
		"target", target,
		"topic", actionTopic,
		"settings", len(values),
	)
	if err := e.conn.Publish(actionTopic, payload); err != nil {
		return nil, fmt.Errorf("correlate: publishing to %s: %w", actionTopic, err)
	}

	raw, err := e.await(ctx, resultTopic, slot)
	if err != nil {
		return nil, err
	}
	return parseResponse(raw), nil
}

// DiscoverAddress waits for the hub to announce its IP address. Any
// payload on the announcement topic resolves the session: the first
// message wins, there is no placeholder filtering.
func (e *Exchange) DiscoverAddress(ctx context.Context) (string, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer e.busy.Store(false)

	announceTopic := bus.AnnounceTopic(e.baseTopic)

	slot := make(chan string, 1)
	err := e.conn.Subscribe(announceTopic, func(message bus.Message) {
		select {
		case slot <- string(message.Payload):
		default:
		}
	})
	if err != nil {
		return "", fmt.Errorf("correlate: subscribing to %s: %w", announceTopic, err)
	}
	defer e.conn.Unsubscribe(announceTopic)

	e.logger.Info("waiting for address announcement", "topic", announceTopic)

	address, err := e.await(ctx, announceTopic, slot)
	if err != nil {
		return "", err
	}
	return address, nil
}

// await blocks until the slot resolves, the context is cancelled, or
// the deadline passes.
func (e *Exchange) await(ctx context.Context, topic string, slot <-chan string) (string, error) {
	select {
	case payload := <-slot:
		e.logger.Debug("response received", "topic", topic, "bytes", len(payload))
		return payload, nil
	case <-ctx.Done():
		return "", fmt.Errorf("correlate: waiting on %s: %w", topic, ctx.Err())
	case <-e.clock.After(e.timeout):
		return "", &TimeoutError{Topic: topic, Timeout: e.timeout}
	}
}

// parseResponse parses the payload as JSON when possible and keeps the
// raw text either way. A non-JSON payload is an opaque string result,
// not a failure.
func parseResponse(raw string) *Response {
	response := &Response{Raw: raw}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err == nil {
		response.Value = value
	}
	return response
}
