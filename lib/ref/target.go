// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides the typed identifiers shared across hubctl
// packages.
package ref

import "fmt"

// Target identifies which logical subsystem of the device a
// configuration command addresses. It selects both the topic namespace
// under the base topic and the key schema used for validation. A
// Target is immutable once chosen for a request.
type Target string

const (
	// TargetHub addresses the hub controller itself.
	TargetHub Target = "hub"
	// TargetLock addresses the paired lock module.
	TargetLock Target = "lock"
	// TargetOpener addresses the paired opener module.
	TargetOpener Target = "opener"
)

// ParseTarget converts a user-supplied string into a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetHub, TargetLock, TargetOpener:
		return Target(s), nil
	}
	return "", fmt.Errorf("invalid target %q (must be hub, lock, or opener)", s)
}

// String returns the target name as typed by the user.
func (t Target) String() string { return string(t) }

// TopicSuffix returns the path segment appended to the base topic for
// this target. The hub shares the base topic directly; lock and opener
// live under their own segment.
func (t Target) TopicSuffix() string {
	switch t {
	case TargetLock:
		return "/lock"
	case TargetOpener:
		return "/opener"
	default:
		return ""
	}
}
