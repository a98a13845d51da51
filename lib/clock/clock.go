// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations hubctl needs so that deadline
// behavior is testable. Production code injects Real(); tests inject
// Fake() and advance it deterministically.
//
// Code that would otherwise call time.Now, time.After, or time.Sleep
// should take a Clock (or sit on a struct that holds one) instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once
	// duration d has elapsed. If d <= 0 the channel receives
	// immediately.
	After(d time.Duration) <-chan time.Time

	// Sleep pauses the calling goroutine for at least duration d.
	Sleep(d time.Duration)
}
