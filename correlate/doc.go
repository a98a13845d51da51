// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package correlate turns the fire-and-forget bus transport into a
// synchronous, timeout-bounded request/response protocol.
//
// The device offers no request IDs: a configuration command is a
// publish to the target's configuration/action topic, and the reply is
// whatever next appears on the shared configuration/commandResult
// topic. [Exchange] manages one such round trip at a time: subscribe
// to the result topic, publish the command, wait on a single-slot
// response channel written by the transport's delivery goroutine,
// unsubscribe on every exit path. Because the result topic is shared
// by all requests against the same target, two concurrent requests
// would be indistinguishable; Exchange rejects the second with
// [ErrBusy].
//
// On (re)subscription the device republishes the placeholder "--"
// before any real result is available. The correlator skips it and
// keeps waiting; resolving on it would hand the caller a meaningless
// value. Device IP discovery ([Exchange.DiscoverAddress]) reuses the
// same shape without the placeholder rule: the first payload on the
// announcement topic is the address.
//
// A timeout is an expected outcome, not a defect: the device may be
// asleep, unpaired, or slow. It surfaces as [*TimeoutError] so callers
// can report it and decide whether to retry.
package correlate
