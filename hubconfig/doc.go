// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package hubconfig turns the operator's raw key=value settings into
// the typed configuration map the device expects.
//
// Values are classified in a fixed order: text that is all digits
// (with an optional single leading sign) becomes an integer,
// case-insensitive "true"/"false" becomes a boolean, and everything
// else stays a string. The order matters: "2" must be the integer 2,
// never the string "2", and "true" must be a boolean, never a string.
// The device firmware rejects settings sent with the wrong JSON type.
//
// Validation against the per-target key schemas is advisory: an
// unrecognized key produces a warning but still ships to the device,
// which is the final authority on what it accepts. Only entries
// without a '=' separator are dropped.
package hubconfig
