// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package hubconfig

import (
	"fmt"
	"strings"
)

// Warning reports a recoverable problem with one input entry. Warnings
// never abort coercion; processing continues with the remaining
// entries and the caller decides what to surface to the operator.
type Warning struct {
	// Entry is the raw input that triggered the warning.
	Entry string
	// Message explains the problem.
	Message string
}

func (w Warning) String() string {
	if w.Entry == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Entry, w.Message)
}

// Coerce converts raw "key=value" entries into a typed Map, validating
// keys against the target's schema.
//
//   - Entries without '=' are reported and dropped.
//   - Entries with a key the schema does not recognize are reported
//     but kept; the device is the authority on what it accepts.
//   - Values are classified integer, then boolean, then string.
//
// When no valid entries remain, the returned Map is empty and the
// warnings include a summary entry; whether that is fatal is the
// caller's call.
func Coerce(pairs []string, schema Schema) (Map, []Warning) {
	values := make(Map)
	var warnings []Warning

	for _, pair := range pairs {
		key, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			warnings = append(warnings, Warning{
				Entry:   pair,
				Message: "malformed entry, expected key=value",
			})
			continue
		}

		if !schema.Recognizes(key) {
			warnings = append(warnings, Warning{
				Entry:   pair,
				Message: fmt.Sprintf("%q is not a recognized %s setting", key, schema.Target),
			})
		}

		values[key] = CoerceValue(rawValue)
	}

	if len(values) == 0 {
		warnings = append(warnings, Warning{Message: "no valid settings provided"})
	}
	return values, warnings
}
