// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package hubconfig

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the typed forms a configuration value can take.
type Kind int

const (
	// KindInt is a signed integer value.
	KindInt Kind = iota
	// KindBool is a boolean value.
	KindBool
	// KindString is a verbatim text value.
	KindString
)

// Value is one typed configuration value. It serializes to JSON as a
// native number, native boolean, or quoted string depending on its
// kind.
type Value struct {
	kind        Kind
	intValue    int64
	boolValue   bool
	stringValue string
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, intValue: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, boolValue: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, stringValue: v} }

// CoerceValue classifies raw text into a typed Value. The order is
// integer, then boolean, then string: "2" is the integer 2, "true" is
// a boolean, "MyLock" and anything else stays text verbatim.
func CoerceValue(text string) Value {
	if isIntegerText(text) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(v)
		}
		// Digits but out of int64 range; the device has no settings
		// that large, so keep the text form.
	}
	if equalFoldBool(text, "true") {
		return Bool(true)
	}
	if equalFoldBool(text, "false") {
		return Bool(false)
	}
	return String(text)
}

// isIntegerText reports whether text is one optional leading sign
// followed by one or more ASCII digits.
func isIntegerText(text string) bool {
	if text == "" {
		return false
	}
	digits := text
	if text[0] == '+' || text[0] == '-' {
		digits = text[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// equalFoldBool is a case-insensitive ASCII comparison for the two
// boolean words.
func equalFoldBool(text, word string) bool {
	if len(text) != len(word) {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

// Kind returns the value's discriminator.
func (v Value) Kind() Kind { return v.kind }

// IntValue returns the integer form. Meaningful only for KindInt.
func (v Value) IntValue() int64 { return v.intValue }

// BoolValue returns the boolean form. Meaningful only for KindBool.
func (v Value) BoolValue() bool { return v.boolValue }

// StringValue returns the text form. Meaningful only for KindString.
func (v Value) StringValue() string { return v.stringValue }

// Format returns the canonical text rendering: base-10 for integers,
// "true"/"false" for booleans, the verbatim text for strings. For
// canonical integer input, Format(CoerceValue(x)) == x.
func (v Value) Format() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.intValue, 10)
	case KindBool:
		return strconv.FormatBool(v.boolValue)
	default:
		return v.stringValue
	}
}

// MarshalJSON serializes the value in its native JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.intValue)
	case KindBool:
		return json.Marshal(v.boolValue)
	default:
		return json.Marshal(v.stringValue)
	}
}

// Map is a typed configuration map keyed by setting name. It
// serializes to the flat JSON object the device's configuration/action
// topic expects.
type Map map[string]Value
