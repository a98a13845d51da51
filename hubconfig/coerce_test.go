// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package hubconfig

import (
	"strings"
	"testing"

	"github.com/lockhub-tools/hubctl/lib/ref"
)

func TestCoerce(t *testing.T) {
	schema := SchemaFor(ref.TargetLock)

	t.Run("typed values for lock settings", func(t *testing.T) {
		values, warnings := Coerce([]string{
			"ledBrightness=2",
			"pairingEnabled=true",
			"name=MyLock",
		}, schema)

		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
		if len(values) != 3 {
			t.Fatalf("got %d values, want 3", len(values))
		}
		if v := values["ledBrightness"]; v.Kind() != KindInt || v.IntValue() != 2 {
			t.Errorf("ledBrightness = %v, want integer 2", v)
		}
		if v := values["pairingEnabled"]; v.Kind() != KindBool || !v.BoolValue() {
			t.Errorf("pairingEnabled = %v, want boolean true", v)
		}
		if v := values["name"]; v.Kind() != KindString || v.StringValue() != "MyLock" {
			t.Errorf("name = %v, want string MyLock", v)
		}
	})

	t.Run("malformed entry is warned and dropped", func(t *testing.T) {
		values, warnings := Coerce([]string{"ledBrightness", "name=Door"}, schema)

		if len(values) != 1 {
			t.Fatalf("got %d values, want 1", len(values))
		}
		if _, ok := values["ledBrightness"]; ok {
			t.Error("malformed entry was not dropped")
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "malformed") {
			t.Errorf("expected a malformed-entry warning, got %v", warnings)
		}
	})

	t.Run("unrecognized key is warned but kept", func(t *testing.T) {
		values, warnings := Coerce([]string{"frobnicate=1"}, schema)

		if v, ok := values["frobnicate"]; !ok || v.IntValue() != 1 {
			t.Error("unrecognized key was dropped; the device decides, not us")
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "not a recognized") {
			t.Errorf("expected an unrecognized-key warning, got %v", warnings)
		}
	})

	t.Run("value containing equals sign splits on the first", func(t *testing.T) {
		values, _ := Coerce([]string{"name=a=b"}, schema)
		if v := values["name"]; v.StringValue() != "a=b" {
			t.Errorf("name = %q, want %q", v.StringValue(), "a=b")
		}
	})

	t.Run("no valid entries yields empty map plus warning", func(t *testing.T) {
		values, warnings := Coerce([]string{"junk", "alsojunk"}, schema)

		if len(values) != 0 {
			t.Errorf("got %d values, want 0", len(values))
		}
		var found bool
		for _, w := range warnings {
			if strings.Contains(w.Message, "no valid settings") {
				found = true
			}
		}
		if !found {
			t.Errorf("missing summary warning, got %v", warnings)
		}
	})

	t.Run("empty input yields single summary warning", func(t *testing.T) {
		values, warnings := Coerce(nil, schema)
		if len(values) != 0 || len(warnings) != 1 {
			t.Errorf("Coerce(nil) = %v, %v", values, warnings)
		}
	})
}

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		target     ref.Target
		recognized string
		foreign    string
	}{
		{ref.TargetLock, "autoUnlatch", "intercomID"},
		{ref.TargetOpener, "intercomID", "autoUnlatch"},
		{ref.TargetHub, "hostname", "autoUnlatch"},
	}

	for _, test := range tests {
		t.Run(test.target.String(), func(t *testing.T) {
			schema := SchemaFor(test.target)
			if !schema.Recognizes(test.recognized) {
				t.Errorf("schema for %s does not recognize %q", test.target, test.recognized)
			}
			if schema.Recognizes(test.foreign) {
				t.Errorf("schema for %s recognizes foreign key %q", test.target, test.foreign)
			}
		})
	}
}

func TestSchemaTiers(t *testing.T) {
	schema := SchemaFor(ref.TargetLock)

	names := schema.TierNames()
	if len(names) != 2 || names[0] != "advanced" || names[1] != "basic" {
		t.Errorf("TierNames = %v", names)
	}

	keys := schema.TierKeys("basic")
	if len(keys) == 0 {
		t.Fatal("basic tier is empty")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("TierKeys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
