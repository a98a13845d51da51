// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package hubconfig

import (
	"sort"

	"github.com/lockhub-tools/hubctl/lib/ref"
)

// Schema is the set of setting keys a target recognizes, grouped into
// display tiers ("basic", "advanced"). Tiers are informational only;
// validation flattens them.
type Schema struct {
	// Target is the subsystem this schema describes.
	Target ref.Target
	// Tiers maps a tier name to its keys.
	Tiers map[string][]string
}

// Recognizes reports whether any tier contains the key.
func (s Schema) Recognizes(key string) bool {
	for _, keys := range s.Tiers {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
	}
	return false
}

// TierNames returns the tier names in stable order.
func (s Schema) TierNames() []string {
	names := make([]string, 0, len(s.Tiers))
	for name := range s.Tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TierKeys returns the keys of one tier, sorted for display.
func (s Schema) TierKeys(tier string) []string {
	keys := append([]string(nil), s.Tiers[tier]...)
	sort.Strings(keys)
	return keys
}

// SchemaFor returns the built-in schema for a target. The tables
// mirror the device firmware's accepted configuration keys.
func SchemaFor(target ref.Target) Schema {
	switch target {
	case ref.TargetLock:
		return Schema{Target: target, Tiers: lockKeys}
	case ref.TargetOpener:
		return Schema{Target: target, Tiers: openerKeys}
	default:
		return Schema{Target: ref.TargetHub, Tiers: hubKeys}
	}
}

var lockKeys = map[string][]string{
	"basic": {
		"name", "latitude", "longitude", "autoUnlatch", "pairingEnabled",
		"buttonEnabled", "ledEnabled", "ledBrightness", "timeZoneOffset",
		"dstMode", "fobAction1", "fobAction2", "fobAction3", "singleLock",
		"advertisingMode", "timeZone",
	},
	"advanced": {
		"unlockedPositionOffsetDegrees", "lockedPositionOffsetDegrees",
		"singleLockedPositionOffsetDegrees", "unlockedToLockedTransitionOffsetDegrees",
		"lockNgoTimeout", "singleButtonPressAction", "doubleButtonPressAction",
		"detachedCylinder", "batteryType", "automaticBatteryTypeDetection",
		"unlatchDuration", "autoLockTimeOut", "autoUnLockDisabled",
		"nightModeEnabled", "nightModeStartTime", "nightModeEndTime",
		"nightModeAutoLockEnabled", "nightModeAutoUnlockDisabled",
		"nightModeImmediateLockOnStart", "autoLockEnabled",
		"immediateAutoLockEnabled", "autoUpdateEnabled", "rebootHub",
		"motorSpeed", "enableSlowSpeedDuringNightMode", "recalibrate",
	},
}

var openerKeys = map[string][]string{
	"basic": {
		"name", "latitude", "longitude", "pairingEnabled", "buttonEnabled",
		"ledFlashEnabled", "timeZoneOffset", "dstMode", "fobAction1",
		"fobAction2", "fobAction3", "operatingMode", "advertisingMode", "timeZone",
	},
	"advanced": {
		"intercomID", "busModeSwitch", "shortCircuitDuration",
		"electricStrikeDelay", "randomElectricStrikeDelay",
		"electricStrikeDuration", "disableRtoAfterRing", "rtoTimeout",
		"doorbellSuppression", "doorbellSuppressionDuration", "soundRing",
		"soundOpen", "soundRto", "soundCm", "soundConfirmation", "soundLevel",
		"singleButtonPressAction", "doubleButtonPressAction", "batteryType",
		"automaticBatteryTypeDetection", "rebootHub", "recalibrate",
	},
}

var hubKeys = map[string][]string{
	"network": {
		"dhcpena", "ipaddr", "ipsub", "ipgtw", "dnssrv", "hostname",
		"wifiSSID", "wifiPass",
	},
	"mqtt": {
		"mqttlog", "mqtt_lock_path",
	},
	"auth": {
		"authmaxentry", "authInfoEna", "authPerEntry", "cred_user", "cred_password",
		"kpmaxentry", "kpInfoEnabled", "kpPerEntry", "kpPubCode",
		"tcmaxentry", "tcPerEntry", "tcInfoEnabled",
		"pubAuth", "cnfInfoEnabled",
	},
	"intervals": {
		"lockStInterval", "configInterval", "batInterval", "kpInterval",
		"nrRetry", "rtryDelay", "hybridTimer", "rssipb", "nettmout",
	},
	"other": {
		"regAsApp", "regOpnAsApp", "bleTxPwr", "checkupdates", "openercont",
		"webserver_enabled",
	},
}
