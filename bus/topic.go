// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package bus

import "github.com/lockhub-tools/hubctl/lib/ref"

// DefaultBaseTopic is the base topic the hub publishes under when the
// operator has not renamed it.
const DefaultBaseTopic = "lockhub/hub"

// Topic leaves under the per-target base. The device subscribes to the
// action leaf and publishes results on the commandResult leaf.
const (
	actionSuffix = "/configuration/action"
	resultSuffix = "/configuration/commandResult"

	// announceSuffix is where the hub announces its IP address. Only
	// the hub base topic carries it; lock and opener have no web
	// server of their own.
	announceSuffix = "/info/hubIp"
)

// ActionTopic returns the outbound command topic for a target.
func ActionTopic(baseTopic string, target ref.Target) string {
	return baseTopic + target.TopicSuffix() + actionSuffix
}

// ResultTopic returns the inbound command-result topic for a target.
// The topic is shared by all requests against the same target, which
// is why only one request may be outstanding at a time.
func ResultTopic(baseTopic string, target ref.Target) string {
	return baseTopic + target.TopicSuffix() + resultSuffix
}

// AnnounceTopic returns the topic on which the hub announces its IP
// address.
func AnnounceTopic(baseTopic string) string {
	return baseTopic + announceSuffix
}
