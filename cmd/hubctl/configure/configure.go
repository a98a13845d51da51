// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package configure implements the "hubctl config" command group:
// sending typed configuration to the hub and listing the known
// setting keys per target.
package configure

import (
	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
)

// Command returns the "config" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Summary: "Send configuration to the hub and inspect setting keys",
		Description: `Send configuration to the hub, a paired lock, or a paired opener.

Settings are given as key=value pairs. Values are classified before
sending: integer text becomes a JSON number, "true"/"false" (any
casing) becomes a JSON boolean, everything else is sent as a string.
Keys the tool does not recognize are still sent; the hub firmware has
the final say on what it accepts.`,
		Subcommands: []*cli.Command{
			setCommand(),
			keysCommand(),
		},
	}
}
