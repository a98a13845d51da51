// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete hubctl command tree.
package commands

import (
	"fmt"

	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
	"github.com/lockhub-tools/hubctl/cmd/hubctl/configure"
	"github.com/lockhub-tools/hubctl/cmd/hubctl/coredump"
	"github.com/lockhub-tools/hubctl/lib/version"
)

// Root builds and returns the complete hubctl command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "hubctl",
		Description: `hubctl: configure a lock hub controller over MQTT.

Send typed configuration to the hub and its paired lock or opener,
and retrieve crash coredumps from the hub's web interface.`,
		Subcommands: []*cli.Command{
			configure.Command(),
			coredump.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("hubctl %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Send a lock setting and wait for the result",
				Command:     "hubctl config set lock ledBrightness=2",
			},
			{
				Description: "List the keys the opener understands",
				Command:     "hubctl config keys opener",
			},
			{
				Description: "Download the hub's crash dump",
				Command:     "hubctl coredump fetch --output crash.hex",
			},
		},
	}
}
