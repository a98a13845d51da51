// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package coredump implements the "hubctl coredump" command group:
// downloading the hub's crash dump over its web interface and
// converting the hex dump into a binary image.
package coredump

import (
	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
)

// Command returns the "coredump" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "coredump",
		Summary: "Download and convert the hub's crash dump",
		Description: `Retrieve the hub's most recent crash coredump.

"fetch" discovers the hub's IP address over the bus (or uses
--address), downloads the coredump hex dump from the hub's web
server, and writes it to a file. "convert" turns a downloaded hex
dump into the binary image debugging tools expect.`,
		Subcommands: []*cli.Command{
			fetchCommand(),
			convertCommand(),
		},
	}
}
