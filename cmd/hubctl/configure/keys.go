// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package configure

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
	"github.com/lockhub-tools/hubctl/hubconfig"
	"github.com/lockhub-tools/hubctl/lib/ref"
)

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:    "keys",
		Summary: "List the setting keys known for a target",
		Description: `List the setting keys the tool recognizes, grouped by tier. The
list mirrors the hub firmware's documented configuration surface;
keys missing here can still be sent with "config set", they just
produce a warning.`,
		Usage: "hubctl config keys [hub|lock|opener]",
		Examples: []cli.Example{
			{
				Description: "Show the lock's settings",
				Command:     "hubctl config keys lock",
			},
		},
		Run: func(args []string) error {
			targets := []ref.Target{ref.TargetHub, ref.TargetLock, ref.TargetOpener}
			if len(args) > 1 {
				return fmt.Errorf("usage: hubctl config keys [hub|lock|opener]")
			}
			if len(args) == 1 {
				target, err := ref.ParseTarget(args[0])
				if err != nil {
					return err
				}
				targets = []ref.Target{target}
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			defer tw.Flush()
			for _, target := range targets {
				schema := hubconfig.SchemaFor(target)
				fmt.Fprintf(tw, "%s\n", target)
				for _, tier := range schema.TierNames() {
					for _, key := range schema.TierKeys(tier) {
						fmt.Fprintf(tw, "  %s\t%s\n", key, tier)
					}
				}
				fmt.Fprintln(tw)
			}
			return nil
		},
	}
}
