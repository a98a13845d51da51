// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package configure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
	"github.com/lockhub-tools/hubctl/correlate"
	"github.com/lockhub-tools/hubctl/hubconfig"
	"github.com/lockhub-tools/hubctl/lib/ref"
)

type setParams struct {
	configPath string
	dryRun     bool
	verbose    bool
}

func setCommand() *cli.Command {
	var params setParams

	return &cli.Command{
		Name:    "set",
		Summary: "Send key=value settings to a target",
		Description: `Send one or more settings to the hub, lock, or opener and wait for
the device's command result.

Entries without an equals sign are skipped with a warning. Keys the
tool does not recognize are sent anyway, with a warning; the firmware
decides what it accepts. A timeout is reported as such: the hub may be
asleep or the setting may simply produce no result message.`,
		Usage: "hubctl config set <hub|lock|opener> <key=value>... [flags]",
		Examples: []cli.Example{
			{
				Description: "Dim the lock's LED and rename it",
				Command:     "hubctl config set lock ledBrightness=2 name=MyLock",
			},
			{
				Description: "Enable pairing on the hub",
				Command:     "hubctl config set hub pairingEnabled=true",
			},
			{
				Description: "Preview the JSON payload without connecting",
				Command:     "hubctl config set lock autoLock=true --dry-run",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("set", pflag.ContinueOnError)
			flags.StringVar(&params.configPath, "config", "", "path to hubctl.yaml (default: $HUBCTL_CONFIG)")
			flags.BoolVar(&params.dryRun, "dry-run", false, "print the JSON payload instead of sending it")
			flags.BoolVarP(&params.verbose, "verbose", "v", false, "enable debug logging")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("usage: hubctl config set <hub|lock|opener> <key=value>...")
			}
			target, err := ref.ParseTarget(args[0])
			if err != nil {
				return err
			}

			values, warnings := hubconfig.Coerce(args[1:], hubconfig.SchemaFor(target))
			for _, warning := range warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
			}
			if len(values) == 0 {
				return fmt.Errorf("no valid settings to send")
			}

			if params.dryRun {
				payload, err := json.MarshalIndent(values, "", "  ")
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", payload)
				return nil
			}

			logger := cli.NewCommandLogger(params.verbose).With("command", "config/set")
			session, err := cli.Connect(params.configPath, logger)
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			response, err := session.Exchange.SendConfig(ctx, target, values)
			if correlate.IsTimeout(err) {
				return fmt.Errorf("the %s did not answer within %s; it may be asleep or unpaired",
					target, session.Config.Timeout())
			}
			if err != nil {
				return err
			}

			return printResponse(response)
		},
	}
}

// printResponse renders the device's reply: pretty-printed when it
// parsed as JSON, verbatim otherwise.
func printResponse(response *correlate.Response) error {
	if response.Value != nil {
		pretty, err := json.MarshalIndent(response.Value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", pretty)
		return nil
	}
	fmt.Println(response.Raw)
	return nil
}
