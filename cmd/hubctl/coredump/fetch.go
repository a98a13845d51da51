// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package coredump

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/lockhub-tools/hubctl/artifact"
	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
	"github.com/lockhub-tools/hubctl/correlate"
)

type fetchParams struct {
	configPath string
	address    string
	output     string
	verbose    bool
}

func fetchCommand() *cli.Command {
	var params fetchParams

	return &cli.Command{
		Name:    "fetch",
		Summary: "Download the hub's coredump hex dump",
		Description: `Download the hub's most recent crash coredump.

Unless --address is given, the hub's IP address is discovered by
waiting for its periodic announcement on the bus; the hub publishes
its address every few minutes, so discovery can take a moment. The
dump is fetched from the hub's web server using the web credentials
from the config file.

A hub that has not crashed since its last clean boot serves no
coredump; that is reported as a plain message, not an error.`,
		Usage: "hubctl coredump fetch [flags]",
		Examples: []cli.Example{
			{
				Description: "Discover the hub and download its coredump",
				Command:     "hubctl coredump fetch --output crash.hex",
			},
			{
				Description: "Skip discovery when the address is known",
				Command:     "hubctl coredump fetch --address 192.168.1.50",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("fetch", pflag.ContinueOnError)
			flags.StringVar(&params.configPath, "config", "", "path to hubctl.yaml (default: $HUBCTL_CONFIG)")
			flags.StringVar(&params.address, "address", "", "hub IP address (skips bus discovery)")
			flags.StringVar(&params.output, "output", "coredump.hex", "file to write the hex dump to")
			flags.BoolVarP(&params.verbose, "verbose", "v", false, "enable debug logging")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			logger := cli.NewCommandLogger(params.verbose).With("command", "coredump/fetch")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			address := params.address
			var webUser, webPass string
			if address == "" {
				session, err := cli.Connect(params.configPath, logger)
				if err != nil {
					return err
				}
				defer session.Close()
				webUser = session.Config.Web.Username
				webPass = session.Config.Web.Password

				logger.Info("waiting for the hub to announce its address")
				address, err = session.Exchange.DiscoverAddress(ctx)
				if correlate.IsTimeout(err) {
					return fmt.Errorf("no address announcement within %s; pass --address to skip discovery",
						session.Config.Timeout())
				}
				if err != nil {
					return err
				}
				logger.Info("hub announced its address", "address", address)
			} else {
				cfg, err := cli.LoadConfig(params.configPath)
				if err != nil {
					return err
				}
				webUser = cfg.Web.Username
				webPass = cfg.Web.Password
			}

			return download(ctx, logger, address, artifact.Credentials{
				Username: webUser,
				Password: webPass,
			}, params.output)
		},
	}
}

func download(ctx context.Context, logger *slog.Logger, address string, creds artifact.Credentials, output string) error {
	sink, err := os.Create(output)
	if err != nil {
		return err
	}

	client := artifact.NewClient(nil)
	written, err := client.FetchCoredump(ctx, address, creds, sink)
	if closeErr := sink.Close(); err == nil {
		err = closeErr
	}

	switch {
	case artifact.IsNotPresent(err):
		os.Remove(output)
		fmt.Println("the hub has no coredump; it has not crashed since its last clean boot")
		return nil
	case artifact.IsAuthFailed(err):
		os.Remove(output)
		return fmt.Errorf("the hub rejected the web credentials; check the web section of your config")
	case err != nil:
		os.Remove(output)
		return err
	}

	logger.Info("coredump downloaded", "address", address, "bytes", written, "output", output)
	fmt.Printf("wrote %d bytes to %s\n", written, output)
	return nil
}
