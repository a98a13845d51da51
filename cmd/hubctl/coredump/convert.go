// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package coredump

import (
	"fmt"
	"os"

	"github.com/lockhub-tools/hubctl/artifact"
	"github.com/lockhub-tools/hubctl/cmd/hubctl/cli"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:    "convert",
		Summary: "Convert a downloaded hex dump to a binary image",
		Description: `Convert a coredump hex dump (as written by "coredump fetch") into
the binary image debugging tools expect. The two header lines are
printed and stripped; the remaining hex text is decoded.`,
		Usage: "hubctl coredump convert <input.hex> <output.bin>",
		Examples: []cli.Example{
			{
				Description: "Convert a fetched dump",
				Command:     "hubctl coredump convert coredump.hex coredump.bin",
			},
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: hubctl coredump convert <input.hex> <output.bin>")
			}
			input, output := args[0], args[1]

			in, err := os.Open(input)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := os.Create(output)
			if err != nil {
				return err
			}

			header, written, err := artifact.ConvertHex(in, out)
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				os.Remove(output)
				return err
			}

			fmt.Printf("firmware: %s\n", header.Firmware)
			fmt.Printf("build:    %s\n", header.Build)
			fmt.Printf("wrote %d bytes to %s\n", written, output)
			return nil
		},
	}
}
