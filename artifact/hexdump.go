// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// HexHeader holds the two version lines the hub prepends to a coredump
// hex dump.
type HexHeader struct {
	Firmware string
	Build    string
}

// ConvertHex decodes a coredump hex dump read from r and writes the
// binary image to w, returning the header lines and the number of
// bytes written.
//
// The dump format is two header lines followed by lines of hexadecimal
// text. Surrounding whitespace on each line is ignored. An odd
// trailing half-byte is truncated; the hub occasionally cuts the last
// line short when the dump fills its flash partition.
func ConvertHex(r io.Reader, w io.Writer) (HexHeader, int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header HexHeader
	if !scanner.Scan() {
		return header, 0, fmt.Errorf("artifact: hex dump too short: missing first header line")
	}
	header.Firmware = strings.TrimSpace(scanner.Text())
	if !scanner.Scan() {
		return header, 0, fmt.Errorf("artifact: hex dump too short: missing second header line")
	}
	header.Build = strings.TrimSpace(scanner.Text())

	var hexText strings.Builder
	for scanner.Scan() {
		hexText.WriteString(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return header, 0, fmt.Errorf("artifact: reading hex dump: %w", err)
	}
	if hexText.Len() == 0 {
		return header, 0, fmt.Errorf("artifact: hex dump too short: no data lines")
	}

	text := hexText.String()
	if len(text)%2 != 0 {
		text = text[:len(text)-1]
	}

	data, err := hex.DecodeString(text)
	if err != nil {
		return header, 0, fmt.Errorf("artifact: decoding hex dump: %w", err)
	}

	written, err := w.Write(data)
	if err != nil {
		return header, int64(written), fmt.Errorf("artifact: writing binary image: %w", err)
	}
	return header, int64(written), nil
}
