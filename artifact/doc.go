// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package artifact retrieves diagnostic artifacts from the hub's
// embedded web server and converts them into usable form.
//
// The hub exposes its most recent crash coredump at a fixed path on
// its HTTP interface. [Fetch] streams it to a caller-supplied sink and
// classifies the interesting failure modes: the hub has no coredump
// ([IsNotPresent]), or the web credentials were rejected
// ([IsAuthFailed]). Both are ordinary operator-visible outcomes, not
// program defects.
//
// The download is a hex dump, two header lines followed by lines of
// hexadecimal text. [ConvertHex] decodes it into the binary image that
// debugging tools expect.
package artifact
