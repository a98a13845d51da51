// Copyright 2026 The Hubctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree framework for the hubctl
// binary. Each subcommand package exports a constructor returning a
// [*Command]; commands are assembled into a tree in
// cmd/hubctl/commands and dispatched from main.
package cli
