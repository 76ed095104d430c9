// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notevault client runtime.
//
// It sweeps stale plaintext snapshots, then either creates a vault headlessly
// (the -init mode) or hands the terminal to the TUI until the user quits.
package client
