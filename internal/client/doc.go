// SPDX-License-Identifier: Apache-2.0

// Package client implements the command-line client application runtime.
//
// It wires the client services into one-shot subcommands (register, login,
// upload, download, list, delete, logout). Every command that touches the
// server authenticates first; the master key lives only for the lifetime of
// the process, except for the copy sealed into the local key vault.
package client
