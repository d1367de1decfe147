// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the secureid command-line runtime.
//
// It parses the command, obtains passwords from the environment or stdin,
// opens the vault services on demand and prints results.
package client
