// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal query client runtime.
//
// It runs the terminal UI in a single process lifecycle and turns a
// deliberate quit into a clean exit.
package client
