// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console runtime.
//
// It wires the terminal UI, the client services and the background refresh
// of the trusted device list into a single process lifecycle.
package client
