// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/termgrid/main.go
// Summary: Entry point for the termgrid demo shell.

package main

func main() {
	Execute()
}
