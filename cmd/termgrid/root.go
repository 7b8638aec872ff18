// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/termgrid/root.go
// Summary: Cobra command wiring for the demo shell.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagCommand string
	flagHistory int
	flagArchive string
	flagDebug   string
)

var rootCmd = &cobra.Command{
	Use:   "termgrid",
	Short: "Run a shell inside the termgrid buffer model",
	Long: `termgrid hosts a shell in a pty and renders its output through the
termgrid viewport and scrollback model.

Scroll the history with Shift+PageUp / Shift+PageDown; typing snaps the
view back to the bottom. Quit with Ctrl+Q.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a settings file")
	rootCmd.Flags().StringVarP(&flagCommand, "command", "e", "", "command to run (defaults to $SHELL)")
	rootCmd.Flags().IntVar(&flagHistory, "history", -1, "scrollback rows (overrides the settings file)")
	rootCmd.Flags().StringVar(&flagArchive, "archive", "", "sqlite file to archive evicted scrollback rows into")
	rootCmd.Flags().StringVar(&flagDebug, "debug-log", "", "file to append buffer debug traces to")
}
