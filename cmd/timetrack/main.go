// Package main is the entry point for the timetrack CLI/TUI.
package main

import (
	"os"

	"github.com/timetrack-io/timetrack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
