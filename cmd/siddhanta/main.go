// Package main provides the CLI entry point for Siddhanta.
package main

import (
	"os"

	"github.com/siddhanta-labs/siddhanta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
