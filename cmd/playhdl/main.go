// Package main provides the playhdl command.
package main

import (
	"os"

	"github.com/leapstack-labs/playhdl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
