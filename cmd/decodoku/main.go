// SPDX-License-Identifier: MIT

// Command decodoku is the command-line front end of the syndrome simulator.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/decodoku/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
