// Command playground runs a local simulator of the Authorized Buyers
// Marketplace API for the samples to run against.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/authorizedbuyers/marketplace-samples/internal/playgroundcli"
)

func main() {
	if err := playgroundcli.NewCommand("playground").Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
