// Command marketplace runs the Authorized Buyers Marketplace API samples.
//
// Every sample is a subcommand that performs one API call and prints the
// returned resources, e.g.:
//
//	marketplace clients list -a 12345678
//	marketplace proposals accept -a 12345678 -p MP21673270 -r 2
//
// Credentials come from --key-file (a service account key) or --token (a
// bearer token, which is all the local playground needs). Settings can also
// be put in a .env file, see package config.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
