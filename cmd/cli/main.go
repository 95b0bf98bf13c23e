// Package main is the entry point for the oneway-quote CLI.
package main

import (
	"os"

	"oneway-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
