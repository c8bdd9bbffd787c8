// Package main is the entry point for the hanzipy CLI.
package main

import (
	"os"

	"github.com/f3rmion/hanzipy/cmd/hanzipy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
