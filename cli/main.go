package main

import (
	"os"

	"github.com/ontoforge/shaclgen/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
