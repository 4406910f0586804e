package main

import (
	"os"

	"github.com/plumekit/plume/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
