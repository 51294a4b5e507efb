package main

import (
	"os"

	"github.com/Attamusc/commit-digest-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
