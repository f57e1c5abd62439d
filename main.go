package main

import (
	"os"

	"github.com/htz/claude-watch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
