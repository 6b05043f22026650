package main

import (
	"os"

	"github.com/reelforge/reelforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
