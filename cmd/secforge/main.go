package main

import (
	"os"

	"github.com/secforge/secforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
