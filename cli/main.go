package main

import (
	"os"

	"github.com/swiftfmt/swiftfmt/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
