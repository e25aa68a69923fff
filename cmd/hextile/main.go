package main

import (
	"os"

	"github.com/ironsheep/hextile/internal/cli"
)

// Version information - set by ldflags during build
var Version = "dev"

func main() {
	if err := cli.Execute(Version); err != nil {
		os.Exit(1)
	}
}
