package main

import (
	"os"

	"github.com/lukaszgryglicki/mathplex/cmd/mathplex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
