package main

import (
	"os"

	"github.com/fbarrientos/autoeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
