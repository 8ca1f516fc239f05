package main

import (
	"os"

	"github.com/spigell/onlyjobs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
