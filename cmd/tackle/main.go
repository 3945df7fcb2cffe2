package main

import (
	"os"

	"github.com/hrimthurs/Tackle/cmd/tackle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
