package main

import (
	"os"

	"github.com/ecotools/biodigest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
