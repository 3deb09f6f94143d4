package main

import (
	"os"

	"github.com/kairos-coach/kairos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
