package main

import (
	"os"

	"github.com/abhisek/tenfold/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
