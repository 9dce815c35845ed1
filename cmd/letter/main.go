package main

import (
	"os"

	"github.com/msto63/letter/cmd/letter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
