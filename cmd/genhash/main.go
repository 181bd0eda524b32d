package main

import (
	"os"

	"github.com/gtank/generichash/cmd/genhash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
