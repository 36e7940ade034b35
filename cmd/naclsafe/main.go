package main

import (
	"os"

	"naclsafe/cmd/naclsafe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
