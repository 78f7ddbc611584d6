package main

import (
	"os"

	"itrs/cmd/itrs/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
