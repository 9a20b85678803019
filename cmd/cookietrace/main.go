package main

import (
	"os"

	"cookietrace/cmd/cookietrace/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
