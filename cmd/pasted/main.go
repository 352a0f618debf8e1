package main

import (
	"os"

	"github.com/pasteshare/paste-api/cmd/pasted/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
