package main

import (
	"os"

	"github.com/eduline/eduline-client/cmd/eduline/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
