package main

import (
	"os"

	"volunteer-dispatch/cmd/dispatchctl/commands"
)

func main() {
	if err := commands.NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
