package main

import (
	"os"

	"enroll/cmd/signup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
