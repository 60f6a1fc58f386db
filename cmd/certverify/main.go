package main

import (
	"os"

	"certverify/cmd/certverify/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
