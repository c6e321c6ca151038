package main

import (
	"os"

	"github.com/upitrail/upitrail/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
