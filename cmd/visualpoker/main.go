package main

import (
	"os"

	"github.com/caesbrissa/visual-poker/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
