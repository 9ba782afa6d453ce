package main

import (
	"os"

	"github.com/pkordes/smartstay/cmd/hotelsearch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
