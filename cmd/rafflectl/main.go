package main

import (
	"os"

	"github.com/CBlanco0220/Raffle-tracker/cmd/rafflectl/commands"
)

// Version information - set during build
var version = "dev"

func main() {
	// Errors are printed by the printer with color formatting
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
