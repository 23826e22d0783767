package main

import (
	"os"

	"pollex.nl/bookdeal/cmd/bookdeal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
