package main

import (
	"os"

	"github.com/keyforge/keyforge/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
