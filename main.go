package main

import (
	"os"

	"github.com/spigell/skill2success/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
