package main

import (
	"os"

	"github.com/attafarid/studyai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
