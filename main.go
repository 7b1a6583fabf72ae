package main

import (
	"os"

	"github.com/abhisek/p2tutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
