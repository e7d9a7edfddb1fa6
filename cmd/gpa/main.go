package main

import (
	"os"

	"github.com/Makepad-fr/gpa/internal/cli"
)

func main() {
	// Hand everything after the program name to the CLI runner.
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
