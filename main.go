// Command gpa is the module-root entry point so that
// `go install github.com/Makepad-fr/gpa@latest` works; it is identical to
// cmd/gpa.
package main

import (
	"os"

	"github.com/Makepad-fr/gpa/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
