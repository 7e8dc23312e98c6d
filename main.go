package main

import (
	"os"

	"github.com/idilsaglam/listmanager/internal/cli"
)

// Same binary as cmd/listmanager, so `go run .` works from the repo root.
func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
