package main

import (
	"os"

	"minigrep/internal/cli"
	"minigrep/internal/config"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr, config.OSLookup))
}
