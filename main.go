package main

import (
	"os"

	"github.com/bnema/pkgvault/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
