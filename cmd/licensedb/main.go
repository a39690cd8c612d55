// Package main provides the licensedb CLI.
package main

import (
	"os"

	"github.com/licensedb/licensedb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
