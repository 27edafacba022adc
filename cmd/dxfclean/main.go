// Package main provides the dxfclean CLI.
package main

import (
	"os"

	"github.com/fusion17com/dxf-cleaner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
