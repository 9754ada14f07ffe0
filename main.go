// Package main is the entry point for the dashboard-suppliers CLI.
package main

import (
	"os"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
