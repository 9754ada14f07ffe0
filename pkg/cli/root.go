// Package cli wires the extraction, assembly, and serving phases into
// a single command-line tool.
package cli

import (
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version can be overridden at build time via:
// go build -ldflags "-X github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/cli.version=1.2.3"
var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "dashboard-suppliers",
	Short: "Cocoa cooperative producer dashboard",
	Long: color.GreenString("dashboard-suppliers") +
		" - extracts producer records from object storage, assembles the\n" +
		"tabular dashboard store, and serves read-only views over it.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; env vars alone are enough.
		_ = godotenv.Load()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(downloadImagesCmd)
	rootCmd.AddCommand(seedCmd)
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
