// Package cli implements the command-line interface for bledomctl.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath            string
	verbose           bool
	scanRetries       int
	scanIntervalMs    int
	connectRetries    int
	connectIntervalMs int
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "bledomctl",
	Short: "ELK-BLEDOM LED controller CLI",
	Long: `bledomctl controls ELK-BLEDOM Bluetooth LE RGB light controllers.

Each command acquires the first controller in range (discovery and connection
both retry on a configurable budget), sends the requested frames, and records
what it sent to a local command log for later inspection.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Command log path (default: ~/.bledomctl/bledomctl.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVar(&scanRetries, "scan-retries", 10, "Scan polls before giving up on discovery")
	rootCmd.PersistentFlags().IntVar(&scanIntervalMs, "scan-interval", 1000, "Milliseconds between scan polls")
	rootCmd.PersistentFlags().IntVar(&connectRetries, "connect-retries", 10, "Connection attempts before giving up")
	rootCmd.PersistentFlags().IntVar(&connectIntervalMs, "connect-interval", 100, "Milliseconds between connection attempts")
}
