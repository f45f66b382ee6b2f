// Sonoffctl is a command-line utility for Sonoff MINI R3 smart switches
// running in DIY mode.
//
// It talks to the device's local HTTP API to read the current state, toggle
// the relay, and configure the power-on behavior. Devices can be addressed
// directly by IP or saved to a local registry and referred to by name.
//
// Usage:
//
//	sonoffctl [command] [flags]
//
// See 'sonoffctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wjhx/sonoffctl/internal/logging"
	"github.com/wjhx/sonoffctl/internal/urls"
	"github.com/wjhx/sonoffctl/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sonoffctl",
	Short: "Sonoff MINI R3 DIY-mode control utility",
	Long: `A standalone utility for controlling Sonoff MINI R3 smart switches in DIY mode.

Reads device state, switches the relay on and off, and configures the
power-on (startup) behavior over the device's local HTTP API. Devices can
be saved to a local registry and addressed by name.

The device must be in DIY mode and reachable on the local network.
See ` + urls.DIYModeGuide + ` for setup instructions.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sonoffctl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
