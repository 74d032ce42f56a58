// Package cmd provides the CLI commands for botui.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	noSplash   bool
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "botui",
	Short: "botui - a cute full-screen kiosk with a pomodoro timer and an alarm",
	Long: `botui turns a terminal into a small kiosk: a face, a menu, a 25 minute
pomodoro timer and an hour/minute alarm countdown.

Run "botui" with no arguments to start the kiosk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runKiosk,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.botui/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noSplash, "no-splash", false, "Skip the startup animation")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("botui\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
