// Package app implements the command line interface.
package app

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // Path to the configuration directory
	logLevel   string // Log level of the one-shot commands
)

var rootCmd = &cobra.Command{
	Use:   "go-randomstring",
	Short: "go-randomstring generates cryptographically secure random strings",
	Long: `go-randomstring generates fixed-length random strings from a character set
using a cryptographically secure random source, on the command line or as http api.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Path to the configuration directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level of one-shot commands")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
