package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoRandomString/GoRandomString/internal/config"
)

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	var asJSON bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration including environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			s, err := dump(&c)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), s)

			return nil
		},
	}

	dumpCmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON instead of TOML")
	configCmd.AddCommand(dumpCmd)

	return configCmd
}
