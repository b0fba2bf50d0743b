package app

import (
	"github.com/spf13/cobra"

	"github.com/GoRandomString/GoRandomString/internal/config"
	"github.com/GoRandomString/GoRandomString/internal/daemon"
	"github.com/GoRandomString/GoRandomString/internal/logger"
)

func init() { //nolint:gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the random string http api",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return daemon.New(&cfg).Start()
		},
	}
)
