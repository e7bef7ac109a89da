package main

import (
	"github.com/spf13/cobra"

	"github.com/pranavkumar389/downtime-monitor/internal/config"
	"github.com/pranavkumar389/downtime-monitor/pkg/env"
)

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Print the effective configuration as .env",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		cfg, err := config.NewAppConfig(ctx)
		if err != nil {
			return err
		}

		out, err := env.MarshalEnv(cfg)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
