package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pranavkumar389/downtime-monitor/internal/config"
	"github.com/pranavkumar389/downtime-monitor/internal/service/installer"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

var installCmd = &cobra.Command{
	Use:          "install",
	Short:        "Write the console configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()

		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		// Validate what the wizard wrote.
		cfg := config.AppConfig{RuntimePath: runtimePath}
		if err := godotenv.Load(cfg.GetEnvPath()); err != nil {
			logger.Warn().Err(err).Str("path", cfg.GetEnvPath()).Msg("failed to load .env file")
			return nil
		}
		if _, err := config.NewAppConfig(ctx); err != nil {
			return err
		}

		cmd.Printf("Configuration written to %s. You can now run 'downtime start'.\n", cfg.GetEnvPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
