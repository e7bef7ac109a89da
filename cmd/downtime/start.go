package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pranavkumar389/downtime-monitor/pkg/log"
	"github.com/pranavkumar389/downtime-monitor/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:          "start",
	Short:        "Start the admin console",
	Long:         `Opens the interactive console. Type "man" for the list of commands and "exit" to quit.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Debug().Msg("starting console")

		var services []srv.Service
		// The exit command ends the process from inside the prompt loop, so
		// it has to release resources itself.
		exit := func(code int) {
			srv.ShutdownServices(context.WithoutCancel(ctx), services)
			flushLog()
			os.Exit(code)
		}

		background, console, err := NewServices(ctx, exit)
		if err != nil {
			return err
		}
		services = append(background, console)

		srv.StartServices(ctx, background)

		if err := console.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error().Err(err).Msg("console stopped")
		}

		srv.ShutdownServices(context.WithoutCancel(ctx), services)
		logger.Debug().Msg("console has been shut down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
