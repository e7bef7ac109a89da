package main

import (
	"github.com/spf13/cobra"

	"github.com/pranavkumar389/downtime-monitor/internal/config"
	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/storage"
	"github.com/pranavkumar389/downtime-monitor/internal/storage/file"
	"github.com/pranavkumar389/downtime-monitor/internal/storage/sqlite"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

var importCmd = &cobra.Command{
	Use:          "import",
	Short:        "Copy JSON record files into the SQLite store",
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

		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		src := file.NewStore(cfg.GetDataPath())
		n, err := storage.Copy(ctx, src, sqlite.NewRecordsRepo(db), core.CollectionUsers, core.CollectionChecks)
		if err != nil {
			return err
		}

		log.FromCtx(ctx).Debug().Int("records", n).Msg("import finished")
		cmd.Printf("Imported %d records into %s\n", n, cfg.GetDatabasePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
