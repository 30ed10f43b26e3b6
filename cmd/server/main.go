package main

import (
	"fmt"
	"os"

	"github.com/anonto42/travel-discover/backend/internal/app"
	"github.com/anonto42/travel-discover/backend/pkg/config"
	"github.com/anonto42/travel-discover/backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "travel-discover",
		Short:        "Travel discovery backend: locations, saved places and search history",
		SilenceUsage: true,
	}

	serve := serveCmd()
	rootCmd.RunE = serve.RunE

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(discoverCmd())
	rootCmd.AddCommand(exploreCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runtime is what every command needs: config, logger and open stores
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *config.DB
	app    *app.App
}

func bootstrap() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := config.InitDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := config.Migrate(db.SQL); err != nil {
		db.CloseDB(log)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	a, err := app.New(cfg, db, log)
	if err != nil {
		db.CloseDB(log)
		return nil, err
	}
	return &runtime{cfg: cfg, logger: log, db: db, app: a}, nil
}

func (r *runtime) Close() {
	r.db.CloseDB(r.logger)
	_ = r.logger.Sync()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.Close()
			rt.logger.Info("schema is up to date", zap.String("driver", rt.cfg.DBDriver))
			return nil
		},
	}
}
