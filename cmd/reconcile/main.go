// Command reconcile recomputes the denormalized counters inspections.no_of_def
// and projects.no_of_homes from live rows. It is intended to be invoked by an
// external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/inspection"
	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/homecheck-backend/internal/app"
	"github.com/heartmarshall/homecheck-backend/internal/config"
	"github.com/heartmarshall/homecheck-backend/internal/service/counter"
	"github.com/heartmarshall/homecheck-backend/migrations"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config")
	migrate := flag.Bool("migrate", false, "apply pending migrations first")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "reconcile")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *migrate {
		if err := postgres.Migrate(ctx, logger, cfg.Database.DSN, migrations.FS); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, "homecheck-reconcile")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := counter.NewService(logger, inspection.New(pool), project.New(pool), nil)

	res, err := svc.Reconcile(ctx)
	if err != nil {
		logger.Error("reconcile failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reconcile completed",
		slog.Int64("inspections_corrected", res.Inspections),
		slog.Int64("projects_corrected", res.Projects),
	)
}
