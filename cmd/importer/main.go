// The importer loads JSON content snapshots into MongoDB. It is idempotent:
// records already present under their natural key are skipped, so re-running
// against the same snapshot changes nothing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sendikahub/core/internal/config"
	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/modules/importer"
	"github.com/sendikahub/core/internal/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	contentDir := flag.String("dir", "", "Content snapshot directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}

	logger, err := logging.New(cfg.IsDev())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongo := database.New(cfg)
	defer mongo.Close(context.Background())

	db, err := mongo.Database(ctx)
	if err != nil {
		logger.Fatal("database unreachable", zap.Error(err))
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	imp := importer.New(&database.StoreAdapter{DB: db}, cfg.ContentDir, logger)
	report, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import aborted", zap.Error(err))
	}

	for _, kind := range report.Kinds {
		fmt.Printf("%-14s inserted=%-4d skipped=%-4d failed=%d\n",
			kind.Kind, kind.Inserted, kind.Skipped, len(kind.Failed))
		for _, f := range kind.Failed {
			fmt.Printf("    [%d] %s: %v\n", f.Index, f.Key, f.Err)
		}
	}
	fmt.Printf("total inserted: %d\n", report.TotalInserted())
}
