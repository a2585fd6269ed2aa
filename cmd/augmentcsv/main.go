// Command augmentcsv adds derived coordinate and review columns to the
// measurement schema file in the working directory, keeping a timestamped
// backup of the original.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/csvcolumns/internal/config"
	"github.com/JonMunkholm/csvcolumns/internal/core"
	"github.com/JonMunkholm/csvcolumns/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if envErr == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx := logging.ContextWithRunID(context.Background())
	log := logging.FromContext(ctx)

	res, err := core.Run(ctx, core.Options{
		Path:   cfg.Schema.Path,
		DryRun: cfg.Schema.DryRun,
		Out:    os.Stdout,
	})
	if uerr := core.NewUserError(err); uerr != nil {
		log.Error("augmentation failed",
			"path", cfg.Schema.Path,
			"backup", res.BackupPath,
			"code", uerr.User.Code,
			"error", uerr.Technical,
		)
		fmt.Fprintln(os.Stderr, uerr.Display())
		os.Exit(1)
	}

	log.Info("schema augmented",
		"path", res.Path,
		"backup", res.BackupPath,
		"dry_run", cfg.Schema.DryRun,
		"rows_before", res.OriginalRows,
		"rows_after", res.TotalRows,
		"added", len(res.Report.Added()),
		"skipped", len(res.Report.Skipped()),
		"duration_ms", res.Duration.Milliseconds(),
	)
}
