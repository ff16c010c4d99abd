package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/caregivers-platform/internal/config"
	dbpkg "github.com/BruksfildServices01/caregivers-platform/internal/db"
	"github.com/BruksfildServices01/caregivers-platform/internal/logger"
	"github.com/BruksfildServices01/caregivers-platform/internal/reports"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo rows first when the database is empty")
	xlsxPath := flag.String("xlsx", "", "also write every query result to this workbook")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, "console", "caregivers-reports")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := dbpkg.Migrate(ctx, db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	if *seed {
		inserted, err := dbpkg.Seed(ctx, db)
		if err != nil {
			log.Fatal("failed to seed", zap.Error(err))
		}
		log.Info("seed finished", zap.Bool("inserted", inserted))
	}

	var sink *reports.XLSXSink
	var reportSink reports.Sink
	if *xlsxPath != "" {
		sink, err = reports.NewXLSXSink()
		if err != nil {
			log.Fatal("failed to create workbook", zap.Error(err))
		}
		reportSink = sink
	}

	runErr := reports.NewRunner(db, os.Stdout, log, reports.DefaultParams(), reportSink).Run(ctx)

	if sink != nil {
		if err := sink.Save(*xlsxPath); err != nil {
			log.Error("failed to save workbook", zap.String("path", *xlsxPath), zap.Error(err))
		} else {
			log.Info("workbook written", zap.String("path", *xlsxPath))
		}
	}

	if runErr != nil {
		log.Error("report aborted", zap.Error(runErr))
		_ = log.Sync()
		os.Exit(1)
	}
}
