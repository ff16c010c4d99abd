package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/caregivers-platform/internal/config"
)

const maxConnectBackoff = 10 * time.Second

// Connect opens the postgres pool. The first ping is retried with
// exponential backoff, capped at maxConnectBackoff, for at most
// cfg.DBConnectAttempts attempts.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	attempts := cfg.DBConnectAttempts
	if attempts < 1 {
		attempts = 1
	}
	wait := cfg.DBConnectBackoff

	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := open(ctx, cfg.DBUrl)
		if err == nil {
			return db, nil
		}
		lastErr = err

		if i == attempts {
			break
		}
		log.Warn("database not reachable, retrying",
			zap.Int("attempt", i),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
		if wait > maxConnectBackoff {
			wait = maxConnectBackoff
		}
	}

	return nil, fmt.Errorf("connect database after %d attempts: %w", attempts, lastErr)
}

func open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}
