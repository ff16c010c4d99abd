package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/config"
	dbpkg "github.com/BruksfildServices01/caregivers-platform/internal/db"
	"github.com/BruksfildServices01/caregivers-platform/internal/flash"
	"github.com/BruksfildServices01/caregivers-platform/internal/handlers"
	infraRepo "github.com/BruksfildServices01/caregivers-platform/internal/infra/repository"
	"github.com/BruksfildServices01/caregivers-platform/internal/logger"
	"github.com/BruksfildServices01/caregivers-platform/internal/media"
	"github.com/BruksfildServices01/caregivers-platform/internal/middleware"
	"github.com/BruksfildServices01/caregivers-platform/internal/routes"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "caregivers-api")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := dbpkg.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := dbpkg.Migrate(ctx, db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// ======================================================
	// INFRA
	// ======================================================
	var flashStore flash.Store = flash.NewCookieStore(cfg.SessionSecret, cfg.FlashTTL)
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to reach redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		flashStore = flash.NewRedisStore(redisClient, cfg.FlashTTL)
		log.Info("flash messages stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	var photos handlers.PhotoUploader
	if cfg.PhotoStorageEnabled() {
		store, err := media.NewS3Store(ctx, cfg)
		if err != nil {
			log.Fatal("failed to configure photo storage", zap.Error(err))
		}
		photos = media.NewPhotos(store)
		log.Info("caregiver photo uploads enabled", zap.String("bucket", cfg.S3Bucket))
	}

	auditLogger := audit.New(db)

	userRepo := infraRepo.NewUserGormRepository(db)
	caregiverRepo := infraRepo.NewCaregiverGormRepository(db)
	memberRepo := infraRepo.NewMemberGormRepository(db)
	addressRepo := infraRepo.NewAddressGormRepository(db)
	jobRepo := infraRepo.NewJobGormRepository(db)
	applicationRepo := infraRepo.NewJobApplicationGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	base := handlers.NewBase(flashStore, auditLogger, log)

	h := routes.Handlers{
		Index:           handlers.NewIndexHandler(base, sqlDB.PingContext),
		Users:           handlers.NewUserHandler(base, userRepo),
		Caregivers:      handlers.NewCaregiverHandler(base, caregiverRepo, photos),
		Members:         handlers.NewMemberHandler(base, memberRepo),
		Addresses:       handlers.NewAddressHandler(base, addressRepo, memberRepo),
		Jobs:            handlers.NewJobHandler(base, jobRepo, memberRepo),
		JobApplications: handlers.NewJobApplicationHandler(base, applicationRepo, caregiverRepo, jobRepo),
		Appointments:    handlers.NewAppointmentHandler(base, appointmentRepo, caregiverRepo, memberRepo),
		AuditLogs:       handlers.NewAuditLogsHandler(base, auditLogger),

		PhotoUploadsEnabled: photos != nil,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
