package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/common/logger"
	"github.com/amancoderhub/EMS-Event-management-System/config"
	"github.com/amancoderhub/EMS-Event-management-System/controllers"
	"github.com/amancoderhub/EMS-Event-management-System/middleware"
	"github.com/amancoderhub/EMS-Event-management-System/notify"
	aws_pkg "github.com/amancoderhub/EMS-Event-management-System/pkg/aws"
	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"github.com/amancoderhub/EMS-Event-management-System/router"
	"github.com/amancoderhub/EMS-Event-management-System/routes"
	"github.com/amancoderhub/EMS-Event-management-System/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load failed: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	log := logger.Log
	defer log.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// --- Preferences ---
	prefs, closePrefs, err := openPreferences(ctx, cfg, log)
	if err != nil {
		log.Fatal("Preference store init failed", zap.String("backend", cfg.Preferences), zap.Error(err))
	}
	defer closePrefs()

	// --- AWS setup (optional) ---
	var publisher aws_pkg.SNSPublisher
	if cfg.OrderEventsTopicARN != "" {
		awsCfg, err := aws_pkg.LoadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			log.Fatal("Failed to load AWS config", zap.Error(err))
		}
		publisher = aws_pkg.NewSNSClient(awsCfg, cfg.AWSEndpoint)
	} else {
		log.Info("ORDER_EVENTS_TOPIC_ARN not set, order events disabled")
	}

	// --- Dependency injection ---
	st := store.New(store.Deps{
		Preferences:   prefs,
		Publisher:     publisher,
		OrderTopicARN: cfg.OrderEventsTopicARN,
		Logger:        log.Named("store"),
		BcryptCost:    cfg.BcryptCost,
	})
	if err := st.RestoreTheme(ctx); err != nil {
		log.Warn("Could not restore theme, using default", zap.Error(err))
	}
	rt := router.New(st, log.Named("router"))
	toaster := notify.NewToaster(cfg.ToastDuration, log.Named("toast"))

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst, 5*time.Minute)
	go loginLimiter.Run(ctx)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(apperrors.ErrorMiddleware())

	routes.Register(r, routes.Controllers{
		Session: controllers.NewSessionController(st, rt, toaster),
		Catalog: controllers.NewCatalogController(st, toaster),
		Cart:    controllers.NewCartController(st, toaster),
		Order:   controllers.NewOrderController(st, rt, toaster),
		Admin:   controllers.NewAdminController(st, toaster),
		Page:    controllers.NewPageController(st, rt, toaster),
	}, st, loginLimiter)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("EMS started", zap.String("port", cfg.Port), zap.String("preferences", cfg.Preferences))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	toaster.Dismiss()
	log.Info("EMS stopped gracefully")
}

// openPreferences connects the configured backend and returns a closer for it.
func openPreferences(ctx context.Context, cfg config.Config, log *zap.Logger) (preferences.Store, func(), error) {
	switch cfg.Preferences {
	case config.BackendRedis:
		client, err := preferences.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to Redis for preferences")
		return preferences.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Error("Redis close error", zap.Error(err))
			}
		}, nil

	case config.BackendPostgres:
		db, err := preferences.OpenPostgres(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to PostgreSQL for preferences")
		return preferences.NewGormStore(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Database close error", zap.Error(err))
				}
			}
		}, nil

	case config.BackendMemory:
		log.Info("Using in-memory preferences; theme will not survive a restart")
		return preferences.NewMemoryStore(), func() {}, nil
	}

	bs, err := preferences.OpenBolt(cfg.PrefsPath)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Using file preferences", zap.String("path", cfg.PrefsPath))
	return bs, func() {
		if err := bs.Close(); err != nil {
			log.Error("Preference file close error", zap.Error(err))
		}
	}, nil
}
