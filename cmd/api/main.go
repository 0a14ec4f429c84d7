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
	"go.uber.org/zap"

	"github.com/BruksfildServices01/laundry-marketplace/internal/audit"
	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/cache"
	"github.com/BruksfildServices01/laundry-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/laundry-marketplace/internal/db"
	"github.com/BruksfildServices01/laundry-marketplace/internal/handlers"
	"github.com/BruksfildServices01/laundry-marketplace/internal/logger"
	"github.com/BruksfildServices01/laundry-marketplace/internal/middleware"
	"github.com/BruksfildServices01/laundry-marketplace/internal/routes"
	"github.com/BruksfildServices01/laundry-marketplace/internal/storage"
	"github.com/BruksfildServices01/laundry-marketplace/internal/validators"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.AdminEmail != "" {
		created, err := auth.EnsureAdmin(ctx, db, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info("admin user created", zap.String("email", cfg.AdminEmail))
		}
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	// ======================================================
	// 🧱 OPTIONAL BACKENDS
	// ======================================================
	var merchantCache cache.MerchantCache = cache.Nop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL, log)
		if err != nil {
			log.Warn("redis unavailable, merchant cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			merchantCache = rc
		}
	}

	var images storage.ImageStore
	if cfg.S3.Enabled() {
		images = storage.NewS3Store(cfg.S3)
		log.Info("image uploads enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	var emails validators.DomainChecker = validators.AcceptAll{}
	if cfg.CheckEmailDomain {
		emails = validators.NewDNSDomainChecker()
	}

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	authLimiter.StartCleanup(time.Minute, ctx.Done())

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = handlers.MaxImageSize + (1 << 20)

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Log:         log,
		Audit:       dispatcher,
		Cache:       merchantCache,
		Images:      images,
		Emails:      emails,
		AuthLimiter: authLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
