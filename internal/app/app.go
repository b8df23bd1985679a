package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alumni-sante/sondage-backend/internal/adapter/sheets"
	authpkg "github.com/alumni-sante/sondage-backend/internal/auth"
	"github.com/alumni-sante/sondage-backend/internal/cache"
	"github.com/alumni-sante/sondage-backend/internal/config"
	authsvc "github.com/alumni-sante/sondage-backend/internal/service/auth"
	"github.com/alumni-sante/sondage-backend/internal/service/results"
	"github.com/alumni-sante/sondage-backend/internal/transport/middleware"
	"github.com/alumni-sante/sondage-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// cache, the Sheets client, services and HTTP handlers, and runs the
// server until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_mode", cfg.Cache.Mode),
	)

	// Cache backend.
	snapshotCache, redisCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer snapshotCache.Close()

	// Sheets adapter.
	sheetsClient, err := sheets.NewClient(cfg.Sheets, logger)
	if err != nil {
		return fmt.Errorf("init sheets client: %w", err)
	}

	// Services.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(logger, sheetsClient, jwtMgr, cfg.Auth)
	resultsService := results.NewService(logger, sheetsClient, snapshotCache, cfg.Cache.TTL)

	// Warm the snapshot once at startup so the first request does not pay
	// the Sheets round trip. Failure is not fatal: requests fall back to
	// fetching on demand.
	warmCtx, cancelWarm := context.WithTimeout(ctx, cfg.Sheets.Timeout)
	if _, err := resultsService.Refresh(warmCtx); err != nil {
		logger.Warn("initial snapshot fetch failed", slog.String("error", err.Error()))
	}
	cancelWarm()

	// Handlers.
	authHandler := rest.NewAuthHandler(authService, logger)
	resultsHandler := rest.NewResultsHandler(resultsService, logger)
	dataHandler := rest.NewDataHandler(resultsService, logger)

	var healthHandler *rest.HealthHandler
	if redisCache != nil {
		healthHandler = rest.NewHealthHandler(redisCache, BuildVersion())
	} else {
		healthHandler = rest.NewHealthHandler(nil, BuildVersion())
	}

	// Middleware.
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	requireAuth := middleware.RequireAuth(authService)
	loginLimit := limiter.Limit(cfg.Auth.LoginRateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /api/login", loginLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/results", requireAuth(http.HandlerFunc(resultsHandler.Results)))
	mux.Handle("GET /api/data", requireAuth(http.HandlerFunc(dataHandler.Data)))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return refreshLoop(ctx, logger, resultsService, cfg.Cache.TTL)
	})

	return g.Wait()
}

// refreshLoop re-fetches the spreadsheet snapshot on the cache TTL cadence
// so entries are replaced before they expire. Fetch failures are logged and
// retried on the next tick; the stale snapshot stays served meanwhile.
func refreshLoop(ctx context.Context, logger *slog.Logger, svc *results.Service, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := svc.Refresh(ctx); err != nil {
				logger.Warn("background snapshot refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}

// newCache builds the configured cache backend. The second return value is
// non-nil only for Redis, whose connection the health endpoints can ping.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, *cache.Redis, error) {
	opts := cache.DefaultOptions()
	opts.DefaultTTL = cfg.TTL

	switch cfg.Mode {
	case "redis":
		opts.RedisAddr = cfg.RedisAddr
		opts.RedisPassword = cfg.RedisPassword
		opts.RedisDB = cfg.RedisDB

		r := cache.NewRedis(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := r.Ping(pingCtx); err != nil {
			r.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return r, r, nil
	default:
		return cache.NewMemory(opts), nil, nil
	}
}
