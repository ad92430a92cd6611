package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dunerides/internal/config"
	dbValkey "github.com/kailas-cloud/dunerides/internal/db/valkey"
	"github.com/kailas-cloud/dunerides/internal/domain/session"
	logpkg "github.com/kailas-cloud/dunerides/internal/logger"
	"github.com/kailas-cloud/dunerides/internal/metrics"
	catalogrepo "github.com/kailas-cloud/dunerides/internal/repository/catalog"
	sessionrepo "github.com/kailas-cloud/dunerides/internal/repository/session"
	chiTransport "github.com/kailas-cloud/dunerides/internal/transport/chi"
	"github.com/kailas-cloud/dunerides/internal/usecase/guard"
	healthuc "github.com/kailas-cloud/dunerides/internal/usecase/health"
	searchuc "github.com/kailas-cloud/dunerides/internal/usecase/search"
	weatheruc "github.com/kailas-cloud/dunerides/internal/usecase/weather"
	"github.com/kailas-cloud/dunerides/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dunerides API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("session_source", cfg.Auth.SessionSource),
	)

	metrics.RegisterSiteMetrics()

	catalog, err := catalogrepo.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("vehicles", len(catalog.Vehicles())),
		zap.Int("tours", len(catalog.Tours())),
		zap.Int("posts", len(catalog.Posts())),
	)

	searchSvc := searchuc.New(catalog).WithPosts(cfg.Search.IncludePosts)

	weather := weatheruc.New(cfg.Weather.Location, cfg.Weather.Latency(), logger)
	if cfg.Weather.Timezone != "" {
		// Validate already checked the zone resolves.
		zone, _ := time.LoadLocation(cfg.Weather.Timezone)
		weather.WithTimeZone(zone)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	source, pinger, closeStore := buildSessionSource(ctx, cfg, logger)
	defer closeStore()

	healthSvc := healthuc.New(catalog.Catalog(), pinger)

	server := chiTransport.NewServer(searchSvc, weather, catalog, healthSvc, chiTransport.Guards{
		User:       guard.New(source, guard.RequireUser, cfg.Auth.LoginPath),
		Admin:      guard.New(source, guard.RequireAdmin, cfg.Auth.LoginPath),
		CookieName: cfg.Auth.CookieName,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if origins := nonEmpty(cfg.CORS.AllowedOrigins); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildSessionSource picks the guard session source from config. For the
// store source the readiness probe runs in the background: guards answer
// "resolving" until it succeeds instead of blocking startup.
func buildSessionSource(
	ctx context.Context,
	cfg config.Config,
	logger *zap.Logger,
) (guard.SessionSource, healthuc.DBPinger, func()) {
	noop := func() {}

	switch cfg.Auth.SessionSource {
	case config.SessionStore:
		store, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create session store", zap.Error(err))
		}

		src := sessionrepo.NewStoreSource(store, cfg.Auth.KeyPrefix, logger).
			WithLookupTimeout(time.Duration(cfg.Database.LookupTimeoutMs) * time.Millisecond)

		go func() {
			timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
			if err := store.WaitForReady(ctx, timeout); err != nil {
				logger.Error("Session store not ready, guards stay resolving", zap.Error(err))
				return
			}
			src.MarkReady()
			logger.Info("Connected to session store")
		}()

		return src, store, store.Close

	case config.SessionJWT:
		src, err := sessionrepo.NewJWTSource(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		if err != nil {
			logger.Fatal("Failed to create JWT session source", zap.Error(err))
		}
		return src, nil, noop

	case config.SessionStatic:
		u := cfg.Auth.StaticUser
		if u.ID == "" {
			return sessionrepo.NewStaticSource(session.Anonymous()), nil, noop
		}
		logger.Warn("Static session source in use, every request is signed in",
			zap.String("user_id", u.ID),
			zap.String("role", u.Role),
		)
		return sessionrepo.NewStaticSource(session.Authenticated(session.User{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  session.Role(u.Role),
		})), nil, noop

	default:
		return sessionrepo.NewStaticSource(session.Anonymous()), nil, noop
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorResponseCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", chi.RouteContext(r.Context()).RoutePattern()),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
