package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/dealdesk/internal/auth"
	"github.com/mmynk/dealdesk/internal/branding"
	"github.com/mmynk/dealdesk/internal/config"
	"github.com/mmynk/dealdesk/internal/middleware"
	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/seed"
	"github.com/mmynk/dealdesk/internal/service"
	"github.com/mmynk/dealdesk/internal/storage/sqlite"
	"github.com/mmynk/dealdesk/pkg/api"
	"github.com/mmynk/dealdesk/pkg/api/apiconnect"
	"github.com/mmynk/dealdesk/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.SlogLevel(), cfg.LogFormat)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		logger.Error("Failed to create database directory", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	ctx := context.Background()
	if cfg.AdminEmail != "" {
		if _, err := seed.EnsureAdmin(ctx, authenticator, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Error("Failed to bootstrap admin", "email", cfg.AdminEmail, "error", err)
			os.Exit(1)
		}
	}
	if cfg.SeedDemo {
		if _, err := seed.Demo(ctx, store, authenticator); err != nil {
			logger.Error("Failed to load demo data", "error", err)
			os.Exit(1)
		}
	}

	metrics := middleware.NewMetrics()

	// Metrics wrap everything so rejected calls are counted too. Auth runs
	// before logging so log lines carry the caller.
	protected := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)
	public := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewCommissionServiceHandler(service.NewCommissionService(store, metrics), protected))
	mux.Handle(apiconnect.NewTransactionServiceHandler(service.NewTransactionService(store), protected))
	mux.Handle(apiconnect.NewChecklistServiceHandler(service.NewChecklistService(store), protected))

	brandingManager := branding.NewManager(store, models.DefaultBranding(), logger)
	mux.Handle(apiconnect.NewBrandingServiceHandler(service.NewBrandingService(brandingManager), protected))
	mux.Handle(apiconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store, logger), public))

	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			logger.Warn("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		logger.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	logger.Info("Serving static files", "path", staticDir)
	mux.Handle("/", spaHandler(staticDir))

	handler := middleware.RequestLogger(logger, middleware.CORS(cfg.CORSOrigin, mux))
	handler = http.TimeoutHandler(handler, cfg.RequestTimeout, "request timed out")

	server := &http.Server{
		Addr: cfg.Addr,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logger.Info("Shutting down")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}
}

// spaHandler serves the built dashboard from dir, falling back to index.html
// for client-side routes.
func spaHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown procedures must not get the SPA shell.
		if strings.HasPrefix(r.URL.Path, "/"+api.ProtocolPackage+".") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}
