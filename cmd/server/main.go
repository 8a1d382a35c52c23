package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tutorbooks/internal/auth"
	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/config"
	"github.com/mmynk/tutorbooks/internal/middleware"
	"github.com/mmynk/tutorbooks/internal/service"
	"github.com/mmynk/tutorbooks/internal/storage/sqlstore"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
	"github.com/mmynk/tutorbooks/pkg/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DBDriver)

	authenticator := auth.NewPasswordAuthenticator(store)
	if cfg.AdminEmail != "" {
		created, err := authenticator.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			slog.Error("Failed to create admin account", "email", cfg.AdminEmail, "error", err)
			os.Exit(1)
		}
		if created {
			slog.Info("Admin account created", "email", cfg.AdminEmail)
		}
	}
	if cfg.UsesDevSecret() {
		slog.Warn("JWT_SECRET is not set, using the development secret")
	}

	bo := backoffice.New(store, backoffice.WithLowBalanceThreshold(cfg.LowBalanceThreshold))

	mux := http.NewServeMux()
	service.Mount(mux, service.Deps{
		Backoffice:    bo,
		Authenticator: authenticator,
		Staff:         store,
		JWT:           auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
		Logger:        slog.Default(),
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.HandleFunc("/", staticHandler(staticDir))

	handler := middleware.Logging(middleware.CORS(cfg.AllowedOrigins, mux))

	// h2c serves HTTP/2 without TLS for Connect and gRPC clients.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// staticHandler serves the front end. Unknown paths fall back to index.html.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/"+apiconnect.Package+".") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
