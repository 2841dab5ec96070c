package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/uptimevalidator/internal/config"
	"github.com/hamed0406/uptimevalidator/internal/httpapi"
	apimw "github.com/hamed0406/uptimevalidator/internal/httpapi/middleware"
	"github.com/hamed0406/uptimevalidator/internal/logging"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
	"github.com/hamed0406/uptimevalidator/internal/theme"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	themes := theme.NewManager("light")
	if cfg.ThemeFile != "" {
		th, err := themes.LoadFile(cfg.ThemeFile)
		if err != nil {
			logger.Fatal("theme_file_failed", zap.String("path", cfg.ThemeFile), zap.Error(err))
		}
		logger.Info("theme_loaded", zap.String("theme", th.Name), zap.String("path", cfg.ThemeFile))
	}
	if err := themes.Set(cfg.Theme); err != nil {
		logger.Warn("theme_unknown", zap.String("theme", cfg.Theme), zap.Error(err))
	}

	api := httpapi.NewServer(logger, monitor.NewValidator(nil), themes)
	api.WatchThemes(ctx)

	keys := apimw.Keys{Public: cfg.PublicAPIKeys, Admin: cfg.AdminAPIKeys}
	if len(cfg.PublicAPIKeys)+len(cfg.AdminAPIKeys) == 0 {
		logger.Warn("auth_disabled", zap.String("reason", "no API keys configured"))
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(keys, cfg.AllowedOrigins, cfg.PublicRPM, cfg.PublicBurst, cfg.AdminRPM, cfg.AdminBurst),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("api_shutdown", zap.Error(err))
		}
	}()

	logger.Info("api_listen",
		zap.String("addr", cfg.Addr),
		zap.String("theme", api.Themes.Current().Name),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("api_listen_failed", zap.Error(err))
	}
	logger.Info("api_stopped")
}
