package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	apimw "github.com/hamed0406/uptimevalidator/internal/httpapi/middleware"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
	"github.com/hamed0406/uptimevalidator/internal/theme"
)

type Server struct {
	Logger    *zap.Logger
	Validator *monitor.Validator
	Themes    *theme.Manager
	NewID     func() domain.MonitorID
}

func NewServer(l *zap.Logger, v *monitor.Validator, tm *theme.Manager) *Server {
	return &Server{
		Logger:    l,
		Validator: v,
		Themes:    tm,
		NewID:     func() domain.MonitorID { return domain.MonitorID(uuid.NewString()) },
	}
}

// Router builds the HTTP handler. Empty origins allows every origin; a zero
// rpm disables that rate limit.
func (s *Server) Router(keys apimw.Keys, origins []string, publicRPM, publicBurst, adminRPM, adminBurst int) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)
	if len(origins) == 0 {
		r.Use(cors.AllowAll().Handler)
	} else {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireAny(keys))
		r.Use(apimw.RateLimit(publicRPM, publicBurst))
		r.Get("/api/availability", s.handleAvailability)
		r.Get("/api/monitor-types", s.handleMonitorTypes)
		r.Post("/api/validate/monitor", s.handleValidateMonitor)
		r.Post("/api/validate/field", s.handleValidateField)
		r.Get("/api/theme", s.handleGetTheme)
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireAdmin(keys))
		r.Use(apimw.RateLimit(adminRPM, adminBurst))
		r.Post("/api/monitors", s.handleCreateMonitor)
		r.Put("/api/theme", s.handleSetTheme)
	})

	return r
}

// WatchThemes logs theme changes until ctx is cancelled.
func (s *Server) WatchThemes(ctx context.Context) {
	ch, cancel := s.Themes.Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case th, ok := <-ch:
				if !ok {
					return
				}
				s.Logger.Info("theme_changed", zap.String("theme", th.Name), zap.Bool("dark", th.IsDark))
			}
		}
	}()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Logger.Info("http_request",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
		)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// decodeJSON keeps numbers as json.Number so integer fields stay exact.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.UseNumber()
	return dec.Decode(dst)
}
