package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apimw "github.com/hamed0406/uptimevalidator/internal/httpapi/middleware"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
	"github.com/hamed0406/uptimevalidator/internal/theme"
)

func TestHealthzIsOpen(t *testing.T) {
	_, ts := setupServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/healthz", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}

func TestPublicRoutesNeedKey(t *testing.T) {
	_, ts := setupServer(t)
	cases := []struct {
		key  string
		want int
	}{
		{"", http.StatusUnauthorized},
		{"nope", http.StatusUnauthorized},
		{"pub_test", http.StatusOK},
		{"adm_test", http.StatusOK},
	}
	for _, c := range cases {
		resp := do(t, http.MethodGet, ts.URL+"/api/monitor-types", c.key, "")
		if resp.StatusCode != c.want {
			t.Fatalf("key %q: want %d, got %d", c.key, c.want, resp.StatusCode)
		}
	}
}

func TestRouter_NoKeysIsOpen(t *testing.T) {
	srv := NewServer(zap.NewNop(), monitor.NewValidator(nil), theme.NewManager("light"))
	h := srv.Router(apimw.Keys{}, nil, 0, 0, 0, 0)

	req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"name":"dark"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200 without configured keys, got %d", rr.Code)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	srv := NewServer(zap.NewNop(), monitor.NewValidator(nil), theme.NewManager("light"))
	h := srv.Router(apimw.Keys{}, []string{"https://app.example.com"}, 0, 0, 0, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/monitor-types", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("allowed origin not echoed: %q", got)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/monitor-types", nil)
	req2.Header.Set("Origin", "https://evil.example.com")
	rr2 := httptest.NewRecorder()
	h.ServeHTTP(rr2, req2)
	if got := rr2.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected CORS header for foreign origin: %q", got)
	}
}

func TestRequestsAndThemeChangesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tm := theme.NewManager("light")
	srv := NewServer(zap.New(core), monitor.NewValidator(nil), tm)
	h := srv.Router(apimw.Keys{}, nil, 0, 0, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv.WatchThemes(ctx)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if n := logs.FilterMessage("http_request").Len(); n != 1 {
		t.Fatalf("want one request log, got %d", n)
	}

	if err := tm.Set("dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	deadline := time.Now().Add(time.Second)
	for logs.FilterMessage("theme_changed").Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("theme change was not logged")
		}
		time.Sleep(5 * time.Millisecond)
	}
	entry := logs.FilterMessage("theme_changed").All()[0]
	if entry.ContextMap()["theme"] != "dark" {
		t.Fatalf("unexpected fields: %v", entry.ContextMap())
	}
}

func TestCreateMonitor_LogsCallerRole(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := NewServer(zap.New(core), monitor.NewValidator(nil), theme.NewManager("light"))
	keys := apimw.Keys{Public: []string{"pub_test"}, Admin: []string{"adm_test"}}
	h := srv.Router(keys, nil, 0, 0, 0, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/monitors", strings.NewReader(`{"type":"ping","fields":{"host":"example.com"}}`))
	req.Header.Set("Authorization", "Bearer adm_test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rr.Code, rr.Body.String())
	}

	entries := logs.FilterMessage("monitor_created").All()
	if len(entries) != 1 {
		t.Fatalf("want one monitor_created log, got %d", len(entries))
	}
	if role := entries[0].ContextMap()["role"]; role != string(apimw.RoleAdmin) {
		t.Fatalf("role=%v want admin", role)
	}
}
