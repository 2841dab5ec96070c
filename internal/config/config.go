package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr           string        // API bind address, e.g., "127.0.0.1:8080" or ":8080" (Docker)
	LogDir         string        // logs directory
	LogLevel       string        // zap level name, empty means info
	PublicAPIKeys  []string      // keys allowed on read/validate routes
	AdminAPIKeys   []string      // keys allowed on admin routes
	PublicRPM      int           // requests per minute per IP, 0 disables
	PublicBurst    int
	AdminRPM       int
	AdminBurst     int
	AllowedOrigins []string      // CORS origins; empty allows all
	Theme          string        // initial theme name
	ThemeFile      string        // optional YAML theme registered at startup
	BackendURL     string        // remote validation service, empty means validate locally
	BackendAPIKey  string        // key sent to the remote validation service
	BackendTimeout time.Duration // HTTP timeout for the remote validation call
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	theme := strings.TrimSpace(os.Getenv("THEME"))
	if theme == "" {
		theme = "light"
	}

	return Config{
		Addr:           addr,
		LogDir:         logDir,
		LogLevel:       strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		PublicAPIKeys:  splitList(os.Getenv("PUBLIC_API_KEYS")),
		AdminAPIKeys:   splitList(os.Getenv("ADMIN_API_KEYS")),
		PublicRPM:      envInt("PUBLIC_RPM", 120),
		PublicBurst:    envInt("PUBLIC_BURST", 60),
		AdminRPM:       envInt("ADMIN_RPM", 60),
		AdminBurst:     envInt("ADMIN_BURST", 30),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		Theme:          theme,
		ThemeFile:      strings.TrimSpace(os.Getenv("THEME_FILE")),
		BackendURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("BACKEND_URL")), "/"),
		BackendAPIKey:  strings.TrimSpace(os.Getenv("BACKEND_API_KEY")),
		BackendTimeout: time.Duration(envInt("BACKEND_TIMEOUT_MS", 5000)) * time.Millisecond,
	}
}

// envInt returns the non-negative integer in key, or fallback.
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

// splitList parses "a,b, c" into [a b c], dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
