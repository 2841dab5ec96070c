package monitorfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/hamed0406/uptimevalidator/internal/domain"
)

func TestParse_InlineFields(t *testing.T) {
	f, err := Parse([]byte(`
monitors:
  - name: api
    type: http
    url: https://api.example.com/health
    timeout: 5000
  - name: db
    type: port
    host: db.internal
    port: 5432
  - name: bare
    type: ping
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Monitors) != 3 {
		t.Fatalf("want 3 monitors, got %d", len(f.Monitors))
	}
	api := f.Monitors[0]
	if api.MonitorType() != domain.MonitorHTTP || api.Fields["url"] != "https://api.example.com/health" || api.Fields["timeout"] != 5000 {
		t.Fatalf("unexpected entry: %+v", api)
	}
	if _, ok := api.Fields["name"]; ok {
		t.Fatalf("name leaked into fields: %+v", api.Fields)
	}
	if f.Monitors[1].Fields["port"] != 5432 {
		t.Fatalf("port not decoded as int: %#v", f.Monitors[1].Fields["port"])
	}
	if f.Monitors[2].Fields == nil {
		t.Fatalf("entries without fields should get an empty map")
	}
}

func TestParse_NameErrorsAreCombined(t *testing.T) {
	_, err := Parse([]byte(`
monitors:
  - type: http
  - name: "a;rm"
    type: ping
  - name: web
    type: http
  - name: web
    type: http
`))
	if err == nil {
		t.Fatalf("want error")
	}
	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("want 3 errors, got %d: %v", len(errs), err)
	}
	cases := []string{
		"monitors[0]: name is required",
		"monitors[1] (a;rm): name contains unsafe characters",
		"monitors[3] (web): duplicate name, first used by monitors[2]",
	}
	for i, want := range cases {
		if errs[i].Error() != want {
			t.Fatalf("errs[%d]=%q want %q", i, errs[i], want)
		}
	}
}

func TestParse_BadInput(t *testing.T) {
	cases := []struct {
		name, data, want string
	}{
		{"bad yaml", "monitors: [", "failed to parse YAML"},
		{"empty", "monitors: []", "no monitors defined"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.data))
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: got %v want %q", c.name, err, c.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitors.yaml")
	if err := os.WriteFile(path, []byte("monitors:\n  - name: a\n    type: dns\n    host: example.com\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Monitors[0].Name != "a" || f.Monitors[0].Fields["host"] != "example.com" {
		t.Fatalf("unexpected: %+v", f.Monitors[0])
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("want error for missing file")
	}
}
