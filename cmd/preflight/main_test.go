package main

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestCheck_Passes(t *testing.T) {
	r := check(envOf(map[string]string{
		"ADMIN_API_KEYS":  "adm_1",
		"PUBLIC_API_KEYS": "pub_1,pub_2",
		"ADDR":            ":8080",
		"BACKEND_URL":     "https://validator.example.com",
		"ALLOWED_ORIGINS": "https://app.example.com",
	}))
	if r.fails != nil {
		t.Fatalf("unexpected failures: %v", r.fails)
	}
	if len(r.warn) != 0 {
		t.Fatalf("unexpected warnings: %v", r.warn)
	}
	if len(r.ok) != 5 {
		t.Fatalf("want 5 ok lines, got %v", r.ok)
	}
}

func TestCheck_CollectsEveryFailure(t *testing.T) {
	r := check(envOf(map[string]string{
		"ADMIN_API_KEYS":  "",
		"PUBLIC_API_KEYS": "pub<script>",
		"ADDR":            "127.0.0.1:70000",
		"BACKEND_URL":     "ftp://validator",
		"ALLOWED_ORIGINS": "https://ok.example.com, javascript:alert(1)",
	}))
	errs := multierr.Errors(r.fails)
	cases := []string{
		"ADMIN_API_KEYS is empty",
		"PUBLIC_API_KEYS contains a key with unsafe characters",
		"port must be between 1 and 65535",
		"BACKEND_URL=ftp://validator",
		`"javascript:alert(1)"`,
	}
	if len(errs) != len(cases) {
		t.Fatalf("want %d errors, got %d: %v", len(cases), len(errs), r.fails)
	}
	for i, want := range cases {
		if !strings.Contains(errs[i].Error(), want) {
			t.Fatalf("errs[%d]=%q missing %q", i, errs[i], want)
		}
	}
}

func TestCheck_Warnings(t *testing.T) {
	r := check(envOf(map[string]string{
		"ADMIN_API_KEYS":  "adm_1, adm_2",
		"PUBLIC_API_KEYS": "pub_1",
	}))
	if r.fails != nil {
		t.Fatalf("unexpected failures: %v", r.fails)
	}
	if len(r.warn) != 3 {
		t.Fatalf("want spaces, ADDR and origins warnings, got %v", r.warn)
	}
}
