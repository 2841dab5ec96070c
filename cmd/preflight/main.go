// cmd/preflight/main.go
package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/uptimevalidator/internal/validate"
)

type report struct {
	ok    []string
	warn  []string
	fails error
}

func splitKeys(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// check inspects the environment read through getenv. Every problem is
// collected rather than stopping at the first.
func check(getenv func(string) string) report {
	var r report
	fail := func(format string, args ...any) { r.fails = multierr.Append(r.fails, fmt.Errorf(format, args...)) }

	for _, name := range []string{"ADMIN_API_KEYS", "PUBLIC_API_KEYS"} {
		raw := strings.TrimSpace(getenv(name))
		keys := splitKeys(raw)
		switch {
		case len(keys) == 0:
			fail("%s is empty", name)
		case !validate.IsValidIdentifierArray(keys):
			fail("%s contains a key with unsafe characters", name)
		default:
			r.ok = append(r.ok, fmt.Sprintf("%s: %d key(s)", name, len(keys)))
		}
		if strings.Contains(raw, " ") {
			r.warn = append(r.warn, name+" contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if addr := strings.TrimSpace(getenv("ADDR")); addr == "" {
		r.warn = append(r.warn, "ADDR is empty; default 127.0.0.1:8080 will be used.")
	} else if _, port, err := net.SplitHostPort(addr); err != nil {
		fail("ADDR=%s: %v", addr, err)
	} else if n, err := strconv.Atoi(port); err != nil || !validate.IsValidPort(n) {
		fail("ADDR=%s: port must be between %d and %d", addr, validate.MinPort, validate.MaxPort)
	} else {
		r.ok = append(r.ok, "ADDR="+addr)
	}

	if backend := strings.TrimSpace(getenv("BACKEND_URL")); backend != "" {
		if validate.IsValidURL(backend) {
			r.ok = append(r.ok, "BACKEND_URL="+backend)
		} else {
			fail("BACKEND_URL=%s is not a valid http(s) URL", backend)
		}
	}

	origins := splitKeys(getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		r.warn = append(r.warn, "ALLOWED_ORIGINS empty; every origin will be allowed.")
	}
	for _, o := range origins {
		if !validate.IsValidURL(o) {
			fail("ALLOWED_ORIGINS entry %q is not a valid http(s) URL", o)
		}
	}
	if len(origins) > 0 && r.fails == nil {
		r.ok = append(r.ok, "ALLOWED_ORIGINS="+strings.Join(origins, ","))
	}
	return r
}

func main() {
	r := check(os.Getenv)
	for _, m := range r.warn {
		fmt.Fprintln(os.Stderr, "⚠", m)
	}
	for _, m := range r.ok {
		fmt.Println("✔", m)
	}
	if r.fails != nil {
		for _, err := range multierr.Errors(r.fails) {
			fmt.Fprintln(os.Stderr, "✖", err)
		}
		os.Exit(1)
	}
	fmt.Println("✔ preflight passed")
}
