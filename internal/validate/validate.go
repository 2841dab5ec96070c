// Package validate holds the primitive predicates and parsers used for monitor
// configuration input. Every function accepts arbitrary values, never panics,
// and reports bad input through its return value.
package validate

import (
	"encoding/json"
	"math"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxSafeInteger is the largest integer a float64 represents exactly (2^53-1).
const MaxSafeInteger int64 = 1<<53 - 1

const (
	MinPort = 1
	MaxPort = 65535
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	numericPattern = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)
	floatPrefix    = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
	dottedDigits   = regexp.MustCompile(`^[\d.]+$`)
	labelPattern   = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)
	tldPattern     = regexp.MustCompile(`^([A-Za-z]{2,63}|xn--[A-Za-z0-9-]{1,59})$`)
)

// markup and quoting characters rejected by URL, host and identifier checks
const unsafeChars = "<>'\"`"

func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsValidURL accepts absolute http(s) URLs only. It rejects markup and quote
// characters, path traversal (plain or percent-encoded), whitespace,
// protocol-relative and scheme-only strings, out-of-range ports, and URLs
// that smuggle a second scheme.
func IsValidURL(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	if strings.ContainsAny(s, unsafeChars) || strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "//") || strings.HasSuffix(lower, "://") {
		return false
	}
	var rest string
	switch {
	case strings.HasPrefix(lower, "http://"):
		rest = lower[len("http://"):]
	case strings.HasPrefix(lower, "https://"):
		rest = lower[len("https://"):]
	default:
		return false
	}
	if strings.Contains(rest, "http://") || strings.Contains(rest, "https://") {
		return false
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || !IsValidPort(n) {
			return false
		}
	}
	// u.Path is already unescaped, so %2e%2e shows up as ".." here
	if strings.Contains(u.Path, "..") {
		return false
	}
	return isHost(u.Hostname())
}

// IsValidHost accepts localhost, IPv4 and IPv6 literals (bracketed or bare)
// and RFC 1123 hostnames.
func IsValidHost(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, unsafeChars) || strings.Contains(s, "..") {
		return false
	}
	return isHost(s)
}

func isHost(s string) bool {
	if s == "" {
		return false
	}
	if strings.EqualFold(s, "localhost") {
		return true
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		ip := net.ParseIP(s[1 : len(s)-1])
		return ip != nil && ip.To4() == nil
	}
	if strings.Contains(s, ":") {
		return net.ParseIP(s) != nil
	}
	if dottedDigits.MatchString(s) {
		return net.ParseIP(s) != nil
	}
	return isHostname(s)
}

func isHostname(s string) bool {
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if !labelPattern.MatchString(label) {
			return false
		}
	}
	return true
}

// IsValidFQDN requires at least two labels and an alphabetic (or punycode) TLD.
func IsValidFQDN(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" || len(s) > 253 {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !labelPattern.MatchString(label) {
			return false
		}
	}
	return tldPattern.MatchString(labels[len(labels)-1])
}

// IsValidInteger reports whether v is a decimal integer string within the
// safe-integer range.
func IsValidInteger(v any) bool {
	_, ok := parseInteger(v)
	return ok
}

func parseInteger(v any) (int64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if !integerPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n > MaxSafeInteger || n < -MaxSafeInteger {
		return 0, false
	}
	return n, true
}

// IsValidNumeric reports whether v is a string holding a finite decimal number.
func IsValidNumeric(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if !numericPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsValidPort accepts integer values (including integral float64s decoded
// from JSON) in [1, 65535]. Strings are never ports.
func IsValidPort(v any) bool {
	n, ok := AsInt(v)
	return ok && n >= MinPort && n <= MaxPort
}

// AsInt converts Go numeric values to int64 when they hold an exact integer.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func uintToInt(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > float64(MaxSafeInteger) || f < -float64(MaxSafeInteger) {
		return 0, false
	}
	return int64(f), true
}

// IsValidIdentifier rejects empty strings and anything carrying markup,
// quoting, statement separators or path traversal.
func IsValidIdentifier(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, unsafeChars+";&") && !strings.Contains(s, "..")
}

func IsValidIdentifierArray(v any) bool {
	switch arr := v.(type) {
	case []string:
		for _, s := range arr {
			if !IsValidIdentifier(s) {
				return false
			}
		}
		return true
	case []any:
		for _, s := range arr {
			if !IsValidIdentifier(s) {
				return false
			}
		}
		return true
	}
	return false
}

// SafeInteger returns the parsed integer when v passes IsValidInteger, else fallback.
func SafeInteger(v any, fallback int64) int64 {
	if n, ok := parseInteger(v); ok {
		return n
	}
	return fallback
}

// ParseUptimeValue reads a percentage such as "99.5%" and clamps it to
// [0, 100]. Unparseable or non-finite input yields 0.
func ParseUptimeValue(v any) float64 {
	var f float64
	switch x := v.(type) {
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if r == '%' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, x)
		m := floatPrefix.FindString(cleaned)
		if m == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		n, ok := asFloat(v)
		if !ok {
			return 0
		}
		f = n
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Max(0, math.Min(100, f))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := AsInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

var scriptPrefixes = []string{"javascript:", "data:", "vbscript:"}

// SafeGetHostname returns the hostname of an http(s) URL, or "" for anything
// that does not parse cleanly.
func SafeGetHostname(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, p := range scriptPrefixes {
		if strings.HasPrefix(lower, p) {
			return ""
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.Hostname()
}
