package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/uptimevalidator/internal/availability"
)

// Theme maps color slots to concrete colors. Status holds the monitor status
// slots (up, down, pending, ...); Colors holds the general palette.
type Theme struct {
	Name   string            `json:"name" yaml:"name"`
	IsDark bool              `json:"isDark" yaml:"is_dark"`
	Colors map[string]string `json:"colors" yaml:"colors"`
	Status map[string]string `json:"status" yaml:"status"`
}

func Light() Theme {
	return Theme{
		Name: "light",
		Colors: map[string]string{
			"primary":    "#3b82f6",
			"background": "#ffffff",
			"text":       "#111827",
			"success":    "#10b981",
			"warning":    "#f59e0b",
			"error":      "#ef4444",
		},
		Status: map[string]string{
			"up":      "#10b981",
			"down":    "#ef4444",
			"pending": "#f59e0b",
			"paused":  "#6b7280",
		},
	}
}

func Dark() Theme {
	return Merge(Light(), Theme{
		Name:   "dark",
		IsDark: true,
		Colors: map[string]string{
			"background": "#111827",
			"text":       "#f9fafb",
			"success":    "#34d399",
			"warning":    "#fbbf24",
			"error":      "#f87171",
		},
		Status: map[string]string{
			"up":      "#34d399",
			"down":    "#f87171",
			"pending": "#fbbf24",
		},
	})
}

// Merge returns a new theme: base with every non-empty value of override
// laid over it. Neither input is modified.
func Merge(base, override Theme) Theme {
	out := Theme{
		Name:   base.Name,
		IsDark: base.IsDark || override.IsDark,
		Colors: mergeMap(base.Colors, override.Colors),
		Status: mergeMap(base.Status, override.Status),
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	return out
}

func mergeMap(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Resolve returns the color for a token, looking at Status, then Colors,
// then the built-in light theme.
func (t Theme) Resolve(token availability.ColorToken) string {
	key := string(token)
	if c, ok := t.Status[key]; ok {
		return c
	}
	if c, ok := t.Colors[key]; ok {
		return c
	}
	fallback := Light()
	if c, ok := fallback.Status[key]; ok {
		return c
	}
	return fallback.Colors[key]
}

// AvailabilityColor resolves the availability color of percentage p.
func (t Theme) AvailabilityColor(p float64) string {
	return t.Resolve(availability.Color(p))
}

// Parse reads a theme from YAML and lays it over the light theme.
func Parse(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if t.Name == "" {
		return Theme{}, fmt.Errorf("parse theme: name is required")
	}
	return Merge(Light(), t), nil
}

// Load reads a theme file from disk. See Parse.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}
