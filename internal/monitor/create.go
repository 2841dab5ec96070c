package monitor

import (
	"math"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/validate"
)

// Defaults for a freshly created monitor.
const (
	DefaultRetryAttempts = 3
	DefaultTimeout       = 10000
	DefaultStatus        = "pending"
)

// CreateMonitorObject builds a monitor of type t with defaults, overridden
// by the recognised keys in fields. Overrides with the wrong type are
// ignored. The result's type is always t, whatever fields says.
func CreateMonitorObject(t domain.MonitorType, fields map[string]any) domain.Monitor {
	m := domain.Monitor{
		History:       []domain.StatusEntry{},
		Monitoring:    true,
		ResponseTime:  -1,
		RetryAttempts: DefaultRetryAttempts,
		Status:        DefaultStatus,
		Timeout:       DefaultTimeout,
	}

	for key, val := range fields {
		switch key {
		case "id":
			if s, ok := val.(string); ok {
				m.ID = domain.MonitorID(s)
			}
		case "url":
			setString(&m.URL, val)
		case "host":
			setString(&m.Host, val)
		case "recordType":
			setString(&m.RecordType, val)
		case "status":
			setString(&m.Status, val)
		case "port":
			setInt(&m.Port, val)
		case "checkInterval":
			setInt(&m.CheckInterval, val)
		case "responseTime":
			setInt(&m.ResponseTime, val)
		case "retryAttempts":
			setInt(&m.RetryAttempts, val)
		case "timeout":
			setInt(&m.Timeout, val)
		case "monitoring":
			if b, ok := val.(bool); ok {
				m.Monitoring = b
			}
		case "history":
			if h, ok := val.([]domain.StatusEntry); ok {
				m.History = append([]domain.StatusEntry{}, h...)
			}
		}
	}

	m.Type = t
	return m
}

func setString(dst *string, v any) {
	if s, ok := v.(string); ok {
		*dst = s
	}
}

// setInt ignores values that do not fit in an int on this platform.
func setInt(dst *int, v any) {
	if n, ok := validate.AsInt(v); ok && n >= math.MinInt && n <= math.MaxInt {
		*dst = int(n)
	}
}
