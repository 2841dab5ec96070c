package monitor

import (
	"context"

	"github.com/hamed0406/uptimevalidator/internal/domain"
)

// BackendUnavailable is the only error reported when the backend cannot be reached.
const BackendUnavailable = "Validation failed - unable to connect to backend"

// BackendResult is the shape returned by an out-of-process validator.
// Warnings may be absent.
type BackendResult struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// Backend validates monitor data authoritatively, usually over the network.
type Backend interface {
	ValidateMonitorData(ctx context.Context, t domain.MonitorType, data map[string]any) (BackendResult, error)
}

// ValidateMonitorData makes a single call to b and normalises the answer.
// Any transport failure maps to a fixed fallback result; the underlying
// error is never returned to the caller.
func ValidateMonitorData(ctx context.Context, b Backend, t domain.MonitorType, data map[string]any) domain.ValidationResult {
	if b == nil {
		return domain.Invalid(BackendUnavailable)
	}
	out, err := b.ValidateMonitorData(ctx, t, data)
	if err != nil {
		return domain.Invalid(BackendUnavailable)
	}
	return domain.ValidationResult{
		Success:  out.Success,
		Errors:   append([]string{}, out.Errors...),
		Warnings: append([]string{}, out.Warnings...),
		Metadata: map[string]any{},
	}
}

// ToBackendResult converts a local result into the wire shape served to clients.
func ToBackendResult(r domain.ValidationResult) BackendResult {
	return BackendResult{
		Success:  r.Success,
		Errors:   append([]string{}, r.Errors...),
		Warnings: append([]string{}, r.Warnings...),
	}
}
