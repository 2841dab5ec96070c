package monitor

import (
	"fmt"
	"strings"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/validate"
)

// FieldValidator checks a single field of a monitor form.
type FieldValidator interface {
	ValidateField(t domain.MonitorType, field string, value any) domain.ValidationResult
}

// FieldFunc adapts a function to FieldValidator.
type FieldFunc func(t domain.MonitorType, field string, value any) domain.ValidationResult

func (f FieldFunc) ValidateField(t domain.MonitorType, field string, value any) domain.ValidationResult {
	return f(t, field, value)
}

// Limits applied to the optional fields, in milliseconds.
const (
	MinCheckInterval = 5000
	MaxTimeout       = 300000
	MaxRetryAttempts = 10
)

var dnsRecordTypes = map[string]bool{
	"A": true, "AAAA": true, "CNAME": true, "MX": true, "NS": true, "TXT": true, "SRV": true, "CAA": true, "PTR": true, "SOA": true,
}

// LocalFields validates fields in-process with the primitive validators.
type LocalFields struct{}

func (LocalFields) ValidateField(t domain.MonitorType, field string, value any) domain.ValidationResult {
	switch field {
	case "url":
		if !validate.IsValidURL(value) {
			return domain.Invalid("URL must be a valid http:// or https:// address")
		}
		res := domain.Valid()
		if s, _ := value.(string); strings.HasPrefix(strings.ToLower(s), "http://") {
			res.Warnings = append(res.Warnings, "HTTP URL is not encrypted; consider HTTPS")
		}
		return res
	case "host":
		if !validate.IsValidHost(value) {
			return domain.Invalid("Host must be a valid hostname or IP address")
		}
	case "port":
		if !validate.IsValidPort(value) {
			return domain.Invalid(fmt.Sprintf("Port must be between %d and %d", validate.MinPort, validate.MaxPort))
		}
	case "recordType":
		s, _ := value.(string)
		if !dnsRecordTypes[strings.ToUpper(strings.TrimSpace(s))] {
			return domain.Invalid(fmt.Sprintf("Unsupported DNS record type: %v", value))
		}
	case "timeout":
		n, ok := validate.AsInt(value)
		if !ok || n <= 0 || n > MaxTimeout {
			return domain.Invalid(fmt.Sprintf("Timeout must be between 1 and %d milliseconds", MaxTimeout))
		}
	case "retryAttempts":
		n, ok := validate.AsInt(value)
		if !ok || n < 0 || n > MaxRetryAttempts {
			return domain.Invalid(fmt.Sprintf("Retry attempts must be between 0 and %d", MaxRetryAttempts))
		}
	case "checkInterval":
		n, ok := validate.AsInt(value)
		if !ok || n < MinCheckInterval {
			return domain.Invalid(fmt.Sprintf("Check interval must be at least %d milliseconds", MinCheckInterval))
		}
	default:
		return domain.Invalid(fmt.Sprintf("Unknown field %q for %s monitors", field, t))
	}
	return domain.Valid()
}
