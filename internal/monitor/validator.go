package monitor

import (
	"encoding/json"
	"fmt"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/validate"
)

var typeLabels = map[domain.MonitorType]string{
	domain.MonitorHTTP: "HTTP",
	domain.MonitorPing: "ping",
	domain.MonitorDNS:  "DNS",
	domain.MonitorPort: "port",
}

// optionalFields are checked on every monitor type when present.
var optionalFields = []string{"timeout", "retryAttempts", "checkInterval"}

// ValidateMonitorType reports whether t names a supported monitor type.
// Both strings and domain.MonitorType values are accepted.
func ValidateMonitorType(t any) bool {
	switch v := t.(type) {
	case domain.MonitorType:
		return v.Valid()
	case string:
		return domain.MonitorType(v).Valid()
	}
	return false
}

// ValidationErrors returns one message per failing rule for m. An empty
// slice means m is valid. A missing or unknown type produces an error and
// skips the type-specific checks.
func ValidationErrors(m domain.Monitor) []string {
	errs := []string{}
	switch {
	case m.Type == "":
		errs = append(errs, "Monitor type is required")
	case !m.Type.Valid():
		errs = append(errs, fmt.Sprintf("Invalid monitor type: %s", m.Type))
	}

	switch m.Type {
	case domain.MonitorHTTP:
		if !validate.IsValidURL(m.URL) {
			errs = append(errs, "Valid URL is required for HTTP monitors")
		}
	case domain.MonitorPing, domain.MonitorDNS:
		if !validate.IsValidHost(m.Host) {
			errs = append(errs, fmt.Sprintf("Valid host is required for %s monitors", typeLabels[m.Type]))
		}
	case domain.MonitorPort:
		if !validate.IsValidHost(m.Host) {
			errs = append(errs, "Valid host is required for port monitors")
		}
		if !validate.IsValidPort(m.Port) {
			errs = append(errs, "Valid port number (1-65535) is required for port monitors")
		}
	}

	// zero means unset for the optional numeric fields
	if m.Timeout < 0 {
		errs = append(errs, "Timeout must be greater than 0")
	}
	if m.RetryAttempts < 0 || m.RetryAttempts > MaxRetryAttempts {
		errs = append(errs, fmt.Sprintf("Retry attempts must be between 0 and %d", MaxRetryAttempts))
	}
	if m.CheckInterval != 0 && m.CheckInterval < MinCheckInterval {
		errs = append(errs, fmt.Sprintf("Check interval must be at least %d milliseconds", MinCheckInterval))
	}
	return errs
}

// Validator runs form-level validation, delegating single-field checks to Fields.
type Validator struct {
	Fields FieldValidator
}

func NewValidator(fields FieldValidator) *Validator {
	if fields == nil {
		fields = LocalFields{}
	}
	return &Validator{Fields: fields}
}

// ValidateFormData checks the required fields of monitor type t, then hands
// every present field to the field validator. A required field that is
// missing or has the wrong type is reported without calling the field
// validator for it. Errors from independent fields are all reported.
func (v *Validator) ValidateFormData(t string, fields map[string]any) domain.ValidationResult {
	mt := domain.MonitorType(t)
	if !mt.Valid() {
		return domain.Invalid(fmt.Sprintf("Unsupported monitor type: %s", t))
	}

	var checks []domain.ValidationResult
	require := func(key string, present bool, missing string) {
		if !present {
			checks = append(checks, domain.Invalid(missing))
			return
		}
		checks = append(checks, v.Fields.ValidateField(mt, key, fields[key]))
	}

	switch mt {
	case domain.MonitorHTTP:
		require("url", validate.IsNonEmptyString(fields["url"]), "URL is required for HTTP monitors")
	case domain.MonitorPing:
		require("host", validate.IsNonEmptyString(fields["host"]), "Host is required for ping monitors")
	case domain.MonitorDNS:
		require("host", validate.IsNonEmptyString(fields["host"]), "Host is required for DNS monitors")
		if rt, ok := fields["recordType"]; ok && rt != nil {
			checks = append(checks, v.Fields.ValidateField(mt, "recordType", rt))
		}
	case domain.MonitorPort:
		require("host", validate.IsNonEmptyString(fields["host"]), "Host is required for port monitors")
		require("port", isNumber(fields["port"]), "Port is required for port monitors")
	}

	for _, key := range optionalFields {
		if val, ok := fields[key]; ok && val != nil {
			checks = append(checks, v.Fields.ValidateField(mt, key, val))
		}
	}

	res := domain.Valid()
	res.Metadata["monitorType"] = t
	return res.Merge(checks...)
}

// ValidateForm validates a typed form with the same rules as ValidateFormData.
func (v *Validator) ValidateForm(form domain.MonitorForm) domain.ValidationResult {
	if form == nil {
		return domain.Invalid("Monitor form is required")
	}
	return v.ValidateFormData(string(form.MonitorType()), form.Fields())
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}
