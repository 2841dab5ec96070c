package domain

import (
	"errors"

	"go.uber.org/multierr"
)

// ValidationResult is returned by every composite validator. Treat it as
// immutable; combine results with Merge.
type ValidationResult struct {
	Success  bool           `json:"success"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`
	Metadata map[string]any `json:"metadata"`
}

func Valid() ValidationResult {
	return ValidationResult{Success: true, Errors: []string{}, Warnings: []string{}, Metadata: map[string]any{}}
}

func Invalid(errs ...string) ValidationResult {
	return ValidationResult{Success: false, Errors: append([]string{}, errs...), Warnings: []string{}, Metadata: map[string]any{}}
}

// Merge returns a new result holding the errors and warnings of r followed
// by those of others. Metadata of r is copied; others' metadata is dropped.
func (r ValidationResult) Merge(others ...ValidationResult) ValidationResult {
	out := ValidationResult{
		Errors:   append([]string{}, r.Errors...),
		Warnings: append([]string{}, r.Warnings...),
		Metadata: make(map[string]any, len(r.Metadata)),
	}
	for k, v := range r.Metadata {
		out.Metadata[k] = v
	}
	ok := r.Success
	for _, o := range others {
		out.Errors = append(out.Errors, o.Errors...)
		out.Warnings = append(out.Warnings, o.Warnings...)
		ok = ok && o.Success
	}
	out.Success = ok && len(out.Errors) == 0
	return out
}

// Err combines the errors into a single error, or nil when there are none.
func (r ValidationResult) Err() error {
	var err error
	for _, e := range r.Errors {
		err = multierr.Append(err, errors.New(e))
	}
	return err
}
