package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamed0406/uptimevalidator/internal/backend"
	"github.com/hamed0406/uptimevalidator/internal/config"
	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
	"github.com/hamed0406/uptimevalidator/internal/monitorfile"
)

func newValidateCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a monitor file",
		Long: `Validate every monitor in a YAML file.

Monitors are checked locally unless --backend points at a validation API,
in which case each one is sent there instead. --backend, --api-key and
--timeout default to BACKEND_URL, BACKEND_API_KEY and BACKEND_TIMEOUT_MS.

Exit codes:
  0 - every monitor is valid
  1 - the file could not be read or a monitor is invalid`,
		RunE: runValidate,
	}
	cmd.Flags().StringP("config", "c", "", "path to monitor file (required)")
	cmd.Flags().String("backend", cfg.BackendURL, "base URL of a validation API")
	cmd.Flags().String("api-key", cfg.BackendAPIKey, "API key sent to the backend")
	cmd.Flags().Duration("timeout", cfg.BackendTimeout, "backend request timeout")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	backendURL, _ := cmd.Flags().GetString("backend")
	apiKey, _ := cmd.Flags().GetString("api-key")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	f, err := monitorfile.Load(path)
	if err != nil {
		return fmt.Errorf("invalid monitor file: %w", err)
	}

	check := monitor.NewValidator(nil).ValidateFormData
	if backendURL != "" {
		client := backend.New(backendURL, apiKey, timeout, nil)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		check = func(t string, fields map[string]any) domain.ValidationResult {
			return monitor.ValidateMonitorData(ctx, client, domain.MonitorType(t), fields)
		}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, e := range f.Monitors {
		res := check(e.Type, e.Fields)
		if res.Success {
			fmt.Fprintf(out, "✔ %s\n", e.Name)
		} else {
			failed++
			fmt.Fprintf(out, "✖ %s: %s\n", e.Name, strings.Join(res.Errors, "; "))
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  ⚠ %s\n", w)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d monitors failed validation", failed, len(f.Monitors))
	}
	return nil
}
