package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <type>",
		Short: "Build a monitor with defaults and print it as JSON",
		Long: `Build a monitor of the given type (http, ping, dns, port) from
--set key=value pairs, apply defaults and print it with its validation
result. Values are read as YAML scalars, so port=5432 is a number.`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}
	cmd.Flags().StringArray("set", nil, "monitor field as key=value (repeatable)")
	return cmd
}

func parseSets(sets []string) (map[string]any, error) {
	fields := make(map[string]any, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--set %q: want key=value", s)
		}
		var val any
		if err := yaml.Unmarshal([]byte(v), &val); err != nil {
			val = v
		}
		switch val.(type) {
		case int, float64, bool, string:
		default:
			val = v
		}
		fields[strings.TrimSpace(k)] = val
	}
	return fields, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	t := domain.MonitorType(args[0])
	if !t.Valid() {
		return fmt.Errorf("unsupported monitor type %q", args[0])
	}
	sets, _ := cmd.Flags().GetStringArray("set")
	fields, err := parseSets(sets)
	if err != nil {
		return err
	}

	res := monitor.NewValidator(nil).ValidateFormData(string(t), fields)
	out := struct {
		Monitor    domain.Monitor          `json:"monitor"`
		Validation domain.ValidationResult `json:"validation"`
	}{monitor.CreateMonitorObject(t, fields), res}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if !res.Success {
		return errors.New("monitor is invalid")
	}
	return nil
}
