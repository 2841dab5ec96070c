// Package monitorfile reads monitor definitions from YAML.
//
// Example file:
//
//	monitors:
//	  - name: api
//	    type: http
//	    url: https://api.example.com/health
//	    timeout: 5000
//	  - name: db
//	    type: port
//	    host: db.internal
//	    port: 5432
//
// Every key besides name and type is passed through as a monitor field.
package monitorfile

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/validate"
)

type File struct {
	Monitors []Entry `yaml:"monitors"`
}

type Entry struct {
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`
	Fields map[string]any `yaml:",inline"`
}

func (e Entry) MonitorType() domain.MonitorType { return domain.MonitorType(e.Type) }

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read monitor file: %w", err)
	}
	return Parse(data)
}

// Parse decodes data and checks the entry names. Monitor fields themselves
// are left to the validator. All naming problems are reported together.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Monitors) == 0 {
		return nil, fmt.Errorf("no monitors defined")
	}

	var errs error
	seen := make(map[string]int, len(f.Monitors))
	for i := range f.Monitors {
		e := &f.Monitors[i]
		if e.Fields == nil {
			e.Fields = map[string]any{}
		}
		switch {
		case e.Name == "":
			errs = multierr.Append(errs, fmt.Errorf("monitors[%d]: name is required", i))
			continue
		case !validate.IsValidIdentifier(e.Name):
			errs = multierr.Append(errs, fmt.Errorf("monitors[%d] (%s): name contains unsafe characters", i, e.Name))
			continue
		}
		if prev, dup := seen[e.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("monitors[%d] (%s): duplicate name, first used by monitors[%d]", i, e.Name, prev))
			continue
		}
		seen[e.Name] = i
	}
	if errs != nil {
		return nil, errs
	}
	return &f, nil
}
