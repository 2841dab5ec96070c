// Package main is the uptimectl command line tool.
//
// Usage:
//
//	uptimectl validate -c monitors.yaml            # validate monitor definitions
//	uptimectl availability 99.5 --theme dark       # classify an uptime percentage
//	uptimectl new port --set host=db --set port=5432
//	uptimectl version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamed0406/uptimevalidator/internal/config"
)

// Set at build time via ldflags, e.g. -X main.version=1.0.0
var (
	version = "dev"
	commit  = "none"
)

// newRootCmd builds the command tree. Flag defaults come from the same
// environment the API reads (BACKEND_URL, THEME, ...).
func newRootCmd() *cobra.Command {
	cfg := config.FromEnv()
	root := &cobra.Command{
		Use:   "uptimectl",
		Short: "Validate uptime monitor definitions",
		Long: `uptimectl checks monitor definitions and classifies availability
figures with the same rules the validation API uses.

Monitor files are YAML:
  monitors:
    - name: api
      type: http
      url: https://api.example.com/health`,
		SilenceUsage: true,
	}
	root.AddCommand(newValidateCmd(cfg), newAvailabilityCmd(cfg), newNewCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uptimectl %s (%s)\n", version, commit)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
