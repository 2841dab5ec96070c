package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamed0406/uptimevalidator/internal/availability"
	"github.com/hamed0406/uptimevalidator/internal/config"
	"github.com/hamed0406/uptimevalidator/internal/theme"
	"github.com/hamed0406/uptimevalidator/internal/validate"
)

func newAvailabilityCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability <percentage>",
		Short: "Classify an uptime percentage",
		Example: `  uptimectl availability 99.95
  uptimectl availability "97.2%" --theme dark
  uptimectl availability 99 --theme-file brand.yaml --theme brand`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("theme")
			file, _ := cmd.Flags().GetString("theme-file")
			tm := theme.NewManager("light")
			if file != "" {
				if _, err := tm.LoadFile(file); err != nil {
					return err
				}
			}
			if err := tm.Set(name); err != nil {
				return err
			}
			th := tm.Current()
			c := availability.Classify(validate.ParseUptimeValue(args[0]))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "percentage:  %g\n", c.Percentage)
			fmt.Fprintf(out, "color:       %s (%s)\n", c.Color, th.Resolve(c.Color))
			fmt.Fprintf(out, "variant:     %s\n", c.Variant)
			fmt.Fprintf(out, "description: %s\n", c.Description)
			return nil
		},
	}
	cmd.Flags().String("theme", cfg.Theme, "theme used to resolve the color")
	cmd.Flags().String("theme-file", cfg.ThemeFile, "YAML theme to register before resolving")
	return cmd
}
