package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"showcase.dev/internal/config"
	"showcase.dev/internal/render"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content file without rendering it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := contentFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no content file given")
		}

		site, err := config.LoadSite(path)
		if err != nil {
			return err
		}

		others := render.ExcludeFeatured(site.Featured, site.Projects)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d featured, %d more projects)\n", path, len(site.Featured), len(others))
		return nil
	},
}
