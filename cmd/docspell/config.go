package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if app.configPath != "" {
			fmt.Fprintf(out, "# loaded from %s\n", app.configPath)
		} else {
			fmt.Fprintln(out, "# no config file found")
		}
		return app.cfg.WriteTOML(out)
	},
}
