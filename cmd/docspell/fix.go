package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrFixUnsupported is returned by the fix command.
var ErrFixUnsupported = errors.New("unsupervised fixing is not implemented")

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Apply suggestions without asking (not implemented)",
	Long:  `Fix would apply every suggestion unattended. Use review to apply them interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ErrFixUnsupported
	},
}
