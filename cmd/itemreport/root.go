package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for itemreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itemreport",
		Short: "Role-aware item report generator",
		Long: `itemreport renders tabular reports of a user's items in one of
several output formats (CSV, HTML, MARKDOWN).

A role-based rule is applied before rendering: administrators see all
items with high-value ones flagged as priority, regular users only see
items at or below the configured value limit.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
