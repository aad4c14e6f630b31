package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for lnsources.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lnsources",
		Short: "Registry of light novel source scrapers",
		Long: `lnsources discovers the built-in light novel source scrapers, validates
their base URLs, drops the ones whose hosts are on the rejection list, and
resolves URLs to the scraper responsible for them.

The rejection list and additional sources are read from a .lnsources
configuration file. Run 'lnsources init' to create one.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewHistoryCmd())
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
