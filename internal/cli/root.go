// Package cli provides the command-line interface for Koyo.
package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/koyo/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command and its subcommand tree. A fresh
// tree is built per call so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "koyo",
		Short: "A temperature-aware tonal ladder generator",
		Long: `Koyo builds perceptually uniform tonal ladders from a single base colour.

Each ladder runs darkest to lightest in OKLCH, and the hue of every rung
drifts with the simulated colour temperature of the ambient light: warm
light produces warm highlights and cool shadows, cool light the reverse.
Family guardrails keep yellow and red ladders from escaping into green
at the light end.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newRampCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
