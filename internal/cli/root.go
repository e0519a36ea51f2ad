// Package cli provides the command-line interface for gclidtime.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/gclidtime/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
//
// Runs that end without a timestamp (empty input, a token that does not
// decode, no plausible candidate) still exit 0; only configuration and
// usage errors are reported as failures.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	global := &commands.GlobalOptions{}
	decodeOpts := &commands.DecodeOptions{Output: "text"}

	rootCmd := &cobra.Command{
		Use:   "gclidtime",
		Short: "Recover the creation timestamp embedded in a GCLID",
		Long: `gclidtime recovers a plausible creation timestamp from a Google Click ID
(the value of the gclid URL parameter).

Example: for www.example.com/running-shoes?gclid=123xyz paste 123xyz.

The token is decoded as URL-safe base64, scanned for varints, and the most
plausible epoch timestamp (microseconds, then milliseconds, then seconds)
is printed in UTC and in the configured local time zone.

Run without a subcommand to be prompted for the token.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunDecode(cmd, args, global, decodeOpts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&global.ConfigPath, "config", "c", "", "Path to a YAML config file")

	// Add subcommands
	rootCmd.AddCommand(commands.NewDecodeCommand(global))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
