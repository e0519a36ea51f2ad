package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the gclidtime build version.

Release builds set it with:
  go build -ldflags "-X github.com/ccollicutt/gclidtime/internal/cli/commands.Version=v1.2.3" ./cmd/cli

Builds without the flag report "dev".`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gclidtime %s\n", Version)
		},
	}
}
