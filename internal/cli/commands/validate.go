package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/gclidtime/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a gclidtime configuration file without decoding anything.

Checks:
  - YAML syntax
  - local_zone is a known IANA time zone
  - log_level is a valid level

Environment overrides (GCLIDTIME_LOCAL_ZONE, GCLIDTIME_LOG_LEVEL) are
applied before validation, as they are for decode.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, offset := time.Now().In(cfg.Location()).Zone()

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Local zone: %s (current offset %s)\n", cfg.LocalZone, formatOffset(offset))
	fmt.Fprintf(out, "  Log level:  %s\n", cfg.LogLevel)

	return nil
}

// formatOffset renders a UTC offset in seconds as +hh:mm.
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
