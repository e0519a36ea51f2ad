package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/gclidtime/internal/logging"
	"github.com/ccollicutt/gclidtime/pkg/analyzer"
	"github.com/ccollicutt/gclidtime/pkg/config"
	"github.com/ccollicutt/gclidtime/pkg/output"
)

// Prompt is shown when the token is read interactively.
const Prompt = "Enter GCLID: "

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
}

// DecodeOptions holds command-line options for the decode command.
type DecodeOptions struct {
	Output  string
	All     bool
	Verbose bool
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(global *GlobalOptions) *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode [token]",
		Short: "Recover the timestamp from a GCLID",
		Long: `Decode a GCLID and report the most plausible embedded timestamp.

If no token is given it is read from standard input.

The result is a heuristic: varints are classified by magnitude and the
first unit with a candidate wins (microseconds, milliseconds, seconds),
taking the largest value within that unit.

Example:
  gclidtime decode Cj0KCQiA...
  gclidtime decode --all -o json Cj0KCQiA...
  echo Cj0KCQiA... | gclidtime decode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDecode(cmd, args, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "List every scanned varint, not just the best match")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show byte span and run metadata")

	return cmd
}

// RunDecode analyzes one token and writes the outcome to the command's
// output. A token taken from args wins over standard input.
func RunDecode(cmd *cobra.Command, args []string, global *GlobalOptions, opts *DecodeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, global.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	formatter, err := output.New(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		All:     opts.All,
	})
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		// Keep JSON on stdout parseable.
		promptTo := cmd.OutOrStdout()
		if formatter.Name() == "json" {
			promptTo = cmd.ErrOrStderr()
		}
		input, err = promptToken(cmd.InOrStdin(), promptTo)
		if err != nil {
			return err
		}
	}

	a := analyzer.New(
		analyzer.WithLocation(cfg.Location()),
		analyzer.WithLogger(logger),
	)

	report, err := a.Analyze(input)
	outcome := output.NewOutcome(strings.TrimSpace(input), report, err)

	if err := formatter.Format(ctx, outcome, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// promptToken writes the prompt and reads one line. End of input without a
// line yields an empty token. A blank line separates a non-empty token from
// the report.
func promptToken(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, Prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading token: %w", err)
	}

	if strings.TrimSpace(line) != "" {
		fmt.Fprintln(out)
	}
	return line, nil
}
