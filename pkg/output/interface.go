package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders the outcome of a run in a specific format.
type Formatter interface {
	// Format renders the outcome to the given writer.
	Format(ctx context.Context, outcome *Outcome, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds the winning byte span and run metadata.
	Verbose bool

	// All lists every scanned candidate, not just the winner.
	All bool
}

// New returns the formatter for a format name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}
