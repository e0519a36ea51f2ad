package output

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

// JSONFormatter formats outcomes as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// JSONBest is the selected timestamp in JSON output.
type JSONBest struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	UTC   string `json:"utc"`
	Local string `json:"local"`
	Zone  string `json:"zone"`
}

// JSONCandidate is one scanned varint in JSON output.
type JSONCandidate struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// JSONMetadata describes the run in JSON output.
type JSONMetadata struct {
	RunID      string    `json:"run_id"`
	Zone       string    `json:"zone"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	DurationMS float64   `json:"duration_ms"`
}

// JSONOutput represents the full JSON output.
type JSONOutput struct {
	Length     int             `json:"length"`
	ByteLength int             `json:"byte_length,omitempty"`
	Found      bool            `json:"found"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	Best       *JSONBest       `json:"best,omitempty"`
	Candidates []JSONCandidate `json:"candidates,omitempty"`
	Metadata   *JSONMetadata   `json:"metadata,omitempty"`
}

// Format renders the outcome as JSON.
func (f *JSONFormatter) Format(ctx context.Context, outcome *Outcome, w io.Writer) error {
	out := JSONOutput{Length: outcome.Length}

	switch {
	case outcome.Empty():
		out.Error = MsgEmpty
	case outcome.DecodeError() != nil:
		out.Error = "Decode error: " + outcome.DecodeError().Err.Error()
	case outcome.Err != nil:
		return outcome.Err
	default:
		f.fill(&out, outcome)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func (f *JSONFormatter) fill(out *JSONOutput, outcome *Outcome) {
	report := outcome.Report
	out.ByteLength = report.ByteLength
	out.Found = report.Found()

	if report.Found() {
		best := report.Best
		out.Best = &JSONBest{
			Value: best.Candidate.Value.String(),
			Unit:  best.Unit.String(),
			Start: best.Candidate.Start,
			End:   best.Candidate.End,
			UTC:   ISO(best.UTC),
			Local: ISO(best.Local),
			Zone:  best.Zone(),
		}
	} else {
		out.Message = MsgNoCandidate
	}

	if f.opts.All {
		out.Candidates = make([]JSONCandidate, 0, len(report.Candidates))
		for _, c := range report.Candidates {
			jc := JSONCandidate{Start: c.Start, End: c.End, Value: c.Value.String()}
			if c.Unit != "" {
				jc.Unit = c.Unit.String()
			}
			out.Candidates = append(out.Candidates, jc)
		}
	}

	if f.opts.Verbose {
		out.Metadata = &JSONMetadata{
			RunID:      report.Metadata.RunID,
			Zone:       report.Metadata.Zone,
			AnalyzedAt: report.Metadata.AnalyzedAt,
			DurationMS: float64(report.Metadata.Duration) / float64(time.Millisecond),
		}
	}
}
