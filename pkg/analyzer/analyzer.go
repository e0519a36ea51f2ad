package analyzer

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ccollicutt/gclidtime/internal/logging"
	"github.com/ccollicutt/gclidtime/pkg/classifier"
	"github.com/ccollicutt/gclidtime/pkg/gclid"
	"github.com/ccollicutt/gclidtime/pkg/selector"
	"github.com/ccollicutt/gclidtime/pkg/varint"
)

// Analyzer recovers timestamps from tokens. It holds no per-run state and
// may be reused.
type Analyzer struct {
	location *time.Location
	logger   *logrus.Logger
	runID    func() string
	now      func() time.Time
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithLocation sets the zone used for the local rendering.
func WithLocation(loc *time.Location) AnalyzerOption {
	return func(a *Analyzer) {
		if loc != nil {
			a.location = loc
		}
	}
}

// WithLogger sets the logger for pipeline diagnostics.
func WithLogger(logger *logrus.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRunID overrides how run IDs are generated.
func WithRunID(fn func() string) AnalyzerOption {
	return func(a *Analyzer) {
		if fn != nil {
			a.runID = fn
		}
	}
}

// WithClock overrides the clock used for run metadata.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an analyzer. Without options it renders local time in UTC
// and logs nothing.
func New(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		location: time.UTC,
		logger:   logging.Discard(),
		runID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the pipeline over one token.
//
// Returns gclid.ErrEmptyInput for blank input and a *gclid.DecodeError if
// the token is not URL-safe base64; no report is produced in either case.
// A token with no plausible timestamp is not an error: the report is
// returned with Found() == false.
func (a *Analyzer) Analyze(input string) (*Report, error) {
	start := a.now()
	runID := a.runID()
	log := logging.ForRun(a.logger, "analyzer", runID)

	token, err := gclid.Normalize(input)
	if err != nil {
		log.Debug("empty input")
		return nil, err
	}

	log = log.WithField(logging.FieldToken, token)

	raw, err := gclid.Decode(token)
	if err != nil {
		log.WithError(err).Debug("token did not decode")
		return nil, err
	}
	log.WithField("bytes", len(raw)).Debug("token decoded")

	report := &Report{
		Token:      token,
		Length:     gclid.Length(token),
		ByteLength: len(raw),
	}

	var plausible []classifier.Classification
	for c := range varint.Scan(raw) {
		scanned := ScannedCandidate{Candidate: c}
		if cl, ok := classifier.Classify(c); ok {
			scanned.Unit = cl.Unit
			plausible = append(plausible, cl)
		}
		report.Candidates = append(report.Candidates, scanned)

		log.WithFields(logrus.Fields{
			"start": c.Start,
			"end":   c.End,
			"value": c.Value.String(),
			"unit":  scanned.Unit.String(),
		}).Debug("scanned varint")
	}

	if best, ok := selector.Select(plausible); ok {
		report.Best = selector.Resolve(best, a.location)
		log.WithFields(logrus.Fields{
			"unit":  best.Unit,
			"value": best.Candidate.Value.String(),
			"start": best.Candidate.Start,
		}).Info("selected timestamp candidate")
	} else {
		log.WithField("candidates", len(report.Candidates)).Info("no plausible timestamp")
	}

	end := a.now()
	report.Metadata = Metadata{
		RunID:      runID,
		Zone:       a.location.String(),
		AnalyzedAt: end,
		Duration:   end.Sub(start),
	}

	return report, nil
}
