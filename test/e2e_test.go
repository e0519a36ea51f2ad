package test

import (
	"bytes"
	"context"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/ccollicutt/gclidtime/internal/cli"
	"github.com/ccollicutt/gclidtime/pkg/analyzer"
	"github.com/ccollicutt/gclidtime/pkg/classifier"
	"github.com/ccollicutt/gclidtime/pkg/config"
	"github.com/ccollicutt/gclidtime/pkg/gclid"
	"github.com/ccollicutt/gclidtime/pkg/output"
	"github.com/ccollicutt/gclidtime/pkg/varint"
)

var (
	projectRoot string
	rootOnce    sync.Once
)

// chdir changes to the project root directory for tests.
// Config files use paths relative to project root.
func chdir(t *testing.T) {
	t.Helper()
	rootOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		projectRoot = filepath.Dir(filepath.Dir(filename))
	})
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("Failed to chdir to project root: %v", err)
	}
}

// requireFile fails the test if the required test file doesn't exist.
func requireFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Required test file not found: %s", path)
	}
}

// runCLI executes the root command with the given stdin and arguments.
func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Setenv(config.EnvLocalZone, "")
	t.Setenv(config.EnvLogLevel, "")

	rootCmd := cli.NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("gclidtime %v failed: %v (stderr: %s)", args, err, stderr.String())
	}
	return stdout.String()
}

// embed returns a token whose decoded bytes carry the varint encoding of
// value somewhere in the middle.
func embed(value uint64) string {
	raw := []byte{0x08, 0x01, 0x10}
	raw = varint.AppendUint64(raw, value)
	raw = append(raw, 0x1a, 0x04, 'a', 'b', 'c', 'd')
	return strings.TrimRight(gclid.Encode(raw), "=")
}

// TestE2E_EmptyToken covers a blank interactive entry.
func TestE2E_EmptyToken(t *testing.T) {
	out := runCLI(t, "\n")

	if !strings.Contains(out, "No GCLID provided.") {
		t.Errorf("Output missing empty message:\n%s", out)
	}
	for _, unexpected := range []string{"Character length", "Decode error", "UTC datetime"} {
		if strings.Contains(out, unexpected) {
			t.Errorf("Empty token produced %q:\n%s", unexpected, out)
		}
	}
}

// TestE2E_IllegalCharacter covers a token outside the URL-safe alphabet.
func TestE2E_IllegalCharacter(t *testing.T) {
	out := runCLI(t, "Cj0KCQiA!bmsBhCG\n")

	if !strings.Contains(out, "Character length: 16") {
		t.Errorf("Output missing length:\n%s", out)
	}
	if !strings.Contains(out, "Decode error:") {
		t.Errorf("Output missing decode error:\n%s", out)
	}
	if strings.Contains(out, "Timestamp (raw integer)") {
		t.Errorf("Decode error printed a timestamp:\n%s", out)
	}
}

// TestE2E_NoPlausibleTimestamp covers bytes with no value in a band.
func TestE2E_NoPlausibleTimestamp(t *testing.T) {
	out := runCLI(t, "", "decode", embed(123_456))

	if !strings.Contains(out, "No plausible timestamp-like varint found in this GCLID.") {
		t.Errorf("Output missing no-candidate message:\n%s", out)
	}
	if strings.Contains(out, "UTC datetime") {
		t.Errorf("No-candidate run printed a timestamp:\n%s", out)
	}
}

// TestE2E_MicrosecondToken covers the canonical success path.
func TestE2E_MicrosecondToken(t *testing.T) {
	chdir(t)
	configFile := filepath.Join("testdata", "configs", "new_york.yaml")
	requireFile(t, configFile)

	out := runCLI(t, embed(1_700_000_000_000_000)+"\n", "--config", configFile)

	want := []string{
		"Timestamp (raw integer): 1700000000000000",
		"Assumed units: microseconds",
		"UTC datetime: 2023-11-14T22:13:20+00:00",
		"Local (America/New_York): 2023-11-14T17:13:20-05:00",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("Output missing %q:\n%s", w, out)
		}
	}
}

// TestE2E_ConfiguredZone renders the local time in the zone from the config.
func TestE2E_ConfiguredZone(t *testing.T) {
	chdir(t)
	configFile := filepath.Join("testdata", "configs", "berlin.yaml")
	requireFile(t, configFile)

	out := runCLI(t, "", "--config", configFile, "decode", embed(1_688_212_800_000))

	if !strings.Contains(out, "Assumed units: milliseconds") {
		t.Errorf("Output missing unit:\n%s", out)
	}
	// Summer time: Berlin is UTC+2.
	if !strings.Contains(out, "Local (Europe/Berlin): 2023-07-01T14:00:00+02:00") {
		t.Errorf("Output missing Berlin rendering:\n%s", out)
	}
}

// TestE2E_Pipeline drives the library packages directly.
func TestE2E_Pipeline(t *testing.T) {
	cfg, err := config.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	a := analyzer.New(analyzer.WithLocation(cfg.Location()))
	token := embed(1_700_000_000)

	report, err := a.Analyze(token)
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}
	if !report.Found() {
		t.Fatal("Expected a timestamp")
	}
	if report.Best.Unit != classifier.UnitSeconds {
		t.Errorf("Unit = %s, want seconds", report.Best.Unit)
	}

	var buf bytes.Buffer
	f := output.NewTextFormatter(output.FormatOptions{All: true})
	if err := f.Format(context.Background(), output.NewOutcome(token, report, nil), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), "* [  3,   8) seconds") {
		t.Errorf("Candidate table missing winner:\n%s", buf.String())
	}
}

// TestE2E_HiddenTimestampNotFound documents the greedy scan: a timestamp
// varint that starts inside an earlier candidate's span is never seen.
func TestE2E_HiddenTimestampNotFound(t *testing.T) {
	// 0x80 opens a continuation run that swallows the timestamp bytes.
	raw := []byte{0x80}
	raw = varint.AppendUint64(raw, 1_700_000_000)

	report, err := analyzer.New().Analyze(gclid.Encode(raw))
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}

	if len(report.Candidates) != 1 {
		t.Fatalf("Expected one merged candidate, got %d", len(report.Candidates))
	}
	want := new(big.Int).Lsh(big.NewInt(1_700_000_000), 7)
	if report.Candidates[0].Value.Cmp(want) != 0 {
		t.Errorf("Value = %s, want %s", report.Candidates[0].Value, want)
	}
	if report.Found() && report.Best.Candidate.Value.Cmp(big.NewInt(1_700_000_000)) == 0 {
		t.Error("Hidden timestamp should not be found")
	}
}
