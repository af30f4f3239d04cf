package riemann

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecorderRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := DefaultHarnessConfig()

	rec, err := NewRecorder(dir, "unit", cfg)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(rec.Path()), "unit_") {
		t.Errorf("unexpected session file name %s", rec.Path())
	}

	// The file exists before any result is recorded
	s, err := LoadSession(rec.Path())
	if err != nil {
		t.Fatalf("LoadSession after create: %v", err)
	}
	if len(s.Results) != 0 {
		t.Errorf("expected empty session, got %d results", len(s.Results))
	}

	results := []Result{
		{Kernel: "interpreted", Status: StatusPass, Value: 0.5, Trials: 5, Min: 90 * time.Millisecond, Speedup: 1},
		{Kernel: "typed", Status: StatusPass, Value: 0.5, Trials: 5, Min: 3 * time.Millisecond, Speedup: 30},
	}
	for _, r := range results {
		if err := rec.Record(r); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	s, err = LoadSession(rec.Path())
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "unit" {
		t.Errorf("session name %q", s.Name)
	}
	if s.Workload.Samples != DefaultSamples || s.Workload.Baseline != DefaultBaseline {
		t.Errorf("workload not recorded: %+v", s.Workload)
	}
	if s.Host.NumCPU < 1 || s.Host.GoVersion == "" || s.Host.Lanes < 1 {
		t.Errorf("host info incomplete: %+v", s.Host)
	}
	if len(s.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(s.Results))
	}
	if s.Results[1].Kernel != "typed" || s.Results[1].Min != 3*time.Millisecond || s.Results[1].Speedup != 30 {
		t.Errorf("result not preserved: %+v", s.Results[1])
	}

	if got := rec.Session(); len(got.Results) != 2 {
		t.Errorf("in-memory session has %d results", len(got.Results))
	}
}

func TestRecorderRejectsInvalidConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	cfg := DefaultHarnessConfig()
	cfg.Samples = 0
	if _, err := NewRecorder(dir, "bad", cfg); err != ErrInvalidSamples {
		t.Errorf("Samples=0: expected ErrInvalidSamples, got %v", err)
	}

	cfg = DefaultHarnessConfig()
	cfg.Trials = 0
	if _, err := NewRecorder(dir, "bad", cfg); err != ErrInvalidTrials {
		t.Errorf("Trials=0: expected ErrInvalidTrials, got %v", err)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("log directory created for invalid config (stat err %v)", err)
	}
	if _, err := LatestSession(dir); !IsNotFoundError(err) {
		t.Errorf("expected no session files, got %v", err)
	}
}

func TestLoadSessionErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSession(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSession(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestLatestSession(t *testing.T) {
	dir := t.TempDir()
	if _, err := LatestSession(dir); !IsNotFoundError(err) {
		t.Errorf("empty dir: expected not found error, got %v", err)
	}

	older := filepath.Join(dir, "a.json")
	newer := filepath.Join(dir, "b.json")
	for _, p := range []string{older, newer} {
		if err := os.WriteFile(p, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := LatestSession(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != newer {
		t.Errorf("LatestSession = %s, want %s", got, newer)
	}
}

func TestPrintSessionSummary(t *testing.T) {
	s := Session{
		Name:    "summary",
		Started: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Results: []Result{
			{Kernel: "interpreted", Status: StatusPass, Min: time.Millisecond, Speedup: 1, Value: 0.5},
			{Kernel: "broken", Status: StatusFail, Min: time.Millisecond, Speedup: 1, Drift: 0.1},
		},
	}

	var buf bytes.Buffer
	PrintSessionSummary(&buf, s)
	out := buf.String()
	if !strings.Contains(out, "Total: 2 | Passed: 1 | Failed: 1") {
		t.Errorf("summary totals missing:\n%s", out)
	}
	if !strings.Contains(out, "✗ broken") {
		t.Errorf("failed kernel not marked:\n%s", out)
	}
}
