package riemann

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// HostInfo describes the machine a session ran on
type HostInfo struct {
	GoVersion string `json:"go_version"`
	GOARCH    string `json:"goarch"`
	NumCPU    int    `json:"num_cpu"`
	Features  string `json:"cpu_features"`
	Lanes     int    `json:"lanes"`
	Version   string `json:"version,omitempty"`
}

// CurrentHost returns the HostInfo for this process
func CurrentHost() HostInfo {
	v, _ := Version()
	return HostInfo{
		GoVersion: runtime.Version(),
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		Features:  GetCPUInfo(),
		Lanes:     AccumulatorLanes(),
		Version:   v,
	}
}

// SessionWorkload records the parameters every result in a session shares
type SessionWorkload struct {
	Samples  int     `json:"samples"`
	Trials   int     `json:"trials"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Baseline string  `json:"baseline"`
}

// Session is the on-disk record of one harness run
type Session struct {
	Name     string          `json:"name"`
	Started  time.Time       `json:"started"`
	Host     HostInfo        `json:"host"`
	Workload SessionWorkload `json:"workload"`
	Results  []Result        `json:"results"`
}

// Recorder writes a session to disk, flushing after every result
type Recorder struct {
	mu      sync.Mutex
	path    string
	session Session
}

// NewRecorder creates dir if needed and starts a session file named
// <name>_<timestamp>.json inside it. Nothing is written for an invalid cfg.
func NewRecorder(dir, name string, cfg HarnessConfig) (*Recorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	now := time.Now()
	rec := &Recorder{
		path: filepath.Join(dir, fmt.Sprintf("%s_%s.json", name, now.Format("20060102_150405"))),
		session: Session{
			Name:    name,
			Started: now,
			Host:    CurrentHost(),
			Workload: SessionWorkload{
				Samples:  cfg.Samples,
				Trials:   cfg.Trials,
				Lower:    cfg.Lower,
				Upper:    cfg.Upper,
				Baseline: cfg.Baseline,
			},
		},
	}

	// Write initial file
	if err := rec.flush(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Path returns the session file path
func (r *Recorder) Path() string {
	return r.path
}

// Record appends a result and flushes the session to disk
func (r *Recorder) Record(res Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.Results = append(r.session.Results, res)
	return r.flush()
}

// Session returns a copy of the recorded session
func (r *Recorder) Session() Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session
	s.Results = append([]Result(nil), r.session.Results...)
	return s
}

// flush writes the session to disk; callers hold mu or own r exclusively
func (r *Recorder) flush() error {
	data, err := json.MarshalIndent(r.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(r.path, data, 0644)
}

// LoadSession reads a session file
func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// LatestSession returns the path to the most recent session file in dir
func LatestSession(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", NewNotFoundError("LatestSession", fmt.Sprintf("no session files in %s", dir))
	}

	// Keep the file with the newest modification time
	var latest string
	var latestTime time.Time
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest = file
			latestTime = info.ModTime()
		}
	}
	if latest == "" {
		return "", NewNotFoundError("LatestSession", fmt.Sprintf("no readable session files in %s", dir))
	}

	return latest, nil
}

// PrintSessionSummary writes a summary table of s to w
func PrintSessionSummary(w io.Writer, s Session) {
	fmt.Fprintf(w, "\nSession %s (%s, %s)\n", s.Name, s.Started.Format(time.RFC3339), s.Host.GOARCH)
	fmt.Fprintln(w, strings.Repeat("=", 72))

	passed, failed := 0, 0
	for _, r := range s.Results {
		switch r.Status {
		case StatusPass:
			passed++
			fmt.Fprintf(w, "✓ %-14s %12.3f ms %8.2fx  value %.10f\n",
				r.Kernel, Milliseconds(r.Min), r.Speedup, r.Value)
		default:
			failed++
			fmt.Fprintf(w, "✗ %-14s %12.3f ms %8.2fx  drift %.3e\n",
				r.Kernel, Milliseconds(r.Min), r.Speedup, r.Drift)
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "Total: %d | Passed: %d | Failed: %d\n", len(s.Results), passed, failed)
}
