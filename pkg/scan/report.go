package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/jarindex/pkg/buildinfo"
	"github.com/matzehuels/jarindex/pkg/errors"
	"github.com/matzehuels/jarindex/pkg/observability"
)

// Failure is a per-file error recorded during a scan.
type Failure struct {
	Path    string      `json:"path"`
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	err     error
}

// Err returns the underlying error.
func (f Failure) Err() error { return f.err }

// Report summarises one scan run.
type Report struct {
	RunID      string    `json:"runId"`
	Version    string    `json:"version"`
	Root       string    `json:"root"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	POMs      int `json:"poms"`          // pom files parsed into the table
	Jars      int `json:"jars"`          // jar files opened
	Records   int `json:"records"`       // records written to the sink
	Unmatched int `json:"unmatchedJars"` // jars with classes but no pom

	Failures []Failure `json:"failures"`

	logger loggerFunc
}

type loggerFunc func(msg any, keyvals ...any)

func newReport(root string, warn loggerFunc) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Version:   buildinfo.Short(),
		Root:      root,
		StartedAt: time.Now(),
		Failures:  []Failure{},
		logger:    warn,
	}
}

// fail records err against path, logs it and notifies the hooks.
func (r *Report) fail(ctx context.Context, path string, err error) {
	f := Failure{
		Path:    path,
		Code:    errors.GetCode(err),
		Message: errors.UserMessage(err),
		err:     err,
	}
	r.Failures = append(r.Failures, f)
	if r.logger != nil {
		r.logger("skipped file", "path", path, "code", f.Code, "err", f.Message)
	}
	observability.Scan().OnFailure(ctx, path, err)
}

func (r *Report) finish() {
	r.FinishedAt = time.Now()
}

// OK reports whether the scan finished without per-file failures.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// Duration returns the wall time of the scan.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// CountByCode groups failures by error code.
func (r *Report) CountByCode() map[errors.Code]int {
	counts := make(map[errors.Code]int)
	for _, f := range r.Failures {
		counts[f.Code]++
	}
	return counts
}

// WriteJSON encodes the report as indented JSON and writes it to w.
func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the report to a JSON file at path, replacing any
// previous report.
func ExportJSON(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(r, f)
}
