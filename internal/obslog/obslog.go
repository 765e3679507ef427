// Package obslog emits the structured start/done log lines cmd/henk writes
// around each check() invocation. No third-party structured logger appears
// in the teacher's dependency graph (diagnostics are returned as errors,
// not logged), so this is the one ambient concern in this module built on
// the standard library rather than an example-pack library — see
// DESIGN.md for the justification.
package obslog

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// New returns a JSON-lines logger writing to os.Stderr.
func New() *slog.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a JSON-lines logger writing to w, primarily for
// tests that need to inspect emitted log lines.
func NewWithWriter(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil))
}

// Start logs the beginning of a check() invocation for the given request
// and scenario, mirroring the teacher's per-pass InferenceContext: each
// invocation gets its own identity, here a request ID rather than a
// counter.
func Start(log *slog.Logger, requestID, scenario string) {
	log.Info("check.start", "request_id", requestID, "scenario", scenario, "at", time.Now().UTC())
}

// Done logs the outcome of a check() invocation already identified by
// Start's requestID.
func Done(log *slog.Logger, requestID, scenario string, ok bool, detail string) {
	log.Info("check.done",
		"request_id", requestID,
		"scenario", scenario,
		"ok", ok,
		"detail", detail,
		"at", time.Now().UTC(),
	)
}
