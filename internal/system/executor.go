package system

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/girste/quickcheck/internal/errors"
	"github.com/girste/quickcheck/internal/log"
)

// readOnlyBinaries are the only programs the report may invoke.
var readOnlyBinaries = []string{
	"whoami",
	"hostname",
	"uname",
	"who",
	"ss",
	"netstat",
	"ufw",
}

// ExecutionMetrics tracks execution statistics for observability
type ExecutionMetrics struct {
	TotalCalls   int64
	SuccessCalls int64
	FailedCalls  int64
	TimeoutCalls int64
}

// Executor runs allow-listed read-only commands and converts every failure
// into the Unavailable placeholder.
type Executor struct {
	timeout         time.Duration
	allowedBinaries map[string]bool
	lookPath        func(string) bool
	runCommand      func(ctx context.Context, timeout time.Duration, cmdParts ...string) (*CommandResult, error)

	metrics   ExecutionMetrics
	metricsMu sync.RWMutex
}

// NewExecutor creates an executor with the read-only allow-list. A timeout
// <= 0 disables the per-command deadline.
func NewExecutor(timeout time.Duration) *Executor {
	e := &Executor{
		timeout:         timeout,
		allowedBinaries: make(map[string]bool, len(readOnlyBinaries)),
		lookPath:        CommandExists,
		runCommand:      RunCommand,
	}
	for _, name := range readOnlyBinaries {
		e.allowedBinaries[name] = true
	}
	return e
}

// Available reports whether name is on PATH.
func (e *Executor) Available(name string) bool {
	return e.lookPath(name)
}

// Run executes cmdParts and returns its trimmed output, or Unavailable if the
// command is not allowed, missing, exits non-zero, times out, or prints
// nothing.
func (e *Executor) Run(ctx context.Context, cmdParts ...string) string {
	out, err := e.Exec(ctx, cmdParts...)
	if err != nil {
		return Unavailable
	}
	return out
}

// Exec is Run without the placeholder conversion: it returns the trimmed
// output or an error describing why there is none.
func (e *Executor) Exec(ctx context.Context, cmdParts ...string) (string, error) {
	e.metricsMu.Lock()
	e.metrics.TotalCalls++
	e.metricsMu.Unlock()

	if len(cmdParts) == 0 {
		e.recordFailure(false)
		return "", errors.Wrap(errors.ErrInvalidInput, "no command specified")
	}

	if !e.isCommandAllowed(cmdParts[0]) {
		e.recordFailure(false)
		err := errors.Wrap(errors.ErrCommandNotAllowed, "%s", cmdParts[0])
		log.Warnf("Refused command: %v", err)
		return "", err
	}

	start := time.Now()
	result, err := e.runCommand(ctx, e.timeout, cmdParts...)
	e.logExecution(cmdParts, result, err, time.Since(start))

	if err == nil && result != nil && !result.Success {
		err = errors.Wrap(errors.ErrCommandFailed, "%s exited with code %d", cmdParts[0], result.ExitCode)
	}
	if err != nil {
		e.recordFailure(result != nil && result.TimedOut)
		return "", err
	}

	out := result.Text()
	if out == "" {
		e.recordFailure(false)
		return "", errors.Wrap(errors.ErrNotFound, "%s produced no output", cmdParts[0])
	}

	e.metricsMu.Lock()
	e.metrics.SuccessCalls++
	e.metricsMu.Unlock()
	return out, nil
}

func (e *Executor) recordFailure(timedOut bool) {
	e.metricsMu.Lock()
	defer e.metricsMu.Unlock()
	e.metrics.FailedCalls++
	if timedOut {
		e.metrics.TimeoutCalls++
	}
}

func (e *Executor) isCommandAllowed(cmdName string) bool {
	return e.allowedBinaries[filepath.Base(cmdName)]
}

// GetMetrics returns a copy of execution metrics
func (e *Executor) GetMetrics() ExecutionMetrics {
	e.metricsMu.RLock()
	defer e.metricsMu.RUnlock()
	return e.metrics
}

// ResetMetrics resets all metrics to zero
func (e *Executor) ResetMetrics() {
	e.metricsMu.Lock()
	defer e.metricsMu.Unlock()
	e.metrics = ExecutionMetrics{}
}

func (e *Executor) logExecution(cmdParts []string, result *CommandResult, err error, duration time.Duration) {
	cmdStr := strings.Join(cmdParts, " ")

	if err != nil {
		log.Command(cmdStr).Err(err).Dur("duration", duration).Msg("command failed")
		return
	}
	if !result.Success {
		log.Command(cmdStr).
			Int("exit_code", result.ExitCode).
			Str("stderr", truncateString(strings.TrimSpace(result.Stderr), 200)).
			Dur("duration", duration).
			Msg("command returned non-zero exit code")
		return
	}
	log.Command(cmdStr).Dur("duration", duration).Msg("command executed")
}

// truncateString truncates a string to maxLen bytes
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
