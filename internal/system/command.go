package system

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/girste/quickcheck/internal/errors"
)

// Unavailable is printed in place of any data that could not be collected.
const Unavailable = "Unavailable"

// CommandResult represents the result of a command execution
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Success  bool
	TimedOut bool
}

// Text returns the trimmed output of the command: stdout, or stderr when
// stdout is blank. It is empty when both streams are blank.
func (r *CommandResult) Text() string {
	if out := strings.TrimSpace(r.Stdout); out != "" {
		return out
	}
	return strings.TrimSpace(r.Stderr)
}

// RunCommand executes a command from an argument vector. No shell is involved.
//
// A timeout <= 0 means no deadline beyond ctx. The returned error is non-nil
// when the command could not be started or timed out; a non-zero exit is
// reported through the result only.
func RunCommand(ctx context.Context, timeout time.Duration, cmdParts ...string) (*CommandResult, error) {
	if len(cmdParts) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "no command specified")
	}

	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	cmd := exec.CommandContext(ctx, cmdParts[0], cmdParts[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Success:  err == nil,
		TimedOut: ctx.Err() == context.DeadlineExceeded,
		ExitCode: -1,
	}

	if err == nil {
		result.ExitCode = 0
		return result, nil
	}

	if result.TimedOut {
		return result, errors.Wrap(errors.ErrTimeoutExceeded, "%s after %s", cmdParts[0], timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return result, errors.Wrap(errors.ErrCommandNotFound, "%s", cmdParts[0])
	}
	return result, errors.Wrap(err, "run %s", cmdParts[0])
}

// CommandExists checks if a command is available on PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// FirstAvailable returns the first candidate for which exists reports true.
// Candidates are tried in order.
func FirstAvailable(exists func(string) bool, candidates ...string) (string, bool) {
	for _, name := range candidates {
		if exists(name) {
			return name, true
		}
	}
	return "", false
}
