package solana

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures the outcome of one external command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether the command exited non-zero.
func (r Result) Failed() bool { return r.ExitCode != 0 }

// Err converts a failed result into an error carrying the stderr tail.
func (r Result) Err(name string) error {
	if !r.Failed() {
		return nil
	}
	detail := strings.TrimSpace(r.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(r.Stdout)
	}
	if detail == "" {
		return fmt.Errorf("%s exited with code %d", name, r.ExitCode)
	}
	return fmt.Errorf("%s exited with code %d: %s", name, r.ExitCode, detail)
}

// Runner executes external commands. It exists so the launch sequence
// can be tested without the real binaries installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec, capturing both streams.
type ExecRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() *ExecRunner { return &ExecRunner{} }

// Run invokes name with args and blocks until it finishes. A non-zero
// exit status is reported through Result.ExitCode, not the error; the
// error is reserved for failures to start the process at all (missing
// binary, cancelled context).
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	// #nosec G204 - command names come from the fixed tool table, arguments
	// from the validated session.
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("running %s: %w", name, err)
	}

	return result, nil
}
