package solana

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestExecRunnerCapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX shell utilities")
	}

	r := NewRunner()
	res, err := r.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Failed() {
		t.Fatalf("exit code = %d, want 0", res.ExitCode)
	}
	if strings.TrimSpace(res.Stdout) != "out" {
		t.Errorf("Stdout = %q", res.Stdout)
	}
	if strings.TrimSpace(res.Stderr) != "err" {
		t.Errorf("Stderr = %q", res.Stderr)
	}
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX shell utilities")
	}

	r := NewRunner()
	res, err := r.Run(context.Background(), "sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v, non-zero exits should not be errors", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !res.Failed() {
		t.Error("Failed() = false, want true")
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewRunner()
	if _, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz"); err == nil {
		t.Fatal("Run() of a missing binary succeeded")
	}
}

func TestResultErr(t *testing.T) {
	ok := Result{ExitCode: 0, Stdout: "fine"}
	if err := ok.Err("tool"); err != nil {
		t.Errorf("Err() on success = %v", err)
	}

	failed := Result{ExitCode: 1, Stderr: "boom\n"}
	err := failed.Err("tool")
	if err == nil {
		t.Fatal("Err() on failure = nil")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Err() = %q, want stderr detail", err)
	}

	silent := Result{ExitCode: 7}
	if err := silent.Err("tool"); err == nil || !strings.Contains(err.Error(), "code 7") {
		t.Errorf("Err() = %v, want exit code detail", err)
	}
}
