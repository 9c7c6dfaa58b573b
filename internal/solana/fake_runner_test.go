package solana

import (
	"context"
	"strings"
)

// fakeRunner replays canned results keyed by the joined command line and
// records every invocation in order.
type fakeRunner struct {
	results map[string]Result
	errs    map[string]error
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		results: make(map[string]Result),
		errs:    make(map[string]error),
	}
}

func (f *fakeRunner) on(cmdline string, res Result) { f.results[cmdline] = res }

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	if err, ok := f.errs[cmdline]; ok {
		return Result{}, err
	}
	return f.results[cmdline], nil
}
