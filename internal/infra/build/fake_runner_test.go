package build

import (
	"context"
	"fmt"
)

type runnerCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls []runnerCall
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, runnerCall{dir: dir, name: name, args: append([]string{}, args...)})
	return f.err
}

type fakeExitError struct {
	code int
}

func (e fakeExitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func (e fakeExitError) ExitCode() int { return e.code }
