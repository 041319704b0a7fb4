// Where: internal/infra/build/errors.go
// What: Error kinds surfaced by the image build orchestrator.
// Why: Let callers classify failures with errors.Is/As without string matching.
package build

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks fatal input problems found before any write or spawn.
	ErrConfiguration = errors.New("configuration error")
	// ErrIO marks failures creating or writing the rendered Dockerfile.
	ErrIO = errors.New("i/o error")
	// ErrChildProcess marks a container-build executable that did not succeed.
	ErrChildProcess = errors.New("container build failed")

	errRunnerNil          = errors.New("command runner is nil")
	errProjectDirRequired = errors.New("project dir is required")
	errProjectDirMissing  = errors.New("project dir does not exist")
	errUnresolvedTokens   = errors.New("unresolved template tokens")
)

// ExitError carries the exit status of the container-build executable.
// Code is -1 when the executable could not be started.
type ExitError struct {
	Executable string
	Code       int
	Err        error
}

func (e *ExitError) Error() string {
	if e.Code < 0 && e.Err != nil {
		return fmt.Sprintf("run %s: %v", e.Executable, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d", e.Executable, e.Code)
}

func (e *ExitError) Unwrap() []error {
	return []error{ErrChildProcess, e.Err}
}

func configError(err error) error {
	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
