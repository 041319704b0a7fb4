// Where: internal/infra/build/invoke.go
// What: Container-build executable invocation.
// Why: Isolate argument assembly and exit-status mapping from rendering.
package build

import (
	"context"
	"strings"

	"github.com/poruru-code/jarbox/internal/infra/process"
	"github.com/poruru-code/jarbox/internal/meta"
)

// BuildArgs returns the container-build arguments:
// build -f <dockerfile> -t <tag> .
func BuildArgs(dockerfile, tag string) []string {
	return []string{"build", "-f", dockerfile, "-t", tag, "."}
}

// Invoker runs the container-build executable against a rendered Dockerfile.
type Invoker struct {
	Runner     process.CommandRunner
	Executable string
}

func (i Invoker) executable() string {
	if name := strings.TrimSpace(i.Executable); name != "" {
		return name
	}
	return meta.DefaultExecutable
}

// Invoke blocks until the child exits. The child's output is not inspected;
// a non-zero exit becomes an *ExitError.
func (i Invoker) Invoke(ctx context.Context, dir, dockerfile, tag string) error {
	if i.Runner == nil {
		return errRunnerNil
	}
	name := i.executable()
	err := i.Runner.Run(ctx, dir, name, BuildArgs(dockerfile, tag)...)
	if err == nil {
		return nil
	}
	code, ok := process.ExitCode(err)
	if !ok {
		code = -1
	}
	return &ExitError{Executable: name, Code: code, Err: err}
}
