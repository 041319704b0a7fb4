// Where: internal/infra/build/builder.go
// What: Image build orchestrator: render, then invoke the container builder.
// Why: Keep the run strictly sequential with one best-effort attempt per phase.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/poruru-code/jarbox/assets"
	"github.com/poruru-code/jarbox/internal/domain/template"
	"github.com/poruru-code/jarbox/internal/infra/process"
)

// Builder renders Dockerfiles and invokes the container-build executable.
type Builder struct {
	Templates fs.FS
	Runner    process.CommandRunner
	Out       io.Writer
	Emoji     bool
	// OnPhase observes every state transition of a run.
	OnPhase func(Phase)
}

// NewBuilder returns a Builder using the embedded templates and os/exec.
func NewBuilder(out io.Writer, emoji bool) *Builder {
	return &Builder{
		Templates: assets.TemplatesFS,
		Runner:    process.ExecRunner{},
		Out:       out,
		Emoji:     emoji,
	}
}

// Render renders the Dockerfile without invoking the container builder.
func (b *Builder) Render(_ context.Context, req Request) (Result, error) {
	run, err := b.start(req)
	if err != nil {
		return run.result, err
	}
	if err := run.render(); err != nil {
		return run.result, err
	}
	return run.result, nil
}

// Build renders the Dockerfile and then runs `<executable> build`.
// A rendered file stays on disk when the child fails.
func (b *Builder) Build(ctx context.Context, req Request) (Result, error) {
	run, err := b.start(req)
	if err != nil {
		return run.result, err
	}
	if err := req.Parameters.ValidateBuild(); err != nil {
		run.moveTo(PhaseFailed)
		return run.result, configError(err)
	}
	if b.Runner == nil {
		run.moveTo(PhaseFailed)
		return run.result, errRunnerNil
	}
	if err := run.render(); err != nil {
		return run.result, err
	}

	invoker := Invoker{Runner: b.Runner, Executable: req.Executable}
	run.result.Args = append([]string{invoker.executable()}, BuildArgs(run.result.DockerfilePath, req.Parameters.Tag())...)
	run.moveTo(PhaseInvoking)
	err = run.reporter.Run("Build image "+req.Parameters.Tag(), func() error {
		return invoker.Invoke(ctx, req.ProjectDir, run.result.DockerfilePath, req.Parameters.Tag())
	})
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			run.result.ExitCode = exitErr.Code
		}
		run.moveTo(PhaseInvocationFailed)
		return run.result, err
	}
	run.moveTo(PhaseCompleted)
	return run.result, nil
}

type buildRun struct {
	builder  *Builder
	req      Request
	reporter phaseReporter
	result   Result
}

// start validates everything a render needs before any file is written.
func (b *Builder) start(req Request) (*buildRun, error) {
	run := &buildRun{builder: b, req: req, result: Result{Phase: PhaseIdle}}
	if b == nil {
		run.result.Phase = PhaseFailed
		return run, errors.New("builder is nil")
	}
	run.reporter = newPhaseReporter(b.Out, req.Verbose, b.Emoji)
	if strings.TrimSpace(req.ProjectDir) == "" {
		run.moveTo(PhaseFailed)
		return run, configError(errProjectDirRequired)
	}
	if !dirExists(req.ProjectDir) {
		run.moveTo(PhaseFailed)
		return run, configError(fmt.Errorf("%w: %s", errProjectDirMissing, req.ProjectDir))
	}
	if err := req.Parameters.Validate(); err != nil {
		run.moveTo(PhaseFailed)
		return run, configError(err)
	}
	return run, nil
}

func (r *buildRun) render() error {
	r.moveTo(PhaseRendering)
	var out rendered
	err := r.reporter.Run("Render Dockerfile", func() error {
		var renderErr error
		out, renderErr = renderDockerfile(r.builder.templates(), r.req)
		return renderErr
	})
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			r.moveTo(PhaseTemplateMissing)
		} else {
			r.moveTo(PhaseFailed)
		}
		return err
	}
	r.result.DockerfilePath = out.path
	r.result.Unresolved = out.unresolved
	r.moveTo(PhaseRendered)
	return nil
}

func (r *buildRun) moveTo(next Phase) {
	if !canTransition(r.result.Phase, next) {
		panic(fmt.Sprintf("build: invalid phase transition %s -> %s", r.result.Phase, next))
	}
	r.result.Phase = next
	if r.builder != nil && r.builder.OnPhase != nil {
		r.builder.OnPhase(next)
	}
}

func (b *Builder) templates() fs.FS {
	if b.Templates != nil {
		return b.Templates
	}
	return assets.TemplatesFS
}
