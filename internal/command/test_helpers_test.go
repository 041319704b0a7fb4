package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
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

type fakeDockerClient struct {
	resp   image.InspectResponse
	err    error
	refs   []string
	closed bool
}

func (f *fakeDockerClient) ImageInspect(_ context.Context, ref string, _ ...client.ImageInspectOption) (image.InspectResponse, error) {
	f.refs = append(f.refs, ref)
	return f.resp, f.err
}

func (f *fakeDockerClient) Close() error {
	f.closed = true
	return nil
}

func writeProjectFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readProjectFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func testDeps(t *testing.T, runner *fakeRunner) Dependencies {
	t.Helper()
	return Dependencies{
		Context:    context.Background(),
		ProjectDir: t.TempDir(),
		Runner:     runner,
	}
}
