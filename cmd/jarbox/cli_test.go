// Where: cmd/jarbox/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic.
package main

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/poruru-code/jarbox/internal/infra/docker"
)

type fakeDockerClient struct{}

func (fakeDockerClient) ImageInspect(_ context.Context, _ string, _ ...client.ImageInspectOption) (image.InspectResponse, error) {
	return image.InspectResponse{}, nil
}

func (fakeDockerClient) Close() error {
	return nil
}

func TestBuildDependenciesSuccess(t *testing.T) {
	origGetwd := getwd
	origNewClient := newDockerClient
	t.Cleanup(func() {
		getwd = origGetwd
		newDockerClient = origNewClient
	})

	getwd = func() (string, error) {
		return "/project", nil
	}
	calls := 0
	newDockerClient = func() (docker.Client, error) {
		calls++
		return fakeDockerClient{}, nil
	}

	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.ProjectDir != "/project" {
		t.Fatalf("unexpected project dir: %s", deps.ProjectDir)
	}
	if deps.Runner == nil || deps.Templates == nil {
		t.Fatalf("expected runner and templates to be wired")
	}
	if calls != 0 {
		t.Fatalf("docker client must be opened lazily")
	}
	if _, err := deps.DockerClient(); err != nil || calls != 1 {
		t.Fatalf("expected factory to open client, calls=%d err=%v", calls, err)
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() { getwd = origGetwd })

	errGetwd := errors.New("getwd failed")
	getwd = func() (string, error) {
		return "", errGetwd
	}

	if _, err := buildDependencies(); !errors.Is(err, errGetwd) {
		t.Fatalf("expected getwd error, got %v", err)
	}
}
