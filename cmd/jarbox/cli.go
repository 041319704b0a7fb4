// Where: cmd/jarbox/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/jarbox/assets"
	"github.com/poruru-code/jarbox/internal/command"
	"github.com/poruru-code/jarbox/internal/infra/docker"
	"github.com/poruru-code/jarbox/internal/infra/process"
)

var (
	getwd           = os.Getwd
	newDockerClient = docker.NewClient
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// The Docker client is opened lazily, after a successful build.
func buildDependencies() (command.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return command.Dependencies{}, err
	}

	return command.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Runner:     process.ExecRunner{},
		Templates:  assets.TemplatesFS,
		DockerClient: func() (docker.Client, error) {
			return newDockerClient()
		},
	}, nil
}
