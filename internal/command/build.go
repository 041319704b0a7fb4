// Where: internal/command/build.go
// What: build and render command handlers.
// Why: Drive the orchestrator and present its result.
package command

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/poruru-code/jarbox/internal/infra/build"
	"github.com/poruru-code/jarbox/internal/infra/docker"
	"github.com/poruru-code/jarbox/internal/infra/ui"
)

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	return runPipeline(cli, cli.Build.Flags, deps, out, true)
}

func runRender(cli CLI, deps Dependencies, out io.Writer) int {
	return runPipeline(cli, cli.Render.Flags, deps, out, false)
}

func runPipeline(cli CLI, flags BuildFlags, deps Dependencies, out io.Writer, invoke bool) int {
	console, emoji, err := commandUI(out, cli)
	if err != nil {
		return exitWithError(out, err)
	}

	req, err := resolveBuildRequest(deps.ProjectDir, cli, flags)
	if err != nil {
		return exitWithBuildError(out, err)
	}

	builder := newBuilder(deps, out, emoji)
	var result build.Result
	if invoke {
		result, err = builder.Build(deps.Context, req)
	} else {
		result, err = builder.Render(deps.Context, req)
	}

	if len(result.Unresolved) > 0 {
		console.Warn(fmt.Sprintf("unresolved template tokens left in %s: %s", result.DockerfilePath, strings.Join(result.Unresolved, ", ")))
	}
	if flags.Print && result.DockerfilePath != "" {
		if printErr := printFile(out, result.DockerfilePath); printErr != nil {
			console.Warn(printErr.Error())
		}
	}
	if err != nil {
		return exitWithBuildError(out, err)
	}

	tag := req.Parameters.Tag()
	if !invoke {
		console.Success(fmt.Sprintf("Rendered %s", result.DockerfilePath))
		return 0
	}
	console.Success(fmt.Sprintf("Built image %s", tag))
	showImageSummary(deps.Context, console, deps.DockerClient, tag, result.DockerfilePath)
	return 0
}

var now = time.Now

func newBuilder(deps Dependencies, out io.Writer, emoji bool) *build.Builder {
	builder := build.NewBuilder(out, emoji)
	if deps.Templates != nil {
		builder.Templates = deps.Templates
	}
	if deps.Runner != nil {
		builder.Runner = deps.Runner
	}
	return builder
}

// showImageSummary prints what the engine reports for tag. Inspection is
// informational; failures only warn.
func showImageSummary(ctx context.Context, console ui.UserInterface, factory DockerClientFactory, tag, dockerfile string) {
	if factory == nil {
		return
	}
	client, err := factory()
	if err != nil {
		console.Warn(fmt.Sprintf("skip image summary: %v", err))
		return
	}
	defer client.Close()

	summary, err := docker.InspectImage(ctx, client, tag)
	if err != nil {
		console.Warn(fmt.Sprintf("skip image summary: %v", err))
		return
	}
	tags := summary.TagList()
	if tags == "" {
		tags = tag
	}
	console.Block("📦", "Image", []ui.KeyValue{
		{Key: "Tags", Value: tags},
		{Key: "ID", Value: summary.ShortID()},
		{Key: "Size", Value: summary.HumanSize()},
		{Key: "Platform", Value: summary.Platform},
		{Key: "Created", Value: summary.CreatedSince(now())},
		{Key: "Dockerfile", Value: dockerfile},
	})
}
