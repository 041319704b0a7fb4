// Where: internal/command/build_test.go
// What: Tests for the build and render commands.
// Why: Lock down precedence, exit codes, and output of the pipeline.
package command

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/poruru-code/jarbox/internal/infra/docker"
)

func TestRunBuildScenario(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	code := Run([]string{
		"build",
		"-t", "app:1.0",
		"--port", "9000",
		"--base-image", "alpine:3.18",
		"-D", "foo=bar",
		"--jvm-arg=-verbose:gc",
	}, deps)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}

	dockerfile := filepath.Join(deps.ProjectDir, "build", "layers", "Dockerfile")
	if len(runner.calls) != 1 {
		t.Fatalf("expected one invocation, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	wantArgs := []string{"build", "-f", dockerfile, "-t", "app:1.0", "."}
	if call.name != "docker" || call.dir != deps.ProjectDir || !reflect.DeepEqual(call.args, wantArgs) {
		t.Fatalf("unexpected invocation: %+v", call)
	}

	content := readProjectFile(t, dockerfile)
	for _, want := range []string{
		"FROM alpine:3.18\n",
		"\nEXPOSE 9000\n",
		`ENTRYPOINT ["java","-Dfoo=\"bar\"","-Xmx128m","-verbose:gc","-jar","/home/app/application.jar"]`,
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in dockerfile:\n%s", want, content)
		}
	}
	if !strings.Contains(out.String(), "[ok] Built image app:1.0") {
		t.Fatalf("missing success output: %q", out.String())
	}
}

func TestRunBuildPropagatesChildExitCode(t *testing.T) {
	runner := &fakeRunner{err: fakeExitError{code: 3}}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	code := Run([]string{"build", "-t", "app:1.0"}, deps)
	if code != 3 {
		t.Fatalf("expected child exit code 3, got %d", code)
	}
	if !strings.Contains(out.String(), "✗ docker exited with code 3") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunBuildSpawnFailureExitsOne(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec: \"docker\": executable file not found in $PATH")}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	if code := Run([]string{"build", "-t", "app:1.0"}, deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	output := out.String()
	for _, want := range []string{
		"⚠️  run docker: exec:",
		"Next steps:",
		"  - Install docker or add it to PATH",
		"--executable podman",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output: %q", want, output)
		}
	}
}

func TestRunBuildRequiresTag(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	code := Run([]string{"build"}, deps)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no invocation")
	}
	output := out.String()
	if !strings.Contains(output, "image tag is required") || !strings.Contains(output, "Next steps:") {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestRunBuildConfigPrecedence(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out
	writeProjectFile(t, deps.ProjectDir, "jarbox.yaml", `
tag: registry/app:1.0
baseImage: eclipse-temurin:17-jre
port: 8081
maxHeapSize: 256m
systemProperties:
  micronaut.env: prod
  java.awt.headless:
jvmArgs: ["-XX:+UseG1GC"]
buildDir: out
executable: podman
`)

	code := Run([]string{
		"build",
		"--port", "9000",
		"-D", "micronaut.env=dev",
		"-D", "debug",
		"--jvm-arg=-verbose:gc",
	}, deps)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}

	call := runner.calls[0]
	if call.name != "podman" {
		t.Fatalf("expected executable from config, got %s", call.name)
	}
	dockerfile := filepath.Join(deps.ProjectDir, "out", "layers", "Dockerfile")
	if call.args[2] != dockerfile || call.args[4] != "registry/app:1.0" {
		t.Fatalf("unexpected args: %v", call.args)
	}

	content := readProjectFile(t, dockerfile)
	wantEntrypoint := `ENTRYPOINT ["java","-Dmicronaut.env=\"dev\"","-Djava.awt.headless","-Ddebug","-Xmx256m","-XX:+UseG1GC","-verbose:gc","-jar","/home/app/application.jar"]`
	if !strings.Contains(content, wantEntrypoint) {
		t.Fatalf("expected %s in:\n%s", wantEntrypoint, content)
	}
	if !strings.Contains(content, "EXPOSE 9000") || !strings.Contains(content, "FROM eclipse-temurin:17-jre") {
		t.Fatalf("unexpected dockerfile:\n%s", content)
	}
}

func TestRunBuildExplicitConfigPath(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	deps.Out = &bytes.Buffer{}
	writeProjectFile(t, deps.ProjectDir, "ci/jarbox.ci.yaml", "tag: ci/app:7\n")

	if code := Run([]string{"-c", "ci/jarbox.ci.yaml", "build"}, deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if runner.calls[0].args[4] != "ci/app:7" {
		t.Fatalf("unexpected tag: %v", runner.calls[0].args)
	}
}

func TestRunBuildInvalidConfig(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out
	writeProjectFile(t, deps.ProjectDir, "jarbox.yaml", "port: 99999\n")

	if code := Run([]string{"build", "-t", "app:1.0"}, deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no invocation")
	}
	if !strings.Contains(out.String(), "invalid config file") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunBuildInvalidSystemProperty(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	deps.Out = &bytes.Buffer{}

	if code := Run([]string{"build", "-t", "app:1.0", "-D", "=oops"}, deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no invocation")
	}
}

func TestRunBuildMissingTemplate(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	code := Run([]string{"build", "-t", "app:1.0", "--template", "docker/Missing.template"}, deps)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no invocation")
	}
	if !strings.Contains(out.String(), "template not found") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunRenderDoesNotSpawn(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	code := Run([]string{"render", "-t", "app:1.0", "--print"}, deps)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	if len(runner.calls) != 0 {
		t.Fatalf("render must not spawn processes")
	}
	output := out.String()
	if !strings.Contains(output, "FROM openjdk:14-alpine\n") || !strings.Contains(output, "EXPOSE 8080\n") {
		t.Fatalf("expected printed dockerfile, got %q", output)
	}
	if !strings.Contains(output, "[ok] Rendered ") {
		t.Fatalf("missing render success: %q", output)
	}
}

func TestRunRenderWithoutTag(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	if code := Run([]string{"render"}, deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	if len(runner.calls) != 0 {
		t.Fatalf("render must not spawn processes")
	}
	content := readProjectFile(t, filepath.Join(deps.ProjectDir, "build", "layers", "Dockerfile"))
	if !strings.HasPrefix(content, "FROM openjdk:14-alpine\n") {
		t.Fatalf("unexpected dockerfile:\n%s", content)
	}
}

func TestRunRenderStrictAcceptsPlaceholderLikeValues(t *testing.T) {
	deps := testDeps(t, &fakeRunner{})
	var out bytes.Buffer
	deps.Out = &out

	if code := Run([]string{"render", "--strict", "-D", "marker=@x@"}, deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	if strings.Contains(out.String(), "unresolved") {
		t.Fatalf("values must not be reported as tokens: %q", out.String())
	}
}

func TestRunRenderStrictUnresolvedTokens(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	writeProjectFile(t, deps.ProjectDir, "Dockerfile.template", "FROM @base.image@\nLABEL team=@team.name@\n")

	var permissive bytes.Buffer
	deps.Out = &permissive
	if code := Run([]string{"render", "-t", "app:1.0", "--template", "Dockerfile.template"}, deps); code != 0 {
		t.Fatalf("expected permissive render to succeed, got %d", code)
	}
	if !strings.Contains(permissive.String(), "unresolved template tokens") || !strings.Contains(permissive.String(), "@team.name@") {
		t.Fatalf("expected unresolved token warning: %q", permissive.String())
	}

	var strict bytes.Buffer
	deps.Out = &strict
	if code := Run([]string{"render", "-t", "app:1.0", "--template", "Dockerfile.template", "--strict"}, deps); code != 1 {
		t.Fatalf("expected strict render to fail, got %d", code)
	}
}

func TestRunBuildNativeRequiresMainClass(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out

	if code := Run([]string{"build", "-t", "app:1.0", "--native"}, deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "--main-class") {
		t.Fatalf("expected main class suggestion: %q", out.String())
	}

	out.Reset()
	code := Run([]string{"build", "-t", "app:1.0", "--native", "--main-class", "com.example.Application"}, deps)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	content := readProjectFile(t, filepath.Join(deps.ProjectDir, "build", "layers", "Dockerfile"))
	if !strings.Contains(content, "-H:Class=com.example.Application") {
		t.Fatalf("expected native-image command in:\n%s", content)
	}
}

func TestRunBuildShowsImageSummary(t *testing.T) {
	runner := &fakeRunner{}
	deps := testDeps(t, runner)
	var out bytes.Buffer
	deps.Out = &out
	fake := &fakeDockerClient{resp: image.InspectResponse{
		ID:           "sha256:0123456789abcdef0123",
		RepoTags:     []string{"app:1.0", "app:latest"},
		Size:         52_428_800,
		Os:           "linux",
		Architecture: "amd64",
		Created:      "2026-10-19T09:00:00Z",
	}}
	restore := now
	now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })
	deps.DockerClient = func() (docker.Client, error) { return fake, nil }

	if code := Run([]string{"build", "-t", "app:1.0"}, deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !reflect.DeepEqual(fake.refs, []string{"app:1.0"}) || !fake.closed {
		t.Fatalf("unexpected inspection: refs=%v closed=%v", fake.refs, fake.closed)
	}
	output := out.String()
	for _, want := range []string{
		"Image\n",
		"Tags:       app:1.0, app:latest",
		"0123456789ab",
		"52.4MB",
		"linux/amd64",
		"Created:    3 hours ago",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output: %q", want, output)
		}
	}
}

func TestRunBuildInspectionFailureOnlyWarns(t *testing.T) {
	tests := []struct {
		name    string
		factory DockerClientFactory
	}{
		{
			name:    "client unavailable",
			factory: func() (docker.Client, error) { return nil, errors.New("cannot connect") },
		},
		{
			name: "image not found",
			factory: func() (docker.Client, error) {
				return &fakeDockerClient{err: errors.New("no such image")}, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := testDeps(t, &fakeRunner{})
			var out bytes.Buffer
			deps.Out = &out
			deps.DockerClient = tt.factory

			if code := Run([]string{"build", "-t", "app:1.0"}, deps); code != 0 {
				t.Fatalf("expected exit code 0, got %d", code)
			}
			if !strings.Contains(out.String(), "[warn] skip image summary") {
				t.Fatalf("expected warning: %q", out.String())
			}
		})
	}
}

func TestParseSystemProperties(t *testing.T) {
	props, err := parseSystemProperties([]string{"b=2", "flag", "a=", "b=3", "url=http://x?y=z"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	entries := props.Entries()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	if !reflect.DeepEqual(names, []string{"b", "flag", "a", "url"}) {
		t.Fatalf("unexpected order: %v", names)
	}
	if value, _ := props.Get("b"); *value != "3" {
		t.Fatalf("expected replaced value, got %s", *value)
	}
	if value, ok := props.Get("flag"); !ok || value != nil {
		t.Fatalf("expected flag-only property")
	}
	if value, _ := props.Get("a"); value == nil || *value != "" {
		t.Fatalf("expected empty value for a=")
	}
	if value, _ := props.Get("url"); *value != "http://x?y=z" {
		t.Fatalf("value must keep later '=': %s", *value)
	}

	if _, err := parseSystemProperties([]string{" =x"}); !errors.Is(err, errPropertyNameRequired) {
		t.Fatalf("expected name required error, got %v", err)
	}
}
