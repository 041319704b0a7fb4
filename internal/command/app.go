// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/jarbox/internal/infra/docker"
	"github.com/poruru-code/jarbox/internal/infra/fileops"
	"github.com/poruru-code/jarbox/internal/infra/process"
	"github.com/poruru-code/jarbox/internal/meta"
	"github.com/poruru-code/jarbox/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to production implementations where one exists.
type Dependencies struct {
	Context      context.Context
	ProjectDir   string
	Out          io.Writer
	Runner       process.CommandRunner
	Templates    fs.FS
	DockerClient DockerClientFactory
}

// DockerClientFactory opens a Docker Engine API client for post-build inspection.
type DockerClientFactory func() (docker.Client, error)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config         string            `short:"c" name:"config" help:"Path to jarbox.yaml (default: ./jarbox.yaml if present)"`
	EnvFile        string            `name:"env-file" env:"-" help:"Path to .env file"`
	Emoji          bool              `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji        bool              `name:"no-emoji" help:"Disable emoji output"`
	Verbose        bool              `short:"v" help:"Verbose output"`
	Build          BuildCmd          `cmd:"" help:"Render the Dockerfile and build the image"`
	Render         RenderCmd         `cmd:"" help:"Render the Dockerfile only"`
	ProcessingArgs ProcessingArgsCmd `cmd:"" name:"processing-args" help:"Print annotation-processor arguments"`
	Version        VersionCmd        `cmd:"" help:"Show version information"`
}

type (
	// BuildCmd renders and invokes the container-build executable.
	BuildCmd struct {
		Flags BuildFlags `embed:""`
	}

	// RenderCmd renders without spawning any process.
	RenderCmd struct {
		Flags BuildFlags `embed:""`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, the
// container builder's exit code when it fails, and 1 on any other error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
		deps.Out = out
	}
	ui := plainUI(out)

	if len(args) == 0 {
		return runNoArgs(out)
	}

	// Env vars back flag values, so the env file must be loaded before parsing.
	loadEnvFile(envFileArg(args), ui.Warn)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Writers(out, out),
		kong.DefaultEnvars(meta.EnvPrefix),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	if deps.ProjectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return exitWithError(out, fmt.Errorf("resolve working directory: %w", err))
		}
		deps.ProjectDir = wd
	}
	if deps.Context == nil {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		deps.Context = ctx
	}

	command := kctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	ui.Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"build":           runBuild,
		"render":          runRender,
		"processing-args": runProcessingArgs,
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	plainUI(out).Info(version.GetVersion())
	return 0
}

// loadEnvFile loads the given env file, or ./.env when it exists.
// Existing environment variables are never overridden.
func loadEnvFile(path string, warn func(string)) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if fileops.FileExists(".env") {
		if err := godotenv.Load(); err != nil {
			warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

// envFileArg extracts the --env-file value ahead of full parsing.
func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// runNoArgs prints short usage when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := plainUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s build --tag <image:tag> [flags]", cmd))
	ui.Info(fmt.Sprintf("  %s render [flags]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s build --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected int value") {
		ui := plainUI(out)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--tag"):
			ui.Warn("`-t/--tag` expects a value. Provide an image reference.")
			ui.Info(fmt.Sprintf("Example: %s build -t registry.example.com/app:1.0", cmd))
			return 1
		case strings.Contains(msg, "--system-property"):
			ui.Warn("`-D/--system-property` expects key[=value].")
			ui.Info(fmt.Sprintf("Example: %s build -t app:1.0 -D micronaut.env=prod -D java.awt.headless", cmd))
			return 1
		case strings.Contains(msg, "--port"):
			ui.Warn("`--port` expects a TCP port number.")
			ui.Info(fmt.Sprintf("Example: %s build -t app:1.0 --port 9000", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s build --env-file .env.prod", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}
