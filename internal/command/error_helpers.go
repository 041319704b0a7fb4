// Where: internal/command/error_helpers.go
// What: Shared CLI error output and exit codes.
// Why: Keep failure output and exit status consistent across commands.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru-code/jarbox/internal/domain/launch"
	"github.com/poruru-code/jarbox/internal/domain/template"
	"github.com/poruru-code/jarbox/internal/infra/build"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	plainUI(out).Error(err.Error())
	return 1
}

// exitWithSuggestion prints a message followed by next steps and returns 1.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	fmt.Fprintf(out, "⚠️  %s\n", message)
	printNextSteps(out, suggestions)
	return 1
}

func printNextSteps(out io.Writer, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	for _, suggestion := range suggestions {
		fmt.Fprintf(out, "  - %s\n", suggestion)
	}
}

// exitWithBuildError reports a render/build failure. A failed container
// build exits with the child's own exit code.
func exitWithBuildError(out io.Writer, err error) int {
	var exitErr *build.ExitError
	if errors.As(err, &exitErr) && exitErr.Code < 0 {
		return exitWithSuggestion(out, err.Error(), []string{
			fmt.Sprintf("Install %s or add it to PATH", exitErr.Executable),
			"Or choose another builder: --executable podman (or `executable` in jarbox.yaml)",
		})
	}
	plainUI(out).Error(err.Error())
	printNextSteps(out, buildErrorSuggestions(err))
	return exitCode(err)
}

func buildErrorSuggestions(err error) []string {
	cmd := cliName()
	switch {
	case errors.Is(err, launch.ErrTagRequired):
		return []string{
			fmt.Sprintf("Pass a tag: %s build -t registry.example.com/app:1.0", cmd),
			"Or set `tag` in jarbox.yaml",
		}
	case errors.Is(err, template.ErrTemplateNotFound):
		return []string{"Check that --template (or `template` in jarbox.yaml) points to an existing file"}
	case errors.Is(err, template.ErrMainClassRequired):
		return []string{"Pass --main-class or set native.mainClass in jarbox.yaml"}
	}
	return nil
}

func exitCode(err error) int {
	var exitErr *build.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
