// Where: internal/command/processing.go
// What: processing-args command handler.
// Why: Expose the annotation-processor argument block for compiler integration.
package command

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/poruru-code/jarbox/internal/domain/processing"
)

// ProcessingArgsCmd defines the processing-args command flags.
type ProcessingArgsCmd struct {
	Group         string   `help:"Project group (default: processing.group in jarbox.yaml)"`
	Module        string   `help:"Module name (default: project directory name)"`
	Annotations   []string `name:"annotation" help:"Annotation pattern (repeatable or comma-separated)"`
	NoIncremental bool     `name:"no-incremental" help:"Disable incremental processing"`
}

func runProcessingArgs(cli CLI, deps Dependencies, out io.Writer) int {
	cfg, _, err := loadProjectConfig(deps.ProjectDir, cli.Config)
	if err != nil {
		return exitWithError(out, err)
	}

	flags := cli.ProcessingArgs
	pc := cfg.ProcessingConfig()
	pc.Group = firstNonEmpty(flags.Group, pc.Group)
	pc.Module = firstNonEmpty(flags.Module, pc.Module, filepath.Base(deps.ProjectDir))
	if len(flags.Annotations) > 0 {
		pc.Annotations = flags.Annotations
	}
	if flags.NoIncremental {
		disabled := false
		pc.Incremental = &disabled
	}

	ui := plainUI(out)
	for _, arg := range processing.Arguments(pc) {
		ui.Info(fmt.Sprintf("%s=%s", arg.Key, arg.Value))
	}
	return 0
}
