// Where: internal/infra/build/build_request.go
// What: Request parameters for a render/build run.
// Why: Keep orchestrator inputs colocated with the orchestrator.
package build

import (
	"github.com/poruru-code/jarbox/internal/domain/launch"
	"github.com/poruru-code/jarbox/internal/domain/template"
)

// Request contains parameters for one render or build run.
// Callers must not run two requests concurrently against the same BuildDir.
type Request struct {
	ProjectDir   string
	BuildDir     string
	Parameters   launch.Parameters
	Kind         template.Kind
	Native       template.NativeOptions
	TemplatePath string
	Executable   string
	Strict       bool
	Verbose      bool
}
