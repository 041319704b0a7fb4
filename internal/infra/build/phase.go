// Where: internal/infra/build/phase.go
// What: Per-run state machine for render and build.
// Why: Report exactly where a run stopped.
package build

// Phase is the state of a single run.
//
//	Idle -> Rendering -> Rendered -> Invoking -> Completed
//	        Rendering -> TemplateMissing
//	                                 Invoking -> InvocationFailed
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRendering
	PhaseRendered
	PhaseInvoking
	PhaseCompleted
	PhaseTemplateMissing
	PhaseInvocationFailed
	// PhaseFailed covers configuration and I/O failures that are not a missing template.
	PhaseFailed
)

var phaseNames = map[Phase]string{
	PhaseIdle:             "idle",
	PhaseRendering:        "rendering",
	PhaseRendered:         "rendered",
	PhaseInvoking:         "invoking",
	PhaseCompleted:        "completed",
	PhaseTemplateMissing:  "template-missing",
	PhaseInvocationFailed: "invocation-failed",
	PhaseFailed:           "failed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseCompleted, PhaseTemplateMissing, PhaseInvocationFailed, PhaseFailed:
		return true
	}
	return false
}

var transitions = map[Phase][]Phase{
	PhaseIdle:      {PhaseRendering, PhaseFailed},
	PhaseRendering: {PhaseRendered, PhaseTemplateMissing, PhaseFailed},
	PhaseRendered:  {PhaseInvoking, PhaseFailed},
	PhaseInvoking:  {PhaseCompleted, PhaseInvocationFailed},
}

func canTransition(from, to Phase) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Result describes the outcome of one run.
type Result struct {
	Phase          Phase
	DockerfilePath string
	Args           []string
	ExitCode       int
	Unresolved     []string
}
