// Where: internal/meta/meta.go
// What: CLI identity and layout constants.
// Why: Keep names, env prefixes, and build-output conventions in one place.
package meta

const (
	// Project Identity
	AppName   = "jarbox"
	EnvPrefix = "JARBOX"

	// Configuration
	ConfigFile = "jarbox.yaml"

	// Build Output Layout
	DefaultBuildDir = "build"
	LayersDir       = "layers"
	DockerfileName  = "Dockerfile"

	// Container Build
	DefaultExecutable = "docker"
)
