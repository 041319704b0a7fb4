// Where: internal/domain/launch/parameters.go
// What: Immutable build parameters for the image build.
// Why: Resolve defaults once so the renderer and invoker see the same values.
package launch

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultBaseImage         = "openjdk:14-alpine"
	DefaultPort              = 8080
	DefaultMaxHeapSize       = "128m"
	DefaultCharacterEncoding = "UTF-8"
	DefaultExecutable        = "java"

	// ArtifactPath is where the application jar lives inside the image.
	ArtifactPath = "/home/app/application.jar"
)

var (
	ErrTagRequired = errors.New("image tag is required")
	errInvalidPort = errors.New("exposed port must be between 1 and 65535")
)

// Options carries caller-supplied values. Empty fields fall back to defaults.
type Options struct {
	BaseImage                string
	Tag                      string
	ExposedPort              int
	MaxHeapSize              string
	MinHeapSize              string
	SystemProperties         Properties
	JVMArgs                  []string
	DefaultCharacterEncoding string
	Executable               string
}

// Parameters is the resolved, read-only parameter set for one build run.
type Parameters struct {
	baseImage        string
	tag              string
	exposedPort      int
	maxHeapSize      string
	minHeapSize      string
	systemProperties Properties
	jvmArgs          []string
	encoding         string
	executable       string
}

// NewParameters applies defaults and copies all mutable inputs.
func NewParameters(opts Options) Parameters {
	params := Parameters{
		baseImage:        strings.TrimSpace(opts.BaseImage),
		tag:              strings.TrimSpace(opts.Tag),
		exposedPort:      opts.ExposedPort,
		maxHeapSize:      strings.TrimSpace(opts.MaxHeapSize),
		minHeapSize:      strings.TrimSpace(opts.MinHeapSize),
		systemProperties: opts.SystemProperties.Clone(),
		jvmArgs:          append([]string(nil), opts.JVMArgs...),
		encoding:         strings.TrimSpace(opts.DefaultCharacterEncoding),
		executable:       strings.TrimSpace(opts.Executable),
	}
	if params.baseImage == "" {
		params.baseImage = DefaultBaseImage
	}
	if params.exposedPort == 0 {
		params.exposedPort = DefaultPort
	}
	if params.maxHeapSize == "" {
		params.maxHeapSize = DefaultMaxHeapSize
	}
	if params.encoding == "" {
		params.encoding = DefaultCharacterEncoding
	}
	if params.executable == "" {
		params.executable = DefaultExecutable
	}
	return params
}

// Validate reports parameter values that cannot produce a Dockerfile.
func (p Parameters) Validate() error {
	if p.exposedPort < 1 || p.exposedPort > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, p.exposedPort)
	}
	return nil
}

// ValidateBuild additionally requires the tag the image is built under.
func (p Parameters) ValidateBuild() error {
	if p.tag == "" {
		return ErrTagRequired
	}
	return p.Validate()
}

func (p Parameters) BaseImage() string { return p.baseImage }
func (p Parameters) Tag() string { return p.tag }
func (p Parameters) ExposedPort() int { return p.exposedPort }
func (p Parameters) MaxHeapSize() string { return p.maxHeapSize }
func (p Parameters) MinHeapSize() string { return p.minHeapSize }
func (p Parameters) Executable() string { return p.executable }
func (p Parameters) ArtifactPath() string { return ArtifactPath }

// DefaultCharacterEncoding is carried for callers; it is not emitted on the
// command line.
func (p Parameters) DefaultCharacterEncoding() string { return p.encoding }

// SystemProperties returns a copy of the ordered system properties.
func (p Parameters) SystemProperties() Properties { return p.systemProperties.Clone() }

// JVMArgs returns a copy of the extra JVM arguments.
func (p Parameters) JVMArgs() []string { return append([]string(nil), p.jvmArgs...) }
