// Where: internal/command/build_flags.go
// What: Flags shared by build and render.
// Why: Keep both commands on the same input surface.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru-code/jarbox/internal/domain/launch"
)

var errPropertyNameRequired = errors.New("system property name is required")

// BuildFlags defines the launch and rendering flags. Each flag also reads
// <EnvPrefix>_<FLAG_NAME>, e.g. JARBOX_BASE_IMAGE.
type BuildFlags struct {
	Tag              string   `short:"t" help:"Image tag (required)"`
	BaseImage        string   `name:"base-image" help:"Base image (default: openjdk:14-alpine)"`
	Port             int      `help:"Exposed port (default: 8080)"`
	MaxHeap          string   `name:"max-heap" help:"Maximum heap size (default: 128m)"`
	MinHeap          string   `name:"min-heap" help:"Initial heap size"`
	SystemProperties []string `short:"D" name:"system-property" sep:"none" placeholder:"KEY[=VALUE]" help:"Java system property (repeatable, ordered)"`
	JVMArgs          []string `name:"jvm-arg" sep:"none" help:"Extra JVM argument (repeatable, appended)"`
	Encoding         string   `help:"Default character encoding (default: UTF-8)"`
	BuildDir         string   `name:"build-dir" help:"Build output directory (default: build)"`
	Template         string   `help:"Dockerfile template path"`
	Native           bool     `help:"Render the native-image variant"`
	GraalVMImage     string   `name:"graalvm-image" help:"GraalVM builder image for --native"`
	MainClass        string   `name:"main-class" help:"Application main class for --native"`
	Executable       string   `help:"Container build executable (default: docker)"`
	Strict           bool     `help:"Fail when the rendered Dockerfile still contains tokens"`
	Print            bool     `help:"Print the rendered Dockerfile"`
}

// parseSystemProperties converts key[=value] entries in order. A missing '='
// yields a flag-only property; key= yields an empty value.
func parseSystemProperties(entries []string) (launch.Properties, error) {
	var props launch.Properties
	for _, entry := range entries {
		name, value, hasValue := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return launch.Properties{}, fmt.Errorf("%w: %q", errPropertyNameRequired, entry)
		}
		if !hasValue {
			props.Set(name, nil)
			continue
		}
		props.SetValue(name, value)
	}
	return props, nil
}
