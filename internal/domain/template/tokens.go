// Where: internal/domain/template/tokens.go
// What: Token values for the shipped templates.
// Why: Derive every substitution from the build parameters in one place.
package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/poruru-code/jarbox/internal/domain/launch"
)

// DefaultGraalVMImage is the toolchain image for the native build stage.
const DefaultGraalVMImage = "ghcr.io/graalvm/native-image:ol8-java17-22"

const nativeClasspath = "/home/app/libs/*:/home/app/resources:/home/app/application.jar"

var (
	ErrMainClassRequired = errors.New("main class is required for native images")
	errUnknownKind       = errors.New("unknown template kind")
)

// NativeOptions holds the inputs that only the native template needs.
type NativeOptions struct {
	GraalVMImage string
	MainClass    string
}

// Tokens builds the token set that belongs to kind.
func Tokens(kind Kind, params launch.Parameters, native NativeOptions) (TokenSet, error) {
	def, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
	switch def.Kind {
	case KindNative:
		return NativeTokens(params, native)
	default:
		return JVMTokens(params), nil
	}
}

// JVMTokens returns the substitutions for the standard JVM template.
func JVMTokens(params launch.Parameters) TokenSet {
	return TokenSet{
		{Placeholder: TokenBaseImage, Value: params.BaseImage()},
		{Placeholder: TokenCommandLine, Value: launch.ExecForm(launch.Argv(params))},
		{Placeholder: TokenApplicationPort, Value: strconv.Itoa(params.ExposedPort())},
	}
}

// NativeTokens returns the substitutions for the ahead-of-time template.
func NativeTokens(params launch.Parameters, opts NativeOptions) (TokenSet, error) {
	mainClass := strings.TrimSpace(opts.MainClass)
	if mainClass == "" {
		return nil, ErrMainClassRequired
	}
	image := strings.TrimSpace(opts.GraalVMImage)
	if image == "" {
		image = DefaultGraalVMImage
	}
	return TokenSet{
		{Placeholder: TokenGraalVMImage, Value: image},
		{Placeholder: TokenNativeImageCmd, Value: strings.Join(NativeImageCommand(mainClass), " ")},
		{Placeholder: TokenBaseImage, Value: params.BaseImage()},
		{Placeholder: TokenBaseImageSetup, Value: BaseImageSetup(params.BaseImage())},
		{Placeholder: TokenApplicationPort, Value: strconv.Itoa(params.ExposedPort())},
	}, nil
}

// NativeImageCommand is the native-image invocation run in the first stage.
func NativeImageCommand(mainClass string) []string {
	return []string{
		"native-image",
		"-cp", nativeClasspath,
		"--no-fallback",
		"-H:Name=application",
		"-H:Class=" + mainClass,
	}
}

// BaseImageSetup returns the extra instruction a runtime base image needs to
// run a glibc-linked native binary. Empty for glibc-based images.
func BaseImageSetup(baseImage string) string {
	if strings.Contains(strings.ToLower(baseImage), "alpine") {
		return "RUN apk add --no-cache libstdc++ gcompat"
	}
	return ""
}
