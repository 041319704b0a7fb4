// Where: internal/command/build_inputs.go
// What: Build request derivation from config file, env, and flags.
// Why: Apply precedence once: defaults < jarbox.yaml < env/flags.
package command

import (
	"fmt"
	"strings"

	"github.com/poruru-code/jarbox/internal/domain/launch"
	"github.com/poruru-code/jarbox/internal/domain/template"
	"github.com/poruru-code/jarbox/internal/infra/build"
	"github.com/poruru-code/jarbox/internal/infra/config"
)

// loadProjectConfig returns the project config, or a zero config when none exists.
func loadProjectConfig(projectDir, explicit string) (config.File, string, error) {
	path, ok, err := config.Resolve(projectDir, explicit)
	if err != nil {
		return config.File{}, "", fmt.Errorf("%w: %w", build.ErrConfiguration, err)
	}
	if !ok {
		return config.File{}, "", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.File{}, "", fmt.Errorf("%w: %w", build.ErrConfiguration, err)
	}
	return cfg, path, nil
}

func resolveBuildRequest(projectDir string, cli CLI, flags BuildFlags) (build.Request, error) {
	cfg, _, err := loadProjectConfig(projectDir, cli.Config)
	if err != nil {
		return build.Request{}, err
	}

	flagProps, err := parseSystemProperties(flags.SystemProperties)
	if err != nil {
		return build.Request{}, fmt.Errorf("%w: %w", build.ErrConfiguration, err)
	}

	opts := cfg.Options()
	opts.BaseImage = firstNonEmpty(flags.BaseImage, opts.BaseImage)
	opts.Tag = firstNonEmpty(flags.Tag, opts.Tag)
	if flags.Port != 0 {
		opts.ExposedPort = flags.Port
	}
	opts.MaxHeapSize = firstNonEmpty(flags.MaxHeap, opts.MaxHeapSize)
	opts.MinHeapSize = firstNonEmpty(flags.MinHeap, opts.MinHeapSize)
	opts.SystemProperties.Merge(flagProps)
	opts.JVMArgs = append(opts.JVMArgs, flags.JVMArgs...)
	opts.DefaultCharacterEncoding = firstNonEmpty(flags.Encoding, opts.DefaultCharacterEncoding)

	kind := template.KindJVM
	if flags.Native || cfg.Native.Enabled {
		kind = template.KindNative
	}

	return build.Request{
		ProjectDir: projectDir,
		BuildDir:   firstNonEmpty(flags.BuildDir, cfg.BuildDir),
		Parameters: launch.NewParameters(opts),
		Kind:       kind,
		Native: template.NativeOptions{
			GraalVMImage: firstNonEmpty(flags.GraalVMImage, cfg.Native.GraalVMImage),
			MainClass:    firstNonEmpty(flags.MainClass, cfg.Native.MainClass),
		},
		TemplatePath: firstNonEmpty(flags.Template, cfg.Template),
		Executable:   firstNonEmpty(flags.Executable, cfg.Executable),
		Strict:       flags.Strict,
		Verbose:      cli.Verbose,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
