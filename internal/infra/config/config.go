// Where: internal/infra/config/config.go
// What: jarbox.yaml project configuration loading.
// Why: Keep file discovery, validation, and decoding behind one entry point.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/jarbox/internal/domain/launch"
	"github.com/poruru-code/jarbox/internal/domain/processing"
	"github.com/poruru-code/jarbox/internal/infra/fileops"
	"github.com/poruru-code/jarbox/internal/meta"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid marks a config file that fails schema validation or decoding.
	ErrInvalid = errors.New("invalid config file")

	errConfigNotFound = errors.New("config file not found")
)

// File represents jarbox.yaml. Zero values mean "not set".
type File struct {
	BaseImage                string     `yaml:"baseImage"`
	Tag                      string     `yaml:"tag"`
	Port                     int        `yaml:"port"`
	MaxHeapSize              string     `yaml:"maxHeapSize"`
	MinHeapSize              string     `yaml:"minHeapSize"`
	SystemProperties         Properties `yaml:"systemProperties"`
	JVMArgs                  []string   `yaml:"jvmArgs"`
	DefaultCharacterEncoding string     `yaml:"defaultCharacterEncoding"`
	BuildDir                 string     `yaml:"buildDir"`
	Executable               string     `yaml:"executable"`
	Template                 string     `yaml:"template"`
	Native                   Native     `yaml:"native"`
	Processing               Processing `yaml:"processing"`
}

// Native configures the native-image Dockerfile variant.
type Native struct {
	Enabled      bool   `yaml:"enabled"`
	GraalVMImage string `yaml:"graalvmImage"`
	MainClass    string `yaml:"mainClass"`
}

// Processing configures the annotation-processor argument block.
type Processing struct {
	Incremental *bool    `yaml:"incremental"`
	Group       string   `yaml:"group"`
	Module      string   `yaml:"module"`
	Annotations []string `yaml:"annotations"`
}

// Resolve returns the config path to load. An explicit path must exist;
// otherwise <projectDir>/jarbox.yaml is used when present. ok is false when
// there is nothing to load.
func Resolve(projectDir, explicit string) (path string, ok bool, err error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(projectDir, explicit)
		}
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("%w: %s", errConfigNotFound, explicit)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return explicit, true, nil
	}
	candidate := filepath.Join(projectDir, meta.ConfigFile)
	if !fileops.FileExists(candidate) {
		return "", false, nil
	}
	return candidate, true, nil
}

// Load reads and parses the config file at path.
func Load(path string) (File, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(payload)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates, decodes, and expands a config document.
func Parse(payload []byte) (File, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return File{}, nil
	}
	if err := validate(payload); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var cfg File
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return File{}, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := cfg.expand(); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

func (f *File) expand() error {
	e := &expander{}
	e.string("baseImage", &f.BaseImage)
	e.string("tag", &f.Tag)
	e.string("maxHeapSize", &f.MaxHeapSize)
	e.string("minHeapSize", &f.MinHeapSize)
	e.properties("systemProperties", &f.SystemProperties.Properties)
	e.strings("jvmArgs", f.JVMArgs)
	e.string("defaultCharacterEncoding", &f.DefaultCharacterEncoding)
	e.string("buildDir", &f.BuildDir)
	e.string("executable", &f.Executable)
	e.string("template", &f.Template)
	e.string("native.graalvmImage", &f.Native.GraalVMImage)
	e.string("native.mainClass", &f.Native.MainClass)
	e.string("processing.group", &f.Processing.Group)
	e.string("processing.module", &f.Processing.Module)
	e.strings("processing.annotations", f.Processing.Annotations)
	return e.err
}

// Options converts the launch-related fields.
func (f File) Options() launch.Options {
	return launch.Options{
		BaseImage:                f.BaseImage,
		Tag:                      f.Tag,
		ExposedPort:              f.Port,
		MaxHeapSize:              f.MaxHeapSize,
		MinHeapSize:              f.MinHeapSize,
		SystemProperties:         f.SystemProperties.Clone(),
		JVMArgs:                  append([]string(nil), f.JVMArgs...),
		DefaultCharacterEncoding: f.DefaultCharacterEncoding,
	}
}

// ProcessingConfig converts the processing section.
func (f File) ProcessingConfig() processing.Config {
	return processing.Config{
		Incremental: f.Processing.Incremental,
		Annotations: append([]string(nil), f.Processing.Annotations...),
		Group:       f.Processing.Group,
		Module:      f.Processing.Module,
	}
}
