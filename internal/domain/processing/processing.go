// Where: internal/domain/processing/processing.go
// What: Annotation-processor argument block for incremental compilation.
// Why: Expose the key/value arguments a compiler plugin needs without wiring the plugin itself.
package processing

import (
	"strconv"
	"strings"
)

const (
	KeyIncremental = "micronaut.processing.incremental"
	KeyAnnotations = "micronaut.processing.annotations"
	KeyGroup       = "micronaut.processing.group"
	KeyModule      = "micronaut.processing.module"
)

// Config describes the processing options of one project.
// A nil Incremental means enabled.
type Config struct {
	Incremental *bool
	Annotations []string
	Group       string
	Module      string
}

// Argument is one entry of the compiler plugin's argument block.
type Argument struct {
	Key   string
	Value string
}

// Arguments returns the argument block in a stable order. Non-incremental
// processing needs no arguments.
func Arguments(cfg Config) []Argument {
	if cfg.Incremental != nil && !*cfg.Incremental {
		return nil
	}
	group := strings.TrimSpace(cfg.Group)
	args := []Argument{{Key: KeyIncremental, Value: strconv.FormatBool(true)}}

	annotations := make([]string, 0, len(cfg.Annotations))
	for _, annotation := range cfg.Annotations {
		if trimmed := strings.TrimSpace(annotation); trimmed != "" {
			annotations = append(annotations, trimmed)
		}
	}
	switch {
	case len(annotations) > 0:
		args = append(args, Argument{Key: KeyAnnotations, Value: strings.Join(annotations, ",")})
	case group != "":
		args = append(args, Argument{Key: KeyAnnotations, Value: group + ".*"})
	}

	if group != "" {
		args = append(args, Argument{Key: KeyGroup, Value: group})
	}
	args = append(args, Argument{Key: KeyModule, Value: strings.TrimSpace(cfg.Module)})
	return args
}
