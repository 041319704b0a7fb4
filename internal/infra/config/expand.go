// Where: internal/infra/config/expand.go
// What: Template expansion of config string values.
// Why: Allow env-driven values such as tags without a separate substitution syntax.
package config

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/jarbox/internal/domain/launch"
)

func expandValue(field, value string) (string, error) {
	if !strings.Contains(value, "{{") {
		return value, nil
	}
	tmpl, err := template.New(field).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(value)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", field, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", fmt.Errorf("expand %s: %w", field, err)
	}
	return buf.String(), nil
}

type expander struct {
	err error
}

func (e *expander) string(field string, value *string) {
	if e.err != nil {
		return
	}
	*value, e.err = expandValue(field, *value)
}

func (e *expander) strings(field string, values []string) {
	for i := range values {
		e.string(fmt.Sprintf("%s[%d]", field, i), &values[i])
	}
}

func (e *expander) properties(field string, props *launch.Properties) {
	if e.err != nil {
		return
	}
	var out launch.Properties
	for _, prop := range props.Entries() {
		if prop.Value == nil {
			out.Set(prop.Name, nil)
			continue
		}
		value := *prop.Value
		e.string(field+"."+prop.Name, &value)
		if e.err != nil {
			return
		}
		out.SetValue(prop.Name, value)
	}
	*props = out
}
