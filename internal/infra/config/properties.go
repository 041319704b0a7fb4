// Where: internal/infra/config/properties.go
// What: Ordered decoding of the systemProperties mapping.
// Why: Property order is significant on the Java command line and a plain map loses it.
package config

import (
	"fmt"

	"github.com/poruru-code/jarbox/internal/domain/launch"
	"gopkg.in/yaml.v3"
)

// Properties decodes a YAML mapping into launch.Properties. A null value
// decodes to a flag-only property.
type Properties struct {
	launch.Properties
}

func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		p.Properties = launch.Properties{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: systemProperties must be a mapping", node.Line)
	}
	var props launch.Properties
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: system property %q must be a scalar", value.Line, key.Value)
		}
		if value.Tag == "!!null" {
			props.Set(key.Value, nil)
			continue
		}
		props.SetValue(key.Value, value.Value)
	}
	p.Properties = props
	return nil
}
