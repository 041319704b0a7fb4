// Where: internal/domain/launch/properties.go
// What: Insertion-ordered system property collection.
// Why: The rendered command line must list -D flags in declaration order.
package launch

// Property is a single JVM system property. A nil Value renders as a bare
// -D<name> flag.
type Property struct {
	Name  string
	Value *string
}

// Properties keeps system properties in insertion order. The zero value is
// ready to use.
type Properties struct {
	entries []Property
	index   map[string]int
}

// PropertiesOf builds a collection from name/value pairs in order.
func PropertiesOf(props ...Property) Properties {
	var out Properties
	for _, prop := range props {
		out.Set(prop.Name, prop.Value)
	}
	return out
}

// Set adds name or replaces its value in place, keeping its original position.
func (p *Properties) Set(name string, value *string) {
	if p.index == nil {
		p.index = map[string]int{}
	}
	value = copyValue(value)
	if idx, ok := p.index[name]; ok {
		p.entries[idx].Value = value
		return
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Property{Name: name, Value: value})
}

// SetValue is Set with a non-nil value.
func (p *Properties) SetValue(name, value string) {
	p.Set(name, &value)
}

// Get returns the value for name and whether the name is present.
func (p Properties) Get(name string) (*string, bool) {
	idx, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return copyValue(p.entries[idx].Value), true
}

// Len returns the number of properties.
func (p Properties) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the properties in insertion order.
func (p Properties) Entries() []Property {
	out := make([]Property, 0, len(p.entries))
	for _, entry := range p.entries {
		out = append(out, Property{Name: entry.Name, Value: copyValue(entry.Value)})
	}
	return out
}

// Merge applies every entry of other on top of p, in other's order.
func (p *Properties) Merge(other Properties) {
	for _, entry := range other.entries {
		p.Set(entry.Name, entry.Value)
	}
}

// Clone returns an independent copy.
func (p Properties) Clone() Properties {
	return PropertiesOf(p.entries...)
}

func copyValue(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
