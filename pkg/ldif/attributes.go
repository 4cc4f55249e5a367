package ldif

import (
	"strings"

	"github.com/gnames/gnfmt"
	"gopkg.in/yaml.v3"
)

// Attributes is a multi-valued attribute map that remembers the order
// in which names were first seen. Names are case-insensitive, the first
// spelling is kept for output.
type Attributes struct {
	names  []string
	values map[string][]string
}

// NewAttributes creates an empty Attributes.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string][]string)}
}

// Add appends a value to the attribute name.
func (a *Attributes) Add(name string, vals ...string) {
	key := strings.ToLower(name)
	if _, ok := a.values[key]; !ok {
		a.names = append(a.names, name)
		a.values[key] = []string{}
	}
	a.values[key] = append(a.values[key], vals...)
}

// Get returns values of an attribute or nil if it does not exist.
func (a *Attributes) Get(name string) []string {
	if a == nil {
		return nil
	}
	return a.values[strings.ToLower(name)]
}

// Names returns attribute names in the order of appearance.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	res := make([]string, len(a.names))
	copy(res, a.names)
	return res
}

// Len returns the number of distinct attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Map returns a copy of attributes keyed by their original spelling.
func (a *Attributes) Map() map[string][]string {
	res := make(map[string][]string, a.Len())
	for _, name := range a.Names() {
		vals := a.Get(name)
		res[name] = append([]string{}, vals...)
	}
	return res
}

// Clone returns a deep copy of a. Clone of nil is nil.
func (a *Attributes) Clone() *Attributes {
	if a == nil {
		return nil
	}
	res := NewAttributes()
	for _, name := range a.names {
		res.Add(name, a.Get(name)...)
	}
	return res
}

// String renders attributes back to LDIF lines, each line terminated by
// a new line character.
func (a *Attributes) String() string {
	var sb strings.Builder
	for _, name := range a.Names() {
		for _, v := range a.Get(name) {
			sb.WriteString(name)
			sb.WriteString(": ")
			sb.WriteString(v)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// MarshalJSON encodes attributes as an object of value lists.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	enc := gnfmt.GNjson{}
	return enc.Encode(a.Map())
}

// MarshalYAML keeps the attribute order in YAML output.
func (a *Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range a.Names() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		vals := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range a.Get(name) {
			vals.Content = append(vals.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
		}
		node.Content = append(node.Content, key, vals)
	}
	return node, nil
}
