package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/pulsenet/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// yamlModule is the structured form of one module.
// "to" accepts either a list or a single name.
type yamlModule struct {
	Name string   `mapstructure:"name"`
	Type string   `mapstructure:"type"`
	To   []string `mapstructure:"to"`
}

// ParseYAML reads a document of the form
//
//	modules:
//	  - name: broadcaster
//	    to: [a, b]
//	  - name: a
//	    type: flip-flop
//	    to: [b]
//
// A "%" or "&" prefix on the name is accepted in place of "type".
func (p *Parser) ParseYAML(data []byte) ([]domain.Declaration, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ConfigError{Reason: fmt.Sprintf("invalid yaml: %v", err)}
	}
	if len(doc.Content) == 0 {
		return nil, &domain.ConfigError{Reason: "empty network description"}
	}

	root := doc.Content[0]
	modules := lookup(root, "modules")
	if modules == nil || modules.Kind != yaml.SequenceNode {
		return nil, &domain.ConfigError{Line: root.Line, Reason: `expected a "modules" list`}
	}

	decls := make([]domain.Declaration, 0, len(modules.Content))
	for _, item := range modules.Content {
		d, err := decodeModule(item)
		if err != nil {
			return nil, &domain.ConfigError{Line: item.Line, Reason: err.Error()}
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func decodeModule(item *yaml.Node) (domain.Declaration, error) {
	var raw map[string]any
	if err := item.Decode(&raw); err != nil {
		return domain.Declaration{}, err
	}

	var m yamlModule
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &m,
	})
	if err != nil {
		return domain.Declaration{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Declaration{}, fmt.Errorf("module: %w", err)
	}

	name, typ := m.Name, m.Type
	for _, prefix := range []string{domain.PrefixFlipFlop, domain.PrefixConjunction} {
		if strings.HasPrefix(name, prefix) {
			if typ != "" {
				return domain.Declaration{}, fmt.Errorf("module %q has both a prefix and a type", name)
			}
			name, typ = name[len(prefix):], prefix
		}
	}

	kind, err := domain.ParseKind(typ)
	if err != nil {
		return domain.Declaration{}, err
	}
	return domain.Declaration{
		Name:         name,
		Kind:         kind,
		Destinations: m.To,
		Line:         item.Line,
	}, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// BuildYAML parses a YAML description and compiles it into a network.
func BuildYAML(name string, data []byte) (*domain.Network, error) {
	decls, err := NewParser().ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return Compile(name, decls)
}
