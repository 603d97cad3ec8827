package json2table

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML document into a Value, preserving mapping key
// order. YAML is a superset of JSON, so this is also the order-preserving
// way to ingest JSON text: decoding through map[string]any loses key order,
// the yaml node API keeps it.
func FromYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Value{}, err
	}
	return fromYAMLNode(&node)
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case 0:
		// Empty document.
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		elems := make([]Value, len(n.Content))
		for i, e := range n.Content {
			elem, err := fromYAMLNode(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = elem
		}
		return Array(elems...), nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: n.Content[i].Value, Value: val})
		}
		return Object(members...), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n), nil
	default:
		return Value{}, fmt.Errorf("%w: yaml node kind %d", ErrUnsupportedType, n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return Null()
	case "!!bool":
		switch strings.ToLower(n.Value) {
		case "true", "y", "yes", "on":
			return Bool(true)
		default:
			return Bool(false)
		}
	case "!!int", "!!float":
		return numberLiteral(n.Value)
	default:
		return String(n.Value)
	}
}
