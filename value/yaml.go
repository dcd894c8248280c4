package value

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a parameter list from a YAML or JSON document whose root
// is a sequence. Mapping order is kept as written and duplicate keys are
// all emitted. Scalars follow their YAML tag, so 3 is an int and 3.0 a
// double. An empty document yields no parameters.
func FromYAML(data []byte) ([]Value, error) {
	return FromYAMLDepth(data, DefaultMaxDepth)
}

// FromYAMLDepth is FromYAML failing with ErrTooDeep when nesting exceeds
// maxDepth. A maxDepth of zero or less selects DefaultMaxDepth.
func FromYAMLDepth(data []byte, maxDepth int) ([]Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	if doc.Kind == 0 {
		return []Value{}, nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []Value{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.AliasNode {
		root = root.Alias
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("decode params: root must be a sequence, got %s at line %d", nodeKindName(root.Kind), root.Line)
	}

	params := make([]Value, 0, len(root.Content))
	for i, n := range root.Content {
		v, err := nodeValue(n, 0, maxDepth, fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, err
		}
		params = append(params, v)
	}
	return params, nil
}

func nodeValue(n *yaml.Node, depth, maxDepth int, path string) (Value, error) {
	if depth > maxDepth {
		return Value{}, fmt.Errorf("%w (limit %d) at %s", ErrTooDeep, maxDepth, path)
	}
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias, depth, maxDepth, path)
	case yaml.ScalarNode:
		return scalarValue(n, path)
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeValue(c, depth+1, maxDepth, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Value{kind: KindArray, elems: elems}, nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("%w: %s mapping key at %s (line %d)", ErrUnsupportedType, nodeKindName(key.Kind), path, key.Line)
			}
			v, err := nodeValue(val, depth+1, maxDepth, fmt.Sprintf("%s[%q]", path, key.Value))
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Name: key.Value, Value: v})
		}
		return Value{kind: KindStruct, members: members}, nil
	}
	return Value{}, fmt.Errorf("%w: %s node at %s", ErrUnsupportedType, nodeKindName(n.Kind), path)
}

func scalarValue(n *yaml.Node, path string) (Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return Nil(), nil
	case "!!str":
		return String(n.Value), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("%w: %v at %s", ErrUnsupportedType, err, path)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, fmt.Errorf("%w: integer %q out of range at %s", ErrUnsupportedType, n.Value, path)
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("%w: %v at %s", ErrUnsupportedType, err, path)
		}
		if _, _, err := classifyFloat(f); err != nil {
			return Value{}, fmt.Errorf("%w at %s", err, path)
		}
		return Double(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return Value{}, fmt.Errorf("%w: %v at %s", ErrUnsupportedType, err, path)
		}
		return DateTime(t), nil
	case "!!binary":
		v, err := Base64(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return Value{}, fmt.Errorf("%w at %s", err, path)
		}
		return v, nil
	default:
		return Value{}, fmt.Errorf("%w: yaml tag %s at %s (line %d)", ErrUnsupportedType, tag, path, n.Line)
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return fmt.Sprintf("kind %d", k)
}
