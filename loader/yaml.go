// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/erikkallen/dataconf/node"
)

// YAML parses YAML documents. The document is walked as a yaml.Node graph
// rather than unmarshaled into map[string]any, preserving mapping key order
// and resolving anchors/aliases along the way.
type YAML struct{}

func (YAML) Format() Format { return FormatYAML }

func (YAML) Load(data []byte) (node.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Format: FormatYAML, Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return node.NewMapping(), nil
	}

	n, err := yamlToNode(doc.Content[0])
	if err != nil {
		return nil, &Error{Format: FormatYAML, Err: err}
	}
	return n, nil
}

func yamlToNode(y *yaml.Node) (node.Node, error) {
	switch y.Kind {
	case yaml.AliasNode:
		return yamlToNode(y.Alias)
	case yaml.MappingNode:
		m := node.NewMapping()
		for i := 0; i+1 < len(y.Content); i += 2 {
			val, err := yamlToNode(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(y.Content[i].Value, val)
		}
		return m, nil
	case yaml.SequenceNode:
		seq := make(node.Sequence, len(y.Content))
		for i, el := range y.Content {
			v, err := yamlToNode(el)
			if err != nil {
				return nil, err
			}
			seq[i] = v
		}
		return seq, nil
	case yaml.ScalarNode:
		return yamlScalar(y)
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", y.Kind, y.Line)
	}
}

func yamlScalar(y *yaml.Node) (node.Node, error) {
	switch y.Tag {
	case "!!null":
		return node.Null{}, nil
	case "!!bool":
		b, err := strconv.ParseBool(y.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q at line %d", y.Value, y.Line)
		}
		return node.Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(y.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int %q at line %d", y.Value, y.Line)
		}
		return node.Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(y.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q at line %d", y.Value, y.Line)
		}
		return node.Float(f), nil
	default:
		return node.String(y.Value), nil
	}
}
