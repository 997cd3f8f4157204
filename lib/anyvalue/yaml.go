// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML parses one YAML document into a Value. Mapping keys keep
// document order, aliases are expanded, and !!binary scalars become
// Bytes. An empty document is Null.
func FromYAML(data []byte) (Value, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("anyvalue: parsing YAML: %w", err)
	}
	if document.Kind == 0 || len(document.Content) == 0 {
		return Null{}, nil
	}
	return fromYAMLNode(document.Content[0], 0)
}

// fromYAMLNode converts node, whose containers sit at depth. Sequences
// and mappings stop at the nesting Read accepts; documents and aliases
// do not add a level of their own.
func fromYAMLNode(node *yaml.Node, depth int) (Value, error) {
	if (node.Kind == yaml.SequenceNode || node.Kind == yaml.MappingNode) && depth >= MaxDepth {
		return nil, fmt.Errorf("anyvalue: YAML line %d: %w", node.Line, ErrTooDeep)
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return fromYAMLNode(node.Content[0], depth)
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias, depth)
	case yaml.SequenceNode:
		array := make(Array, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := fromYAMLNode(child, depth+1)
			if err != nil {
				return nil, err
			}
			array = append(array, value)
		}
		return array, nil
	case yaml.MappingNode:
		object := make(Object, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("anyvalue: YAML line %d: mapping key must be a scalar", key.Line)
			}
			value, err := fromYAMLNode(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			object = append(object, Field{Key: key.Value, Value: value})
		}
		return object, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	}
	return nil, fmt.Errorf("anyvalue: YAML line %d: unsupported node kind %d", node.Line, node.Kind)
}

func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("anyvalue: YAML line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return Integer(i), nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("anyvalue: YAML line %d: %w", node.Line, err)
		}
		return Number(f), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("anyvalue: YAML line %d: %w", node.Line, err)
		}
		return Number(f), nil
	case "!!binary":
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return nil, fmt.Errorf("anyvalue: YAML line %d: %w", node.Line, err)
		}
		return Bytes(data), nil
	}
	return String(node.Value), nil
}

// ToYAML renders value as a YAML document. Unlike JSON, YAML keeps
// Bytes (as !!binary), NaN and the infinities. Undefined becomes null.
func ToYAML(value Value) ([]byte, error) {
	node, err := toYAMLNode(value)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toYAMLNode(value Value) (*yaml.Node, error) {
	scalar := func(tag, text string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
	}
	switch v := value.(type) {
	case nil, Undefined, Null:
		return scalar("!!null", "null"), nil
	case Int:
		return scalar("!!int", strconv.FormatInt(int64(v), 10)), nil
	case BigInt:
		return scalar("!!int", strconv.FormatInt(int64(v), 10)), nil
	case NegativeZero:
		return scalar("!!float", "-0.0"), nil
	case Float32:
		return scalar("!!float", formatYAMLFloat(float64(v), 32)), nil
	case Float64:
		return scalar("!!float", formatYAMLFloat(float64(v), 64)), nil
	case Bool:
		return scalar("!!bool", strconv.FormatBool(bool(v))), nil
	case String:
		return scalar("!!str", string(v)), nil
	case Bytes:
		return scalar("!!binary", base64.StdEncoding.EncodeToString(v)), nil
	case Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, element := range v {
			child, err := toYAMLNode(element)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, field := range v {
			child, err := toYAMLNode(field.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalar("!!str", field.Key), child)
		}
		return node, nil
	}
	return nil, fmt.Errorf("anyvalue: cannot render %T as YAML", value)
}

func formatYAMLFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	text := strconv.FormatFloat(f, 'g', -1, bits)
	// A float without a dot or exponent would read back as !!int.
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text
}
