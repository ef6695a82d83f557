package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// Param is a style parameter decoded from YAML. Plain keys become props, and
// the reserved styles, hover, focus and media keys fill the matching parts.
// Media entries keep their document order.
type Param struct {
	style.Param
	// Line is the document line of the mapping, or 0.
	Line int
}

// UnmarshalYAML decodes a style parameter mapping.
func (p *Param) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := decodeParam(value)
	if err != nil {
		return err
	}
	p.Param = decoded
	p.Line = value.Line
	return nil
}

func decodeParam(node *yaml.Node) (style.Param, error) {
	var p style.Param
	if isNull(node) {
		return p, nil
	}
	if node.Kind != yaml.MappingNode {
		return p, fmt.Errorf("line %d: style parameter must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value

		switch key {
		case style.KeyStyles:
			var decls style.Declarations
			if err := valueNode.Decode(&decls); err != nil {
				return p, fmt.Errorf("line %d: styles: %w", valueNode.Line, err)
			}
			p.Styles = decls
		case style.KeyHover, style.KeyFocus:
			variant, err := decodeParam(valueNode)
			if err != nil {
				return p, fmt.Errorf("%s: %w", key, err)
			}
			if key == style.KeyHover {
				p.Hover = &variant
			} else {
				p.Focus = &variant
			}
		case style.KeyMedia:
			media, err := decodeMedia(valueNode)
			if err != nil {
				return p, err
			}
			p.Media = media
		default:
			var v any
			if err := valueNode.Decode(&v); err != nil {
				return p, fmt.Errorf("line %d: %s: %w", valueNode.Line, key, err)
			}
			if p.Props == nil {
				p.Props = style.Props{}
			}
			p.Props[key] = v
		}
	}

	return p, nil
}

func decodeMedia(node *yaml.Node) (style.Media, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: media must be a mapping of conditions", node.Line)
	}

	media := make(style.Media, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		p, err := decodeParam(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("media %q: %w", key, err)
		}
		media = media.Set(key, p)
	}
	return media, nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}
