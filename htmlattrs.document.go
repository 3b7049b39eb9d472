package htmlattrs

import (
	"github.com/itsatony/go-htmlattrs/internal"
	"gopkg.in/yaml.v3"
)

// yamlNullTag is the resolved tag of a YAML null scalar.
const yamlNullTag = "!!null"

// ParseAttributes decodes a YAML or JSON object into Attributes, keeping
// the key order of the document. Nested objects become nested Attributes,
// sequences become []any and null becomes nil. Scalars that YAML would
// rewrite, such as timestamps or octal ints, stay strings holding the text
// as written. An empty or null document yields empty Attributes. Alias
// cycles and documents expanding past MaxDocumentNodes are rejected.
func ParseAttributes(data []byte) (Attributes, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentParse, err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Attributes{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return Attributes{}, nil
	}

	var attrs Attributes
	if err := attrs.UnmarshalYAML(node); err != nil {
		return nil, err
	}
	return attrs, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving mapping order.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == yamlNullTag {
		*a = Attributes{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return NewDocumentNodeError(ErrMsgDocumentNotMapping, node.Line, node.Column, nodeKindName(node.Kind))
	}

	attrs, err := newDocumentDecoder().decodeMapping(node)
	if err != nil {
		return err
	}
	*a = attrs
	return nil
}

// documentDecoder walks a node tree once. Aliases are expanded in place,
// so it tracks the collections currently open to reject cycles and counts
// decoded nodes to bound alias expansion.
type documentDecoder struct {
	open  map[*yaml.Node]bool
	nodes int
}

func newDocumentDecoder() *documentDecoder {
	return &documentDecoder{open: make(map[*yaml.Node]bool)}
}

func (d *documentDecoder) enter(node *yaml.Node) error {
	d.nodes++
	if d.nodes > MaxDocumentNodes {
		return NewDocumentNodeError(ErrMsgDocumentTooLarge, node.Line, node.Column, nodeKindName(node.Kind))
	}
	if node.Kind != yaml.MappingNode && node.Kind != yaml.SequenceNode {
		return nil
	}
	if d.open[node] {
		return NewDocumentNodeError(ErrMsgDocumentAliasCycle, node.Line, node.Column, nodeKindName(node.Kind))
	}
	d.open[node] = true
	return nil
}

func (d *documentDecoder) leave(node *yaml.Node) {
	delete(d.open, node)
}

func (d *documentDecoder) decodeMapping(node *yaml.Node) (Attributes, error) {
	if err := d.enter(node); err != nil {
		return nil, err
	}
	defer d.leave(node)

	attrs := make(Attributes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, NewDocumentNodeError(ErrMsgDocumentBadKey, key.Line, key.Column, nodeKindName(key.Kind))
		}

		decoded, err := d.decodeNode(value)
		if err != nil {
			return nil, err
		}
		attrs = attrs.Set(key.Value, decoded)
	}
	return attrs, nil
}

func (d *documentDecoder) decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if err := d.enter(node); err != nil {
			return nil, err
		}
		return decodeScalar(node)
	case yaml.MappingNode:
		return d.decodeMapping(node)
	case yaml.SequenceNode:
		if err := d.enter(node); err != nil {
			return nil, err
		}
		defer d.leave(node)

		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := d.decodeNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, NewDocumentNodeError(ErrMsgDocumentBadNode, node.Line, node.Column, nodeKindName(node.Kind))
		}
		return d.decodeNode(node.Alias)
	default:
		return nil, NewDocumentNodeError(ErrMsgDocumentBadNode, node.Line, node.Column, nodeKindName(node.Kind))
	}
}

// decodeScalar resolves a scalar to string, bool, int, float64 or nil. A
// typed value is kept only when it renders back to the text as written;
// otherwise (timestamps, 010, 0x1F, 1e3, 2.0, True) the source text is
// used as a string.
func decodeScalar(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentParse, err)
	}

	switch v.(type) {
	case nil, string:
		return v, nil
	}
	if internal.Stringify(v) != node.Value {
		return node.Value, nil
	}
	return v, nil
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
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
	default:
		return "unknown"
	}
}
