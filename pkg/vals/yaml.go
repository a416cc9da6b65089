package vals

import (
	"math"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"src.anyval.sh/pkg/errs"
)

// EncodeYAML encodes a value as a YAML document.
//
// Text becomes a string scalar, quoted when it would otherwise read as
// something else, and Number a plain numeric scalar. List becomes a sequence
// and Mapping a mapping, with complex keys where needed. Set becomes a mapping
// tagged !!set whose values are all null. YAML strings are always UTF-8, so
// Text holding invalid UTF-8 is rejected with an errs.BadValue.
func EncodeYAML(v Value) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toNode(v Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case Text:
		if !utf8.ValidString(string(v)) {
			return nil, errs.BadValue{What: "text", Valid: "valid UTF-8", Actual: strconv.Quote(string(v))}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}, nil
	case Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: yamlNumber(float64(v))}, nil
	case List:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range v.elems {
			child, err := toNode(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case Set:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!set"}
		for elem := range v.All() {
			child, err := toNode(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
		}
		return node, nil
	case Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for k, val := range v.All() {
			kn, err := toNode(k)
			if err != nil {
				return nil, err
			}
			vn, err := toNode(val)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, kn, vn)
		}
		return node, nil
	}
	return nil, errs.BadValue{What: "value", Valid: "non-nil", Actual: KindOf(v)}
}

func yamlNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return formatNumber(f)
}

// DecodeYAML decodes a YAML document into a value. It is the inverse of
// EncodeYAML: integer and float scalars become Number, string scalars Text,
// sequences List, mappings tagged !!set Set and other mappings Mapping.
// Aliases are followed, up to the same expansion budget yaml.v3 enforces.
// Booleans, nulls and other scalars have no corresponding kind and are
// rejected with an errs.BadValue.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, errs.BadValue{What: "yaml document", Valid: "non-empty", Actual: "empty"}
	}
	d := &yamlDecoder{active: make(map[*yaml.Node]bool)}
	v, err := d.decode(doc.Content[0])
	if err != nil {
		logger.Println("decoding yaml:", err)
		return nil, err
	}
	return v, nil
}

type yamlDecoder struct {
	// Nodes currently being decoded, used to detect cyclic aliases.
	active map[*yaml.Node]bool
	// Number of nodes decoded, and how many of them were reached through an
	// alias.
	decodeCount int
	aliasCount  int
	aliasDepth  int
}

// The alias budget is the one yaml.v3 applies when decoding into Go values:
// small documents may be almost entirely aliases, large ones only 10%.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= aliasRatioRangeLow:
		return 0.99
	case decodeCount >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decodeCount-aliasRatioRangeLow)/aliasRatioRange)
	}
}

var errExcessiveAliasing = errs.BadValue{
	What: "yaml document", Valid: "without excessive aliasing", Actual: "excessive aliasing"}

func (d *yamlDecoder) decode(n *yaml.Node) (Value, error) {
	if d.active[n] {
		return nil, errs.BadValue{What: "yaml alias", Valid: "acyclic", Actual: "cyclic"}
	}
	d.decodeCount++
	if d.aliasDepth > 0 {
		d.aliasCount++
	}
	if d.aliasCount > 100 && d.decodeCount > 1000 &&
		float64(d.aliasCount)/float64(d.decodeCount) > allowedAliasRatio(d.decodeCount) {
		return nil, errExcessiveAliasing
	}
	d.active[n] = true
	defer delete(d.active, n)

	switch n.Kind {
	case yaml.AliasNode:
		d.aliasDepth++
		defer func() { d.aliasDepth-- }()
		return d.decode(n.Alias)
	case yaml.ScalarNode:
		switch tag := n.ShortTag(); tag {
		case "!!str":
			return Text(n.Value), nil
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, err
			}
			return Number(f), nil
		default:
			return nil, errs.BadValue{What: "yaml scalar", Valid: "number or string", Actual: tag}
		}
	case yaml.SequenceNode:
		elems := make([]Value, len(n.Content))
		for i, child := range n.Content {
			elem, err := d.decode(child)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return List{elems}, nil
	case yaml.MappingNode:
		if n.ShortTag() == "!!set" {
			return d.decodeSet(n)
		}
		kvs := make([]Value, len(n.Content))
		for i, child := range n.Content {
			v, err := d.decode(child)
			if err != nil {
				return nil, err
			}
			kvs[i] = v
		}
		return MakeMapping(kvs...), nil
	}
	return nil, errs.BadValue{What: "yaml node", Valid: "scalar, sequence, mapping or alias", Actual: n.Tag}
}

func (d *yamlDecoder) decodeSet(n *yaml.Node) (Value, error) {
	elems := make([]Value, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if tag := n.Content[i+1].ShortTag(); tag != "!!null" {
			return nil, errs.BadValue{What: "yaml set value", Valid: "null", Actual: tag}
		}
		elem, err := d.decode(n.Content[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return MakeSet(elems...), nil
}
