package target

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLExtractor flattens a YAML mapping document into dotted keys.
type YAMLExtractor struct{}

func (YAMLExtractor) Extract(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Format: FormatYAML, Err: fmt.Errorf("cannot open: %w", err)}
	}
	defer f.Close()

	entries, err := FlattenYAML(f)
	if err != nil {
		return nil, &FormatError{Path: path, Format: FormatYAML, Err: err}
	}
	return entries, nil
}

// FlattenYAML reads a single YAML document and flattens it depth-first.
// An empty or null document yields no entries.
func FlattenYAML(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Entry{}, nil
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("expected a single document, found more")
	}

	if err := checkAliases(&doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []Entry{}, nil
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)

	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return []Entry{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w", root.Line, ErrNotMapping)
	}

	list := newEntryList()
	if err := flatten(list, "", root); err != nil {
		return nil, err
	}
	return list.list(), nil
}

type pair struct {
	key   string
	value *yaml.Node
}

func flatten(list *entryList, prefix string, n *yaml.Node) error {
	pairs, err := mappingPairs(n)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		key := p.key
		if prefix != "" {
			key = prefix + "." + key
		}
		v := resolveAlias(p.value)
		if v.Kind == yaml.MappingNode {
			if err := flatten(list, key, v); err != nil {
				return err
			}
			continue
		}
		e, err := leaf(key, v)
		if err != nil {
			return err
		}
		list.add(e)
	}
	return nil
}

// mappingPairs returns the key/value pairs of a mapping with merge keys
// applied. Merged pairs come first so explicit keys override them; a repeated
// key keeps its first position and takes the last value.
func mappingPairs(n *yaml.Node) ([]pair, error) {
	var merged, explicit []pair
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			m, err := mergePairs(v)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}
		k = resolveAlias(k)
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		explicit = append(explicit, pair{key: k.Value, value: v})
	}

	all := append(merged, explicit...)
	out := make([]pair, 0, len(all))
	seen := make(map[string]int, len(all))
	for _, p := range all {
		if i, ok := seen[p.key]; ok {
			out[i].value = p.value
			continue
		}
		seen[p.key] = len(out)
		out = append(out, p)
	}
	return out, nil
}

// mergePairs expands the value of a << key. In a sequence of sources the
// earlier ones take precedence.
func mergePairs(v *yaml.Node) ([]pair, error) {
	v = resolveAlias(v)
	switch v.Kind {
	case yaml.MappingNode:
		return mappingPairs(v)
	case yaml.SequenceNode:
		var out []pair
		for i := len(v.Content) - 1; i >= 0; i-- {
			src := resolveAlias(v.Content[i])
			if src.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge sources must be mappings", src.Line)
			}
			p, err := mappingPairs(src)
			if err != nil {
				return nil, err
			}
			out = append(out, p...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", v.Line)
	}
}

func isMergeKey(k *yaml.Node) bool {
	if k.Kind != yaml.ScalarNode || k.Value != "<<" {
		return false
	}
	if k.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		return false
	}
	return k.Tag == "" || k.Tag == "!" || k.Tag == "!!merge" || k.Tag == "tag:yaml.org,2002:merge"
}

// checkAliases rejects documents in which an alias refers to a node that
// contains it. Such documents never finish flattening.
func checkAliases(root *yaml.Node) error {
	const (
		visiting = iota + 1
		done
	)
	state := make(map[*yaml.Node]int)

	var visit func(n *yaml.Node) error
	visit = func(n *yaml.Node) error {
		switch state[n] {
		case visiting:
			return fmt.Errorf("line %d: %w", n.Line, ErrAliasCycle)
		case done:
			return nil
		}
		state[n] = visiting
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			if err := visit(n.Alias); err != nil {
				return err
			}
		}
		for _, c := range n.Content {
			if err := visit(c); err != nil {
				return err
			}
		}
		state[n] = done
		return nil
	}
	return visit(root)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func leaf(key string, n *yaml.Node) (Entry, error) {
	n = detach(n)

	var value any
	if err := n.Decode(&value); err != nil {
		return Entry{}, fmt.Errorf("line %d: %s: %w", n.Line, key, err)
	}
	text, err := leafText(n)
	if err != nil {
		return Entry{}, fmt.Errorf("line %d: %s: %w", n.Line, key, err)
	}
	return Entry{Key: key, Value: value, Text: text}, nil
}

// leafText keeps scalars as written and renders anything else as one line
// of flow YAML.
func leafText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!null" {
			return "", nil
		}
		return n.Value, nil
	}

	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// detach returns a deep copy of n with aliases replaced by their targets and
// anchors and comments dropped, so it can be encoded on its own.
func detach(n *yaml.Node) *yaml.Node {
	n = resolveAlias(n)
	c := &yaml.Node{
		Kind:   n.Kind,
		Style:  n.Style,
		Tag:    n.Tag,
		Value:  n.Value,
		Line:   n.Line,
		Column: n.Column,
	}
	for _, child := range n.Content {
		c.Content = append(c.Content, detach(child))
	}
	return c
}
