package yml

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Node aliases yaml.Node so that helper methods can be attached without
// polluting the public model API.
type Node yaml.Node

// Lookup returns the value node associated with the given mapping key, or
// nil when the key is absent or the node is not a mapping.
func (n *Node) Lookup(name string) *Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == name {
			return (*Node)(n.Content[i+1])
		}
	}
	return nil
}

// Pairs iterates mapping key/value pairs in document order.
func (n *Node) Pairs(callback func(key string, value *Node) error) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := callback(n.Content[i].Value, (*Node)(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// Items iterates sequence elements in document order.
func (n *Node) Items(callback func(index int, item *Node) error) error {
	for i := 0; i < len(n.Content); i++ {
		if err := callback(i, (*Node)(n.Content[i])); err != nil {
			return err
		}
	}
	return nil
}

// Root unwraps a document node to its first content node.
func (n *Node) Root() *Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return (*Node)(n.Content[0])
	}
	return n
}

// SortKeys orders mapping keys lexicographically at every nesting level,
// leaving sequence order and scalar values untouched.
func SortKeys(node *yaml.Node) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			SortKeys(child)
		}
	case yaml.MappingNode:
		type pair struct {
			key   *yaml.Node
			value *yaml.Node
		}
		pairs := make([]pair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			pairs = append(pairs, pair{key: node.Content[i], value: node.Content[i+1]})
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].key.Value < pairs[j].key.Value
		})
		content := make([]*yaml.Node, 0, len(node.Content))
		for _, p := range pairs {
			SortKeys(p.value)
			content = append(content, p.key, p.value)
		}
		node.Content = content
	}
}
