package tui

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/charmbracelet/lipgloss/tree"
	"gopkg.in/yaml.v3"
)

// Tree prints nested data as a tree rooted at title.
func (c *Console) Tree(title string, data any) {
	fmt.Fprintln(c.out, RenderTree(title, data))
}

// RenderTree builds the tree Tree prints. Maps become branches labelled by
// key (sorted, except for *yaml.Node mappings which keep document order),
// lists are flattened into their parent, scalars become leaves and nil
// values become a "null" leaf.
func RenderTree(title string, data any) string {
	root := newBranch(titleStyle.Render(title))
	addNodes(root, data)
	return root.String()
}

func newBranch(label string) *tree.Tree {
	return tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(mutedStyle)
}

func addNodes(parent *tree.Tree, data any) {
	switch v := data.(type) {
	case nil:
		addNull(parent)
		return
	case *yaml.Node:
		addYAMLNode(parent, v)
		return
	case yaml.Node:
		addYAMLNode(parent, &v)
		return
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		labels := make([]string, len(keys))
		byLabel := make(map[string]reflect.Value, len(keys))
		for i, k := range keys {
			labels[i] = fmt.Sprint(k.Interface())
			byLabel[labels[i]] = k
		}
		slices.Sort(labels)
		for _, label := range labels {
			child := newBranch(keyStyle.Render(label))
			addNodes(child, rv.MapIndex(byLabel[label]).Interface())
			parent.Child(child)
		}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			parent.Child(leafStyle.Render(string(rv.Bytes())))
			return
		}
		for i := 0; i < rv.Len(); i++ {
			addNodes(parent, rv.Index(i).Interface())
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			addNull(parent)
			return
		}
		addNodes(parent, rv.Elem().Interface())
	default:
		parent.Child(leafStyle.Render(fmt.Sprint(data)))
	}
}

func addYAMLNode(parent *tree.Tree, n *yaml.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			addYAMLNode(parent, c)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			child := newBranch(keyStyle.Render(n.Content[i].Value))
			addYAMLNode(child, n.Content[i+1])
			parent.Child(child)
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			addYAMLNode(parent, c)
		}
	case yaml.AliasNode:
		addYAMLNode(parent, n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			addNull(parent)
			return
		}
		parent.Child(leafStyle.Render(n.Value))
	}
}

func addNull(parent *tree.Tree) {
	parent.Child(leafStyle.Render("null"))
}
