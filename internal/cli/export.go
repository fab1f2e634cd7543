package cli

import "github.com/yaklabco/inferus/pkg/syntax"

// exportedTree is the JSON and YAML form of a parsed document.
type exportedTree struct {
	Path  string          `json:"path" yaml:"path"`
	Bytes int             `json:"bytes" yaml:"bytes"`
	Root  exportedElement `json:"root" yaml:"root"`
}

// exportedElement is a node with its children, or a token with its text.
type exportedElement struct {
	Kind     syntax.SyntaxKind  `json:"kind" yaml:"kind"`
	Range    syntax.SourceRange `json:"range" yaml:"range,flow"`
	Text     string             `json:"text,omitempty" yaml:"text,omitempty"`
	Children []exportedElement  `json:"children,omitempty" yaml:"children,omitempty"`
}

func exportTree(path string, tree *syntax.Tree) exportedTree {
	return exportedTree{
		Path:  path,
		Bytes: tree.Len(),
		Root:  exportNode(tree.Root()),
	}
}

func exportNode(n syntax.Node) exportedElement {
	children := n.Children()
	out := exportedElement{
		Kind:     n.Kind(),
		Range:    n.Range(),
		Children: make([]exportedElement, 0, len(children)),
	}

	for _, child := range children {
		if node, ok := child.Node(); ok {
			out.Children = append(out.Children, exportNode(node))
			continue
		}
		out.Children = append(out.Children, exportedElement{
			Kind:  child.Kind(),
			Range: child.Range(),
			Text:  string(child.Text()),
		})
	}
	return out
}
