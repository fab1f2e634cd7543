package ast

import "github.com/yaklabco/inferus/pkg/syntax"

// Document is the root of every tree.
type Document struct {
	view
}

// AsDocument casts node to a Document.
func AsDocument(node syntax.Node) (Document, bool) {
	v, ok := cast(node, syntax.NodeDocument)
	return Document{v}, ok
}

// Blocks returns the top-level block nodes. Blank-line NewLine tokens owned
// by the document are not included.
func (d Document) Blocks() []syntax.Node {
	return d.node.ChildNodes()
}

// Headings returns every heading in the document, in order.
func (d Document) Headings() []Heading {
	var out []Heading
	for _, node := range d.node.ChildNodes() {
		if h, ok := AsHeading(node); ok {
			out = append(out, h)
		}
	}
	return out
}
