package ast

import "github.com/yaklabco/inferus/pkg/syntax"

// Paragraph is a line of text that matched no other block rule.
type Paragraph struct {
	view
}

// AsParagraph casts node to a Paragraph.
func AsParagraph(node syntax.Node) (Paragraph, bool) {
	v, ok := cast(node, syntax.NodeParagraph)
	return Paragraph{v}, ok
}

// Text returns the paragraph content without surrounding whitespace and the
// trailing newline.
func (p Paragraph) Text() string {
	return contentText(p.node.Tokens(), 0)
}
