package ast

import "github.com/yaklabco/inferus/pkg/syntax"

// Heading is an ATX heading such as "## Title".
type Heading struct {
	view
}

// AsHeading casts node to a Heading.
func AsHeading(node syntax.Node) (Heading, bool) {
	v, ok := cast(node, syntax.NodeHeading)
	return Heading{v}, ok
}

// Level returns the number of leading '#' characters. It is not capped at 6;
// an over-long marker is left for the linter to report.
func (h Heading) Level() int {
	return leadingRun(h.node.ChildLeaves(), syntax.TokHash)
}

// Text returns the heading content: the marker, its separating whitespace,
// the trailing newline and surrounding whitespace are dropped. Tokens
// recovered into Error nodes are kept, so "#NoSpace" yields "NoSpace".
func (h Heading) Text() string {
	return contentText(h.node.Tokens(), h.Level())
}

// Errors returns the recovery nodes directly inside the heading.
func (h Heading) Errors() []ErrorNode {
	return Errors(h.node)
}
