package ast

import "github.com/yaklabco/inferus/pkg/syntax"

// ErrorNode marks a token the parser did not expect. It always wraps exactly
// one token.
type ErrorNode struct {
	view
}

// AsError casts node to an ErrorNode.
func AsError(node syntax.Node) (ErrorNode, bool) {
	v, ok := cast(node, syntax.NodeError)
	return ErrorNode{v}, ok
}

// Unexpected returns the wrapped token.
func (e ErrorNode) Unexpected() syntax.Leaf {
	return e.node.ChildLeaves()[0]
}

// Context returns the kind of the block the error occurred in.
func (e ErrorNode) Context() syntax.SyntaxKind {
	parent, ok := e.node.Parent()
	if !ok {
		return syntax.NodeDocument
	}
	return parent.Kind()
}
