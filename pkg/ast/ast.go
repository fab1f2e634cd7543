// Package ast provides typed views over syntax tree nodes.
//
// A view wraps a single syntax.Node and adds semantic accessors; it owns no
// storage of its own. Views are obtained with the As* cast functions, each of
// which succeeds if and only if the node has the matching kind, so a node
// casts to at most one view.
package ast

import (
	"strings"

	"github.com/yaklabco/inferus/pkg/syntax"
)

// view is embedded by every typed view.
type view struct {
	node syntax.Node
}

// Syntax returns the underlying syntax node.
func (v view) Syntax() syntax.Node {
	return v.node
}

// Range returns the byte range of the underlying node.
func (v view) Range() syntax.SourceRange {
	return v.node.Range()
}

// RawText returns the verbatim source of the node, markers, whitespace and
// newline included.
func (v view) RawText() string {
	return string(v.node.Text())
}

func cast(node syntax.Node, kind syntax.SyntaxKind) (view, bool) {
	if node.IsZero() || node.Kind() != kind {
		return view{}, false
	}
	return view{node: node}, true
}

// contentText joins the text of tokens, skipping the first skip tokens,
// an immediately following separator Whitespace, and a trailing NewLine,
// then trimming Whitespace tokens from both ends. A carriage return left
// over from a CRLF line ending is dropped along with any Whitespace before it.
func contentText(tokens []syntax.Leaf, skip int) string {
	if skip > len(tokens) {
		skip = len(tokens)
	}
	tokens = tokens[skip:]

	if skip > 0 && len(tokens) > 0 && tokens[0].Kind() == syntax.TokWhitespace {
		tokens = tokens[1:]
	}
	if n := len(tokens); n > 0 && tokens[n-1].Kind() == syntax.TokNewLine {
		tokens = tokens[:n-1]
	}
	for len(tokens) > 0 && tokens[0].Kind().IsTrivia() {
		tokens = tokens[1:]
	}
	for n := len(tokens); n > 0 && tokens[n-1].Kind().IsTrivia(); n = len(tokens) {
		tokens = tokens[:n-1]
	}

	var sb strings.Builder
	for _, tok := range tokens {
		sb.Write(tok.Text())
	}

	text := sb.String()
	if trimmed, ok := strings.CutSuffix(text, "\r"); ok {
		text = strings.TrimRight(trimmed, " \t")
	}
	return text
}

// leadingRun counts the tokens of the given kind at the start of tokens.
func leadingRun(tokens []syntax.Leaf, kind syntax.SyntaxKind) int {
	n := 0
	for n < len(tokens) && tokens[n].Kind() == kind {
		n++
	}
	return n
}

// Errors returns the Error views beneath root in document order.
func Errors(root syntax.Node) []ErrorNode {
	var out []ErrorNode
	for _, node := range syntax.FindByKind(root, syntax.NodeError) {
		out = append(out, ErrorNode{view{node: node}})
	}
	return out
}
