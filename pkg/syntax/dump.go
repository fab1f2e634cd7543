package syntax

import "strings"

// Dump renders the subtree rooted at n as an indented outline, one element
// per line, tokens shown with their quoted text:
//
//	Document@0..8
//	  Heading@0..8
//	    Hash@0..1 "#"
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.String())
	sb.WriteByte('\n')

	for _, child := range n.Children() {
		if node, ok := child.Node(); ok {
			dump(sb, node, depth+1)
			continue
		}
		sb.WriteString(strings.Repeat("  ", depth+1))
		sb.WriteString(child.String())
		sb.WriteByte('\n')
	}
}
