package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/inferus/pkg/syntax"
)

const (
	indentUnit     = "  "
	ellipsis       = "…"
	minPreviewSize = 8
)

// TreeRenderer prints a syntax tree as an indented outline, one element per
// line. Token text is quoted and clipped so lines fit the terminal width.
type TreeRenderer struct {
	styles *Styles
	width  int
}

// NewTreeRenderer creates a renderer. A width of zero or less disables clipping.
func NewTreeRenderer(styles *Styles, width int) *TreeRenderer {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &TreeRenderer{styles: styles, width: width}
}

// Render returns the outline of the subtree rooted at root.
func (r *TreeRenderer) Render(root syntax.Node) string {
	if root.IsZero() {
		return ""
	}
	var sb strings.Builder
	r.renderNode(&sb, root, 0)
	return sb.String()
}

func (r *TreeRenderer) renderNode(sb *strings.Builder, n syntax.Node, depth int) {
	style := r.styles.Node
	if n.Kind() == syntax.NodeError {
		style = r.styles.Error
	}

	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString(style.Render(n.Kind().String()))
	sb.WriteString(r.styles.Range.Render(formatRange(n.Range())))
	sb.WriteByte('\n')

	for _, child := range n.Children() {
		if node, ok := child.Node(); ok {
			r.renderNode(sb, node, depth+1)
			continue
		}
		leaf, _ := child.Leaf()
		r.renderLeaf(sb, leaf, depth+1)
	}
}

func (r *TreeRenderer) renderLeaf(sb *strings.Builder, l syntax.Leaf, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	kind := l.Kind().String()
	rng := formatRange(l.Range())

	style := r.styles.Token
	if l.Kind().IsTrivia() || l.Kind() == syntax.TokNewLine {
		style = r.styles.Trivia
	}

	var preview string
	if r.width > 0 {
		preview = clipQuoted(l.Text(), r.width-len(indent)-len(kind)-len(rng)-1)
	} else {
		preview = strconv.Quote(string(l.Text()))
	}

	sb.WriteString(indent)
	sb.WriteString(style.Render(kind))
	sb.WriteString(r.styles.Range.Render(rng))
	sb.WriteByte(' ')
	sb.WriteString(r.styles.Text.Render(preview))
	sb.WriteByte('\n')
}

func formatRange(rng syntax.SourceRange) string {
	return fmt.Sprintf("@%d..%d", rng.StartOffset, rng.EndOffset)
}

// clipQuoted quotes text, cutting it first so the quoted form spans at most
// budget runes with an ellipsis before the closing quote. Escape sequences
// are never split. Budgets below minPreviewSize are raised so some text
// always shows.
func clipQuoted(text []byte, budget int) string {
	budget = max(budget, minPreviewSize)
	quoted := strconv.Quote(string(text))
	if utf8.RuneCountInString(quoted) <= budget {
		return quoted
	}

	room := budget - 2 - utf8.RuneCountInString(ellipsis)
	used := 0
	end := 0
	for end < len(text) {
		_, size := utf8.DecodeRune(text[end:])
		width := utf8.RuneCountInString(strconv.Quote(string(text[end:end+size]))) - 2
		if used+width > room {
			break
		}
		used += width
		end += size
	}
	return strconv.Quote(string(text[:end]) + ellipsis)
}
