package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/inferus/pkg/ast"
	"github.com/yaklabco/inferus/pkg/syntax"
)

// FormatAnomaly formats one recovered parse error for terminal output:
//
//	README.md:3:2  unexpected Text "x" in Heading
//	    #x
//	     ^
func (s *Styles) FormatAnomaly(path string, tree *syntax.Tree, anomaly ast.ErrorNode, showContext bool) string {
	var builder strings.Builder

	pos := tree.Position(anomaly.Range())
	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), pos.StartLine, pos.StartColumn)

	unexpected := anomaly.Unexpected()
	message := fmt.Sprintf("unexpected %s %q in %s",
		unexpected.Kind(), string(unexpected.Text()), anomaly.Context())

	builder.WriteString(fmt.Sprintf("  %s  %s\n", location, s.Message.Render(message)))

	if showContext {
		builder.WriteString(s.FormatSourceContext(string(tree.LineContent(pos.StartLine)), pos.StartColumn))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	if line == "" {
		return ""
	}

	const indent = "    "

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		builder.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}
