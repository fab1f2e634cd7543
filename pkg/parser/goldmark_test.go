package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/inferus/pkg/syntax"
)

// blockCounts summarises a document by block kind and heading levels.
type blockCounts struct {
	Headings   int
	Paragraphs int
	Lists      int
	ListItems  int
	CodeBlocks int
	Levels     []int
}

func goldmarkCounts(t *testing.T, src []byte) blockCounts {
	t.Helper()

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var counts blockCounts
	err := gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		switch n.Kind() {
		case gast.KindHeading:
			counts.Headings++
			if h, ok := n.(*gast.Heading); ok {
				counts.Levels = append(counts.Levels, h.Level)
			}
		case gast.KindParagraph:
			counts.Paragraphs++
		case gast.KindList:
			counts.Lists++
		case gast.KindListItem:
			counts.ListItems++
		case gast.KindFencedCodeBlock:
			counts.CodeBlocks++
		}
		return gast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("goldmark walk: %v", err)
	}
	return counts
}

func ourCounts(src []byte) blockCounts {
	tree := Parse(src)

	var counts blockCounts
	for _, node := range tree.Root().Descendants() {
		switch node.Kind() {
		case syntax.NodeHeading:
			counts.Headings++
			level := 0
			for _, leaf := range node.ChildLeaves() {
				if leaf.Kind() != syntax.TokHash {
					break
				}
				level++
			}
			counts.Levels = append(counts.Levels, level)
		case syntax.NodeParagraph:
			counts.Paragraphs++
		case syntax.NodeList:
			counts.Lists++
		case syntax.NodeListItem:
			counts.ListItems++
		case syntax.NodeCodeBlock:
			counts.CodeBlocks++
		}
	}
	return counts
}

// TestParse_AgreesWithGoldmark cross-checks block structure against a
// CommonMark implementation on inputs where both grammars coincide:
// blocks separated by blank lines, single-line paragraphs, tight lists.
func TestParse_AgreesWithGoldmark(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# Title\n",
		"## Two\n\n### Three\n",
		"plain text\n",
		"- a\n- b\n- c\n",
		"# A\n\nsome text\n\n- x\n- y\n",
		"```go\nx := 1\n```\n\ntext\n",
		"first\n\nsecond\n\nthird\n",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			src := []byte(input)
			assert.Equal(t, goldmarkCounts(t, src), ourCounts(src))
		})
	}
}
