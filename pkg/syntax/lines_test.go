package syntax_test

import (
	"testing"

	"github.com/yaklabco/inferus/pkg/syntax"
)

// flatTree builds a tree holding content as a single run of Text and
// NewLine tokens, enough to exercise the line index.
func flatTree(t *testing.T, content string) *syntax.Tree {
	t.Helper()

	b := syntax.NewBuilder([]byte(content))
	b.StartNode(syntax.NodeDocument)
	start := 0
	for i := 0; i <= len(content); i++ {
		if i < len(content) && content[i] != '\n' {
			continue
		}
		if i > start {
			b.Token(syntax.Token{Kind: syntax.TokText, StartOffset: start, EndOffset: i})
		}
		if i < len(content) {
			b.Token(syntax.Token{Kind: syntax.TokNewLine, StartOffset: i, EndOffset: i + 1})
		}
		start = i + 1
	}

	tree, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return tree
}

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []syntax.LineInfo
	}{
		{
			name:     "empty",
			content:  "",
			expected: []syntax.LineInfo{},
		},
		{
			name:    "no trailing newline",
			content: "ab",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 2, EndOffset: 2},
			},
		},
		{
			name:    "trailing newline",
			content: "ab\n",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 2, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "crlf",
			content: "a\r\nb",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := syntax.BuildLines([]byte(testCase.content))
			if len(got) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d: %+v", len(testCase.expected), len(got), got)
			}
			for i := range got {
				if got[i] != testCase.expected[i] {
					t.Errorf("line %d: expected %+v, got %+v", i, testCase.expected[i], got[i])
				}
			}
		})
	}
}

func TestTree_LineAt(t *testing.T) {
	t.Parallel()

	tree := flatTree(t, "hello\nworld\n")

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6},
		{6, 2, 1},
		{11, 2, 6},
		{12, 3, 1},
		{13, 0, 0},
		{-1, 0, 0},
	}

	for _, testCase := range tests {
		line, col := tree.LineAt(testCase.offset)
		if line != testCase.line || col != testCase.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d",
				testCase.offset, testCase.line, testCase.col, line, col)
		}
	}
}

func TestTree_Offset(t *testing.T) {
	t.Parallel()

	tree := flatTree(t, "hello\nworld\n")

	if off, ok := tree.Offset(2, 3); !ok || off != 8 {
		t.Errorf("expected offset 8, got %d (%v)", off, ok)
	}
	if _, ok := tree.Offset(0, 1); ok {
		t.Error("line 0 should be rejected")
	}
	if _, ok := tree.Offset(1, 0); ok {
		t.Error("column 0 should be rejected")
	}
	if _, ok := tree.Offset(1, 10); ok {
		t.Error("column past line end should be rejected")
	}
}

func TestTree_LineContent(t *testing.T) {
	t.Parallel()

	tree := flatTree(t, "hello\nworld\n")

	if got := string(tree.LineContent(2)); got != "world" {
		t.Errorf("expected world, got %q", got)
	}
	if got := tree.LineContent(9); got != nil {
		t.Errorf("expected nil, got %q", got)
	}
	if tree.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", tree.LineCount())
	}
}

func TestTree_Position(t *testing.T) {
	t.Parallel()

	tree := flatTree(t, "hello\nworld\n")

	pos := tree.Position(syntax.SourceRange{StartOffset: 6, EndOffset: 11})
	if !pos.IsValid() || !pos.IsSingleLine() {
		t.Fatalf("expected valid single-line position, got %+v", pos)
	}
	if pos.Start() != (syntax.Position{Line: 2, Column: 1}) || pos.End() != (syntax.Position{Line: 2, Column: 6}) {
		t.Errorf("unexpected position %+v", pos)
	}
}
