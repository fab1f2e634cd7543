package syntax_test

import (
	"testing"

	"github.com/yaklabco/inferus/pkg/syntax"
)

func TestToken_Text(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")

	tests := []struct {
		name     string
		token    syntax.Token
		expected string
	}{
		{
			name:     "full content",
			token:    syntax.Token{Kind: syntax.TokText, StartOffset: 0, EndOffset: 11},
			expected: "hello world",
		},
		{
			name:     "first word",
			token:    syntax.Token{Kind: syntax.TokText, StartOffset: 0, EndOffset: 5},
			expected: "hello",
		},
		{
			name:     "space",
			token:    syntax.Token{Kind: syntax.TokWhitespace, StartOffset: 5, EndOffset: 6},
			expected: " ",
		},
		{
			name:     "empty token",
			token:    syntax.Token{Kind: syntax.TokText, StartOffset: 5, EndOffset: 5},
			expected: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := string(testCase.token.Text(content))
			if got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestToken_TextInvalidRange(t *testing.T) {
	t.Parallel()

	content := []byte("hello")

	for _, tok := range []syntax.Token{
		{StartOffset: -1, EndOffset: 3},
		{StartOffset: 0, EndOffset: 100},
		{StartOffset: 5, EndOffset: 3},
	} {
		if got := tok.Text(content); got != nil {
			t.Errorf("token %+v: expected nil, got %q", tok, got)
		}
	}
}

func TestToken_LenAndRange(t *testing.T) {
	t.Parallel()

	tok := syntax.Token{Kind: syntax.TokText, StartOffset: 2, EndOffset: 7}

	if tok.Len() != 5 {
		t.Errorf("expected length 5, got %d", tok.Len())
	}
	if tok.IsEmpty() {
		t.Error("expected non-empty token")
	}
	if r := tok.Range(); r.StartOffset != 2 || r.EndOffset != 7 {
		t.Errorf("unexpected range %+v", r)
	}
}

func TestValidateTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tokens     []syntax.Token
		contentLen int
		expected   bool
	}{
		{
			name:       "empty tokens, empty content",
			tokens:     nil,
			contentLen: 0,
			expected:   true,
		},
		{
			name:       "empty tokens, non-empty content",
			tokens:     nil,
			contentLen: 3,
			expected:   false,
		},
		{
			name: "contiguous cover",
			tokens: []syntax.Token{
				{Kind: syntax.TokHash, StartOffset: 0, EndOffset: 1},
				{Kind: syntax.TokWhitespace, StartOffset: 1, EndOffset: 2},
				{Kind: syntax.TokText, StartOffset: 2, EndOffset: 7},
			},
			contentLen: 7,
			expected:   true,
		},
		{
			name: "gap",
			tokens: []syntax.Token{
				{Kind: syntax.TokText, StartOffset: 0, EndOffset: 2},
				{Kind: syntax.TokText, StartOffset: 3, EndOffset: 5},
			},
			contentLen: 5,
			expected:   false,
		},
		{
			name: "overlap",
			tokens: []syntax.Token{
				{Kind: syntax.TokText, StartOffset: 0, EndOffset: 3},
				{Kind: syntax.TokText, StartOffset: 2, EndOffset: 5},
			},
			contentLen: 5,
			expected:   false,
		},
		{
			name: "short of content",
			tokens: []syntax.Token{
				{Kind: syntax.TokText, StartOffset: 0, EndOffset: 3},
			},
			contentLen: 5,
			expected:   false,
		},
		{
			name: "empty token",
			tokens: []syntax.Token{
				{Kind: syntax.TokText, StartOffset: 0, EndOffset: 0},
				{Kind: syntax.TokText, StartOffset: 0, EndOffset: 2},
			},
			contentLen: 2,
			expected:   false,
		},
		{
			name: "node kind",
			tokens: []syntax.Token{
				{Kind: syntax.NodeParagraph, StartOffset: 0, EndOffset: 2},
			},
			contentLen: 2,
			expected:   false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := syntax.ValidateTokens(testCase.tokens, testCase.contentLen)
			if got != testCase.expected {
				t.Errorf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}
