package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/inferus/pkg/syntax"
)

// tokenizer performs a single-pass tokenization of Markdown content.
// It produces a contiguous, non-overlapping token stream covering [0, len(content)).
type tokenizer struct {
	content []byte
	tokens  []syntax.Token
	pos     int
}

// Tokenize splits content into primitive tokens.
// The returned tokens are contiguous, non-overlapping, and cover [0, len(content)).
// Empty content yields no tokens.
func Tokenize(content []byte) []syntax.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	tok := &tokenizer{
		content: content,
		tokens:  make([]syntax.Token, 0, len(content)/initialCapacityDivisor+1),
	}

	for tok.pos < len(tok.content) {
		start := tok.pos
		tok.next()
		if tok.pos <= start {
			panic(fmt.Sprintf("tokenizer: no progress at offset %d", start))
		}
	}

	return tok.tokens
}

// next emits exactly one token starting at the current position.
func (t *tokenizer) next() {
	switch t.content[t.pos] {
	case '#':
		t.single(syntax.TokHash)
	case '-':
		t.single(syntax.TokDash)
	case '*':
		t.single(syntax.TokStar)
	case '`':
		t.single(syntax.TokBacktick)
	case '[':
		t.single(syntax.TokLBracket)
	case ']':
		t.single(syntax.TokRBracket)
	case '(':
		t.single(syntax.TokLParen)
	case ')':
		t.single(syntax.TokRParen)
	case '\n':
		t.single(syntax.TokNewLine)
	case ' ', '\t':
		t.whitespace()
	default:
		t.text()
	}
}

func (t *tokenizer) single(kind syntax.SyntaxKind) {
	start := t.pos
	t.pos++
	t.emit(kind, start, t.pos)
}

// whitespace consumes a maximal run of spaces and tabs.
func (t *tokenizer) whitespace() {
	start := t.pos
	for t.pos < len(t.content) && isBlank(t.content[t.pos]) {
		t.pos++
	}
	t.emit(syntax.TokWhitespace, start, t.pos)
}

// text consumes scalar values until a special character or end of input.
// Invalid UTF-8 bytes are consumed one at a time.
func (t *tokenizer) text() {
	start := t.pos
	for t.pos < len(t.content) && !isSpecial(t.content[t.pos]) {
		_, size := utf8.DecodeRune(t.content[t.pos:])
		t.pos += size
	}
	t.emit(syntax.TokText, start, t.pos)
}

func (t *tokenizer) emit(kind syntax.SyntaxKind, start, end int) {
	t.tokens = append(t.tokens, syntax.Token{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   end,
	})
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// isSpecial reports whether c ends a Text run. All special characters are
// ASCII, so they never occur inside a multi-byte UTF-8 sequence.
func isSpecial(c byte) bool {
	switch c {
	case '#', '-', '*', '`', '[', ']', '(', ')', '\n', ' ', '\t':
		return true
	default:
		return false
	}
}
