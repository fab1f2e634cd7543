package syntax

// Token is a classified span of bytes in the source.
// A token stream is contiguous and non-overlapping, covering [0, len(content)).
type Token struct {
	// Kind classifies what this token represents. Always a token kind.
	Kind SyntaxKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// Range returns the byte range covered by the token.
func (t Token) Range() SourceRange {
	return SourceRange{StartOffset: t.StartOffset, EndOffset: t.EndOffset}
}

// ValidateTokens checks that a token slice is valid:
// - Every token is non-empty and carries a token kind.
// - Tokens are contiguous and non-overlapping.
// - Tokens cover the full content range [0, contentLen).
// Returns true if valid, false otherwise.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].StartOffset != 0 {
		return false
	}

	if tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}

	for i, tok := range tokens {
		if tok.IsEmpty() || !tok.Kind.IsToken() {
			return false
		}
		if i > 0 && tok.StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
