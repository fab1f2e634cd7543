package parser

// parseInlineUntilLineEnd consumes inline content until the end of the line.
// The terminating NewLine is left for the enclosing block.
func (p *parser) parseInlineUntilLineEnd() {
	for !p.atLineEnd() {
		p.parseInline()
	}
}

// parseInline consumes one inline element. Star, Backtick and LBracket are
// where emphasis, code spans and links would open nested nodes; for now every
// token is attached to the enclosing block as is.
func (p *parser) parseInline() {
	p.bump()
}
