package parser

import (
	"fmt"

	"github.com/yaklabco/inferus/pkg/syntax"
)

// minFenceLength is the number of backticks that opens a fenced code block.
const minFenceLength = 3

// parseDocument is the top-level loop. The Document node is left open for
// Builder.Finish to close.
func (p *parser) parseDocument() {
	p.start(syntax.NodeDocument)

	for !p.eof() {
		before := p.pos
		p.parseBlock()
		if p.pos <= before {
			panic(fmt.Sprintf("parser: no progress at token %d", before))
		}
	}
}

// parseBlock dispatches on the first token of a line.
func (p *parser) parseBlock() {
	lineStart := p.atLineStart()

	switch {
	case lineStart && p.at(syntax.TokNewLine):
		// Blank line: trivia owned by the Document.
		p.bump()
	case lineStart && p.at(syntax.TokHash):
		p.parseHeading()
	case lineStart && p.atFenceOpen():
		p.parseCodeBlock()
	case lineStart && p.atListItem():
		p.parseList()
	default:
		p.parseParagraph()
	}
}

// parseHeading parses an ATX heading: a run of Hash tokens, a separating
// Whitespace token, then inline content to the end of the line.
func (p *parser) parseHeading() {
	p.trace("block", "kind", syntax.NodeHeading)
	p.start(syntax.NodeHeading)

	for p.at(syntax.TokHash) {
		p.bump()
	}
	p.expectSeparator(syntax.NodeHeading)
	p.parseInlineUntilLineEnd()
	p.eat(syntax.TokNewLine)

	p.finish()
}

// atListItem reports whether the current token opens a list item: a Dash
// followed by Whitespace, a NewLine, or the end of input.
func (p *parser) atListItem() bool {
	if !p.at(syntax.TokDash) {
		return false
	}
	return p.nth(1, syntax.TokWhitespace) || p.atLineEndAt(p.pos+1)
}

// parseList parses a maximal run of consecutive list items.
func (p *parser) parseList() {
	p.trace("block", "kind", syntax.NodeList)
	p.start(syntax.NodeList)

	for p.atLineStart() && p.atListItem() {
		p.parseListItem()
	}

	p.finish()
}

func (p *parser) parseListItem() {
	p.start(syntax.NodeListItem)

	p.bump() // '-'
	p.expectSeparator(syntax.NodeListItem)
	p.parseInlineUntilLineEnd()
	p.eat(syntax.TokNewLine)

	p.finish()
}

// expectSeparator requires Whitespace between a block marker and its content.
// A marker directly followed by the end of the line needs no separator.
// Anything else is wrapped, one token only, in an Error node.
func (p *parser) expectSeparator(owner syntax.SyntaxKind) {
	if p.atLineEnd() || p.eat(syntax.TokWhitespace) {
		return
	}

	p.trace("recover: expected whitespace",
		"in", owner,
		"found", p.tokens[p.pos].Kind,
	)
	p.start(syntax.NodeError)
	p.bump()
	p.finish()
}

func (p *parser) parseParagraph() {
	p.trace("block", "kind", syntax.NodeParagraph)
	p.start(syntax.NodeParagraph)

	p.parseInlineUntilLineEnd()
	p.eat(syntax.TokNewLine)

	p.finish()
}

// backtickRun counts consecutive Backtick tokens starting at token index i.
func (p *parser) backtickRun(i int) int {
	n := 0
	for {
		k, ok := p.kindAt(i + n)
		if !ok || k != syntax.TokBacktick {
			return n
		}
		n++
	}
}

// atFenceOpen reports whether the current line opens a fenced code block:
// at least three backticks and an info string free of further backticks.
func (p *parser) atFenceOpen() bool {
	run := p.backtickRun(p.pos)
	if run < minFenceLength {
		return false
	}
	for i := p.pos + run; !p.atLineEndAt(i); i++ {
		if p.tokens[i].Kind == syntax.TokBacktick {
			return false
		}
	}
	return true
}

// atFenceClose reports whether the current line closes a fence of the given
// length: at least that many backticks, optionally trailing whitespace.
func (p *parser) atFenceClose(length int) bool {
	run := p.backtickRun(p.pos)
	if run < length {
		return false
	}
	i := p.pos + run
	if k, ok := p.kindAt(i); ok && k == syntax.TokWhitespace {
		i++
	}
	return p.atLineEndAt(i)
}

// parseCodeBlock parses a fenced code block. The block runs to the matching
// closing fence or, when unclosed, to the end of input. Lines inside the
// fence are attached verbatim.
func (p *parser) parseCodeBlock() {
	p.trace("block", "kind", syntax.NodeCodeBlock)
	p.start(syntax.NodeCodeBlock)

	fence := p.backtickRun(p.pos)
	p.consumeLine()

	for !p.eof() {
		if p.atFenceClose(fence) {
			p.consumeLine()
			break
		}
		p.consumeLine()
	}

	p.finish()
}

// consumeLine attaches every token up to and including the next NewLine.
func (p *parser) consumeLine() {
	for !p.atLineEnd() {
		p.bump()
	}
	p.eat(syntax.TokNewLine)
}
