package ast

import (
	"bytes"

	"github.com/yaklabco/inferus/pkg/langdetect"
	"github.com/yaklabco/inferus/pkg/syntax"
)

// CodeBlock is a fenced code block delimited by lines of backticks.
type CodeBlock struct {
	view
}

// AsCodeBlock casts node to a CodeBlock.
func AsCodeBlock(node syntax.Node) (CodeBlock, bool) {
	v, ok := cast(node, syntax.NodeCodeBlock)
	return CodeBlock{v}, ok
}

// lines splits the block's source into lines, newlines kept.
func (c CodeBlock) lines() [][]byte {
	return bytes.SplitAfter(c.node.Text(), []byte("\n"))
}

// FenceLength returns the number of backticks in the opening fence.
func (c CodeBlock) FenceLength() int {
	return leadingRun(c.node.ChildLeaves(), syntax.TokBacktick)
}

// Info returns the info string of the opening fence, trimmed.
func (c CodeBlock) Info() string {
	first := c.lines()[0]
	return string(bytes.TrimSpace(first[c.FenceLength():]))
}

// IsClosed reports whether the block ends with a closing fence.
func (c CodeBlock) IsClosed() bool {
	lines := c.lines()
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	if len(lines) < 2 {
		return false
	}
	last := bytes.TrimRight(lines[len(lines)-1], " \t\n")
	return len(last) >= c.FenceLength() && len(bytes.Trim(last, "`")) == 0
}

// Code returns the lines between the fences.
func (c CodeBlock) Code() []byte {
	lines := c.lines()
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	body := lines[1:]
	if c.IsClosed() {
		body = body[:len(body)-1]
	}
	return bytes.Join(body, nil)
}

// Language returns the language named by the info string or, when there is
// none, the one detected from the code. Undetectable code yields "text".
func (c CodeBlock) Language() string {
	if lang := langdetect.FromInfo(c.Info()); lang != "" {
		return lang
	}
	lang, _ := langdetect.Detect(c.Code())
	return lang
}
