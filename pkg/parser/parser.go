// Package parser turns Markdown source into a lossless syntax.Tree.
//
// Parsing happens in two passes over private, per-call state: Tokenize
// classifies every byte into primitive tokens, then a recursive-descent
// parser groups the tokens into block nodes by driving a syntax.Builder.
// Malformed input never fails: an unexpected token is wrapped in a single
// Error node and parsing continues right after it.
package parser

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/inferus/pkg/syntax"
)

// Option configures a parse.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger traces block dispatch and error recovery at debug level.
// Without it, parsing performs no logging at all.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Parse tokenizes and parses content into a finished syntax tree.
// It accepts any input, including empty and invalid UTF-8, and never fails.
func Parse(content []byte, opts ...Option) *syntax.Tree {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{
		content: content,
		tokens:  Tokenize(content),
		builder: syntax.NewBuilder(content),
		logger:  o.logger,
	}
	p.parseDocument()

	tree, err := p.builder.Finish()
	if err != nil {
		// Every grammar path attaches tokens in order and balances its nodes,
		// so this only fires on a bug in the parser itself.
		panic(fmt.Sprintf("parser: %v", err))
	}
	return tree
}

// Parser is a reusable, concurrency-safe front end over Parse for callers
// that thread a context through their pipeline.
type Parser struct {
	opts []Option
}

// New creates a Parser applying opts to every parse.
func New(opts ...Option) *Parser {
	return &Parser{opts: opts}
}

// Parse checks ctx before and after parsing content. The only error it
// returns is the context's.
func (p *Parser) Parse(ctx context.Context, content []byte) (*syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	tree := Parse(content, p.opts...)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	return tree, nil
}

// parser holds the state of a single parse.
type parser struct {
	content []byte
	tokens  []syntax.Token
	pos     int
	builder *syntax.Builder
	logger  *log.Logger
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

// kindAt reports the kind of the token at index i, if there is one.
func (p *parser) kindAt(i int) (syntax.SyntaxKind, bool) {
	if i < 0 || i >= len(p.tokens) {
		return 0, false
	}
	return p.tokens[i].Kind, true
}

// nth reports whether the token n positions ahead has the given kind.
func (p *parser) nth(n int, kind syntax.SyntaxKind) bool {
	k, ok := p.kindAt(p.pos + n)
	return ok && k == kind
}

func (p *parser) at(kind syntax.SyntaxKind) bool {
	return p.nth(0, kind)
}

// bump attaches the current token to the open node and advances.
func (p *parser) bump() {
	if p.eof() {
		return
	}
	p.builder.Token(p.tokens[p.pos])
	p.pos++
}

func (p *parser) eat(kind syntax.SyntaxKind) bool {
	if !p.at(kind) {
		return false
	}
	p.bump()
	return true
}

// atLineStart reports whether the current token begins a line.
func (p *parser) atLineStart() bool {
	return p.pos == 0 || p.tokens[p.pos-1].Kind == syntax.TokNewLine
}

// atLineEnd reports whether inline content is exhausted: end of input or a
// NewLine token.
func (p *parser) atLineEnd() bool {
	return p.eof() || p.at(syntax.TokNewLine)
}

// atLineEndAt is atLineEnd for an arbitrary token index.
func (p *parser) atLineEndAt(i int) bool {
	k, ok := p.kindAt(i)
	return !ok || k == syntax.TokNewLine
}

func (p *parser) start(kind syntax.SyntaxKind) {
	p.builder.StartNode(kind)
}

func (p *parser) finish() {
	p.builder.FinishNode()
}

func (p *parser) offset() int {
	if p.eof() {
		return len(p.content)
	}
	return p.tokens[p.pos].StartOffset
}

func (p *parser) trace(msg string, keyvals ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Debug(msg, append([]any{"offset", p.offset()}, keyvals...)...)
}
