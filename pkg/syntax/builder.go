package syntax

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is returned by Builder.Finish when the recorded operations
// do not describe a well-formed, lossless tree.
var ErrMalformedTree = errors.New("malformed syntax tree")

// Builder constructs a Tree with a stack of open nodes.
//
// StartNode pushes a node, Token appends a token to the node on top of the
// stack, and FinishNode pops the top node and attaches it to its parent.
// The outermost node stays open until Finish, which closes it, validates the
// result and returns the finished Tree. The first protocol violation is
// remembered and reported by Finish; later calls are ignored.
//
// A Builder is single-use and not safe for concurrent use.
type Builder struct {
	tree   *Tree
	stack  []openNode
	cursor int
	err    error
	done   bool
}

type openNode struct {
	index    int32
	children []childRef
}

// NewBuilder returns a Builder for a tree over content.
func NewBuilder(content []byte) *Builder {
	const tokensPerByte = 4 // rough initial capacity estimate
	return &Builder{
		tree: &Tree{
			content:    content,
			tokens:     make([]Token, 0, len(content)/tokensPerByte),
			tokenOwner: make([]int32, 0, len(content)/tokensPerByte),
		},
	}
}

// Depth returns the number of open nodes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Err returns the first protocol violation recorded so far.
func (b *Builder) Err() error {
	return b.err
}

// StartNode opens a node of the given kind as a child of the current node.
func (b *Builder) StartNode(kind SyntaxKind) {
	if b.err != nil {
		return
	}
	if !kind.IsNode() {
		b.fail("start node: %s is not a node kind", kind)
		return
	}
	if len(b.stack) == 0 && len(b.tree.nodes) > 0 {
		b.fail("start node: %s would be a second root", kind)
		return
	}

	parent := int32(-1)
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1].index
	}

	index := int32(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, nodeData{
		kind:       kind,
		parent:     parent,
		rng:        SourceRange{StartOffset: b.cursor, EndOffset: b.cursor},
		firstToken: int32(len(b.tree.tokens)),
		endToken:   int32(len(b.tree.tokens)),
	})
	b.stack = append(b.stack, openNode{index: index})
}

// Token attaches tok to the current node. The token must begin exactly where
// the previous token ended.
func (b *Builder) Token(tok Token) {
	if b.err != nil {
		return
	}
	switch {
	case len(b.stack) == 0:
		b.fail("token %s: no open node", tok.Kind)
		return
	case !tok.Kind.IsToken():
		b.fail("token: %s is not a token kind", tok.Kind)
		return
	case tok.StartOffset != b.cursor:
		b.fail("token %s: starts at %d, expected %d", tok.Kind, tok.StartOffset, b.cursor)
		return
	case tok.EndOffset <= tok.StartOffset || tok.EndOffset > len(b.tree.content):
		b.fail("token %s: invalid range [%d, %d)", tok.Kind, tok.StartOffset, tok.EndOffset)
		return
	}

	top := &b.stack[len(b.stack)-1]
	index := int32(len(b.tree.tokens))
	b.tree.tokens = append(b.tree.tokens, tok)
	b.tree.tokenOwner = append(b.tree.tokenOwner, top.index)
	top.children = append(top.children, childRef{index: index, leaf: true})
	b.cursor = tok.EndOffset
}

// FinishNode closes the current node. The outermost node is closed by Finish.
func (b *Builder) FinishNode() {
	if b.err != nil {
		return
	}
	if len(b.stack) < 2 {
		b.fail("finish node: no open node besides the root")
		return
	}
	b.closeTop()
}

// Finish closes the root node, validates the tree and returns it.
func (b *Builder) Finish() (*Tree, error) {
	if b.done {
		return nil, fmt.Errorf("%w: builder already finished", ErrMalformedTree)
	}
	b.done = true

	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%w: finish with %d open nodes, expected 1", ErrMalformedTree, len(b.stack))
	}
	b.closeTop()
	b.stack = nil

	tree := b.tree
	tree.lines = BuildLines(tree.content)
	if err := validateTree(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (b *Builder) closeTop() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	node := &b.tree.nodes[top.index]
	node.rng.EndOffset = b.cursor
	node.endToken = int32(len(b.tree.tokens))
	node.end = int32(len(b.tree.nodes))
	node.firstEdge = int32(len(b.tree.edges))
	node.numEdges = int32(len(top.children))
	b.tree.edges = append(b.tree.edges, top.children...)

	if len(b.stack) > 0 {
		parent := &b.stack[len(b.stack)-1]
		parent.children = append(parent.children, childRef{index: top.index})
	}
}

func (b *Builder) fail(format string, args ...any) {
	b.err = fmt.Errorf("%w: "+format, append([]any{ErrMalformedTree}, args...)...)
}

// validateTree checks losslessness and well-formedness of a finished tree.
func validateTree(tree *Tree) error {
	if len(tree.nodes) == 0 || tree.nodes[0].kind != NodeDocument {
		return fmt.Errorf("%w: root is not a Document", ErrMalformedTree)
	}

	root := tree.nodes[0].rng
	if root.StartOffset != 0 || root.EndOffset != len(tree.content) {
		return fmt.Errorf("%w: root covers [%d, %d), input is [0, %d)",
			ErrMalformedTree, root.StartOffset, root.EndOffset, len(tree.content))
	}

	if !ValidateTokens(tree.tokens, len(tree.content)) {
		return fmt.Errorf("%w: tokens do not cover content", ErrMalformedTree)
	}

	for i := range tree.nodes {
		node := Node{tree: tree, index: int32(i)}
		pos := node.Range().StartOffset
		for _, child := range node.Children() {
			r := child.Range()
			if r.StartOffset != pos {
				return fmt.Errorf("%w: child %s of %s leaves a gap or overlap at %d",
					ErrMalformedTree, child, node, pos)
			}
			pos = r.EndOffset
		}
		if pos != node.Range().EndOffset {
			return fmt.Errorf("%w: children of %s end at %d", ErrMalformedTree, node, pos)
		}
	}

	return nil
}
