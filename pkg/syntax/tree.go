// Package syntax provides the lossless concrete syntax tree for inferus.
// It defines an immutable, byte-exact view of a Markdown buffer including:
// - Token: every byte of the input classified into a terminal kind
// - Tree: an arena of nodes whose leaves are the tokens, in document order
// - Node, Leaf, Element: cheap value handles for navigating a Tree
// - Builder: the open/attach/close protocol the parser drives
package syntax

import (
	"slices"
	"sort"
	"strconv"
)

// Tree is a finished, immutable syntax tree over a single source buffer.
// Concatenating the text of every token in order reproduces the source exactly.
// A Tree is safe for concurrent use by multiple readers.
type Tree struct {
	content []byte
	lines   []LineInfo
	tokens  []Token

	// tokenOwner[i] is the arena index of the node that owns tokens[i].
	tokenOwner []int32

	// nodes is stored in pre-order: a node's descendants occupy
	// nodes[index+1 : nodes[index].end].
	nodes []nodeData

	// edges holds the child lists of every node back to back.
	edges []childRef
}

type nodeData struct {
	kind   SyntaxKind
	parent int32
	rng    SourceRange

	firstEdge int32
	numEdges  int32

	// Half-open span of descendant tokens.
	firstToken int32
	endToken   int32

	// One past the last descendant in the arena.
	end int32
}

type childRef struct {
	index int32
	leaf  bool
}

// Content returns the source buffer. Callers must not modify it.
func (t *Tree) Content() []byte {
	return t.content
}

// Len returns the length of the source in bytes.
func (t *Tree) Len() int {
	return len(t.content)
}

// Root returns the Document node.
func (t *Tree) Root() Node {
	return Node{tree: t, index: 0}
}

// Tokens returns a copy of the full token stream.
func (t *Tree) Tokens() []Token {
	return slices.Clone(t.tokens)
}

// TokenCount returns the number of tokens in the tree.
func (t *Tree) TokenCount() int {
	return len(t.tokens)
}

// NodeCount returns the number of nodes in the tree, including the root.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// Leaf returns the i-th token of the tree in document order.
func (t *Tree) Leaf(i int) (Leaf, bool) {
	if i < 0 || i >= len(t.tokens) {
		return Leaf{}, false
	}
	return Leaf{tree: t, index: int32(i)}, true
}

// TokenAt returns the token covering the byte at offset.
func (t *Tree) TokenAt(offset int) (Leaf, bool) {
	if offset < 0 || offset >= len(t.content) {
		return Leaf{}, false
	}
	idx := sort.Search(len(t.tokens), func(i int) bool {
		return t.tokens[i].EndOffset > offset
	})
	return t.Leaf(idx)
}

// Node is a handle to an interior node of a Tree.
// The zero Node belongs to no tree; check IsZero before use when unsure.
type Node struct {
	tree  *Tree
	index int32
}

func (n Node) data() *nodeData {
	return &n.tree.nodes[n.index]
}

// IsZero reports whether n is the zero handle.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// Tree returns the tree n belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

// Index returns the pre-order position of n within its tree.
func (n Node) Index() int {
	return int(n.index)
}

// Kind returns the node kind.
func (n Node) Kind() SyntaxKind {
	return n.data().kind
}

// Range returns the byte range covered by the node.
func (n Node) Range() SourceRange {
	return n.data().rng
}

// Text returns the source text covered by the node.
func (n Node) Text() []byte {
	r := n.data().rng
	return n.tree.content[r.StartOffset:r.EndOffset]
}

// String returns a short description such as "Heading@0..8".
func (n Node) String() string {
	if n.IsZero() {
		return "<nil>"
	}
	return describe(n.Kind(), n.Range())
}

// Parent returns the enclosing node. The root has no parent.
func (n Node) Parent() (Node, bool) {
	p := n.data().parent
	if p < 0 {
		return Node{}, false
	}
	return Node{tree: n.tree, index: p}, true
}

// Ancestors returns the chain of enclosing nodes, nearest first.
func (n Node) Ancestors() []Node {
	var out []Node
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		out = append(out, p)
	}
	return out
}

// ChildCount returns the number of direct children, tokens and nodes alike.
func (n Node) ChildCount() int {
	return int(n.data().numEdges)
}

// Children returns the direct children in document order.
func (n Node) Children() []Element {
	refs := n.edges()
	out := make([]Element, len(refs))
	for i, ref := range refs {
		out[i] = Element{tree: n.tree, index: ref.index, leaf: ref.leaf}
	}
	return out
}

// ChildNodes returns the direct children that are nodes.
func (n Node) ChildNodes() []Node {
	var out []Node
	for _, ref := range n.edges() {
		if !ref.leaf {
			out = append(out, Node{tree: n.tree, index: ref.index})
		}
	}
	return out
}

// ChildLeaves returns the direct children that are tokens.
func (n Node) ChildLeaves() []Leaf {
	var out []Leaf
	for _, ref := range n.edges() {
		if ref.leaf {
			out = append(out, Leaf{tree: n.tree, index: ref.index})
		}
	}
	return out
}

// Descendants returns n and every node beneath it in pre-order.
func (n Node) Descendants() []Node {
	d := n.data()
	out := make([]Node, 0, d.end-n.index)
	for i := n.index; i < d.end; i++ {
		out = append(out, Node{tree: n.tree, index: i})
	}
	return out
}

// Tokens returns every token beneath n in document order.
func (n Node) Tokens() []Leaf {
	d := n.data()
	out := make([]Leaf, 0, d.endToken-d.firstToken)
	for i := d.firstToken; i < d.endToken; i++ {
		out = append(out, Leaf{tree: n.tree, index: i})
	}
	return out
}

// Reassemble concatenates the text of tokens in slice order. For the tokens
// of a root node the result equals the parsed input.
func Reassemble(tokens []Leaf) []byte {
	size := 0
	for _, leaf := range tokens {
		size += len(leaf.Text())
	}
	out := make([]byte, 0, size)
	for _, leaf := range tokens {
		out = append(out, leaf.Text()...)
	}
	return out
}

func (n Node) edges() []childRef {
	d := n.data()
	return n.tree.edges[d.firstEdge : d.firstEdge+d.numEdges]
}

// Leaf is a handle to a token inside a Tree.
type Leaf struct {
	tree  *Tree
	index int32
}

// IsZero reports whether l is the zero handle.
func (l Leaf) IsZero() bool {
	return l.tree == nil
}

// Index returns the position of the token in the tree's token stream.
func (l Leaf) Index() int {
	return int(l.index)
}

// Token returns the underlying token value.
func (l Leaf) Token() Token {
	return l.tree.tokens[l.index]
}

// Kind returns the token kind.
func (l Leaf) Kind() SyntaxKind {
	return l.tree.tokens[l.index].Kind
}

// Range returns the byte range covered by the token.
func (l Leaf) Range() SourceRange {
	return l.tree.tokens[l.index].Range()
}

// Text returns the source text of the token.
func (l Leaf) Text() []byte {
	return l.tree.tokens[l.index].Text(l.tree.content)
}

// String returns a short description such as `Text@2..7 "Title"`.
func (l Leaf) String() string {
	if l.IsZero() {
		return "<nil>"
	}
	return describe(l.Kind(), l.Range()) + " " + strconv.Quote(string(l.Text()))
}

// Parent returns the node that owns the token.
func (l Leaf) Parent() Node {
	return Node{tree: l.tree, index: l.tree.tokenOwner[l.index]}
}

// Next returns the following token in document order.
func (l Leaf) Next() (Leaf, bool) {
	return l.tree.Leaf(int(l.index) + 1)
}

// Prev returns the preceding token in document order.
func (l Leaf) Prev() (Leaf, bool) {
	return l.tree.Leaf(int(l.index) - 1)
}

// Element is either a Node or a Leaf.
type Element struct {
	tree  *Tree
	index int32
	leaf  bool
}

// IsLeaf reports whether the element is a token.
func (e Element) IsLeaf() bool {
	return e.leaf
}

// Node returns the element as a node, if it is one.
func (e Element) Node() (Node, bool) {
	if e.leaf || e.tree == nil {
		return Node{}, false
	}
	return Node{tree: e.tree, index: e.index}, true
}

// Leaf returns the element as a token, if it is one.
func (e Element) Leaf() (Leaf, bool) {
	if !e.leaf || e.tree == nil {
		return Leaf{}, false
	}
	return Leaf{tree: e.tree, index: e.index}, true
}

// Kind returns the element kind.
func (e Element) Kind() SyntaxKind {
	if e.leaf {
		return e.tree.tokens[e.index].Kind
	}
	return e.tree.nodes[e.index].kind
}

// Range returns the byte range covered by the element.
func (e Element) Range() SourceRange {
	if e.leaf {
		return e.tree.tokens[e.index].Range()
	}
	return e.tree.nodes[e.index].rng
}

// Text returns the source text covered by the element.
func (e Element) Text() []byte {
	r := e.Range()
	return e.tree.content[r.StartOffset:r.EndOffset]
}

// Parent returns the node that directly contains the element.
func (e Element) Parent() (Node, bool) {
	if e.leaf {
		return Leaf{tree: e.tree, index: e.index}.Parent(), true
	}
	return Node{tree: e.tree, index: e.index}.Parent()
}

// String describes the element like Node.String or Leaf.String.
func (e Element) String() string {
	if n, ok := e.Node(); ok {
		return n.String()
	}
	if l, ok := e.Leaf(); ok {
		return l.String()
	}
	return "<nil>"
}

func describe(kind SyntaxKind, r SourceRange) string {
	return kind.String() + "@" + strconv.Itoa(r.StartOffset) + ".." + strconv.Itoa(r.EndOffset)
}
