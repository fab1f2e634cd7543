package syntax_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/yaklabco/inferus/pkg/syntax"
)

func TestNode_Navigation(t *testing.T) {
	t.Parallel()

	tree := buildListTree(t)
	root := tree.Root()

	if _, ok := root.Parent(); ok {
		t.Error("root should have no parent")
	}

	list := root.ChildNodes()[0]
	items := list.ChildNodes()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	for _, item := range items {
		parent, ok := item.Parent()
		if !ok || parent != list {
			t.Errorf("item %s: expected parent %s, got %s", item, list, parent)
		}
		ancestors := item.Ancestors()
		if len(ancestors) != 2 || ancestors[0] != list || ancestors[1] != root {
			t.Errorf("item %s: unexpected ancestors %v", item, ancestors)
		}
	}

	second := items[1]
	if r := second.Range(); r.StartOffset != 4 || r.EndOffset != 8 {
		t.Errorf("unexpected second item range %+v", r)
	}
	if len(second.ChildLeaves()) != 4 || len(second.ChildNodes()) != 0 {
		t.Errorf("expected 4 leaves and no nodes under %s", second)
	}
}

func TestNode_Descendants(t *testing.T) {
	t.Parallel()

	tree := buildListTree(t)

	var kinds []string
	for _, node := range tree.Root().Descendants() {
		kinds = append(kinds, node.Kind().String())
	}

	got := strings.Join(kinds, ",")
	if got != "Document,List,ListItem,ListItem" {
		t.Errorf("unexpected pre-order %s", got)
	}

	item := tree.Root().ChildNodes()[0].ChildNodes()[0]
	if d := item.Descendants(); len(d) != 1 || d[0] != item {
		t.Errorf("leaf node descendants should be itself, got %v", d)
	}
}

func TestNode_TokensReconstructSource(t *testing.T) {
	t.Parallel()

	tree := buildListTree(t)

	var sb strings.Builder
	for _, leaf := range tree.Root().Tokens() {
		sb.Write(leaf.Text())
	}
	if sb.String() != string(tree.Content()) {
		t.Errorf("expected %q, got %q", tree.Content(), sb.String())
	}

	item := tree.Root().ChildNodes()[0].ChildNodes()[1]
	var itemText strings.Builder
	for _, leaf := range item.Tokens() {
		itemText.Write(leaf.Text())
	}
	if itemText.String() != "- b\n" {
		t.Errorf("unexpected item tokens %q", itemText.String())
	}
}

func TestReassemble(t *testing.T) {
	t.Parallel()

	tree := buildListTree(t)
	tokens := tree.Root().Tokens()

	if got := syntax.Reassemble(tokens); string(got) != string(tree.Content()) {
		t.Errorf("expected %q, got %q", tree.Content(), got)
	}
	if &syntax.Reassemble(tokens)[0] == &tree.Content()[0] {
		t.Error("reassembled bytes should not alias the tree content")
	}

	// Dropped and reordered tokens must not reproduce the input.
	reordered := append([]syntax.Leaf{tokens[len(tokens)-1]}, tokens[:len(tokens)-1]...)
	for name, broken := range map[string][]syntax.Leaf{
		"dropped":   tokens[1:],
		"truncated": tokens[:len(tokens)-1],
		"reordered": reordered,
	} {
		if got := syntax.Reassemble(broken); string(got) == string(tree.Content()) {
			t.Errorf("%s: expected mismatch, got %q", name, got)
		}
	}

	if got := syntax.Reassemble(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestElement_Accessors(t *testing.T) {
	t.Parallel()

	tree := buildHeadingTree(t)
	children := tree.Root().Children()
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}

	elem := children[0]
	if elem.IsLeaf() {
		t.Fatal("expected heading node element")
	}
	if _, ok := elem.Leaf(); ok {
		t.Error("node element should not convert to a leaf")
	}
	heading, ok := elem.Node()
	if !ok || elem.Kind() != syntax.NodeHeading {
		t.Fatalf("expected heading, got %s", elem)
	}

	leafElem := heading.Children()[2]
	leaf, ok := leafElem.Leaf()
	if !ok {
		t.Fatal("expected leaf element")
	}
	if leafElem.Kind() != syntax.TokText || string(leafElem.Text()) != "Title" {
		t.Errorf("unexpected leaf element %s", leafElem)
	}
	if parent, ok := leafElem.Parent(); !ok || parent != heading {
		t.Errorf("expected parent %s, got %s", heading, parent)
	}
	if leaf.Parent() != heading {
		t.Errorf("expected leaf parent %s, got %s", heading, leaf.Parent())
	}
	if got := leaf.String(); got != `Text@2..7 "Title"` {
		t.Errorf("unexpected leaf string %s", got)
	}
}

func TestLeaf_Siblings(t *testing.T) {
	t.Parallel()

	tree := buildHeadingTree(t)

	first, ok := tree.Leaf(0)
	if !ok {
		t.Fatal("expected first leaf")
	}
	if _, ok := first.Prev(); ok {
		t.Error("first leaf should have no predecessor")
	}

	next, ok := first.Next()
	if !ok || next.Kind() != syntax.TokWhitespace {
		t.Errorf("expected whitespace after hash, got %s", next)
	}

	last, _ := tree.Leaf(tree.TokenCount() - 1)
	if _, ok := last.Next(); ok {
		t.Error("last leaf should have no successor")
	}
}

func TestTree_TokenAt(t *testing.T) {
	t.Parallel()

	tree := buildHeadingTree(t)

	tests := []struct {
		offset int
		kind   syntax.SyntaxKind
		ok     bool
	}{
		{0, syntax.TokHash, true},
		{1, syntax.TokWhitespace, true},
		{4, syntax.TokText, true},
		{7, syntax.TokNewLine, true},
		{8, 0, false},
		{-1, 0, false},
	}

	for _, testCase := range tests {
		leaf, ok := tree.TokenAt(testCase.offset)
		if ok != testCase.ok {
			t.Errorf("offset %d: expected ok=%v", testCase.offset, testCase.ok)
			continue
		}
		if ok && leaf.Kind() != testCase.kind {
			t.Errorf("offset %d: expected %s, got %s", testCase.offset, testCase.kind, leaf.Kind())
		}
	}
}

func TestTree_TokensIsCopy(t *testing.T) {
	t.Parallel()

	tree := buildHeadingTree(t)
	tokens := tree.Tokens()
	tokens[0].Kind = syntax.TokStar

	if leaf, _ := tree.Leaf(0); leaf.Kind() != syntax.TokHash {
		t.Error("mutating Tokens() result changed the tree")
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	tree := buildHeadingTree(t)

	expected := `Document@0..8
  Heading@0..8
    Hash@0..1 "#"
    Whitespace@1..2 " "
    Text@2..7 "Title"
    NewLine@7..8 "\n"
`
	if got := syntax.Dump(tree.Root()); got != expected {
		t.Errorf("unexpected dump:\n%s", got)
	}
}

func TestTree_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	tree := buildListTree(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, node := range tree.Root().Descendants() {
				_ = node.Children()
				_ = node.Tokens()
				_ = syntax.Dump(node)
			}
		}()
	}
	wg.Wait()
}

func TestNode_Zero(t *testing.T) {
	t.Parallel()

	var n syntax.Node
	if !n.IsZero() {
		t.Error("zero Node should report IsZero")
	}
	if n.String() != "<nil>" {
		t.Errorf("unexpected zero string %q", n.String())
	}
}
