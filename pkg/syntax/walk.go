package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of the nodes beneath root, root included.
// If walkFunc returns a non-nil error, the walk stops immediately and returns
// that error.
func Walk(root Node, walkFunc WalkFunc) error {
	if root.IsZero() {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.ChildNodes() {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(root Node, enter, leave WalkFunc) error {
	if root.IsZero() {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for _, child := range root.ChildNodes() {
		if err := WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	if root.IsZero() {
		return nil
	}

	var result []Node
	for _, node := range root.Descendants() {
		if predicate(node) {
			result = append(result, node)
		}
	}
	return result
}

// FindFirst returns the first node matching the predicate in pre-order.
func FindFirst(root Node, predicate func(n Node) bool) (Node, bool) {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found, !found.IsZero()
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root Node, kind SyntaxKind) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
