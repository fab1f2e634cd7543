package ast

import "github.com/yaklabco/inferus/pkg/syntax"

// List is a run of consecutive "- " items.
type List struct {
	view
}

// AsList casts node to a List.
func AsList(node syntax.Node) (List, bool) {
	v, ok := cast(node, syntax.NodeList)
	return List{v}, ok
}

// Items returns the list items in order.
func (l List) Items() []ListItem {
	var items []ListItem
	for _, node := range l.node.ChildNodes() {
		if item, ok := AsListItem(node); ok {
			items = append(items, item)
		}
	}
	return items
}

// ListItem is a single "- " entry of a List.
type ListItem struct {
	view
}

// AsListItem casts node to a ListItem.
func AsListItem(node syntax.Node) (ListItem, bool) {
	v, ok := cast(node, syntax.NodeListItem)
	return ListItem{v}, ok
}

// Marker returns the '-' token that opens the item.
func (li ListItem) Marker() syntax.Leaf {
	return li.node.ChildLeaves()[0]
}

// Text returns the item content without the marker, its separating
// whitespace, and the trailing newline.
func (li ListItem) Text() string {
	return contentText(li.node.Tokens(), 1)
}
