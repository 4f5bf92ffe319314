package jast

import "fmt"

// NodeList is an ordered child list owned by one property of one node.
type NodeList struct {
	owner *Node
	prop  Property
	items []*Node
}

// Owner returns the node that owns the list.
func (l *NodeList) Owner() *Node {
	return l.owner
}

// Property returns the property of the owner that holds the list.
func (l *NodeList) Property() Property {
	return l.prop
}

// Len returns the number of items.
func (l *NodeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// IsEmpty returns true if the list has no items.
func (l *NodeList) IsEmpty() bool {
	return l.Len() == 0
}

// At returns the item at index i, or nil if out of range.
func (l *NodeList) At(i int) *Node {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns a copy of the items.
func (l *NodeList) Items() []*Node {
	if l == nil {
		return nil
	}
	out := make([]*Node, len(l.items))
	copy(out, l.items)
	return out
}

// IndexOf returns the index of n, or -1.
func (l *NodeList) IndexOf(n *Node) int {
	if l == nil {
		return -1
	}
	for i, item := range l.items {
		if item == n {
			return i
		}
	}
	return -1
}

// Add appends n.
func (l *NodeList) Add(n *Node) error {
	return l.Insert(l.Len(), n)
}

// Insert places n at index i, shifting later items.
func (l *NodeList) Insert(i int, n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: cannot insert nil into %s.%s", ErrInvalidValue, l.owner.Kind, l.prop)
	}

	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert into %s.%s at %d: %w", l.owner.Kind, l.prop, i, ErrIndexOutOfRange)
	}

	if n.parent != nil {
		return fmt.Errorf("insert into %s.%s: %w", l.owner.Kind, l.prop, ErrAttached)
	}

	change := Change{
		Kind:     ChangeListAdded,
		Node:     l.owner,
		Property: l.prop,
		Index:    i,
		NewChild: n,
	}
	if err := l.owner.notify(change); err != nil {
		return err
	}

	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = n

	n.parent = l.owner
	n.parentProp = l.prop

	l.owner.applied(change)
	return nil
}

// Remove deletes the item at index i.
func (l *NodeList) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("remove from %s.%s at %d: %w", l.owner.Kind, l.prop, i, ErrIndexOutOfRange)
	}

	old := l.items[i]
	change := Change{
		Kind:     ChangeListRemoved,
		Node:     l.owner,
		Property: l.prop,
		Index:    i,
		OldChild: old,
	}
	if err := l.owner.notify(change); err != nil {
		return err
	}

	l.items = append(l.items[:i], l.items[i+1:]...)
	old.parent = nil

	l.owner.applied(change)
	return nil
}

// RemoveNode deletes n from the list.
func (l *NodeList) RemoveNode(n *Node) error {
	idx := l.IndexOf(n)
	if idx < 0 {
		return fmt.Errorf("remove from %s.%s: %w", l.owner.Kind, l.prop, ErrNotFound)
	}
	return l.Remove(idx)
}

// Set replaces the item at index i with n.
func (l *NodeList) Set(i int, n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: cannot set nil in %s.%s", ErrInvalidValue, l.owner.Kind, l.prop)
	}

	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("set %s.%s at %d: %w", l.owner.Kind, l.prop, i, ErrIndexOutOfRange)
	}

	old := l.items[i]
	if old == n {
		return nil
	}

	if n.parent != nil {
		return fmt.Errorf("set %s.%s: %w", l.owner.Kind, l.prop, ErrAttached)
	}

	change := Change{
		Kind:     ChangeListReplaced,
		Node:     l.owner,
		Property: l.prop,
		Index:    i,
		OldChild: old,
		NewChild: n,
	}
	if err := l.owner.notify(change); err != nil {
		return err
	}

	l.items[i] = n
	old.parent = nil
	n.parent = l.owner
	n.parentProp = l.prop

	l.owner.applied(change)
	return nil
}
