package jast

import "slices"

// ChangeKind classifies a mutation.
type ChangeKind uint8

// Change kinds.
const (
	ChangeListAdded ChangeKind = iota
	ChangeListRemoved
	ChangeListReplaced
	ChangeChildReplaced
	ChangeAttributeChanged
)

var changeKindNames = [...]string{
	ChangeListAdded:        "ListAdded",
	ChangeListRemoved:      "ListRemoved",
	ChangeListReplaced:     "ListReplaced",
	ChangeChildReplaced:    "ChildReplaced",
	ChangeAttributeChanged: "AttributeChanged",
}

func (k ChangeKind) String() string {
	if int(k) < len(changeKindNames) {
		return changeKindNames[k]
	}
	return "ChangeKind(?)"
}

// Change describes one mutation of one property. It is built before the
// mutation is applied, so Node still holds the old state when observers run.
type Change struct {
	Kind     ChangeKind
	Node     *Node
	Property Property

	// Index is the list position for list changes, -1 otherwise.
	Index int

	// OldChild and NewChild are set for list and child changes.
	OldChild *Node
	NewChild *Node

	// OldValue and NewValue are set for attribute changes.
	OldValue any
	NewValue any
}

// Observer receives changes made to a node or any of its descendants.
// Returning an error vetoes the mutation.
type Observer interface {
	NodeChanged(change Change) error
}

// Committer is an Observer that is also told when a change every observer
// accepted has been applied to the tree.
type Committer interface {
	Observer
	ChangeApplied(change Change)
}

// AddObserver registers o for changes to n and its descendants.
func (n *Node) AddObserver(o Observer) {
	n.observers = append(n.observers, o)
}

// RemoveObserver unregisters o.
func (n *Node) RemoveObserver(o Observer) {
	for i, registered := range n.observers {
		if registered == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// notify delivers change to the observers of n and of every ancestor,
// innermost first, stopping at the first error.
func (n *Node) notify(change Change) error {
	for cur := n; cur != nil; cur = cur.parent {
		for _, o := range cur.observers {
			if err := o.NodeChanged(change); err != nil {
				return err
			}
		}
	}
	return nil
}

// applied tells the committers of n and of every ancestor that change is now
// part of the tree.
func (n *Node) applied(change Change) {
	for cur := n; cur != nil; cur = cur.parent {
		for _, o := range slices.Clone(cur.observers) {
			if c, ok := o.(Committer); ok {
				c.ChangeApplied(change)
			}
		}
	}
}
