package jast

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// Errors returned by the mutation API.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrAttached        = errors.New("node already has a parent")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidValue    = errors.New("invalid value")
	ErrNotFound        = errors.New("node not found")
)

// Node is a single node in the Java AST.
//
// Structure lives in property slots described by Meta(Kind). The parent link is
// a back-pointer for traversal only; ownership always flows from parent to child.
// Identity is pointer identity.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Range is the byte span the node occupied when parsed.
	// In-memory nodes carry NoRange.
	Range Range

	parent     *Node
	parentProp Property

	children map[Property]*Node
	lists    map[Property]*NodeList
	attrs    map[Property]any

	comment *Node
	orphans []*Node

	observers []Observer
}

// NodeOption configures a node under construction.
type NodeOption func(n *Node)

// NewNode creates a node of the given kind. Attribute properties start at their
// zero value. Construction never notifies observers: a node being built has none.
//
// NewNode panics if an option names a property the kind does not have, or a
// child that already has a parent.
func NewNode(kind NodeKind, opts ...NodeOption) *Node {
	node := &Node{Kind: kind, Range: NoRange}

	for _, spec := range Meta(kind) {
		if spec.Shape == ShapeAttribute {
			node.setAttrRaw(spec.Property, zeroAttr(kind, spec.Property))
		}
	}

	for _, opt := range opts {
		opt(node)
	}

	return node
}

// WithChild sets a single-child property. A nil child is ignored.
func WithChild(prop Property, child *Node) NodeOption {
	return func(n *Node) {
		if child == nil {
			return
		}
		n.mustHave(prop, ShapeSingle)
		n.adopt(prop, child)
		if n.children == nil {
			n.children = make(map[Property]*Node)
		}
		n.children[prop] = child
	}
}

// WithList appends items to a list property. Nil items are skipped.
func WithList(prop Property, items ...*Node) NodeOption {
	return func(n *Node) {
		n.mustHave(prop, ShapeList)
		list := n.List(prop)
		for _, item := range items {
			if item == nil {
				continue
			}
			n.adopt(prop, item)
			list.items = append(list.items, item)
		}
	}
}

// WithAttr sets an attribute property.
func WithAttr(prop Property, value any) NodeOption {
	return func(n *Node) {
		n.mustHave(prop, ShapeAttribute)
		if err := checkAttr(n.Kind, prop, value); err != nil {
			panic("jast: " + err.Error())
		}
		n.setAttrRaw(prop, value)
	}
}

// WithRange records the source range of the node.
func WithRange(r Range) NodeOption {
	return func(n *Node) {
		n.Range = r
	}
}

// WithComment sets the leading comment.
func WithComment(comment *Node) NodeOption {
	return func(n *Node) {
		if comment == nil {
			return
		}
		n.adopt(PropComment, comment)
		n.comment = comment
	}
}

// WithOrphans attaches comments that belong to no child.
func WithOrphans(comments ...*Node) NodeOption {
	return func(n *Node) {
		for _, comment := range comments {
			if comment == nil {
				continue
			}
			n.adopt(PropOrphanComments, comment)
			n.orphans = append(n.orphans, comment)
		}
	}
}

func (n *Node) mustHave(prop Property, shape Shape) {
	spec, ok := Lookup(n.Kind, prop)
	if !ok || spec.Shape != shape {
		panic(fmt.Sprintf("jast: %s has no %s property of that shape", n.Kind, prop))
	}
}

func (n *Node) adopt(prop Property, child *Node) {
	if child.parent != nil {
		panic(fmt.Sprintf("jast: %s is already attached to %s", child.Kind, child.parent.Kind))
	}
	child.parent = n
	child.parentProp = prop
}

func (n *Node) setAttrRaw(prop Property, value any) {
	if n.attrs == nil {
		n.attrs = make(map[Property]any)
	}
	n.attrs[prop] = value
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// ParentProperty returns the property of the parent that holds this node.
// Only meaningful when Parent is non-nil.
func (n *Node) ParentProperty() Property {
	return n.parentProp
}

// Child returns the node in a single-child property, or nil.
func (n *Node) Child(prop Property) *Node {
	return n.children[prop]
}

// List returns the list stored in prop, or nil if the kind has no such list.
func (n *Node) List(prop Property) *NodeList {
	if list, ok := n.lists[prop]; ok {
		return list
	}

	spec, ok := Lookup(n.Kind, prop)
	if !ok || spec.Shape != ShapeList {
		return nil
	}

	if n.lists == nil {
		n.lists = make(map[Property]*NodeList)
	}
	list := &NodeList{owner: n, prop: prop}
	n.lists[prop] = list
	return list
}

// Attr returns the value of an attribute property, or nil.
func (n *Node) Attr(prop Property) any {
	return n.attrs[prop]
}

// StringAttr returns a string attribute, or "" if unset or not a string.
func (n *Node) StringAttr(prop Property) string {
	s, _ := n.attrs[prop].(string)
	return s
}

// BoolAttr returns a bool attribute, or false if unset or not a bool.
func (n *Node) BoolAttr(prop Property) bool {
	b, _ := n.attrs[prop].(bool)
	return b
}

// Modifiers returns the modifier set of a declaration.
func (n *Node) Modifiers() Modifiers {
	m, _ := n.attrs[PropModifiers].(Modifiers)
	return m
}

// Identifier returns the identifier of a SimpleName or Name, or of the Name
// child of a named node.
func (n *Node) Identifier() string {
	switch n.Kind {
	case NodeSimpleName, NodeName:
		return n.StringAttr(PropIdentifier)
	default:
		if name := n.Child(PropName); name != nil {
			return name.Identifier()
		}
		return ""
	}
}

// Comment returns the leading comment, or nil.
func (n *Node) Comment() *Node {
	return n.comment
}

// OrphanComments returns the comments attached to this node but to none of its children.
func (n *Node) OrphanComments() []*Node {
	out := make([]*Node, len(n.orphans))
	copy(out, n.orphans)
	return out
}

// Children returns the structural children in property order.
// Comments are not included.
func (n *Node) Children() []*Node {
	var children []*Node
	for _, spec := range Meta(n.Kind) {
		switch spec.Shape {
		case ShapeSingle:
			if child := n.children[spec.Property]; child != nil {
				children = append(children, child)
			}
		case ShapeList:
			if list := n.lists[spec.Property]; list != nil {
				children = append(children, list.items...)
			}
		case ShapeAttribute:
		}
	}
	return children
}

// TextChildren returns every node whose text lies inside this node's text:
// the structural children, the leading comments of those children and the
// orphan comments. Nodes are sorted by range start; nodes without a range
// keep their relative order after the positioned ones.
func (n *Node) TextChildren() []*Node {
	var nodes []*Node
	for _, child := range n.Children() {
		if child.comment != nil {
			nodes = append(nodes, child.comment)
		}
		nodes = append(nodes, child)
	}
	nodes = append(nodes, n.orphans...)

	sort.SliceStable(nodes, func(i, j int) bool {
		return sortKey(nodes[i]) < sortKey(nodes[j])
	})

	return nodes
}

func sortKey(n *Node) int {
	if !n.Range.IsValid() {
		return int(^uint(0) >> 1)
	}
	return n.Range.Start
}

// SetChild replaces the node in a single-child property. Passing nil clears it.
// Observers see the change before it is applied; if one fails, the tree is unchanged.
func (n *Node) SetChild(prop Property, child *Node) error {
	spec, ok := Lookup(n.Kind, prop)
	if !ok || spec.Shape != ShapeSingle {
		return fmt.Errorf("%w: %s.%s is not a child property", ErrUnknownProperty, n.Kind, prop)
	}

	old := n.children[prop]
	if old == child {
		return nil
	}

	if child != nil && child.parent != nil {
		return fmt.Errorf("set %s.%s: %w", n.Kind, prop, ErrAttached)
	}

	change := Change{
		Kind:     ChangeChildReplaced,
		Node:     n,
		Property: prop,
		Index:    -1,
		OldChild: old,
		NewChild: child,
	}
	if err := n.notify(change); err != nil {
		return err
	}

	if old != nil {
		old.parent = nil
	}

	if child == nil {
		delete(n.children, prop)
	} else {
		if n.children == nil {
			n.children = make(map[Property]*Node)
		}
		child.parent = n
		child.parentProp = prop
		n.children[prop] = child
	}

	n.applied(change)
	return nil
}

// SetAttr changes an attribute property. Setting an equal value is a no-op.
func (n *Node) SetAttr(prop Property, value any) error {
	spec, ok := Lookup(n.Kind, prop)
	if !ok || spec.Shape != ShapeAttribute {
		return fmt.Errorf("%w: %s.%s is not an attribute", ErrUnknownProperty, n.Kind, prop)
	}

	if err := checkAttr(n.Kind, prop, value); err != nil {
		return err
	}

	old := n.attrs[prop]
	if old == value {
		return nil
	}

	change := Change{
		Kind:     ChangeAttributeChanged,
		Node:     n,
		Property: prop,
		Index:    -1,
		OldValue: old,
		NewValue: value,
	}
	if err := n.notify(change); err != nil {
		return err
	}

	n.setAttrRaw(prop, value)
	n.applied(change)
	return nil
}

// SetModifiers is shorthand for SetAttr(PropModifiers, mods).
func (n *Node) SetModifiers(mods Modifiers) error {
	return n.SetAttr(PropModifiers, mods)
}

// SetComment replaces the leading comment. Passing nil clears it.
func (n *Node) SetComment(comment *Node) error {
	if comment != nil && !comment.Kind.IsComment() {
		return fmt.Errorf("%w: %s is not a comment", ErrInvalidValue, comment.Kind)
	}

	old := n.comment
	if old == comment {
		return nil
	}

	if comment != nil && comment.parent != nil {
		return fmt.Errorf("set comment of %s: %w", n.Kind, ErrAttached)
	}

	change := Change{
		Kind:     ChangeChildReplaced,
		Node:     n,
		Property: PropComment,
		Index:    -1,
		OldChild: old,
		NewChild: comment,
	}
	if err := n.notify(change); err != nil {
		return err
	}

	if old != nil {
		old.parent = nil
	}
	n.comment = comment
	if comment != nil {
		comment.parent = n
		comment.parentProp = PropComment
	}

	n.applied(change)
	return nil
}

// AddOrphanComment attaches a comment that belongs to no child.
func (n *Node) AddOrphanComment(comment *Node) error {
	if comment == nil || !comment.Kind.IsComment() {
		return fmt.Errorf("%w: orphan must be a comment", ErrInvalidValue)
	}

	if comment.parent != nil {
		return fmt.Errorf("add orphan comment to %s: %w", n.Kind, ErrAttached)
	}

	change := Change{
		Kind:     ChangeListAdded,
		Node:     n,
		Property: PropOrphanComments,
		Index:    len(n.orphans),
		NewChild: comment,
	}
	if err := n.notify(change); err != nil {
		return err
	}

	comment.parent = n
	comment.parentProp = PropOrphanComments
	n.orphans = append(n.orphans, comment)

	n.applied(change)
	return nil
}

// zeroAttr returns the default value of an attribute property.
func zeroAttr(kind NodeKind, prop Property) any {
	switch prop {
	case PropStatic, PropAsterisk, PropInterface, PropVarArgs:
		return false
	case PropModifiers:
		return Modifiers(0)
	case PropPrimitive:
		return PrimitiveInt
	case PropOperator:
		switch kind {
		case NodeUnaryExpr:
			return OpUnaryMinus
		case NodeAssignExpr:
			return OpAssign
		default:
			return OpPlus
		}
	case PropValue:
		if kind == NodeBooleanLiteralExpr {
			return false
		}
		return ""
	default:
		return ""
	}
}

func checkAttr(kind NodeKind, prop Property, value any) error {
	want := reflect.TypeOf(zeroAttr(kind, prop))
	if got := reflect.TypeOf(value); got != want {
		return fmt.Errorf("%w: %s.%s wants %s, got %v", ErrInvalidValue, kind, prop, want, got)
	}
	return nil
}
