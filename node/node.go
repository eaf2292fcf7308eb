// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node provides a generic, lazily materialized tree node model,
// centered on the [Node] interface and its two variants, [Branch] and [Leaf].
package node

// Kind is the discriminant of a [Node] variant.
type Kind int

const (
	// KindLeaf is a terminal node with no children.
	KindLeaf Kind = iota

	// KindBranch is a node that may contain children
	// and can be expanded and collapsed.
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindBranch:
		return "branch"
	}
	return "unknown"
}

// Node is an interface that all tree nodes satisfy. The only
// implementations are [*Branch] and [*Leaf]; use [Node.Kind] or
// [AsBranch] to tell them apart.
type Node[T any] interface {

	// Content returns the opaque payload of the node, such as a path.
	Content() T

	// Name returns the display name of the node.
	Name() string

	// Level returns the depth of the node from its root, which is 0.
	// It is only used for indentation, not for structural identity.
	Level() int

	// Parent returns the parent of the node, or nil for a root node.
	// It is a non-owning back-reference.
	Parent() Node[T]

	// Selected returns the selection flag of the node.
	Selected() *Flag

	// Kind returns which variant this node is.
	Kind() Kind
}

// base holds the state shared by both node variants.
type base[T any] struct {
	content  T
	name     string
	level    int
	parent   Node[T]
	selected Flag
}

func newBase[T any](content T, name string, parent *Branch[T]) base[T] {
	b := base[T]{content: content, name: name}
	if parent != nil {
		b.parent = parent
		b.level = parent.level + 1
	}
	return b
}

func (n *base[T]) Content() T { return n.content }

func (n *base[T]) Name() string { return n.name }

func (n *base[T]) Level() int { return n.level }

func (n *base[T]) Parent() Node[T] { return n.parent }

func (n *base[T]) Selected() *Flag { return &n.selected }

// Leaf is a terminal [Node] with no children.
type Leaf[T any] struct {
	base[T]
}

// NewLeaf returns a new leaf with the given content and name under the
// given parent, which may be nil for a root. It does not add the leaf
// to the children of the parent; see [Branch.AddLeaf] for that.
func NewLeaf[T any](content T, name string, parent *Branch[T]) *Leaf[T] {
	return &Leaf[T]{base: newBase(content, name, parent)}
}

func (n *Leaf[T]) Kind() Kind { return KindLeaf }

func (n *Leaf[T]) String() string { return n.name }

// AsBranch returns the given node as a [*Branch] and true
// if it is a branch, and nil and false otherwise.
func AsBranch[T any](n Node[T]) (*Branch[T], bool) {
	b, ok := n.(*Branch[T])
	return b, ok
}

// AsLeaf returns the given node as a [*Leaf] and true
// if it is a leaf, and nil and false otherwise.
func AsLeaf[T any](n Node[T]) (*Leaf[T], bool) {
	l, ok := n.(*Leaf[T])
	return l, ok
}

// IsRoot returns whether the given node has no parent.
func IsRoot[T any](n Node[T]) bool {
	return n.Parent() == nil
}
