// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides [Tree], the headless controller of a tree view:
// it holds the root nodes, routes click gestures to handlers, and
// provides bulk expansion and selection operations over the nodes.
package tree

import (
	"github.com/bonsai-go/bonsai/node"
)

// Handler is a function called with the node that received a gesture.
type Handler[T any] func(n node.Node[T])

// Tree is the headless state of a tree view over the given roots.
// It is not safe for concurrent use; all of its methods and the
// handlers it calls are expected to run on the event loop of the host.
type Tree[T any] struct {

	// Roots are the top-level nodes of the tree.
	Roots []node.Node[T]

	// OnClick is called when a node is clicked.
	OnClick Handler[T]

	// OnDoubleClick is called when a node is double clicked.
	// If it is nil, a double click is delivered as two clicks.
	OnDoubleClick Handler[T]

	// OnLongClick is called when a node is long clicked.
	// If it is nil, a long click is delivered as a click.
	OnLongClick Handler[T]
}

// New returns a new tree for the given roots with the default handlers:
// a click selects only the node and toggles its expansion, and a long
// click toggles its selection.
func New[T any](roots ...node.Node[T]) *Tree[T] {
	t := &Tree[T]{Roots: roots}
	t.OnClick = t.DefaultClick
	t.OnLongClick = t.ToggleSelection
	return t
}

// DefaultClick clears the selection, selects the given node,
// and toggles its expansion if it is a branch.
func (t *Tree[T]) DefaultClick(n node.Node[T]) {
	t.ClearSelection()
	t.Select(n)
	t.ToggleExpansion(n)
}

// Rows returns the visible rows of the tree; see [node.Visible].
func (t *Tree[T]) Rows() []node.Node[T] {
	return node.Visible(t.Roots)
}

// Walk calls [node.WalkDown] on each root.
func (t *Tree[T]) Walk(fun func(n node.Node[T]) bool) {
	node.WalkAll(t.Roots, fun)
}

// Find returns the first materialized node, in depth-first order,
// for which the given function returns true, or nil if there is none.
func (t *Tree[T]) Find(fun func(n node.Node[T]) bool) node.Node[T] {
	var found node.Node[T]
	t.Walk(func(n node.Node[T]) bool {
		if found != nil {
			return node.Break
		}
		if fun(n) {
			found = n
			return node.Break
		}
		return node.Continue
	})
	return found
}

// Expansion:

// Expand expands the given node if it is a branch.
func (t *Tree[T]) Expand(n node.Node[T]) {
	if b, ok := node.AsBranch(n); ok {
		b.Expanded().Set(true)
	}
}

// Collapse collapses the given node if it is a branch.
func (t *Tree[T]) Collapse(n node.Node[T]) {
	if b, ok := node.AsBranch(n); ok {
		b.Expanded().Set(false)
	}
}

// ToggleExpansion toggles the expansion of the given node if it is a branch.
func (t *Tree[T]) ToggleExpansion(n node.Node[T]) {
	if b, ok := node.AsBranch(n); ok {
		b.Expanded().Toggle()
	}
}

// ExpandFrom expands the given node and all of its descendants,
// materializing the children of lazy branches as it goes. For a
// backend that may be very deep, use [Tree.ExpandUntil] instead.
func (t *Tree[T]) ExpandFrom(n node.Node[T]) {
	node.WalkDown(n, func(k node.Node[T]) bool {
		t.Expand(k)
		return node.Continue
	})
}

// CollapseFrom collapses the given node and all of its
// materialized descendants.
func (t *Tree[T]) CollapseFrom(n node.Node[T]) {
	node.WalkDown(n, func(k node.Node[T]) bool {
		t.Collapse(k)
		return node.Continue
	})
}

// ExpandAll expands every node of the tree; see [Tree.ExpandFrom].
func (t *Tree[T]) ExpandAll() {
	for _, r := range t.Roots {
		t.ExpandFrom(r)
	}
}

// CollapseAll collapses every materialized node of the tree.
func (t *Tree[T]) CollapseAll() {
	for _, r := range t.Roots {
		t.CollapseFrom(r)
	}
}

// ExpandUntil expands every branch with a level less than the given
// level, so that the rows down to that level are visible. Deeper
// branches are left as they are.
func (t *Tree[T]) ExpandUntil(level int) {
	t.Walk(func(n node.Node[T]) bool {
		if n.Level() >= level {
			return node.Break
		}
		t.Expand(n)
		return node.Continue
	})
}

// Selection:

// Select selects the given node.
func (t *Tree[T]) Select(n node.Node[T]) {
	n.Selected().Set(true)
}

// Deselect deselects the given node.
func (t *Tree[T]) Deselect(n node.Node[T]) {
	n.Selected().Set(false)
}

// ToggleSelection toggles the selection of the given node.
func (t *Tree[T]) ToggleSelection(n node.Node[T]) {
	n.Selected().Toggle()
}

// ClearSelection deselects every materialized node.
func (t *Tree[T]) ClearSelection() {
	t.Walk(func(n node.Node[T]) bool {
		n.Selected().Set(false)
		return node.Continue
	})
}

// Selected returns the selected materialized nodes in depth-first order.
func (t *Tree[T]) Selected() []node.Node[T] {
	var sel []node.Node[T]
	t.Walk(func(n node.Node[T]) bool {
		if n.Selected().Value() {
			sel = append(sel, n)
		}
		return node.Continue
	})
	return sel
}
