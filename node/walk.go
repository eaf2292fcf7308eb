// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides tree walking functions over materialized children,
and the flattening of the tree into the visible rows that a renderer
draws, with iterative traversal of those rows in up / down directions.
*/

package node

import "fmt"

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its materialized
// descendants in depth-first order. If the function returns [Break] for a
// node, the children of that node are skipped.
func WalkDown[T any](n Node[T], fun func(n Node[T]) bool) {
	if !fun(n) {
		return
	}
	b, ok := AsBranch(n)
	if !ok {
		return
	}
	for _, c := range b.Children {
		WalkDown(c, fun)
	}
}

// WalkAll calls [WalkDown] on each of the given roots in order.
func WalkAll[T any](roots []Node[T], fun func(n Node[T]) bool) {
	for _, r := range roots {
		WalkDown(r, fun)
	}
}

// Root returns the root of the tree containing the given node.
func Root[T any](n Node[T]) Node[T] {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// Ancestors returns the ancestors of the given node, starting
// with its root and ending with its parent.
func Ancestors[T any](n Node[T]) []Node[T] {
	var anc []Node[T]
	for p := n.Parent(); p != nil; p = p.Parent() {
		anc = append(anc, p)
	}
	for i, j := 0, len(anc)-1; i < j; i, j = i+1, j-1 {
		anc[i], anc[j] = anc[j], anc[i]
	}
	return anc
}

// IsAncestor returns whether anc is a strict ancestor of n.
func IsAncestor[T any](anc, n Node[T]) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == anc {
			return true
		}
	}
	return false
}

// Visible returns the rows a renderer draws for the given roots:
// each node followed, if it is an expanded branch, by its own rows.
func Visible[T any](roots []Node[T]) []Node[T] {
	var rows []Node[T]
	for _, r := range roots {
		rows = appendVisible(rows, r)
	}
	return rows
}

func appendVisible[T any](rows []Node[T], n Node[T]) []Node[T] {
	rows = append(rows, n)
	if b, ok := AsBranch(n); ok && b.IsExpanded() {
		for _, c := range b.Children {
			rows = appendVisible(rows, c)
		}
	}
	return rows
}

// Next returns the visible row after the given node among the given
// roots, or nil if it is the last row.
func Next[T any](roots []Node[T], n Node[T]) Node[T] {
	if b, ok := AsBranch(n); ok && b.IsExpanded() && b.HasChildren() {
		return b.Children[0]
	}
	return nextSibling(roots, n)
}

// nextSibling returns the next sibling of the node, or of the nearest
// ancestor that has one, or nil if there is none.
func nextSibling[T any](roots []Node[T], n Node[T]) Node[T] {
	for {
		sibs := siblings(roots, n)
		idx := indexOf(sibs, n)
		if idx >= 0 && idx < len(sibs)-1 {
			return sibs[idx+1]
		}
		if n.Parent() == nil {
			return nil
		}
		n = n.Parent()
	}
}

// Previous returns the visible row before the given node among the
// given roots, or nil if it is the first row.
func Previous[T any](roots []Node[T], n Node[T]) Node[T] {
	sibs := siblings(roots, n)
	idx := indexOf(sibs, n)
	if idx > 0 {
		return lastVisible(sibs[idx-1])
	}
	return n.Parent()
}

// lastVisible returns the last visible row under the given node,
// or the node itself if it has no visible children.
func lastVisible[T any](n Node[T]) Node[T] {
	for {
		b, ok := AsBranch(n)
		if !ok || !b.IsExpanded() || !b.HasChildren() {
			return n
		}
		n = b.Children[len(b.Children)-1]
	}
}

// siblings returns the list that contains the given node:
// the children of its parent, or the roots.
func siblings[T any](roots []Node[T], n Node[T]) []Node[T] {
	if p, ok := n.Parent().(*Branch[T]); ok {
		return p.Children
	}
	return roots
}

func indexOf[T any](list []Node[T], n Node[T]) int {
	for i, c := range list {
		if c == n {
			return i
		}
	}
	return -1
}

// Validate checks the structural invariants of the materialized subtree
// rooted at n: every child has its branch as parent and a level one
// greater than it, and a node without a parent has level 0.
func Validate[T any](n Node[T]) error {
	var err error
	if n.Parent() == nil && n.Level() != 0 {
		return fmt.Errorf("node %q: root has level %d", n.Name(), n.Level())
	}
	WalkDown(n, func(k Node[T]) bool {
		if err != nil {
			return Break
		}
		b, ok := AsBranch(k)
		if !ok {
			return Continue
		}
		for _, c := range b.Children {
			if c.Parent() != Node[T](b) {
				err = fmt.Errorf("node %q: parent is not branch %q", c.Name(), b.Name())
				return Break
			}
			if c.Level() != b.Level()+1 {
				err = fmt.Errorf("node %q: level %d under branch %q at level %d", c.Name(), c.Level(), b.Name(), b.Level())
				return Break
			}
		}
		return Continue
	})
	return err
}
