// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

// Loader is a function that materializes the children of the given branch.
// Every returned node must have the branch as its parent.
type Loader[T any] func(b *Branch[T]) []Node[T]

// Branch is a [Node] that may contain children. Its children are either
// static, added with [Branch.AddLeaf] and [Branch.AddBranch], or lazily
// materialized by its [Loader] every time it is expanded.
type Branch[T any] struct {
	base[T]

	// Children is the ordered list of children of this branch.
	// All of them have this branch as their parent.
	Children []Node[T]

	expanded Flag
	loader   Loader[T]
}

// BranchOption configures a new [Branch].
type BranchOption[T any] func(b *Branch[T])

// WithLoader sets the function used to materialize the children of
// the branch. It is called each time the branch is expanded, and the
// result replaces the current children; nothing is cached.
func WithLoader[T any](loader Loader[T]) BranchOption[T] {
	return func(b *Branch[T]) {
		b.loader = loader
	}
}

// InitiallyExpanded returns a branch option that sets the initial
// expansion state. It does not invoke any loader.
func InitiallyExpanded[T any](expanded bool) BranchOption[T] {
	return func(b *Branch[T]) {
		b.expanded.value = expanded
	}
}

// NewBranch returns a new branch with the given content and name under
// the given parent, which may be nil for a root. It does not add the
// branch to the children of the parent; see [Branch.AddBranch] for that.
func NewBranch[T any](content T, name string, parent *Branch[T], opts ...BranchOption[T]) *Branch[T] {
	b := &Branch[T]{base: newBase(content, name, parent)}
	for _, opt := range opts {
		opt(b)
	}
	b.expanded.OnChange(func(expanded bool) {
		if expanded {
			b.Reload()
		}
	})
	return b
}

func (b *Branch[T]) Kind() Kind { return KindBranch }

func (b *Branch[T]) String() string { return b.name }

// Expanded returns the expansion flag of the branch. Setting it to true
// materializes the children when the branch has a [Loader].
func (b *Branch[T]) Expanded() *Flag { return &b.expanded }

// IsExpanded returns whether the branch is currently expanded.
func (b *Branch[T]) IsExpanded() bool { return b.expanded.Value() }

// IsLazy returns whether the branch has a [Loader].
func (b *Branch[T]) IsLazy() bool { return b.loader != nil }

// Reload replaces the children of the branch with the result of its
// [Loader]. It does nothing for a branch with static children.
func (b *Branch[T]) Reload() {
	if b.loader == nil {
		return
	}
	b.Children = b.loader(b)
}

// HasChildren returns whether the branch has any materialized children.
func (b *Branch[T]) HasChildren() bool {
	return len(b.Children) > 0
}

// NumChildren returns the number of materialized children.
func (b *Branch[T]) NumChildren() int {
	return len(b.Children)
}

// Child returns the child at the given index, or nil
// if the index is out of range.
func (b *Branch[T]) Child(i int) Node[T] {
	if i < 0 || i >= len(b.Children) {
		return nil
	}
	return b.Children[i]
}

// IndexOf returns the index of the given child, or -1 if it is not
// a child of this branch.
func (b *Branch[T]) IndexOf(child Node[T]) int {
	for i, c := range b.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// AddLeaf adds a new leaf child with the given content and name
// to the end of the children and returns it.
func (b *Branch[T]) AddLeaf(content T, name string) *Leaf[T] {
	l := NewLeaf[T](content, name, b)
	b.Children = append(b.Children, l)
	return l
}

// AddBranch adds a new branch child with the given content, name and
// options to the end of the children and returns it.
func (b *Branch[T]) AddBranch(content T, name string, opts ...BranchOption[T]) *Branch[T] {
	c := NewBranch[T](content, name, b, opts...)
	b.Children = append(b.Children, c)
	return c
}
