// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/bonsai-go/bonsai/node"
)

func TestNodeLevels(t *testing.T) {
	root := NewBranch[string]("root", "root", nil)
	a := root.AddLeaf("a", "a")
	sub := root.AddBranch("sub", "sub")
	b := sub.AddLeaf("sub/b", "b")

	assert.Equal(t, 0, root.Level())
	assert.Nil(t, root.Parent())
	assert.True(t, IsRoot[string](root))
	assert.Equal(t, 1, a.Level())
	assert.Equal(t, 1, sub.Level())
	assert.Equal(t, 2, b.Level())
	assert.Equal(t, Node[string](sub), b.Parent())
	assert.Equal(t, Node[string](root), Root[string](b))
	require.NoError(t, Validate[string](root))
}

func TestConstructorParent(t *testing.T) {
	root := NewBranch[string]("r", "r", nil)
	l := NewLeaf[string]("r/l", "l", root)
	b := NewBranch[string]("r/b", "b", root)
	assert.Equal(t, Node[string](root), l.Parent())
	assert.Equal(t, 1, l.Level())
	assert.Equal(t, 2, NewLeaf[string]("r/b/c", "c", b).Level())

	// a nil branch is no parent at all
	orphan := NewLeaf[string]("x", "x", nil)
	assert.Nil(t, orphan.Parent())
	assert.True(t, IsRoot[string](orphan))
}

func TestNodeKinds(t *testing.T) {
	root := NewBranch[int](0, "root", nil)
	leaf := root.AddLeaf(1, "one")

	assert.Equal(t, KindBranch, root.Kind())
	assert.Equal(t, KindLeaf, leaf.Kind())
	assert.Equal(t, "branch", KindBranch.String())
	assert.Equal(t, "leaf", KindLeaf.String())

	b, ok := AsBranch[int](root)
	assert.True(t, ok)
	assert.Same(t, root, b)
	_, ok = AsBranch[int](leaf)
	assert.False(t, ok)
	l, ok := AsLeaf[int](leaf)
	assert.True(t, ok)
	assert.Same(t, leaf, l)
}

func TestNodeChildren(t *testing.T) {
	root := NewBranch[string]("root", "root", nil)
	a := root.AddLeaf("a", "a")
	b := root.AddLeaf("b", "b")

	assert.True(t, root.HasChildren())
	assert.Equal(t, 2, root.NumChildren())
	assert.Equal(t, Node[string](b), root.Child(1))
	assert.Nil(t, root.Child(2))
	assert.Nil(t, root.Child(-1))
	assert.Equal(t, 0, root.IndexOf(a))
	assert.Equal(t, -1, root.IndexOf(NewLeaf[string]("c", "c", root)))
	for _, c := range root.Children {
		assert.Equal(t, Node[string](root), c.Parent())
	}
}

func lazyRoot(loads *int) *Branch[string] {
	return NewBranch[string]("root", "root", nil, WithLoader[string](func(b *Branch[string]) []Node[string] {
		*loads++
		return []Node[string]{
			NewLeaf[string]("root/a", "a", b),
			NewBranch[string]("root/sub", "sub", b),
		}
	}))
}

func TestBranchLazyLoad(t *testing.T) {
	loads := 0
	root := lazyRoot(&loads)
	assert.True(t, root.IsLazy())
	assert.False(t, root.HasChildren())
	assert.Equal(t, 0, loads)

	root.Expanded().Set(true)
	assert.Equal(t, 1, loads)
	require.Len(t, root.Children, 2)
	first := root.Children
	require.NoError(t, Validate[string](root))

	// setting the same value again does not reload
	root.Expanded().Set(true)
	assert.Equal(t, 1, loads)

	root.Expanded().Set(false)
	assert.Len(t, root.Children, 2)
	root.Expanded().Set(true)
	assert.Equal(t, 2, loads)
	require.Len(t, root.Children, 2)
	for i := range first {
		assert.Equal(t, first[i].Content(), root.Children[i].Content())
		assert.NotSame(t, first[i], root.Children[i])
	}

	root.Reload()
	assert.Equal(t, 3, loads)
}

func TestBranchInitiallyExpanded(t *testing.T) {
	loads := 0
	b := NewBranch[string]("root", "root", nil,
		WithLoader[string](func(b *Branch[string]) []Node[string] {
			loads++
			return nil
		}),
		InitiallyExpanded[string](true))
	assert.True(t, b.IsExpanded())
	assert.Equal(t, 0, loads)
}

func TestBranchStaticReload(t *testing.T) {
	root := NewBranch[string]("root", "root", nil)
	root.AddLeaf("a", "a")
	root.Reload()
	root.Expanded().Set(true)
	assert.Len(t, root.Children, 1)
}

func TestFlag(t *testing.T) {
	var f Flag
	var got []bool
	f.OnChange(func(v bool) { got = append(got, v) })

	assert.False(t, f.Value())
	assert.False(t, f.Set(false))
	assert.True(t, f.Set(true))
	assert.True(t, f.Value())
	f.Toggle()
	assert.False(t, f.Value())
	assert.Equal(t, []bool{true, false}, got)
}

func TestFlagIsolation(t *testing.T) {
	root := NewBranch[string]("root", "root", nil)
	a := root.AddBranch("a", "a")
	b := root.AddBranch("b", "b")
	c := a.AddLeaf("a/c", "c")

	a.Expanded().Set(true)
	c.Selected().Set(true)

	assert.True(t, a.IsExpanded())
	assert.False(t, a.Selected().Value())
	assert.False(t, b.IsExpanded())
	assert.False(t, b.Selected().Value())
	assert.False(t, root.IsExpanded())
	assert.False(t, root.Selected().Value())
	assert.True(t, c.Selected().Value())
}

func TestValidate(t *testing.T) {
	root := NewBranch[string]("root", "root", nil)
	other := NewBranch[string]("other", "other", nil)
	root.Children = append(root.Children, NewLeaf[string]("x", "x", other))
	err := Validate[string](root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)

	deep := NewBranch[string]("deep", "deep", root)
	assert.NoError(t, Validate[string](deep))
}

func ExampleBranch_AddBranch() {
	root := NewBranch[string]("/", "/", nil)
	docs := root.AddBranch("/docs", "docs")
	docs.AddLeaf("/docs/readme.md", "readme.md")
	WalkDown[string](root, func(n Node[string]) bool {
		fmt.Println(n.Level(), n.Name())
		return Continue
	})
	// Output:
	// 0 /
	// 1 docs
	// 2 readme.md
}
