// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstree

import (
	"context"
	"log/slog"

	"github.com/bonsai-go/bonsai/node"
)

// BuildNodes returns the nodes for the given root path of the backend.
// If includeRoot is true, it returns a single node for the root itself,
// with no children materialized. Otherwise, it returns one node for each
// immediate entry of the root, in the listing order of the backend.
// Directories become [node.Branch] nodes that list their children with
// [ChildrenOf] every time they are expanded, and everything else becomes
// a [node.Leaf]. If the root cannot be listed, the result is empty.
func BuildNodes(b Backend, root string, includeRoot bool) []node.Node[string] {
	nodes, _ := build(context.Background(), b, root, nil, includeRoot)
	return nodes
}

// BuildNodesContext is like [BuildNodes], but it stops and returns the
// context error if the context is done before all nodes are built.
func BuildNodesContext(ctx context.Context, b Backend, root string, includeRoot bool) ([]node.Node[string], error) {
	return build(ctx, b, root, nil, includeRoot)
}

// ChildrenOf lists the backend at the path of the given branch and returns
// new nodes for its entries with the branch as their parent. It is the
// [node.Loader] of every directory branch made by this package, and it
// does not cache: each call lists the backend again.
func ChildrenOf(b Backend, br *node.Branch[string]) []node.Node[string] {
	nodes, _ := build(context.Background(), b, br.Content(), br, false)
	return nodes
}

// ChildrenOfContext is like [ChildrenOf], but it stops and returns the
// context error if the context is done before all nodes are built.
func ChildrenOfContext(ctx context.Context, b Backend, br *node.Branch[string]) ([]node.Node[string], error) {
	return build(ctx, b, br.Content(), br, false)
}

// LoadContext lists the children of the given branch with
// [ChildrenOfContext] and replaces its children with them.
// The branch is left unchanged if the context is done first.
func LoadContext(ctx context.Context, b Backend, br *node.Branch[string]) error {
	nodes, err := ChildrenOfContext(ctx, b, br)
	if err != nil {
		return err
	}
	br.Children = nodes
	return nil
}

func build(ctx context.Context, b Backend, root string, parent *node.Branch[string], includeRoot bool) ([]node.Node[string], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if includeRoot {
		return []node.Node[string]{newNode(b, root, parent)}, nil
	}
	paths, err := b.List(root)
	if err != nil {
		slog.Debug("fstree: could not list directory", "path", root, "err", err)
		return []node.Node[string]{}, nil
	}
	nodes := make([]node.Node[string], 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nodes = append(nodes, newNode(b, p, parent))
	}
	return nodes, nil
}

// newNode returns a branch for a directory and a leaf otherwise.
// A path whose metadata is unavailable is a leaf.
func newNode(b Backend, p string, parent *node.Branch[string]) node.Node[string] {
	md, err := b.Metadata(p)
	if err != nil {
		slog.Debug("fstree: could not get metadata", "path", p, "err", err)
		return node.NewLeaf[string](p, b.Name(p), parent)
	}
	if !md.IsDir {
		return node.NewLeaf[string](p, b.Name(p), parent)
	}
	return node.NewBranch[string](p, b.Name(p), parent, node.WithLoader[string](func(br *node.Branch[string]) []node.Node[string] {
		return ChildrenOf(b, br)
	}))
}
