// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bonsai-go/bonsai/node"
)

// State records which nodes of a tree are expanded and selected,
// by the keys of their contents, so that the view can be restored
// after the nodes are rebuilt.
type State struct {

	// Expanded are the keys of the expanded branches, in depth-first order.
	Expanded []string `toml:"expanded"`

	// Selected are the keys of the selected nodes, in depth-first order.
	Selected []string `toml:"selected"`
}

// Snapshot returns the state of the materialized nodes of the tree,
// using the given function to get the key of a node content.
func (t *Tree[T]) Snapshot(key func(content T) string) *State {
	s := &State{}
	t.Walk(func(n node.Node[T]) bool {
		k := key(n.Content())
		if b, ok := node.AsBranch(n); ok && b.IsExpanded() {
			s.Expanded = append(s.Expanded, k)
		}
		if n.Selected().Value() {
			s.Selected = append(s.Selected, k)
		}
		return node.Continue
	})
	return s
}

// Restore expands and selects the nodes of the tree recorded in the given
// state, materializing the children of lazy branches as they are expanded.
// Nodes that are not in the state are left as they are, and recorded keys
// with no node are ignored.
func (t *Tree[T]) Restore(s *State, key func(content T) string) {
	expanded := make(map[string]bool, len(s.Expanded))
	for _, k := range s.Expanded {
		expanded[k] = true
	}
	selected := make(map[string]bool, len(s.Selected))
	for _, k := range s.Selected {
		selected[k] = true
	}
	t.Walk(func(n node.Node[T]) bool {
		k := key(n.Content())
		if expanded[k] {
			t.Expand(n)
		}
		if selected[k] {
			t.Select(n)
		}
		return node.Continue
	})
}

// SaveState saves the given state to the given TOML file.
func SaveState(filename string, s *State) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("tree: encoding state: %w", err)
	}
	return os.WriteFile(filename, b, 0666)
}

// OpenState opens a state from the given TOML file.
func OpenState(filename string) (*State, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s := &State{}
	if err := toml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("tree: decoding state %q: %w", filename, err)
	}
	return s, nil
}
