// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bonsai-go/bonsai/node"
)

// Gesture is a pointer gesture recognized by the host on a node.
type Gesture int

const (
	// Click is a single click or tap.
	Click Gesture = iota

	// DoubleClick is a double click or tap.
	DoubleClick

	// LongClick is a long press.
	LongClick
)

func (g Gesture) String() string {
	switch g {
	case Click:
		return "click"
	case DoubleClick:
		return "double-click"
	case LongClick:
		return "long-click"
	}
	return "unknown"
}

// Dispatch routes a gesture on the content of the given node to its
// handler. When neither [Tree.OnDoubleClick] nor [Tree.OnLongClick] is
// set, the content only knows about clicks, so a double click is two
// clicks and a long click is one. Otherwise a gesture without its own
// handler does nothing.
func (t *Tree[T]) Dispatch(n node.Node[T], g Gesture) {
	if t.OnDoubleClick == nil && t.OnLongClick == nil {
		t.DispatchToggle(n, g)
		return
	}
	switch g {
	case DoubleClick:
		if t.OnDoubleClick != nil {
			t.OnDoubleClick(n)
		}
	case LongClick:
		if t.OnLongClick != nil {
			t.OnLongClick(n)
		}
	default:
		t.click(n)
	}
}

// DispatchToggle routes a gesture on the expansion toggle of the given
// node, which only knows about clicks: a double click is two clicks and
// a long click is one, regardless of the other handlers.
func (t *Tree[T]) DispatchToggle(n node.Node[T], g Gesture) {
	t.click(n)
	if g == DoubleClick {
		t.click(n)
	}
}

func (t *Tree[T]) click(n node.Node[T]) {
	if t.OnClick != nil {
		t.OnClick(n)
	}
}
