// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/bonsai-go/bonsai/node"
)

// SearchThreshold is the minimum Jaro-Winkler similarity between a query
// and a node name for the node to match when the name does not contain
// the query.
var SearchThreshold = 0.8

// Match is a node found by [Tree.Search].
type Match[T any] struct {

	// Node is the matching node.
	Node node.Node[T]

	// Score is the match score: names containing the query score above 1,
	// with a bonus for a prefix, and other names score their similarity.
	Score float64
}

// Search returns the materialized nodes whose name matches the given
// query, ignoring case, sorted by descending score and then in
// depth-first order. If limit is positive, at most limit matches are
// returned. Only materialized nodes are searched; expand the tree
// first to search deeper.
func (t *Tree[T]) Search(query string, limit int) []Match[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false

	var matches []Match[T]
	t.Walk(func(n node.Node[T]) bool {
		name := strings.ToLower(n.Name())
		score := strutil.Similarity(name, query, jw)
		switch {
		case strings.HasPrefix(name, query):
			score += 2
		case strings.Contains(name, query):
			score++
		case score < SearchThreshold:
			return node.Continue
		}
		matches = append(matches, Match[T]{Node: n, Score: score})
		return node.Continue
	})
	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
