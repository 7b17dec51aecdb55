// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ranktree implements a dynamic, positionally-indexed range-minimum
// structure.
//
// Unlike a classical static RMQ (sparse table, Cartesian tree), positions in
// a ranktree.Tree are not fixed: inserting an element shifts the rank of
// every element after it by one, the same way inserting into the middle of a
// slice would. Unlike a plain order-statistics tree, every node also caches
// the minimum value over its own subtree, so a range-minimum query can prune
// whole subtrees in O(1) instead of visiting every element in the range.
//
// The tree is an AVL tree keyed not by value but by position: each node
// stores a "local rank" equal to one plus the size of its left subtree, and
// descent translates a global position into a sequence of local-rank
// comparisons without needing parent pointers or a separate size field. This
// is the same trick an order-statistics tree uses to answer "find the k-th
// smallest element", turned around to answer "what value is currently at
// position k, and what happens to position k when I insert before it".
//
// A Tree is not safe for concurrent use. Write operations (Insert, Update)
// must not run concurrently with each other or with reads on the same Tree.
package ranktree

import (
	"golang.org/x/exp/constraints"
)

// Tree is a dynamic positional range-minimum structure over keys of type K
// and values of type V. The zero value is not ready to use; construct one
// with New.
//
// K must be wide enough to count every element the caller will ever insert;
// Insert does not detect overflow of the rank counter (see the Non-goals in
// SPEC_FULL.md).
type Tree[K constraints.Unsigned, V any] struct {
	root  *node[K, V]
	size  K
	order Order[V]
}

// New returns an empty Tree ordered by order. order.Less must implement a
// strict weak ordering and order.Max must be a value that compares less than
// no other value; New panics if order.Less is nil.
func New[K constraints.Unsigned, V any](order Order[V]) *Tree[K, V] {
	if order.Less == nil {
		panic("ranktree: nil Order.Less")
	}
	return &Tree[K, V]{order: order}
}

// Len returns the number of elements currently held by t.
func (t *Tree[K, V]) Len() K {
	return t.size
}
