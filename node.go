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

package ranktree

import "golang.org/x/exp/constraints"

// node is a single node of a Tree.
//
// rank is the node's LOCAL rank: one plus the size of its left subtree, i.e.
// the in-order index of the node within its own subtree, not within the
// whole tree. The global position of a node is only recoverable by
// accumulating local ranks along the descent path from the root (see
// Tree.Access and friends).
type node[K constraints.Unsigned, V any] struct {
	rank   K
	value  V
	min    V
	height uint8
	left   *node[K, V]
	right  *node[K, V]
}

// heightOf returns n's height, or 0 for an absent node, so callers never
// need a nil check before comparing heights.
func heightOf[K constraints.Unsigned, V any](n *node[K, V]) uint8 {
	if n == nil {
		return 0
	}
	return n.height
}

// minOf returns n's cached subtree minimum, or order.Max for an absent node
// — the identity element that makes folding minimums over possibly-missing
// children work without a branch at every call site.
func minOf[K constraints.Unsigned, V any](n *node[K, V], order Order[V]) V {
	if n == nil {
		return order.Max
	}
	return n.min
}

func maxHeight(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// refresh recomputes n.min and n.height from n.value and n's children. It
// must be called on the way back up from any mutation of n's children.
func (t *Tree[K, V]) refresh(n *node[K, V]) {
	t.updateMin(n)
	n.height = 1 + maxHeight(heightOf(n.left), heightOf(n.right))
}

// updateMin recomputes n.min alone, per invariant I2. Rotations call this
// directly because they reassign n.min for the other endpoint of the
// rotation by hand and only need the recomputed side refreshed.
func (t *Tree[K, V]) updateMin(n *node[K, V]) {
	m := n.value
	if n.left != nil {
		m = t.order.min(m, n.left.min)
	}
	if n.right != nil {
		m = t.order.min(m, n.right.min)
	}
	n.min = m
}

// balance returns height(left) - height(right), per the AVL discipline:
// a freshly rebalanced subtree always has balance in [-1, 1].
func (t *Tree[K, V]) balance(n *node[K, V]) int {
	return int(heightOf(n.left)) - int(heightOf(n.right))
}
