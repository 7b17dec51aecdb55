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

// Insert places v at position pos, shifting every element formerly at
// position i >= pos to position i+1. pos must be in [0, t.Len()]; passing a
// larger pos produces a structurally inconsistent tree (see CheckIntegrity),
// not a panic — out-of-range insert positions are a caller bug, not a
// documented runtime input (unlike Access and Update).
//
// When pos already names an existing element, the new element is inserted
// to its left: the existing element is pushed one position to the right.
func (t *Tree[K, V]) Insert(pos K, v V) {
	t.root = t.insert(t.root, pos, v)
	t.size++
}

// insert descends the subtree rooted at n, inserting v at local position
// pos, and returns the (possibly rebalanced) new root of that subtree.
func (t *Tree[K, V]) insert(n *node[K, V], pos K, v V) *node[K, V] {
	if n == nil {
		return &node[K, V]{rank: pos, value: v, min: v, height: 1}
	}

	if pos <= n.rank {
		n.left = t.insert(n.left, pos, v)
		n.rank++
	} else {
		n.right = t.insert(n.right, pos-n.rank, v)
	}
	t.refresh(n)

	switch b := t.balance(n); {
	case b > 1:
		// Left-heavy. pos is still in n.left's frame (descending left never
		// translates position), so comparing it against n.left.rank tells
		// Left-Left apart from Left-Right.
		if pos > n.left.rank {
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	case b < -1:
		// Right-heavy. This branch is only reachable when the insertion
		// just went right (inserting left can only raise the balance, never
		// lower it past -1 given the AVL invariant held beforehand), so
		// pos > n.rank here and the subtraction below cannot underflow.
		if pos-n.rank < n.right.rank {
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	default:
		return n
	}
}
