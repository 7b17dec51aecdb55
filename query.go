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

// Access returns the value at position pos. Access on an out-of-range pos
// (pos >= t.Len()) returns the zero value of V rather than panicking or
// signaling an error; this matches the source structure's legacy behavior
// and is the chosen policy for an otherwise-ambiguous case (see DESIGN.md).
func (t *Tree[K, V]) Access(pos K) V {
	var zero V
	if pos >= t.size {
		return zero
	}
	n := t.root
	for n != nil {
		switch {
		case pos < n.rank:
			n = n.left
		case pos > n.rank:
			pos -= n.rank
			n = n.right
		default:
			return n.value
		}
	}
	return zero
}

// Update overwrites the value at position pos with v, leaving every other
// position unchanged. Update on an out-of-range pos (pos >= t.Len()) is a
// silent no-op.
func (t *Tree[K, V]) Update(pos K, v V) {
	if pos >= t.size {
		return
	}
	t.update(t.root, pos, v)
}

// update descends to the node at local position pos and overwrites its
// value, then recomputes cached minimums on the way back up. The structure
// never changes, so unlike insert this never rotates and never needs to
// reassign its caller's child pointer.
func (t *Tree[K, V]) update(n *node[K, V], pos K, v V) {
	if n == nil {
		return
	}
	switch {
	case pos < n.rank:
		t.update(n.left, pos, v)
	case pos > n.rank:
		t.update(n.right, pos-n.rank, v)
	default:
		n.value = v
	}
	t.updateMin(n)
}

// RangeMin returns the minimum value over the half-open interval [lo, hi).
// An empty interval (lo == hi) returns order.Max. Callers must pass
// 0 <= lo <= hi; hi may exceed t.Len(), in which case the query is clamped
// to the end of the sequence.
func (t *Tree[K, V]) RangeMin(lo, hi K) V {
	if lo == 0 && hi > t.size {
		return minOf(t.root, t.order)
	}
	return t.rangeMin(t.root, lo, hi, hi > t.size)
}

// rangeMin answers [lo, hi) against the subtree rooted at n, whose
// coordinates are already translated into n's local frame. includeRight
// tells the in-range case whether the query is known to cover all of n's
// right subtree already, letting it use the subtree's cached minimum in
// O(1) instead of recursing into it.
func (t *Tree[K, V]) rangeMin(n *node[K, V], lo, hi K, includeRight bool) V {
	if n == nil || lo == hi {
		return t.order.Max
	}

	r := n.rank
	switch {
	case r >= hi:
		// The whole interval lies in the left subtree.
		return t.rangeMin(n.left, lo, hi, false)
	case r < lo:
		// The whole interval lies in the right subtree.
		return t.rangeMin(n.right, lo-r, hi-r, false)
	}

	// n itself is in range.
	m := n.value
	if includeRight {
		m = t.order.min(m, minOf(n.right, t.order))
	} else {
		m = t.order.min(m, t.rangeMin(n.right, 0, hi-r, false))
	}
	if lo == 0 {
		m = t.order.min(m, minOf(n.left, t.order))
	} else {
		// The left recursion is told includeRight=true: it has already
		// committed to covering everything up through index r-1, i.e. the
		// whole right spine of n's left subtree.
		m = t.order.min(m, t.rangeMin(n.left, lo, r, true))
	}
	return m
}

// ToSequence returns the tree's elements in position order, A[0..Len()).
// It is an O(n) in-order traversal and performs no mutation.
func (t *Tree[K, V]) ToSequence() []V {
	out := make([]V, 0, t.size)
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)
	return out
}
