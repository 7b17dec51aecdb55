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

import "testing"

// FuzzInsertUpdateRangeMin replays a byte string as a short program over a
// Tree and an equal-length naiveModel, decoding each triplet of bytes as one
// op (insert or update), a position, and a value. It fails as soon as the
// tree's CheckIntegrity or ToSequence diverges from the model, or a RangeMin
// answer disagrees with the model's brute-force scan.
//
// This exercises the same property the randomized TestRandomSequenceMatches-
// NaiveModel does (S6/P1-P6/L2/L3), but lets `go test -fuzz` explore inputs
// the hand-written random walk wouldn't think to try, and lets a crasher it
// finds be replayed deterministically as a seed corpus entry.
func FuzzInsertUpdateRangeMin(f *testing.F) {
	f.Add([]byte{0, 0, 2, 0, 1, 1, 1, 0, 5})
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, ops []byte) {
		tr := newIntTree()
		var model naiveModel

		for i := 0; i+2 < len(ops); i += 3 {
			opByte, posByte, valByte := ops[i], ops[i+1], ops[i+2]
			n := uint32(len(model))

			value := int(valByte)

			if opByte%2 == 0 || n == 0 {
				pos := uint32(posByte) % (n + 1)
				tr.Insert(pos, value)
				model.insert(pos, value)
			} else {
				pos := uint32(posByte) % n
				tr.Update(pos, value)
				model[pos] = value
			}

			if err := tr.CheckIntegrity(); err != nil {
				t.Fatalf("CheckIntegrity after op %d: %v", i/3, err)
			}
		}

		got := tr.ToSequence()
		if len(got) != len(model) {
			t.Fatalf("ToSequence() length %d, model length %d", len(got), len(model))
		}
		for i := range got {
			if got[i] != model[i] {
				t.Fatalf("ToSequence()[%d] = %v, model[%d] = %v", i, got[i], i, model[i])
			}
		}

		// Checking every [lo, hi) pair is O(n^2); cap it so a large fuzz
		// input can't make a single test case unboundedly slow.
		n := uint32(len(model))
		bound := n
		if bound > 64 {
			bound = 64
		}
		for lo := uint32(0); lo <= bound; lo++ {
			for hi := lo; hi <= bound; hi++ {
				if got, want := tr.RangeMin(lo, hi), model.rangeMin(lo, hi); got != want {
					t.Fatalf("RangeMin(%d,%d) = %v, want %v", lo, hi, got, want)
				}
			}
		}
		if n > bound {
			if got, want := tr.RangeMin(0, n), model.rangeMin(0, n); got != want {
				t.Fatalf("RangeMin(0,%d) = %v, want %v", n, got, want)
			}
		}
	})
}
