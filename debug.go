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

import (
	"fmt"
	"strings"
)

// String returns an indented, in-order dump of the tree, one node per line,
// each annotated with its local rank, value, subtree min, and height. It is
// meant for test failure messages and interactive debugging, not as a
// stable, parseable format.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	t.root.print(&b, 0)
	return b.String()
}

// print is used for testing/debugging purposes.
func (n *node[K, V]) print(w *strings.Builder, level int) {
	if n == nil {
		return
	}
	n.left.print(w, level+1)
	fmt.Fprintf(w, "%srank=%v value=%v min=%v height=%v\n",
		strings.Repeat("  ", level), n.rank, n.value, n.min, n.height)
	n.right.print(w, level+1)
}
