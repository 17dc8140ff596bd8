// Copyright 2025 Naren Yellavula
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

package avl

import (
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII picture of the tree to w, turned on its side with
// the right subtree on top. Each line shows a value with its cached height
// and balance factor. It returns the number of levels drawn.
func (t *Tree[T]) Print(w io.Writer) int {
	if t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return 0
	}
	return printTree(w, t.root, "", rootBranch)
}

func printTree[T any](w io.Writer, n *node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = printTree(w, n.right, prefix+pad, rightBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d %+d\n", n.value, n.height, n.balanceFactor())

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = printTree(w, n.left, prefix+pad, leftBranch)
	}
	return 1 + max(rd, ld)
}
