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

// rotateLeft lifts the right child of n into its place and returns it.
func rotateLeft[T any](n *node[T]) *node[T] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so it must be fixed first
	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight lifts the left child of n into its place and returns it.
func rotateRight[T any](n *node[T]) *node[T] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance restores the balance of n, whose children are already
// balanced, and returns the root of the resulting subtree. The caller
// stores the result in the slot that held n.
func rebalance[T any](n *node[T]) *node[T] {
	bf := n.balanceFactor()

	switch {
	case bf > 1: // left heavy
		if height(n.left.right) > height(n.left.left) {
			// left-right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)

	case bf < -1: // right heavy
		if height(n.right.left) > height(n.right.right) {
			// right-left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	n.updateHeight()
	return n
}

// IsBalanced reports whether every node satisfies the AVL balance
// condition. Heights are recomputed from scratch rather than read from the
// cache, so the check also holds when the cache is wrong.
func (t *Tree[T]) IsBalanced() bool {
	balanced, _ := isBalanced(t.root)
	return balanced
}

// isBalanced returns whether the subtree is balanced and its real height
func isBalanced[T any](n *node[T]) (bool, int) {
	if n == nil {
		return true, -1
	}
	lb, lh := isBalanced(n.left)
	if !lb {
		return false, 0
	}
	rb, rh := isBalanced(n.right)
	if !rb {
		return false, 0
	}
	d := lh - rh
	return d >= -1 && d <= 1, max(lh, rh) + 1
}
