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

type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, height: 0}
}

// height of a possibly absent subtree
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func (n *node[T]) balanceFactor() int {
	return height(n.left) - height(n.right)
}

// min returns the lowest node of the subtree rooted at n
func (n *node[T]) min() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the highest node of the subtree rooted at n
func (n *node[T]) max() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
