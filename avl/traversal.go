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

// InOrder returns every value in ascending order.
func (t *Tree[T]) InOrder() []T {
	result := make([]T, 0, t.count)
	inOrder(t.root, &result)
	return result
}

// PreOrder returns the values visiting each node before its subtrees.
func (t *Tree[T]) PreOrder() []T {
	result := make([]T, 0, t.count)
	preOrder(t.root, &result)
	return result
}

// PostOrder returns the values visiting each node after its subtrees.
func (t *Tree[T]) PostOrder() []T {
	result := make([]T, 0, t.count)
	postOrder(t.root, &result)
	return result
}

func inOrder[T any](n *node[T], result *[]T) {
	if n == nil {
		return
	}
	inOrder(n.left, result)
	*result = append(*result, n.value)
	inOrder(n.right, result)
}

func preOrder[T any](n *node[T], result *[]T) {
	if n == nil {
		return
	}
	*result = append(*result, n.value)
	preOrder(n.left, result)
	preOrder(n.right, result)
}

func postOrder[T any](n *node[T], result *[]T) {
	if n == nil {
		return
	}
	postOrder(n.left, result)
	postOrder(n.right, result)
	*result = append(*result, n.value)
}
