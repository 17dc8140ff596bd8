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
	"cmp"
	"errors"
)

// ErrEmptyTree is returned by Min and Max when the tree holds no values.
var ErrEmptyTree = errors.New("avl: tree is empty")

// CompareFunc orders two values: negative when a < b, zero when they are
// equal and positive when a > b. It must describe a consistent total order.
type CompareFunc[T any] func(a, b T) int

// Tree holds the root node of a balanced tree. The zero value has no
// ordering and is not usable; create trees with New or NewFunc.
type Tree[T any] struct {
	root    *node[T]
	count   int
	compare CompareFunc[T]
}

// New creates an empty tree ordered by the natural order of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the root, -1 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Clear removes every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// Insert adds value to the tree. It returns false, leaving the tree
// untouched, if an equal value is already present.
func (t *Tree[T]) Insert(value T) bool {
	t.mustHaveOrder()
	var added bool
	t.root, added = t.insert(t.root, value)
	if added {
		t.count++
	}
	return added
}

func (t *Tree[T]) insert(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return newNode(value), true
	}

	var added bool
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left, added = t.insert(n.left, value)
	case c > 0:
		n.right, added = t.insert(n.right, value)
	default:
		return n, false
	}

	if !added {
		return n, false
	}
	n.updateHeight()
	return rebalance(n), true
}

func (t *Tree[T]) mustHaveOrder() {
	if t.compare == nil {
		panic("avl: tree has no compare function, create it with New or NewFunc")
	}
}

// Remove deletes value from the tree and reports whether it was present.
func (t *Tree[T]) Remove(value T) bool {
	var removed bool
	t.root, removed = t.remove(t.root, value)
	if removed {
		t.count--
	}
	return removed
}

func (t *Tree[T]) remove(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left, removed = t.remove(n.left, value)
	case c > 0:
		n.right, removed = t.remove(n.right, value)
	default:
		removed = true
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Two children: take over the successor's value, then remove the
		// successor from the right subtree by value. Values are unique so
		// the recursive call hits the leaf or single-child case.
		n.value = n.right.min().value
		n.right, _ = t.remove(n.right, n.value)
	}

	if !removed {
		return n, false
	}
	n.updateHeight()
	return rebalance(n), true
}

// Contains reports whether value is in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.contains(t.root, value)
}

func (t *Tree[T]) contains(n *node[T], value T) bool {
	if n == nil {
		return false
	}
	switch c := t.compare(value, n.value); {
	case c < 0:
		return t.contains(n.left, value)
	case c > 0:
		return t.contains(n.right, value)
	default:
		return true
	}
}

// Min returns the lowest value in the tree.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.min().value, nil
}

// Max returns the highest value in the tree.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.max().value, nil
}
