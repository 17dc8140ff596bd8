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
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error returned from Verify.
var ErrInvariant = errors.New("avl: invariant violated")

// Verify walks the whole tree and checks ordering, cached heights, balance
// and the element count. It returns nil for a consistent tree, otherwise an
// error wrapping ErrInvariant that names the first offending value.
func (t *Tree[T]) Verify() error {
	n, _, err := t.verify(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("%w: count is %d but %d nodes are reachable", ErrInvariant, t.count, n)
	}
	return nil
}

// verify returns the node count and real height of the subtree; lo and hi
// are the exclusive bounds inherited from the ancestors (nil = unbounded)
func (t *Tree[T]) verify(n *node[T], lo, hi *T) (int, int, error) {
	if n == nil {
		return 0, -1, nil
	}
	if lo != nil && t.compare(n.value, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not greater than ancestor %v", ErrInvariant, n.value, *lo)
	}
	if hi != nil && t.compare(n.value, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not less than ancestor %v", ErrInvariant, n.value, *hi)
	}

	lc, lh, err := t.verify(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.verify(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: %v caches height %d, actual %d", ErrInvariant, n.value, n.height, h)
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("%w: %v has balance factor %+d", ErrInvariant, n.value, d)
	}
	return lc + rc + 1, h, nil
}
