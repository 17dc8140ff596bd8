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

package ops

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/cybrota/avltree/avl"
)

// TraversalOperation lists every key in one of the three depth-first orders
type TraversalOperation[K cmp.Ordered] struct {
	info
	walk func(tree *avl.Tree[K]) []K
}

func NewInOrderOperation[K cmp.Ordered]() *TraversalOperation[K] {
	return &TraversalOperation[K]{
		info: info{
			name:     "inorder",
			aliases:  []string{"in", "ls", "list"},
			synopsis: "inorder",
			summary:  "List the keys left subtree, node, right subtree: ascending order.",
			priority: 4,
		},
		walk: (*avl.Tree[K]).InOrder,
	}
}

func NewPreOrderOperation[K cmp.Ordered]() *TraversalOperation[K] {
	return &TraversalOperation[K]{
		info: info{
			name:     "preorder",
			aliases:  []string{"pre"},
			synopsis: "preorder",
			summary:  "List the keys node first, then left and right subtree. The first key is the root.",
			priority: 5,
		},
		walk: (*avl.Tree[K]).PreOrder,
	}
}

func NewPostOrderOperation[K cmp.Ordered]() *TraversalOperation[K] {
	return &TraversalOperation[K]{
		info: info{
			name:     "postorder",
			aliases:  []string{"post"},
			synopsis: "postorder",
			summary:  "List the keys left and right subtree first, then the node. The last key is the root.",
			priority: 6,
		},
		walk: (*avl.Tree[K]).PostOrder,
	}
}

func (o *TraversalOperation[K]) Apply(tree *avl.Tree[K], _ []K) (string, error) {
	return fmt.Sprint(o.walk(tree)), nil
}

// CheckOperation runs the full structural verification
type CheckOperation[K cmp.Ordered] struct{ info }

func NewCheckOperation[K cmp.Ordered]() *CheckOperation[K] {
	return &CheckOperation[K]{info{
		name:     "check",
		aliases:  []string{"verify", "balanced"},
		synopsis: "check",
		summary:  "Verify ordering, cached heights and the AVL balance of every node.",
		detail:   "Heights are recomputed from the leaves up, independent of the values cached in the nodes.",
		priority: 7,
	}}
}

func (o *CheckOperation[K]) Apply(tree *avl.Tree[K], _ []K) (string, error) {
	if err := tree.Verify(); err != nil {
		return "", err
	}
	if !tree.IsBalanced() {
		return "", fmt.Errorf("%w: tree is not balanced", avl.ErrInvariant)
	}
	return fmt.Sprintf("ok: balanced, %d keys, height %d", tree.Len(), tree.Height()), nil
}

// PrintOperation draws the tree sideways
type PrintOperation[K cmp.Ordered] struct{ info }

func NewPrintOperation[K cmp.Ordered]() *PrintOperation[K] {
	return &PrintOperation[K]{info{
		name:     "print",
		aliases:  []string{"show", "tree", "p"},
		synopsis: "print",
		summary:  "Draw the tree on its side, right subtree on top, with each node's height and balance factor.",
		priority: 8,
	}}
}

func (o *PrintOperation[K]) Apply(tree *avl.Tree[K], _ []K) (string, error) {
	var b strings.Builder
	tree.Print(&b)
	return strings.TrimRight(b.String(), "\n"), nil
}
