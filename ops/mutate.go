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

// InsertOperation adds keys, one result line per key
type InsertOperation[K cmp.Ordered] struct{ info }

func NewInsertOperation[K cmp.Ordered]() *InsertOperation[K] {
	return &InsertOperation[K]{info{
		name:     "insert",
		aliases:  []string{"add", "i"},
		synopsis: "insert <key>...",
		summary:  "Insert one or more keys, rebalancing after each one.",
		detail:   "A key that is already present is left alone and reported as such; the tree never stores duplicates.",
		priority: 1,
		minArgs:  1,
		maxArgs:  unlimited,
	}}
}

func (o *InsertOperation[K]) Apply(tree *avl.Tree[K], args []K) (string, error) {
	lines := make([]string, 0, len(args))
	for _, key := range args {
		if tree.Insert(key) {
			lines = append(lines, fmt.Sprintf("insert %v: added", key))
		} else {
			lines = append(lines, fmt.Sprintf("insert %v: already present", key))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// RemoveOperation deletes keys, one result line per key
type RemoveOperation[K cmp.Ordered] struct{ info }

func NewRemoveOperation[K cmp.Ordered]() *RemoveOperation[K] {
	return &RemoveOperation[K]{info{
		name:     "remove",
		aliases:  []string{"rm", "delete", "del", "r"},
		synopsis: "remove <key>...",
		summary:  "Remove one or more keys, rebalancing after each one.",
		detail:   "A node with two children takes over the value of its in-order successor, which is then removed from the right subtree.",
		priority: 2,
		minArgs:  1,
		maxArgs:  unlimited,
	}}
}

func (o *RemoveOperation[K]) Apply(tree *avl.Tree[K], args []K) (string, error) {
	lines := make([]string, 0, len(args))
	for _, key := range args {
		if tree.Remove(key) {
			lines = append(lines, fmt.Sprintf("remove %v: removed", key))
		} else {
			lines = append(lines, fmt.Sprintf("remove %v: not found", key))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// ClearOperation drops every key
type ClearOperation[K cmp.Ordered] struct{ info }

func NewClearOperation[K cmp.Ordered]() *ClearOperation[K] {
	return &ClearOperation[K]{info{
		name:     "clear",
		aliases:  []string{"reset"},
		synopsis: "clear",
		summary:  "Remove every key from the tree.",
		priority: 20,
	}}
}

func (o *ClearOperation[K]) Apply(tree *avl.Tree[K], _ []K) (string, error) {
	n := tree.Len()
	tree.Clear()
	return fmt.Sprintf("cleared %d keys", n), nil
}
