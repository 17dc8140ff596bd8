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
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
)

type ContainsOperation[K cmp.Ordered] struct{ info }

func NewContainsOperation[K cmp.Ordered]() *ContainsOperation[K] {
	return &ContainsOperation[K]{info{
		name:     "contains",
		aliases:  []string{"has", "find", "c"},
		synopsis: "contains <key>...",
		summary:  "Report whether each key is stored in the tree.",
		priority: 3,
		minArgs:  1,
		maxArgs:  unlimited,
	}}
}

func (o *ContainsOperation[K]) Apply(tree *avl.Tree[K], args []K) (string, error) {
	lines := make([]string, 0, len(args))
	for _, key := range args {
		lines = append(lines, fmt.Sprintf("contains %v: %t", key, tree.Contains(key)))
	}
	return strings.Join(lines, "\n"), nil
}

// ExtremeOperation reports the lowest or the highest key
type ExtremeOperation[K cmp.Ordered] struct {
	info
	highest bool
}

func NewMinOperation[K cmp.Ordered]() *ExtremeOperation[K] {
	return &ExtremeOperation[K]{info: info{
		name:     "min",
		aliases:  []string{"first"},
		synopsis: "min",
		summary:  "Show the lowest key.",
		priority: 10,
	}}
}

func NewMaxOperation[K cmp.Ordered]() *ExtremeOperation[K] {
	return &ExtremeOperation[K]{
		info: info{
			name:     "max",
			aliases:  []string{"last"},
			synopsis: "max",
			summary:  "Show the highest key.",
			priority: 11,
		},
		highest: true,
	}
}

func (o *ExtremeOperation[K]) Apply(tree *avl.Tree[K], _ []K) (string, error) {
	var (
		key K
		err error
	)
	if o.highest {
		key, err = tree.Max()
	} else {
		key, err = tree.Min()
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", o.name, err)
	}
	return fmt.Sprint(key), nil
}

// SizeOperation reports either the key count or the tree height
type SizeOperation[K cmp.Ordered] struct {
	info
	measure func(tree *avl.Tree[K]) int
}

func NewLenOperation[K cmp.Ordered]() *SizeOperation[K] {
	return &SizeOperation[K]{
		info: info{
			name:     "len",
			aliases:  []string{"size", "count"},
			synopsis: "len",
			summary:  "Show how many keys the tree holds.",
			priority: 12,
		},
		measure: (*avl.Tree[K]).Len,
	}
}

func NewHeightOperation[K cmp.Ordered]() *SizeOperation[K] {
	return &SizeOperation[K]{
		info: info{
			name:     "height",
			aliases:  []string{"depth"},
			synopsis: "height",
			summary:  "Show the height of the root. A single node has height 0, an empty tree -1.",
			priority: 13,
		},
		measure: (*avl.Tree[K]).Height,
	}
}

func (o *SizeOperation[K]) Apply(tree *avl.Tree[K], _ []K) (string, error) {
	return strconv.Itoa(o.measure(tree)), nil
}
