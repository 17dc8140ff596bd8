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
	"slices"
	"strings"

	"github.com/cybrota/avltree/avl"
)

// Manager owns a tree and dispatches operation lines to it
type Manager[K cmp.Ordered] struct {
	tree       *avl.Tree[K]
	parse      KeyParser[K]
	keyType    string
	operations []Operation[K]
}

// NewManager creates a manager over an empty tree with every built-in
// operation registered
func NewManager[K cmp.Ordered](keyType string, parse KeyParser[K]) *Manager[K] {
	manager := &Manager[K]{
		tree:    avl.New[K](),
		parse:   parse,
		keyType: keyType,
	}

	manager.RegisterOperation(NewInsertOperation[K]())
	manager.RegisterOperation(NewRemoveOperation[K]())
	manager.RegisterOperation(NewContainsOperation[K]())
	manager.RegisterOperation(NewInOrderOperation[K]())
	manager.RegisterOperation(NewPreOrderOperation[K]())
	manager.RegisterOperation(NewPostOrderOperation[K]())
	manager.RegisterOperation(NewCheckOperation[K]())
	manager.RegisterOperation(NewPrintOperation[K]())
	manager.RegisterOperation(NewMinOperation[K]())
	manager.RegisterOperation(NewMaxOperation[K]())
	manager.RegisterOperation(NewLenOperation[K]())
	manager.RegisterOperation(NewHeightOperation[K]())
	manager.RegisterOperation(NewClearOperation[K]())

	return manager
}

// RegisterOperation registers a new operation, keeping them ordered by
// priority
func (m *Manager[K]) RegisterOperation(op Operation[K]) {
	m.operations = append(m.operations, op)
	slices.SortStableFunc(m.operations, func(a, b Operation[K]) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
}

// Tree returns the managed tree
func (m *Manager[K]) Tree() *avl.Tree[K] {
	return m.tree
}

// Lookup finds the highest priority operation supporting name
func (m *Manager[K]) Lookup(name string) (Operation[K], error) {
	name = strings.ToLower(name)
	for _, op := range m.operations {
		if op.SupportsCommand(name) {
			return op, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Exec parses and runs one operation line, returning its printable result
func (m *Manager[K]) Exec(line string) (string, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return "", err
	}

	op, err := m.Lookup(cmd.BaseCmd)
	if err != nil {
		return "", err
	}
	if err := checkArity(op, cmd); err != nil {
		return "", err
	}

	keys := make([]K, 0, len(cmd.SubCmds))
	for _, arg := range cmd.SubCmds {
		key, err := m.parse(arg)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op.Name(), err)
		}
		keys = append(keys, key)
	}

	return op.Apply(m.tree, keys)
}

// Help returns the markdown usage of one operation, or an overview of all
// of them when name is empty
func (m *Manager[K]) Help(name string) (string, error) {
	if strings.TrimSpace(name) != "" {
		op, err := m.Lookup(strings.TrimSpace(name))
		if err != nil {
			return "", err
		}
		return op.Usage(), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Operations (%s keys)\n\n", m.keyType)
	for _, op := range m.operations {
		fmt.Fprintf(&b, "* **%s** - %s\n", op.Name(), op.Summary())
	}
	return b.String(), nil
}

// Operations lists the registered operation names in priority order
func (m *Manager[K]) Operations() []string {
	names := make([]string, 0, len(m.operations))
	for _, op := range m.operations {
		names = append(names, op.Name())
	}
	return names
}

// Render draws the current tree
func (m *Manager[K]) Render() string {
	var b strings.Builder
	m.tree.Print(&b)
	return b.String()
}

// InOrder returns the ascending keys separated by spaces
func (m *Manager[K]) InOrder() string {
	keys := m.tree.InOrder()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprint(k))
	}
	return strings.Join(parts, " ")
}

// Len returns the number of keys in the tree
func (m *Manager[K]) Len() int {
	return m.tree.Len()
}

// KeyType names the kind of keys the manager parses
func (m *Manager[K]) KeyType() string {
	return m.keyType
}
