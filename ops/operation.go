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

// Package ops drives an avl.Tree through textual operations such as
// "insert 10 20" or "preorder", the way a script or the playground
// issues them.
package ops

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cybrota/avltree/avl"
)

var (
	// ErrUnknownOperation is returned when no operation supports a command.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrBadKey is returned when an argument cannot be parsed as a key.
	ErrBadKey = errors.New("bad key")
	// ErrArity is returned when an operation gets the wrong number of keys.
	ErrArity = errors.New("wrong number of arguments")
)

// Operation defines the interface for a tree operation
type Operation[K cmp.Ordered] interface {
	Name() string
	SupportsCommand(baseCmd string) bool
	Priority() int // Lower number = higher priority
	Arity() (minArgs, maxArgs int)
	Summary() string
	Usage() string // markdown
	Apply(tree *avl.Tree[K], args []K) (string, error)
}

// unlimited marks an operation that takes any number of keys
const unlimited = -1

// info carries the descriptive half of an Operation. Concrete operations
// embed it and only implement Apply.
type info struct {
	name     string
	aliases  []string
	synopsis string
	summary  string
	detail   string
	priority int
	minArgs  int
	maxArgs  int
}

func (i info) Name() string { return i.name }

func (i info) SupportsCommand(baseCmd string) bool {
	return baseCmd == i.name || slices.Contains(i.aliases, baseCmd)
}

func (i info) Priority() int { return i.priority }

func (i info) Arity() (int, int) { return i.minArgs, i.maxArgs }

func (i info) Summary() string { return i.summary }

func (i info) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", i.name)
	fmt.Fprintf(&b, "`%s`\n\n", i.synopsis)
	fmt.Fprintf(&b, "%s\n", i.summary)
	if i.detail != "" {
		fmt.Fprintf(&b, "\n%s\n", i.detail)
	}
	if len(i.aliases) > 0 {
		fmt.Fprintf(&b, "\n**Aliases:** %s\n", strings.Join(i.aliases, ", "))
	}
	return b.String()
}

// checkArity validates the argument count of cmd against op
func checkArity[K cmp.Ordered](op Operation[K], cmd *Command) error {
	minArgs, maxArgs := op.Arity()
	if !cmd.HasArgs(minArgs) || (maxArgs != unlimited && cmd.HasArgs(maxArgs+1)) {
		want := fmt.Sprintf("%d", minArgs)
		switch {
		case maxArgs == unlimited:
			want = fmt.Sprintf("at least %d", minArgs)
		case maxArgs != minArgs:
			want = fmt.Sprintf("%d to %d", minArgs, maxArgs)
		}
		return fmt.Errorf("%s: %w: want %s, got %d", op.Name(), ErrArity, want, len(cmd.SubCmds))
	}
	return nil
}
