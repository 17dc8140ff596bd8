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
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Command is a parsed operation line: the lowered operation name and its
// raw key arguments
type Command struct {
	BaseCmd string
	SubCmds []string
}

// NewCommand builds a Command from already split words. The name is
// matched case-insensitively so it is lowered here.
func NewCommand(words []string) *Command {
	if len(words) == 0 {
		return &Command{}
	}
	return &Command{
		BaseCmd: strings.ToLower(words[0]),
		SubCmds: words[1:],
	}
}

// ParseCommand splits a full operation line into a Command. Quoting
// follows shell rules so string keys may contain spaces.
func ParseCommand(line string) (*Command, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no command provided")
	}
	return NewCommand(args), nil
}

// HasArgs reports whether the command carries at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.SubCmds) >= n
}
