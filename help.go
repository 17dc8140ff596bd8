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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avltree/ops"
)

const usageGuide = `

 **avltree %s**

A playground and verifier for a height-balanced (AVL) binary search tree.
Insert, remove and look up keys, then watch the rotations that keep the tree balanced.

Built with Go %s

# 1. Commands
* **run** - interactive playground (default when no command is given)
* **exec** - run operations given as arguments, or a script with --file
* **stress** - random insert/remove sweep that verifies the tree after every step
* **explain** - describe one operation, or list all of them
* **settings** - show the configuration file, creating it when missing

# 2. Operations
Every operation is one line: a name followed by keys, e.g. *insert 10 20 30*.
String keys containing spaces can be quoted: *insert "new york"*.

# 3. Keys
Keys are integers by default. Set *tree.key_type* in ~/.avltree.yaml or pass
--key-type to use *float* or *string* keys.

# License
Licensed under the Apache License, Version 2.0

`

func getHelpMessage() string {
	message := fmt.Sprintf(usageGuide, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// getExplanation renders the usage of one operation, or the overview of
// all operations when name is empty
func getExplanation(s ops.Session, name string) (string, error) {
	md, err := s.Help(name)
	if err != nil {
		return "", err
	}
	return string(markdown.Render(md, 80, 3)), nil
}
