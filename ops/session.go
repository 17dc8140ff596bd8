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
	"math"
	"strconv"
	"strings"
)

// Key types understood by NewSession
const (
	KeyTypeInt    = "int"
	KeyTypeFloat  = "float"
	KeyTypeString = "string"
)

// KeyParser turns one command argument into a key
type KeyParser[K any] func(arg string) (K, error)

// Session is a key-type independent handle on a Manager
type Session interface {
	Exec(line string) (string, error)
	Help(name string) (string, error)
	Operations() []string
	Render() string
	InOrder() string
	Len() int
	KeyType() string
}

// NewSession creates a session over an empty tree whose keys are of the
// named type
func NewSession(keyType string) (Session, error) {
	switch strings.ToLower(strings.TrimSpace(keyType)) {
	case KeyTypeInt, "":
		return NewManager[int](KeyTypeInt, ParseInt), nil
	case KeyTypeFloat:
		return NewManager[float64](KeyTypeFloat, ParseFloat), nil
	case KeyTypeString:
		return NewManager[string](KeyTypeString, ParseString), nil
	default:
		return nil, fmt.Errorf("unsupported key type %q (want %s, %s or %s)", keyType, KeyTypeInt, KeyTypeFloat, KeyTypeString)
	}
}

func ParseInt(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadKey, arg)
	}
	return v, nil
}

// ParseFloat rejects NaN, which has no place in a total order
func ParseFloat(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadKey, arg)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: NaN cannot be ordered", ErrBadKey)
	}
	return v, nil
}

func ParseString(arg string) (string, error) {
	return arg, nil
}
