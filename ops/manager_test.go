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
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
)

type execStep struct {
	line     string
	expected string
}

func runSteps(t *testing.T, s Session, steps []execStep) {
	t.Helper()
	for _, step := range steps {
		got, err := s.Exec(step.line)
		if err != nil {
			t.Fatalf("Exec(%q) returned error: %v", step.line, err)
		}
		if got != step.expected {
			t.Errorf("Exec(%q) = %q; want %q", step.line, got, step.expected)
		}
	}
}

func TestManagerIntOperations(t *testing.T) {
	s, err := NewSession("int")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	runSteps(t, s, []execStep{
		{"insert 10 20 30", "insert 10: added\ninsert 20: added\ninsert 30: added"},
		{"preorder", "[20 10 30]"},
		{"inorder", "[10 20 30]"},
		{"postorder", "[10 30 20]"},
		{"add 20", "insert 20: already present"},
		{"contains 20 25", "contains 20: true\ncontains 25: false"},
		{"len", "3"},
		{"height", "1"},
		{"min", "10"},
		{"max", "30"},
		{"check", "ok: balanced, 3 keys, height 1"},
		{"rm 20 99", "remove 20: removed\nremove 99: not found"},
		{"in", "[10 30]"},
		{"clear", "cleared 2 keys"},
		{"height", "-1"},
	})

	if s.Len() != 0 {
		t.Errorf("Len after clear = %d; want 0", s.Len())
	}
}

func TestManagerSuccessorRemoval(t *testing.T) {
	s, _ := NewSession("int")

	runSteps(t, s, []execStep{
		{"insert 50 30 70 20 40 60 80 10", strings.Join([]string{
			"insert 50: added", "insert 30: added", "insert 70: added", "insert 20: added",
			"insert 40: added", "insert 60: added", "insert 80: added", "insert 10: added",
		}, "\n")},
		{"remove 70", "remove 70: removed"},
		{"inorder", "[10 20 30 40 50 60 80]"},
		{"preorder", "[50 30 20 10 40 80 60]"},
		{"verify", "ok: balanced, 7 keys, height 3"},
	})
}

func TestManagerStringKeys(t *testing.T) {
	s, err := NewSession("string")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	runSteps(t, s, []execStep{
		{`insert pear "new york" apple`, "insert pear: added\ninsert new york: added\ninsert apple: added"},
		{"inorder", "[apple new york pear]"},
		{`has "new york"`, "contains new york: true"},
	})

	if got := s.InOrder(); got != "apple new york pear" {
		t.Errorf("InOrder() = %q", got)
	}
	if s.KeyType() != KeyTypeString {
		t.Errorf("KeyType() = %q", s.KeyType())
	}
}

func TestManagerErrors(t *testing.T) {
	s, _ := NewSession("int")

	tests := []struct {
		line   string
		target error
	}{
		{"frobnicate 1", ErrUnknownOperation},
		{"insert ten", ErrBadKey},
		{"insert", ErrArity},
		{"preorder 1", ErrArity},
		{"min", avl.ErrEmptyTree},
	}

	for _, tc := range tests {
		_, err := s.Exec(tc.line)
		if !errors.Is(err, tc.target) {
			t.Errorf("Exec(%q) error = %v; want %v", tc.line, err, tc.target)
		}
	}

	// a rejected line must not have touched the tree
	if s.Len() != 0 {
		t.Errorf("Len after failed lines = %d; want 0", s.Len())
	}
}

func TestNewSessionKeyTypes(t *testing.T) {
	for _, keyType := range []string{"int", "INT", "", "float", "string"} {
		if _, err := NewSession(keyType); err != nil {
			t.Errorf("NewSession(%q) returned error: %v", keyType, err)
		}
	}
	if _, err := NewSession("complex"); err == nil {
		t.Error("Expected error for unsupported key type, got nil")
	}
}

func TestParseFloatRejectsNaN(t *testing.T) {
	if _, err := ParseFloat("NaN"); !errors.Is(err, ErrBadKey) {
		t.Errorf("ParseFloat(NaN) error = %v; want ErrBadKey", err)
	}
	if v, err := ParseFloat("-2.5"); err != nil || v != -2.5 {
		t.Errorf("ParseFloat(-2.5) = %v, %v", v, err)
	}
}

func TestHelp(t *testing.T) {
	s, _ := NewSession("int")

	usage, err := s.Help("rm")
	if err != nil {
		t.Fatalf("Help(rm): %v", err)
	}
	if !strings.HasPrefix(usage, "# remove") || !strings.Contains(usage, "successor") {
		t.Errorf("Help(rm) = %q", usage)
	}

	overview, err := s.Help("")
	if err != nil {
		t.Fatalf("Help(\"\"): %v", err)
	}
	for _, name := range s.Operations() {
		if !strings.Contains(overview, "**"+name+"**") {
			t.Errorf("overview is missing %q", name)
		}
	}

	if _, err := s.Help("nope"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Help(nope) error = %v", err)
	}
}

func TestOperationsPriorityOrder(t *testing.T) {
	m := NewManager[int](KeyTypeInt, ParseInt)
	names := m.Operations()
	if names[0] != "insert" || names[1] != "remove" || names[len(names)-1] != "clear" {
		t.Errorf("Operations() = %v", names)
	}
}

func TestRender(t *testing.T) {
	s, _ := NewSession("int")
	if got := s.Render(); got != "(empty)\n" {
		t.Errorf("Render() on empty tree = %q", got)
	}

	s.Exec("insert 2 1 3")
	if got := s.Render(); !strings.Contains(got, "|------+ 2 h=1 +0") {
		t.Errorf("Render() = %q", got)
	}
}
