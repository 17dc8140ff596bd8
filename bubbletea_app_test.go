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
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/avltree/ops"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	session, err := ops.NewSession("int")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	m := InitialModel(session, NewOptimizedHelpCache(), nil)
	return press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// press feeds one message through Update and returns the new model
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T; want Model", next)
	}
	return model
}

func TestPlaygroundExecute(t *testing.T) {
	m := newTestModel(t)

	m.execute("insert 10 20 30")
	if m.session.Len() != 3 {
		t.Errorf("Len = %d; want 3", m.session.Len())
	}
	if m.failed || m.status != "insert 10: added\ninsert 20: added\ninsert 30: added" {
		t.Errorf("status = %q (failed %t)", m.status, m.failed)
	}

	m.execute("rotate 1")
	if !m.failed || !strings.Contains(m.status, "unknown operation") {
		t.Errorf("status = %q (failed %t); want an unknown operation error", m.status, m.failed)
	}

	items := m.history.Items()
	if len(items) != 2 {
		t.Fatalf("history holds %d items; want 2", len(items))
	}
	if newest := items[0].(historyItem); newest.line != "rotate 1" || !newest.failed {
		t.Errorf("newest history item = %+v", newest)
	}

	m.execute("   ")
	if len(m.history.Items()) != 2 {
		t.Error("blank lines must not be recorded")
	}
}

func TestPlaygroundEnterRunsInput(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("insert 5")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.Len() != 1 {
		t.Errorf("Len = %d; want 1", m.session.Len())
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q; want it cleared after running", m.input.Value())
	}
}

func TestPlaygroundFocusCycle(t *testing.T) {
	m := newTestModel(t)

	expected := []int{focusHistory, focusTree, focusHelp, focusInput}
	for _, want := range expected {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focusIndex != want {
			t.Fatalf("focusIndex = %d; want %d", m.focusIndex, want)
		}
		if m.input.Focused() != (want == focusInput) {
			t.Errorf("input focused = %t with focusIndex %d", m.input.Focused(), want)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusIndex != focusHelp {
		t.Errorf("shift+tab from input: focusIndex = %d; want %d", m.focusIndex, focusHelp)
	}
}

func TestPlaygroundRecallFromHistory(t *testing.T) {
	m := newTestModel(t)
	m.execute("insert 1 2")
	m.execute("remove 2")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.focusIndex != focusInput {
		t.Errorf("focusIndex = %d; want input after recall", m.focusIndex)
	}
	if m.input.Value() != "remove 2" {
		t.Errorf("input = %q; want the newest line", m.input.Value())
	}
	if m.session.Len() != 1 {
		t.Errorf("recalling must not run the line, Len = %d", m.session.Len())
	}
}

func TestPlaygroundFollowsTypedOperation(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("rm 4")
	m.followInput()

	if m.lastHelpFor != "rm" {
		t.Errorf("lastHelpFor = %q; want rm", m.lastHelpFor)
	}
}

func TestPlaygroundCopy(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	m.execute("insert 3 1 2")

	// tree focus copies the in-order keys
	m.setFocus(focusTree)
	msg := m.copyFocused()()
	if copied != "1 2 3" {
		t.Errorf("copied %q; want in-order keys", copied)
	}
	m = press(t, m, msg)
	if m.failed || !strings.Contains(m.status, "in-order keys") {
		t.Errorf("status = %q (failed %t)", m.status, m.failed)
	}

	// usage focus copies the raw markdown, not the rendered viewport
	m.input.SetValue("insert")
	m.followInput()
	m.setFocus(focusHelp)
	m.copyFocused()()
	if !strings.HasPrefix(copied, "# insert\n") {
		t.Errorf("copied %q; want the usage markdown", copied)
	}

	m.setFocus(focusHistory)
	m.copyFocused()()
	if copied != "insert 3 1 2" {
		t.Errorf("copied %q; want the selected history line", copied)
	}
}

func TestPlaygroundCopyFailure(t *testing.T) {
	m := newTestModel(t)
	m.writeClipboard = func(string) error {
		return errors.New("no clipboard utilities available")
	}
	m.execute("insert 7")

	cmd := m.copyFocused()
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	m = press(t, m, cmd())

	if !m.failed || !strings.Contains(m.status, "copy failed: no clipboard utilities available") {
		t.Errorf("status = %q (failed %t); want the clipboard error", m.status, m.failed)
	}
}

func TestPlaygroundCopyEmptyTree(t *testing.T) {
	m := newTestModel(t)
	m.writeClipboard = func(string) error {
		t.Error("nothing should be copied from an empty tree")
		return nil
	}
	if cmd := m.copyFocused(); cmd != nil {
		t.Error("expected no command for an empty tree")
	}
}

func TestPlaygroundView(t *testing.T) {
	m := newTestModel(t)
	m.execute("insert 10 20 30")

	view := m.View()
	for _, want := range []string{"Operation", "History (3 keys)", "Tree", "Usage", "20 h=1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	small := press(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})
	if !strings.Contains(small.View(), "Terminal too small") {
		t.Error("expected the resize hint for a tiny terminal")
	}
}
