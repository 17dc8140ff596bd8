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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/ops"
)

// Focusable panes, cycled with tab
const (
	focusInput = iota
	focusHistory
	focusTree
	focusHelp
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input    textinput.Model
	history  list.Model
	treeView viewport.Model
	helpView viewport.Model

	session   ops.Session
	helpCache *cache.Cache
	config    *Config

	focusIndex  int
	lastHelpFor string
	status      string
	failed      bool

	writeClipboard func(string) error

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// copyResultMsg reports the outcome of a clipboard write
type copyResultMsg struct {
	what string
	err  error
}

// historyItem is one executed line in the history list
type historyItem struct {
	line   string
	result string
	failed bool
}

func (i historyItem) FilterValue() string { return i.line }
func (i historyItem) Title() string       { return i.line }
func (i historyItem) Description() string {
	first, _, _ := strings.Cut(i.result, "\n")
	if i.failed {
		return "✗ " + first
	}
	return "✓ " + first
}

// InitialModel creates the playground model over session
func InitialModel(session ops.Session, hc *cache.Cache, config *Config) Model {
	if config == nil {
		config = defaults()
	}

	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	history := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	history.SetShowTitle(false)
	history.SetShowHelp(false)
	history.SetFilteringEnabled(false)

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	style := glamour.WithAutoStyle()
	if GetTerminalMode() == TerminalModeLight {
		style = glamour.WithStandardStyle("light")
	}
	glamourRenderer, _ := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(config.Display.WordWrap),
	)

	m := Model{
		input:           ti,
		history:         history,
		treeView:        treeView,
		helpView:        helpView,
		session:         session,
		helpCache:       hc,
		config:          config,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		writeClipboard:  clipboard.WriteAll,
	}
	m.refreshTree()
	m.updateHelp("")
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case copyResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
			m.failed = true
		} else {
			m.status = fmt.Sprintf("📋 Copied %s to clipboard", msg.what)
			m.failed = false
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+y":
		return m, m.copyFocused()
	case "enter":
		switch m.focusIndex {
		case focusInput:
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case focusHistory:
			// recall a past line into the input for editing
			if item, ok := m.history.SelectedItem().(historyItem); ok {
				m.input.SetValue(item.line)
				m.input.CursorEnd()
				m.setFocus(focusInput)
			}
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
		m.followInput()
	case focusHistory:
		m.history, cmd = m.history.Update(msg)
	case focusTree:
		m.treeView, cmd = m.treeView.Update(msg)
	case focusHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// execute runs one line against the session and records it in the history
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	result, err := m.session.Exec(line)
	item := historyItem{line: line, result: result}
	if err != nil {
		item.result = err.Error()
		item.failed = true
	}
	m.history.InsertItem(0, item)
	m.history.Select(0)

	m.status = item.result
	m.failed = item.failed
	m.refreshTree()
}

// followInput shows the usage of whatever operation is being typed
func (m *Model) followInput() {
	name, _, _ := strings.Cut(strings.TrimSpace(m.input.Value()), " ")
	if name != m.lastHelpFor {
		m.updateHelp(name)
	}
}

// updateHelp updates the help viewport with the usage of name
func (m *Model) updateHelp(name string) {
	m.lastHelpFor = name
	var render func(string) (string, error)
	if m.glamourRenderer != nil {
		render = m.glamourRenderer.Render
	}
	m.helpView.SetContent(GetOrfillCache(m.helpCache, m.session, name, m.config.Display.WordWrap, render))
	m.helpView.GotoTop()
}

func (m *Model) refreshTree() {
	content := m.session.Render()
	if m.session.Len() > 0 {
		content = fmt.Sprintf("%s\nin-order: %s\n", content, m.session.InOrder())
	}
	m.treeView.SetContent(content)
}

// copyFocused copies the selected history line, the raw usage page or
// the in-order keys, depending on focus
func (m Model) copyFocused() tea.Cmd {
	var text, what string
	switch m.focusIndex {
	case focusHistory:
		if item, ok := m.history.SelectedItem().(historyItem); ok {
			text, what = item.line, "history line"
		}
	case focusHelp:
		usage, err := m.session.Help(m.lastHelpFor)
		if err != nil {
			return func() tea.Msg { return copyResultMsg{what: "usage", err: err} }
		}
		text, what = usage, "usage"
	default:
		text, what = m.session.InOrder(), "in-order keys"
	}
	if text == "" {
		return nil
	}

	write := m.writeClipboard
	return func() tea.Msg {
		return copyResultMsg{what: what, err: write(text)}
	}
}

// View renders the program's UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth, rightWidth, inputHeight, listHeight := m.dimensions()
	m.input.Width = leftWidth - 4

	inputBox := m.pane(focusInput, " 🌳 Operation ", m.input.View(), leftWidth, inputHeight)
	historyBox := m.pane(focusHistory, fmt.Sprintf(" 📋 History (%d keys) ", m.session.Len()), m.history.View(), leftWidth, listHeight)
	treeBox := m.pane(focusTree, " 🔭 Tree ", m.treeView.View(), rightWidth, (inputHeight+listHeight)/2)
	helpBox := m.pane(focusHelp, " 📖 Usage ", m.helpView.View(), rightWidth, inputHeight+listHeight-(inputHeight+listHeight)/2)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, historyBox),
		lipgloss.JoinVertical(lipgloss.Left, treeBox, helpBox),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) pane(index int, title, content string, width, height int) string {
	style := m.styles.BorderBlurred
	if m.focusIndex == index {
		style = m.styles.BorderFocused
		title += "(Active) "
	}
	return style.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(title),
			content,
		))
}

func (m Model) dimensions() (leftWidth, rightWidth, inputHeight, listHeight int) {
	inputHeight = 3
	listHeight = m.height - inputHeight - 9
	leftWidth = (m.width * 4 / 10) - 1
	rightWidth = m.width - leftWidth - 4
	return
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth, rightWidth, inputHeight, listHeight := m.dimensions()
	total := inputHeight + listHeight

	m.input.Width = leftWidth - 4
	m.history.SetSize(leftWidth-2, listHeight-2)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = total/2 - 1
	m.helpView.Width = rightWidth - 2
	m.helpView.Height = total - total/2 - 1
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	first, _, _ := strings.Cut(m.status, "\n")
	style := m.styles.SuccessMessage
	if m.failed {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(first))
}

// renderHelp renders the key binding footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "ctrl+y", "esc"}
	descs := []string{"run / recall", "switch focus", "copy", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runPlayground starts the interactive tree playground
func runPlayground(session ops.Session, hc *cache.Cache, config *Config) error {
	model := InitialModel(session, hc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
