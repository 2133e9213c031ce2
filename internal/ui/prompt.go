// Package ui provides the interactive prompts and the display hosts the
// projector renders into.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 16
)

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = errors.New("selection cancelled")

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("214")).
	MarginBottom(1)

type choice struct {
	index int
	label string
}

func (c choice) Title() string       { return c.label }
func (c choice) Description() string { return "" }
func (c choice) FilterValue() string { return c.label }

type selectModel struct {
	list     list.Model
	prompt   string
	chosen   int
	canceled bool
}

func newSelectModel(prompt string, items []string) *selectModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = choice{index: i, label: item}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(listItems, delegate, defaultListWidth, min(defaultListHeight, len(items)+4))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(len(items) > defaultListHeight)
	l.DisableQuitKeybindings()

	return &selectModel{list: l, prompt: prompt, chosen: -1}
}

func (m *selectModel) Init() tea.Cmd { return nil }

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(choice); ok {
				m.chosen = selected.index
				return m, tea.Quit
			}
		case "ctrl+c", "esc", "q":
			m.canceled = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(max(msg.Width-2, 20))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *selectModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, promptStyle.Render(m.prompt), m.list.View())
}

// Select presents items in an interactive list and returns the chosen index.
func Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	final, err := runProgram(newSelectModel(prompt, items))
	if err != nil {
		return -1, fmt.Errorf("running selector: %w", err)
	}

	m, ok := final.(*selectModel)
	if !ok {
		return -1, fmt.Errorf("unexpected program result")
	}
	if m.canceled || m.chosen < 0 {
		return -1, ErrCancelled
	}
	if m.chosen >= len(items) {
		return -1, fmt.Errorf("selection index %d out of range", m.chosen)
	}
	return m.chosen, nil
}

// Confirm asks the user a yes/no question.
func Confirm(prompt string) (bool, error) {
	idx, err := Select(prompt, []string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

type inputModel struct {
	input    textinput.Model
	prompt   string
	done     bool
	canceled bool
}

func newInputModel(prompt string) *inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search movies and TV shows..."
	ti.CharLimit = 200
	ti.Width = defaultListWidth - 4
	ti.Focus()
	return &inputModel{input: ti, prompt: prompt}
}

func (m *inputModel) Init() tea.Cmd { return textinput.Blink }

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, promptStyle.Render(m.prompt), m.input.View())
}

// Input prompts the user for a line of free text.
func Input(prompt string) (string, error) {
	final, err := runProgram(newInputModel(prompt))
	if err != nil {
		return "", fmt.Errorf("running input: %w", err)
	}

	m, ok := final.(*inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected program result")
	}
	if m.canceled {
		return "", ErrCancelled
	}

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return "", fmt.Errorf("no input provided")
	}
	return query, nil
}
