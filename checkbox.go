package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var errAborted = errors.New("aborted by user")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
)

// checkboxModel is a multi-select list: arrows move, space toggles,
// a toggles all, enter confirms
type checkboxModel struct {
	message  string
	choices  []string
	cursor   int
	selected []bool
	done     bool
	aborted  bool
}

func newCheckboxModel(message string, choices []string) checkboxModel {
	return checkboxModel{
		message:  message,
		choices:  choices,
		selected: make([]bool, len(choices)),
	}
}

func (m checkboxModel) Init() tea.Cmd {
	return nil
}

func (m checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case " ", "space", "x":
		if len(m.choices) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "a":
		all := true
		for _, s := range m.selected {
			all = all && s
		}
		for i := range m.selected {
			m.selected[i] = !all
		}
	}

	return m, nil
}

func (m checkboxModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("? " + m.message))

	if m.done {
		b.WriteString(" " + checkedStyle.Render(strings.Join(m.Selected(), ", ")) + "\n")
		return b.String()
	}
	b.WriteString(" " + hintStyle.Render("(space to toggle, a to toggle all, enter to confirm)") + "\n")

	for i, choice := range m.choices {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("❯ ")
		}
		box := "◯ "
		line := choice
		if m.selected[i] {
			box = checkedStyle.Render("◉ ")
			line = checkedStyle.Render(choice)
		}
		b.WriteString(pointer + box + line + "\n")
	}

	return b.String()
}

// Selected returns the checked choices in list order
func (m checkboxModel) Selected() []string {
	result := make([]string, 0, len(m.choices))
	for i, choice := range m.choices {
		if m.selected[i] {
			result = append(result, choice)
		}
	}
	return result
}

// TerminalPrompter answers checkbox questions with a full-screen list and
// everything else line by line
type TerminalPrompter struct {
	*LinePrompter
	in  io.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter bound to a terminal
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		LinePrompter: NewLinePrompter(in, out),
		in:           in,
		out:          out,
	}
}

// Checkbox runs the interactive list until the user confirms or aborts.
// Input that is not a terminal is answered line by line.
func (p *TerminalPrompter) Checkbox(message string, choices []string) ([]string, error) {
	if len(choices) == 0 {
		fmt.Fprintf(p.out, "? %s %s\n", message, hintStyle.Render("(no choices available)"))
		return []string{}, nil
	}
	if !isTerminal(p.in) {
		return p.LinePrompter.Checkbox(message, choices)
	}

	program := tea.NewProgram(newCheckboxModel(message, choices),
		tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running tag selection: %w", err)
	}

	m := final.(checkboxModel)
	if m.aborted {
		return nil, errAborted
	}
	return m.Selected(), nil
}

// isTerminal reports whether r is a terminal device
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
