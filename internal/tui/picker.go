// Package tui holds the interactive terminal pieces: a fuzzy image picker
// for when no source image is given on the command line, and a swatch
// renderer for previewing a generated theme inline.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/finder"
)

const maxVisible = 10

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true)
	selectedStyle    = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7c3aed")).
				Bold(true)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// PickerModel is a bubbletea model that lets the user fuzzy-pick one image
// path from a list.
type PickerModel struct {
	input    textinput.Model
	paths    []string
	filtered []string
	cursor   int
	choice   string
	aborted  bool
}

// NewPicker creates a picker over the given image paths.
func NewPicker(paths []string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	return PickerModel{
		input:    ti,
		paths:    paths,
		filtered: paths,
	}
}

// Choice returns the selected path, or empty if the picker was aborted.
func (m PickerModel) Choice() string {
	if m.aborted {
		return ""
	}
	return m.choice
}

// Aborted reports whether the user cancelled without choosing.
func (m PickerModel) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.choice = m.filtered[m.cursor]
			}
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = finder.Filter(m.paths, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	s := pickerTitleStyle.Render("Pick a source image") + "\n"
	s += m.input.View() + "\n\n"

	if len(m.filtered) == 0 {
		return s + dimStyle.Render("no matches") + "\n"
	}

	visible := m.filtered
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}
	for i, p := range visible {
		if i == m.cursor {
			s += selectedStyle.Render("> "+p) + "\n"
		} else {
			s += "  " + p + "\n"
		}
	}
	if n := len(m.filtered) - len(visible); n > 0 {
		s += dimStyle.Render("  …and more") + "\n"
	}
	s += dimStyle.Render("\nenter select · esc cancel") + "\n"
	return s
}

// PickImage runs the picker interactively and returns the chosen path.
func PickImage(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", core.ErrNotFound("image", "no supported images under this directory")
	}
	final, err := tea.NewProgram(NewPicker(paths)).Run()
	if err != nil {
		return "", core.ErrInternal("PICKER_FAILED", "running image picker").WithCause(err)
	}
	m, ok := final.(PickerModel)
	if !ok || m.Aborted() || m.Choice() == "" {
		return "", core.ErrState("PICKER_ABORTED", "no image selected")
	}
	return m.Choice(), nil
}
