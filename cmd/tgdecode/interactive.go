package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/botwire/botwire"
	"github.com/botwire/botwire/codec"
	"github.com/botwire/botwire/telegram"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputFile
	stateShowResult
)

type interactiveModel struct {
	err      error
	result   string
	types    []string
	fileIn   textinput.Model
	selected int
	offset   int
	height   int
	state    modelState
}

type decodedMsg struct {
	err    error
	result string
}

func newInteractiveModel(initialType string) *interactiveModel {
	types := telegram.Registry().Names()

	selected := 0
	for i, name := range types {
		if name == initialType {
			selected = i
			break
		}
	}

	fileIn := textinput.New()
	fileIn.Placeholder = "path/to/document.json"
	fileIn.Prompt = "file: "
	fileIn.Width = 60

	return &interactiveModel{
		types:    types,
		selected: selected,
		fileIn:   fileIn,
		height:   20,
		state:    stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputFile {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.types)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.state = stateInputFile
				m.fileIn.Focus()
				return m, textinput.Blink

			case stateInputFile:
				m.fileIn.Blur()
				return m, m.decodeFile

			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputFile:
				m.state = stateSelectType
				m.fileIn.Blur()
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
		}

	case decodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputFile {
		var cmd tea.Cmd
		m.fileIn, cmd = m.fileIn.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) decodeFile() tea.Msg {
	data, err := os.ReadFile(strings.TrimSpace(m.fileIn.Value()))
	if err != nil {
		return decodedMsg{err: err}
	}

	doc, err := botwire.ParseDocumentBytes(data)
	if err != nil {
		return decodedMsg{err: err}
	}

	v, err := codec.NewDecoder(telegram.Registry()).Decode(doc, m.types[m.selected])
	if err != nil {
		return decodedMsg{err: err}
	}

	return decodedMsg{result: renderValue(v, true)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tgdecode"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type to decode against:\n\n")
		visible := m.height - 8
		if visible < 5 {
			visible = 5
		}
		if m.selected < m.offset {
			m.offset = m.selected
		}
		if m.selected >= m.offset+visible {
			m.offset = m.selected - visible + 1
		}
		end := m.offset + visible
		if end > len(m.types) {
			end = len(m.types)
		}
		for i := m.offset; i < end; i++ {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.types[i]))
			} else {
				b.WriteString("  " + m.types[i])
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputFile:
		b.WriteString(fmt.Sprintf("Decoding as %s\n\n", typeNameStyle.Render(m.types[m.selected])))
		b.WriteString(m.fileIn.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", typeNameStyle.Render(m.types[m.selected])))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		} else {
			b.WriteString(m.result)
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(initialType string) error {
	p := tea.NewProgram(newInteractiveModel(initialType), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
