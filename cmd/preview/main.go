// preview is a terminal previewer: type Greek or greeklish and every scheme's
// output updates as you type. Enter prints the highlighted output and exits.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	greekutils "github.com/mkarajohn/greek-text-utils"
	"github.com/mkarajohn/greek-text-utils/internal/transliteration"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(22)

	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Width(22)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

type model struct {
	textInput textinput.Model
	schemes   []greekutils.SchemeInfo
	outputs   []string
	selected  int
	chosen    string
	done      bool
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "Γράψε κάτι..."
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	m := model{
		textInput: ti,
		schemes:   greekutils.Schemes(),
	}
	m.outputs = make([]string, len(m.schemes))
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.selected = (m.selected + 1) % len(m.schemes)
			return m, nil
		case tea.KeyShiftTab:
			m.selected = (m.selected + len(m.schemes) - 1) % len(m.schemes)
			return m, nil
		case tea.KeyEnter:
			m.chosen = m.outputs[m.selected]
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.convert()
	return m, cmd
}

// convert refreshes every scheme's output from the current input.
func (m *model) convert() {
	text := m.textInput.Value()
	for i, s := range m.schemes {
		out, err := greekutils.Convert(s.Name, text, greekutils.ConvertOptions{CollapseWhitespace: true})
		if err != nil {
			out = err.Error()
		}
		m.outputs[i] = out
	}
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Greek text utils"))
	s.WriteString("\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n")
	s.WriteString(subtleStyle.Render("script: " + string(transliteration.DetectScript(m.textInput.Value()))))
	s.WriteString("\n\n")

	var rows strings.Builder
	for i, scheme := range m.schemes {
		name, out := nameStyle, outputStyle
		if i == m.selected {
			name, out = activeNameStyle, activeOutputStyle
		}
		rows.WriteString(name.Render(string(scheme.Name)))
		rows.WriteString(out.Render(m.outputs[i]))
		if i < len(m.schemes)-1 {
			rows.WriteString("\n")
		}
	}
	s.WriteString(boxStyle.Render(rows.String()))
	s.WriteString("\n\n")
	s.WriteString(subtleStyle.Render("tab/shift+tab: select • enter: print and exit • esc: quit"))
	s.WriteString("\n")

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(model); ok && m.done {
		fmt.Println(m.chosen)
	}
}
