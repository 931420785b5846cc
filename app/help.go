package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ide-commands/cmd"
	"ide-commands/keys"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent(m *home) string
}

// helpTypeGeneral lists every shortcut, grouped by area.
type helpTypeGeneral struct{}

// helpTypeTab lists what the focused editor tab adds on top of the global
// commands.
type helpTypeTab struct {
	tab *editorTab
}

func (h helpTypeGeneral) toContent(m *home) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.help.GenerateReference(false),
		descStyle.Render("Press any key to close"),
	)
}

func (h helpTypeTab) toContent(m *home) string {
	lines := []string{
		titleStyle.Render(h.tab.title),
		"",
	}

	commands := h.tab.scope.Enumerate()
	keyWidth := 0
	for _, named := range commands {
		keyWidth = max(keyWidth, len(m.displayShortcut(named.ID)))
	}
	for _, named := range commands {
		keyText := m.displayShortcut(named.ID)
		padding := strings.Repeat(" ", keyWidth-len(keyText)+2)
		lines = append(lines, keyStyle.Render(keyText)+padding+descStyle.Render("- "+named.DisplayText))
	}

	lines = append(lines, "", descStyle.Render(fmt.Sprintf("%d commands • press any key to close", len(commands))))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *home) displayShortcut(id cmd.CommandID) string {
	s := m.shortcuts[id]
	if s == keys.NoShortcut {
		return "-"
	}
	return keys.DisplayString(s, m.platform)
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	mainTitleStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	helpBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// showHelpScreen displays the help screen overlay
func (m *home) showHelpScreen(helpType helpText) (tea.Model, tea.Cmd) {
	m.helpContent = helpType.toContent(m)
	m.state = stateHelp
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press will close the help overlay
	m.helpContent = ""
	m.state = stateDefault
	return m, nil
}
