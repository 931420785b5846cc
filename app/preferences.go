package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ide-commands/cmd"
	"ide-commands/cmd/shortcut"
	"ide-commands/keys"
	"ide-commands/ui/overlay"
)

// showPreferences opens the shortcut list.
func (m *home) showPreferences() {
	m.list.ClearSearch()
	m.list.SetEntries(shortcut.Entries(m.shortcuts, m.defaults, m.table, m.platform))
	m.state = statePreferences
}

// handlePreferencesState handles key events on the shortcut list. Typing
// narrows the list; Enter records a new shortcut for the selected command.
func (m *home) handlePreferencesState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, query := m.list.GetSearchState()

	switch msg.Type {
	case tea.KeyEsc:
		if query != "" {
			m.list.ClearSearch()
			return m, nil
		}
		m.state = stateDefault
		return m, nil
	case tea.KeyUp:
		m.list.Up()
	case tea.KeyDown:
		m.list.Down()
	case tea.KeyEnter:
		entry, ok := m.list.GetSelected()
		if !ok {
			return m, nil
		}
		m.captureOverlay = overlay.NewShortcutCaptureOverlay(entry.ID, m.table, m.shortcuts, m.platform)
		m.captureOverlay.OnSubmit = m.saveShortcut
		m.state = stateCapture
	case tea.KeyCtrlR:
		entry, ok := m.list.GetSelected()
		if !ok {
			return m, nil
		}
		return m, m.resetShortcut(entry.ID)
	case tea.KeyBackspace:
		if query != "" {
			runes := []rune(query)
			m.list.Search(string(runes[:len(runes)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.list.Search(query + string(msg.Runes))
	}
	return m, nil
}

// saveShortcut stores a captured shortcut and applies it right away.
func (m *home) saveShortcut(id cmd.CommandID, s keys.Shortcut) tea.Cmd {
	if err := m.store.Set(id, string(s)); err != nil {
		return m.handleError(err)
	}
	m.reloadShortcuts()

	if others := shortcut.ConflictsWith(m.shortcuts, id, s); len(others) > 0 {
		names := make([]string, 0, len(others))
		for _, other := range others {
			names = append(names, string(other))
		}
		m.setStatus("%s is also bound to %s", keys.DisplayString(s, m.platform), strings.Join(names, ", "))
		return nil
	}
	m.setStatus("Shortcut of %s set to %s", id, m.displayShortcut(id))
	return nil
}

func (m *home) resetShortcut(id cmd.CommandID) tea.Cmd {
	if err := m.store.Reset(id); err != nil {
		return m.handleError(fmt.Errorf("failed to reset shortcut of %s: %w", id, err))
	}
	m.reloadShortcuts()
	m.setStatus("Shortcut of %s reset to %s", id, m.displayShortcut(id))
	return nil
}
