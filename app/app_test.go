package app

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ide-commands/cmd/commands"
	"ide-commands/cmd/palette"
	"ide-commands/config"
	"ide-commands/keys"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestHome(t *testing.T, mutate ...func(*config.Config)) *home {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.WatchShortcuts = false
	cfg.Platform = "linux"
	for _, fn := range mutate {
		fn(cfg)
	}
	h := newHome(context.Background(), cfg, t.TempDir())
	t.Cleanup(h.close)
	return h
}

func press(t *testing.T, h *home, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := h.Update(msg)
	return cmd
}

func typeText(t *testing.T, h *home, text string) {
	t.Helper()
	press(t, h, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestStartupOpensDefaultProject(t *testing.T) {
	h := newTestHome(t)

	require.NotNil(t, h.project)
	assert.Equal(t, DefaultProjectName, h.project.name)
	require.Len(t, h.tabs, 3)
	assert.Equal(t, tabScene, h.currentTab().kind)
	assert.Equal(t, 1, h.scopes.Depth())
	assert.Same(t, h.currentTab().scope, h.scopes.Current())

	view := h.View()
	assert.Contains(t, view, DefaultProjectName)
	assert.Contains(t, view, "Project manager")
	assert.Contains(t, view, "Level 1 (events)")
}

func TestShortcutSavesProjectWithDeferredWork(t *testing.T) {
	h := newTestHome(t)
	h.project.dirty = true

	cmd := press(t, h, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, projectSavedMsg{}, msg)

	h.Update(msg)
	assert.False(t, h.project.dirty)
	assert.Contains(t, h.status, "Saved")
}

func TestDesktopBuildLeavesHostCommandsToTheHost(t *testing.T) {
	h := newTestHome(t, func(cfg *config.Config) { cfg.Desktop = true })

	_, handled := h.dispatchKey(keys.KeyEvent{Code: "KeyS", Ctrl: true})
	assert.False(t, handled)

	_, handled = h.dispatchKey(keys.KeyEvent{Code: "KeyP", Ctrl: true})
	assert.True(t, handled)
	assert.Equal(t, statePalette, h.state)
}

func TestScopedCommandsFollowTabFocus(t *testing.T) {
	h := newTestHome(t)
	scene := h.currentTab().scene
	zoomIn := keys.KeyEvent{Code: keys.CodeEqual, Ctrl: true}

	_, handled := h.dispatchKey(zoomIn)
	require.True(t, handled)
	assert.Equal(t, 125, scene.zoom)

	// Previous tab is the events sheet of the same scene.
	_, handled = h.dispatchKey(keys.KeyEvent{Code: keys.CodeTab, Ctrl: true, Shift: true})
	require.True(t, handled)
	require.Equal(t, tabEvents, h.currentTab().kind)
	events := h.currentTab().events

	h.dispatchKey(zoomIn)
	assert.Equal(t, 13, events.fontSize)
	assert.Equal(t, 125, scene.zoom)

	assert.Nil(t, h.central.Lookup(commands.ToggleGrid))
	assert.NotNil(t, h.central.Lookup(commands.AddStandardEvent))
}

func TestTypingSuppressesShortcuts(t *testing.T) {
	h := newTestHome(t)

	press(t, h, tea.KeyMsg{Type: tea.KeyCtrlE, Alt: true})
	require.Equal(t, tabProjectManager, h.currentTab().kind)

	press(t, h, tea.KeyMsg{Type: tea.KeyF2})
	require.Equal(t, statePrompt, h.state)
	assert.True(t, h.isTyping())

	h.project.dirty = false
	_, handled := h.listener.HandleKey(keys.KeyEvent{Code: "KeyS", Ctrl: true})
	assert.False(t, handled)

	typeText(t, h, " 2")
	press(t, h, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, "Platformer 2", h.project.name)
	assert.True(t, h.project.dirty)
}

func TestPaletteRunsCommands(t *testing.T) {
	h := newTestHome(t)
	scene := h.currentTab().scene

	press(t, h, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Equal(t, statePalette, h.state)

	typeText(t, h, "grid")
	items := h.paletteOverlay.Items()
	require.NotEmpty(t, items)
	assert.Equal(t, commands.ToggleGrid, items[0].ID)

	press(t, h, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateDefault, h.state)
	assert.True(t, scene.grid)
}

func TestCompoundShortcutOpensOptions(t *testing.T) {
	h := newTestHome(t)
	h.cycleTab(-1)
	require.Equal(t, tabEvents, h.currentTab().kind)
	events := h.currentTab().events
	before := len(events.events)

	typeText(t, h, "W")
	require.Equal(t, statePalette, h.state)
	require.Len(t, h.paletteOverlay.Items(), len(eventTemplates))
	assert.Equal(t, palette.KindOption, h.paletteOverlay.Items()[0].Kind)

	press(t, h, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateDefault, h.state)
	require.Len(t, events.events, before+1)
	assert.Equal(t, eventTemplates[0], events.current().text)
}

func TestCloseProjectDisablesProjectCommands(t *testing.T) {
	h := newTestHome(t)

	_, handled := h.dispatchKey(keys.KeyEvent{Code: "KeyW", Ctrl: true, Shift: true})
	require.True(t, handled)
	assert.Nil(t, h.project)
	assert.Empty(t, h.tabs)
	assert.Equal(t, 0, h.scopes.Depth())
	assert.Nil(t, h.central.Lookup(commands.ZoomIn))
	assert.False(t, h.central.Lookup(commands.SaveProject).Enabled)

	cmd := press(t, h, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Contains(t, h.View(), "No project open")

	press(t, h, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, h.project)
	assert.Equal(t, DefaultProjectName, h.project.name)
	assert.True(t, h.central.Lookup(commands.SaveProject).Enabled)
	assert.Len(t, h.tabs, 3)
}

func TestShortcutFileChangesAreApplied(t *testing.T) {
	h := newTestHome(t)
	scene := h.currentTab().scene

	other := config.NewShortcutStore(h.store.Path())
	require.NoError(t, other.Set(commands.ToggleGrid, "CmdOrCtrl+KeyG"))

	_, handled := h.dispatchKey(keys.KeyEvent{Code: "KeyG", Ctrl: true})
	assert.False(t, handled)

	h.Update(shortcutsChangedMsg{})
	_, handled = h.dispatchKey(keys.KeyEvent{Code: "KeyG", Ctrl: true})
	assert.True(t, handled)
	assert.True(t, scene.grid)
}

func TestPreferencesCaptureFlow(t *testing.T) {
	h := newTestHome(t)
	h.showPreferences()
	require.Equal(t, statePreferences, h.state)

	typeText(t, h, "grid")
	entry, ok := h.list.GetSelected()
	require.True(t, ok)
	require.Equal(t, commands.ToggleGrid, entry.ID)

	press(t, h, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateCapture, h.state)
	press(t, h, tea.KeyMsg{Type: tea.KeyCtrlG, Alt: true})
	press(t, h, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, statePreferences, h.state)
	assert.Equal(t, keys.Shortcut("CmdOrCtrl+Alt+KeyG"), h.shortcuts[commands.ToggleGrid])

	user, err := h.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "CmdOrCtrl+Alt+KeyG", user[commands.ToggleGrid])

	press(t, h, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, commands.DefaultShortcuts()[commands.ToggleGrid], h.shortcuts[commands.ToggleGrid])

	press(t, h, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, statePreferences, h.state)
	press(t, h, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDefault, h.state)
}

func TestHelpScreens(t *testing.T) {
	h := newTestHome(t)

	typeText(t, h, "?")
	require.Equal(t, stateHelp, h.state)
	assert.Contains(t, h.View(), "Keyboard Shortcuts")

	press(t, h, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDefault, h.state)

	typeText(t, h, "h")
	require.Equal(t, stateHelp, h.state)
	assert.Contains(t, h.helpContent, "Zoom in")
	assert.Contains(t, h.helpContent, "Ctrl + =")
}

func TestCtrlCQuits(t *testing.T) {
	h := newTestHome(t)
	cmd := press(t, h, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
