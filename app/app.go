package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ide-commands/cmd"
	"ide-commands/cmd/commands"
	"ide-commands/cmd/help"
	"ide-commands/cmd/palette"
	"ide-commands/cmd/shortcut"
	cmdstate "ide-commands/cmd/state"
	"ide-commands/config"
	"ide-commands/keys"
	"ide-commands/log"
	"ide-commands/ui"
	"ide-commands/ui/overlay"
)

// DefaultProjectName is the project opened on start.
const DefaultProjectName = "Platformer"

const maxRecentProjects = 5

var errEmptyName = errors.New("name cannot be empty")

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, configDir string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := newHome(ctx, cfg, configDir)
	defer h.close()

	p := tea.NewProgram(h, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// statePalette is the state when the command palette is open.
	statePalette
	// statePrompt is the state when the user is typing into a text prompt.
	statePrompt
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// statePreferences is the state when the shortcut list is displayed.
	statePreferences
	// stateCapture is the state when a new shortcut is being recorded.
	stateCapture
)

type (
	shortcutsChangedMsg struct{}
	hideErrMsg          struct{}
	projectSavedMsg     struct {
		name string
		at   time.Time
	}
	exportFinishedMsg struct{ name string }
	previewLaunchedMsg struct{ mode string }
)

type home struct {
	ctx context.Context

	// -- Configuration --

	appConfig *config.Config
	platform  keys.Platform

	// -- Commands --

	table   *commands.Table
	central *cmd.CommandRegistry
	// scopes decides which editor tab's commands are live
	scopes   *cmdstate.ScopeStack
	listener *shortcut.Listener
	// projectCommands are disabled while no project is open
	projectCommands []*cmd.Command

	// -- Shortcuts --

	store     *config.ShortcutStore
	watcher   *config.Watcher
	defaults  shortcut.Map
	shortcuts shortcut.Map
	help      *help.Generator

	// -- Project --

	project     *project
	lastProject string
	recent      []string
	tabs        []*editorTab
	activeTab   int
	previews    int

	// -- State --

	state         state
	width, height int
	status        string
	err           error

	// -- UI Components --

	paletteOverlay   *overlay.PaletteOverlay
	textInputOverlay *overlay.TextInputOverlay
	captureOverlay   *overlay.ShortcutCaptureOverlay
	list             *ui.List
	helpContent      string
}

func newHome(ctx context.Context, cfg *config.Config, configDir string) *home {
	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		platform:  cfg.PlatformOrDetect(),
		table:     commands.DefaultTable(),
		central:   cmd.NewCommandRegistry(),
		scopes:    cmdstate.NewScopeStack(),
		store:     config.NewShortcutStore(cfg.ShortcutsPath(configDir)),
		defaults:  shortcut.Map(commands.DefaultShortcuts()),
		list:      ui.NewList(),
		state:     stateDefault,
	}

	h.listener = shortcut.NewListener(h.central, h.table, shortcut.Environment{
		IsTyping:     h.isTyping,
		IsDialogOpen: h.isDialogOpen,
		Desktop:      cfg.Desktop,
	})
	h.listener.OpenCompound = h.openCompound

	h.paletteOverlay = overlay.NewPaletteOverlay(palette.New(h.central))
	h.central.OnChange(func() {
		if h.paletteOverlay.IsOpen() {
			h.paletteOverlay.Refresh()
		}
	})

	cmd.RegisterAll(h.central, h.globalCommands())
	h.reloadShortcuts()
	h.openProject(DefaultProjectName)

	if cfg.WatchShortcuts {
		w, err := config.WatchFile(h.store.Path(), config.DefaultWatchDelay)
		if err != nil {
			log.WarningLog.Printf("shortcut changes on disk will not be picked up: %v", err)
		} else {
			h.watcher = w
		}
	}

	return h
}

func (m *home) isTyping() bool {
	return m.state == statePrompt && m.textInputOverlay != nil && m.textInputOverlay.Focused()
}

func (m *home) isDialogOpen() bool {
	return m.state != stateDefault
}

// reloadShortcuts merges the user file over the defaults and re-attaches the
// listener with the result.
func (m *home) reloadShortcuts() {
	user := config.LoadUserShortcuts(m.store)
	m.shortcuts = shortcut.Merge(m.defaults, user, m.table)
	m.listener.Attach(m.shortcuts)
	m.help = help.NewGenerator(m.table, m.shortcuts, m.defaults, m.platform)
	if m.width > 0 {
		m.help.Width = int(float32(m.width) * 0.8)
	}

	for _, issue := range m.help.ValidateShortcuts() {
		log.WarningLog.Printf("shortcuts: %s", issue)
	}
	if m.state == statePreferences || m.state == stateCapture {
		m.list.SetEntries(shortcut.Entries(m.shortcuts, m.defaults, m.table, m.platform))
	}
}

// waitForShortcutChange blocks until the watcher reports a change to the
// shortcut file.
func (m *home) waitForShortcutChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case <-changes:
			return shortcutsChangedMsg{}
		}
	}
}

func (m *home) close() {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.WarningLog.Printf("failed to stop shortcut watcher: %v", err)
		}
		m.watcher = nil
	}
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	m.paletteOverlay.SetSize(int(float32(msg.Width)*0.6), int(float32(msg.Height)*0.6))
	m.list.SetSize(int(float32(msg.Width)*0.8), int(float32(msg.Height)*0.8))
	if m.textInputOverlay != nil {
		m.textInputOverlay.SetSize(int(float32(msg.Width)*0.5), 1)
	}
	if m.help != nil {
		m.help.Width = int(float32(msg.Width) * 0.8)
	}
}

func (m *home) Init() tea.Cmd {
	return m.waitForShortcutChange()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case shortcutsChangedMsg:
		log.InfoLog.Printf("shortcut file changed, reloading")
		m.reloadShortcuts()
		return m, m.waitForShortcutChange()
	case projectSavedMsg:
		if m.project != nil && m.project.name == msg.name {
			m.project.dirty = false
			m.project.savedAt = msg.at
		}
		m.setStatus("Saved %s", msg.name)
		return m, nil
	case exportFinishedMsg:
		m.setStatus("Exported %s", msg.name)
		return m, nil
	case previewLaunchedMsg:
		m.previews++
		m.setStatus("Launched %s preview", msg.mode)
		return m, nil
	case hideErrMsg:
		m.err = nil
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case statePalette:
		cmd := m.paletteOverlay.Update(msg)
		if !m.paletteOverlay.IsOpen() && m.state == statePalette {
			m.state = stateDefault
		}
		return m, cmd
	case statePrompt:
		prompt := m.textInputOverlay
		cmd, closed := prompt.HandleKeyPress(msg)
		if closed && m.textInputOverlay == prompt {
			m.textInputOverlay = nil
			m.state = stateDefault
		}
		return m, cmd
	case stateHelp:
		return m.handleHelpState(msg)
	case statePreferences:
		return m.handlePreferencesState(msg)
	case stateCapture:
		cmd, closed := m.captureOverlay.HandleKeyPress(msg)
		if closed {
			m.captureOverlay = nil
			m.state = statePreferences
		}
		return m, cmd
	}

	// Ctrl+C is reserved for copy and never resolves to a command.
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}

	if cmd, handled := m.dispatchKey(keys.FromTeaKey(msg)); handled {
		return m, cmd
	}

	switch msg.String() {
	case "?":
		return m.showHelpScreen(helpTypeGeneral{})
	case "h":
		if tab := m.currentTab(); tab != nil {
			return m.showHelpScreen(helpTypeTab{tab: tab})
		}
	case "up":
		if tab := m.currentTab(); tab != nil && tab.kind == tabEvents && tab.events.selected > 0 {
			tab.events.selected--
		}
	case "down":
		if tab := m.currentTab(); tab != nil && tab.kind == tabEvents && tab.events.selected < len(tab.events.events)-1 {
			tab.events.selected++
		}
	}
	return m, nil
}

// dispatchKey offers a key event to the shortcut listener.
func (m *home) dispatchKey(ev keys.KeyEvent) (tea.Cmd, bool) {
	return m.listener.HandleKey(ev)
}

func (m *home) openCompound(named cmd.NamedCommand) tea.Cmd {
	m.paletteOverlay.OpenGroup(named)
	m.state = statePalette
	return nil
}

func (m *home) openPalette() {
	m.paletteOverlay.Open()
	m.state = statePalette
}

// prompt shows a one-line text prompt. onSubmit runs on Enter.
func (m *home) prompt(title, initial string, onSubmit func(string) tea.Cmd) {
	m.textInputOverlay = overlay.NewTextInputOverlay(title, initial)
	m.textInputOverlay.OnSubmit = onSubmit
	if m.width > 0 {
		m.textInputOverlay.SetSize(int(float32(m.width)*0.5), 1)
	}
	m.state = statePrompt
}

func (m *home) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	log.InfoLog.Print(m.status)
}

func (m *home) quit() tea.Cmd {
	if m.project != nil && m.project.dirty {
		log.WarningLog.Printf("quitting with unsaved changes in %s", m.project.name)
	}
	m.close()
	return tea.Quit
}

// handleError shows err and returns a tea.Cmd that clears it after three
// seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.err = err
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}
		return hideErrMsg{}
	}
}

func (m *home) openProject(name string) {
	m.project = newProject(name)
	m.recent = append([]string{name}, removeString(m.recent, name)...)
	if len(m.recent) > maxRecentProjects {
		m.recent = m.recent[:maxRecentProjects]
	}
	m.setProjectCommandsEnabled(true)

	m.openProjectManager()
	first := m.project.scenes[0]
	m.openEventsTab(first)
	m.openSceneTab(first)
	m.setStatus("Opened %s", name)
}

func (m *home) closeProject() {
	if m.project == nil {
		return
	}
	name := m.project.name
	m.closeAllTabs()
	m.lastProject = name
	m.project = nil
	m.setProjectCommandsEnabled(false)
	m.setStatus("Closed %s", name)
}

func (m *home) setProjectCommandsEnabled(enabled bool) {
	for _, command := range m.projectCommands {
		command.Enabled = enabled
	}
}

func (m *home) saveProjectCmd() tea.Cmd {
	name := m.project.name
	return func() tea.Msg {
		return projectSavedMsg{name: name, at: time.Now()}
	}
}

func removeString(list []string, s string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		if item != s {
			result = append(result, item)
		}
	}
	return result
}

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#de613e"))
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (m *home) tabBar() string {
	if m.project == nil {
		return emptyStyle.Render("No project open")
	}
	title := m.project.name
	if m.project.dirty {
		title += "*"
	}
	parts := []string{mainTitleStyle.Render(" " + title + " ")}
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeTabStyle.Render(tab.title))
		} else {
			parts = append(parts, tabStyle.Render(tab.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *home) body() string {
	tab := m.currentTab()
	if tab == nil {
		hint := "Open a recent project from the command palette"
		if s := m.shortcuts[commands.OpenCommandPalette]; s != keys.NoShortcut {
			hint += " (" + keys.DisplayString(s, m.platform) + ")"
		}
		return emptyStyle.Render(hint)
	}
	if tab.kind == tabProjectManager {
		var b strings.Builder
		b.WriteString("Scenes:\n")
		for _, scene := range m.project.scenes {
			b.WriteString("  " + scene + "\n")
		}
		b.WriteString("External events:\n")
		for _, events := range m.project.externalEvents {
			b.WriteString("  " + events + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return tab.String()
}

func (m *home) View() string {
	sections := []string{m.tabBar(), "", m.body(), ""}
	if m.appConfig.ShowStatusLine {
		sections = append(sections, m.help.GenerateStatusLine(m.central.Enumerate(), 6))
	}
	if m.err != nil {
		sections = append(sections, errStyle.Render(m.err.Error()))
	} else {
		sections = append(sections, statusStyle.Render(m.status))
	}
	mainView := lipgloss.JoinVertical(lipgloss.Left, sections...)

	var content string
	switch m.state {
	case statePalette:
		content = m.paletteOverlay.View()
	case statePrompt:
		if m.textInputOverlay == nil {
			log.ErrorLog.Printf("text input overlay is nil")
			return mainView
		}
		content = m.textInputOverlay.Render()
	case stateHelp:
		content = helpBoxStyle.Render(m.helpContent)
	case statePreferences:
		content = m.list.String()
	case stateCapture:
		if m.captureOverlay == nil {
			log.ErrorLog.Printf("shortcut capture overlay is nil")
			return mainView
		}
		content = m.captureOverlay.View()
	default:
		return mainView
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
