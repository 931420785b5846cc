package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"ide-commands/cmd"
	"ide-commands/cmd/commands"
	"ide-commands/log"
)

type tabKind int

const (
	tabProjectManager tabKind = iota
	tabScene
	tabEvents
)

// editorTab is one open editor. Each tab owns a scoped registry that only
// reaches the central registry while the tab has focus.
type editorTab struct {
	kind   tabKind
	title  string
	scope  *cmd.ScopedCommandRegistry
	scene  *sceneEditor
	events *eventsEditor
}

func (t *editorTab) String() string {
	switch t.kind {
	case tabScene:
		return t.scene.String()
	case tabEvents:
		return t.events.String()
	default:
		return ""
	}
}

var sceneObjects = []string{"Player", "Platform", "Coin", "Enemy"}

var eventTemplates = []string{
	"Key pressed",
	"Repeat for each object",
	"While",
	"Link external events",
}

func (m *home) register(scope *cmd.ScopedCommandRegistry, id cmd.CommandID, handler func() tea.Cmd) {
	scope.Register(id, cmd.NewCommand(m.table, id, handler))
}

func (m *home) newProjectManagerTab() *editorTab {
	tab := &editorTab{kind: tabProjectManager, title: "Project manager"}
	tab.scope = cmd.NewScopedCommandRegistry(tab.title, m.central)

	m.register(tab.scope, commands.OpenProjectProperties, func() tea.Cmd {
		m.setStatus("Properties of %s: %d scenes, %d external events",
			m.project.name, len(m.project.scenes), len(m.project.externalEvents))
		return nil
	})
	m.register(tab.scope, commands.AddNewScene, func() tea.Cmd {
		name := m.project.addScene()
		m.openSceneTab(name)
		return nil
	})
	m.register(tab.scope, commands.RenameProject, func() tea.Cmd {
		m.prompt("Rename project", m.project.name, func(value string) tea.Cmd {
			if value == "" {
				return m.handleError(errEmptyName)
			}
			m.project.name = value
			m.project.dirty = true
			m.setStatus("Project renamed to %s", value)
			return nil
		})
		return nil
	})
	return tab
}

func (m *home) newSceneTab(scene string) *editorTab {
	tab := &editorTab{kind: tabScene, title: scene, scene: newSceneEditor(scene)}
	tab.scope = cmd.NewScopedCommandRegistry("scene "+scene, m.central)
	editor := tab.scene

	panels := map[cmd.CommandID]string{
		commands.ToggleObjectsPanel:    "objects",
		commands.ToggleInstancesPanel:  "instances",
		commands.TogglePropertiesPanel: "properties",
		commands.ToggleLayersPanel:     "layers",
	}
	for _, id := range []cmd.CommandID{
		commands.ToggleObjectsPanel,
		commands.ToggleInstancesPanel,
		commands.TogglePropertiesPanel,
		commands.ToggleLayersPanel,
	} {
		panel := panels[id]
		m.register(tab.scope, id, func() tea.Cmd {
			m.setStatus("%s panel %s", panel, onOff(editor.togglePanel(panel)))
			return nil
		})
	}

	m.register(tab.scope, commands.ToggleWindowMask, func() tea.Cmd {
		editor.windowMask = !editor.windowMask
		return nil
	})
	m.register(tab.scope, commands.ToggleGrid, func() tea.Cmd {
		editor.grid = !editor.grid
		return nil
	})
	m.register(tab.scope, commands.ZoomIn, func() tea.Cmd {
		editor.zoomBy(1.25)
		return nil
	})
	m.register(tab.scope, commands.ZoomOut, func() tea.Cmd {
		editor.zoomBy(0.8)
		return nil
	})
	tab.scope.Register(commands.EditObject, cmd.NewCompoundCommand(m.table, commands.EditObject, func() []cmd.CommandOption {
		options := make([]cmd.CommandOption, 0, len(sceneObjects))
		for _, object := range sceneObjects {
			options = append(options, cmd.CommandOption{
				Text: object,
				Handler: func() tea.Cmd {
					m.setStatus("Editing object %s in %s", object, editor.scene)
					return nil
				},
			})
		}
		return options
	}))
	return tab
}

func (m *home) newEventsTab(scene string) *editorTab {
	tab := &editorTab{kind: tabEvents, title: scene + " (events)", events: newEventsEditor(scene)}
	tab.scope = cmd.NewScopedCommandRegistry("events "+scene, m.central)
	editor := tab.events

	m.register(tab.scope, commands.AddStandardEvent, func() tea.Cmd {
		editor.add(eventRow{text: "New event"})
		m.project.dirty = true
		return nil
	})
	m.register(tab.scope, commands.AddSubevent, func() tea.Cmd {
		depth := 0
		if row := editor.current(); row != nil {
			depth = row.depth + 1
		}
		editor.add(eventRow{text: "New sub-event", depth: depth})
		m.project.dirty = true
		return nil
	})
	m.register(tab.scope, commands.AddCommentEvent, func() tea.Cmd {
		editor.add(eventRow{text: "Comment", comment: true})
		m.project.dirty = true
		return nil
	})
	tab.scope.Register(commands.ChooseAndAddEvent, cmd.NewCompoundCommand(m.table, commands.ChooseAndAddEvent, func() []cmd.CommandOption {
		options := make([]cmd.CommandOption, 0, len(eventTemplates))
		for _, template := range eventTemplates {
			options = append(options, cmd.CommandOption{
				Text: template,
				Handler: func() tea.Cmd {
					editor.add(eventRow{text: template})
					m.project.dirty = true
					return nil
				},
			})
		}
		return options
	}))
	m.register(tab.scope, commands.ToggleEventDisabled, func() tea.Cmd {
		if row := editor.current(); row != nil {
			row.disabled = !row.disabled
			m.project.dirty = true
		}
		return nil
	})
	m.register(tab.scope, commands.ToggleConditionInverted, func() tea.Cmd {
		if row := editor.current(); row != nil && !row.comment {
			row.inverted = !row.inverted
			m.project.dirty = true
		}
		return nil
	})
	m.register(tab.scope, commands.SearchEvents, func() tea.Cmd {
		m.prompt("Search in events", editor.search, func(value string) tea.Cmd {
			editor.search = value
			return nil
		})
		return nil
	})

	// Same ids as the scene editor; only the focused tab's version is live.
	m.register(tab.scope, commands.ZoomIn, func() tea.Cmd {
		editor.fontSize = min(editor.fontSize+1, 32)
		return nil
	})
	m.register(tab.scope, commands.ZoomOut, func() tea.Cmd {
		editor.fontSize = max(editor.fontSize-1, 6)
		return nil
	})
	return tab
}

// openTab adds tab and gives it focus.
func (m *home) openTab(tab *editorTab) {
	m.tabs = append(m.tabs, tab)
	m.focusTab(len(m.tabs) - 1)
}

func (m *home) findTab(kind tabKind, title string) int {
	for i, tab := range m.tabs {
		if tab.kind == kind && (kind == tabProjectManager || tab.title == title) {
			return i
		}
	}
	return -1
}

func (m *home) openSceneTab(scene string) {
	if i := m.findTab(tabScene, scene); i >= 0 {
		m.focusTab(i)
		return
	}
	m.openTab(m.newSceneTab(scene))
}

func (m *home) openEventsTab(scene string) {
	if i := m.findTab(tabEvents, scene+" (events)"); i >= 0 {
		m.focusTab(i)
		return
	}
	m.openTab(m.newEventsTab(scene))
}

func (m *home) openProjectManager() {
	if i := m.findTab(tabProjectManager, ""); i >= 0 {
		m.focusTab(i)
		return
	}
	m.openTab(m.newProjectManagerTab())
}

func (m *home) focusTab(i int) {
	if i < 0 || i >= len(m.tabs) {
		return
	}
	m.activeTab = i
	m.scopes.Focus(m.tabs[i].scope)
	log.InfoLog.Printf("focused tab %q", m.tabs[i].title)
}

func (m *home) cycleTab(delta int) {
	if len(m.tabs) < 2 {
		return
	}
	m.focusTab((m.activeTab + delta + len(m.tabs)) % len(m.tabs))
}

func (m *home) closeTab(i int) {
	if i < 0 || i >= len(m.tabs) {
		return
	}
	closing := m.tabs[i]
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)

	if len(m.tabs) == 0 {
		m.activeTab = 0
		m.scopes.Pop()
		return
	}
	if i < m.activeTab {
		m.activeTab--
	}
	if m.activeTab >= len(m.tabs) {
		m.activeTab = len(m.tabs) - 1
	}
	if m.scopes.Current() == closing.scope {
		m.focusTab(m.activeTab)
	}
}

func (m *home) closeAllTabs() {
	for len(m.tabs) > 0 {
		m.closeTab(len(m.tabs) - 1)
	}
}

func (m *home) currentTab() *editorTab {
	if m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.activeTab]
}
