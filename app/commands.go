package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ide-commands/cmd"
	"ide-commands/cmd/commands"
)

// exportDuration stands in for the time a real export build takes.
const exportDuration = 2 * time.Second

// globalCommands are registered straight into the central registry: they do
// not depend on which editor tab has focus.
func (m *home) globalCommands() []cmd.NamedCommand {
	named := func(id cmd.CommandID, command *cmd.Command) cmd.NamedCommand {
		return cmd.NamedCommand{ID: id, Command: command}
	}
	simple := func(id cmd.CommandID, handler func() tea.Cmd) cmd.NamedCommand {
		return named(id, cmd.NewCommand(m.table, id, handler))
	}
	// needsProject marks commands that are disabled while no project is open.
	needsProject := func(nc cmd.NamedCommand) cmd.NamedCommand {
		m.projectCommands = append(m.projectCommands, nc.Command)
		return nc
	}

	return []cmd.NamedCommand{
		simple(commands.QuitApp, func() tea.Cmd {
			return m.quit()
		}),
		simple(commands.OpenCommandPalette, func() tea.Cmd {
			m.openPalette()
			return nil
		}),
		simple(commands.OpenPreferences, func() tea.Cmd {
			m.showPreferences()
			return nil
		}),

		simple(commands.OpenProject, func() tea.Cmd {
			if m.project != nil {
				m.setStatus("%s is already open", m.project.name)
				return nil
			}
			name := m.lastProject
			if name == "" {
				name = DefaultProjectName
			}
			m.openProject(name)
			return nil
		}),
		named(commands.OpenRecentProject, cmd.NewCompoundCommand(m.table, commands.OpenRecentProject, func() []cmd.CommandOption {
			options := make([]cmd.CommandOption, 0, len(m.recent))
			for _, name := range m.recent {
				options = append(options, cmd.CommandOption{
					Text: name,
					Handler: func() tea.Cmd {
						m.closeProject()
						m.openProject(name)
						return nil
					},
				})
			}
			return options
		})),
		needsProject(simple(commands.SaveProject, func() tea.Cmd {
			return m.saveProjectCmd()
		})),
		needsProject(simple(commands.SaveProjectAs, func() tea.Cmd {
			m.prompt("Save project as", m.project.name, func(value string) tea.Cmd {
				if value == "" {
					return m.handleError(errEmptyName)
				}
				m.project.name = value
				return m.saveProjectCmd()
			})
			return nil
		})),
		needsProject(simple(commands.CloseProject, func() tea.Cmd {
			m.closeProject()
			return nil
		})),
		needsProject(simple(commands.OpenProjectManager, func() tea.Cmd {
			m.openProjectManager()
			return nil
		})),
		simple(commands.OpenHomePage, func() tea.Cmd {
			m.showHelpScreen(helpTypeGeneral{})
			return nil
		}),
		needsProject(simple(commands.ExportGame, func() tea.Cmd {
			name := m.project.name
			m.setStatus("Exporting %s...", name)
			return tea.Tick(exportDuration, func(time.Time) tea.Msg {
				return exportFinishedMsg{name: name}
			})
		})),
		needsProject(simple(commands.LaunchNewPreview, func() tea.Cmd {
			return launchPreview("new")
		})),
		needsProject(simple(commands.LaunchDebugPreview, func() tea.Cmd {
			return launchPreview("debug")
		})),
		needsProject(simple(commands.LaunchNetworkPreview, func() tea.Cmd {
			return launchPreview("network")
		})),
		needsProject(simple(commands.HotReloadPreview, func() tea.Cmd {
			if m.previews == 0 {
				return launchPreview("new")
			}
			m.setStatus("Reloaded %d running preview(s)", m.previews)
			return nil
		})),
		needsProject(simple(commands.NextEditorTab, func() tea.Cmd {
			m.cycleTab(1)
			return nil
		})),
		needsProject(simple(commands.PreviousEditorTab, func() tea.Cmd {
			m.cycleTab(-1)
			return nil
		})),
		needsProject(simple(commands.CloseEditorTab, func() tea.Cmd {
			m.closeTab(m.activeTab)
			return nil
		})),
		needsProject(named(commands.OpenLayout, cmd.NewCompoundCommand(m.table, commands.OpenLayout, func() []cmd.CommandOption {
			options := make([]cmd.CommandOption, 0, len(m.project.scenes))
			for _, scene := range m.project.scenes {
				options = append(options, cmd.CommandOption{
					Text: scene,
					Handler: func() tea.Cmd {
						m.openSceneTab(scene)
						return nil
					},
				})
			}
			return options
		}))),
		needsProject(named(commands.OpenExternalEvents, cmd.NewCompoundCommand(m.table, commands.OpenExternalEvents, func() []cmd.CommandOption {
			options := make([]cmd.CommandOption, 0, len(m.project.externalEvents))
			for _, events := range m.project.externalEvents {
				options = append(options, cmd.CommandOption{
					Text: events,
					Handler: func() tea.Cmd {
						m.openEventsTab(events)
						return nil
					},
				})
			}
			return options
		}))),
	}
}

func launchPreview(mode string) tea.Cmd {
	return func() tea.Msg {
		return previewLaunchedMsg{mode: mode}
	}
}
