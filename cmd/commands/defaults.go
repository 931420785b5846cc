package commands

import (
	"ide-commands/keys"
)

// defaultShortcuts ships with the IDE. User files override these entry by
// entry; commands absent here have no default key.
var defaultShortcuts = map[CommandID]keys.Shortcut{
	QuitApp:            "CmdOrCtrl+KeyQ",
	OpenCommandPalette: "CmdOrCtrl+KeyP",
	OpenPreferences:    "",

	OpenProject:          "CmdOrCtrl+KeyO",
	SaveProject:          "CmdOrCtrl+KeyS",
	SaveProjectAs:        "CmdOrCtrl+Shift+KeyS",
	CloseProject:         "CmdOrCtrl+Shift+KeyW",
	OpenProjectManager:   "CmdOrCtrl+Alt+KeyE",
	OpenHomePage:         "",
	ExportGame:           "CmdOrCtrl+Shift+KeyE",
	LaunchNewPreview:     "CmdOrCtrl+F5",
	LaunchDebugPreview:   "Shift+F5",
	LaunchNetworkPreview: "Alt+F5",
	HotReloadPreview:     "F5",
	NextEditorTab:        "CmdOrCtrl+Tab",
	PreviousEditorTab:    "CmdOrCtrl+Shift+Tab",
	CloseEditorTab:       "CmdOrCtrl+KeyW",

	OpenProjectProperties: "",
	AddNewScene:           "",
	RenameProject:         "F2",

	ToggleObjectsPanel:    "",
	ToggleInstancesPanel:  "",
	TogglePropertiesPanel: "",
	ToggleLayersPanel:     "",
	ToggleWindowMask:      "",
	ToggleGrid:            "CmdOrCtrl+Shift+KeyG",
	ZoomIn:                "CmdOrCtrl+Equal",
	ZoomOut:               "CmdOrCtrl+Minus",

	AddStandardEvent:        "Shift+KeyA",
	AddSubevent:             "Shift+KeyD",
	AddCommentEvent:         "",
	ChooseAndAddEvent:       "Shift+KeyW",
	ToggleEventDisabled:     "CmdOrCtrl+KeyE",
	ToggleConditionInverted: "CmdOrCtrl+KeyJ",
	SearchEvents:            "CmdOrCtrl+KeyF",
}

// DefaultShortcuts returns a fresh copy of the shipped shortcut map with an
// entry for every bindable command of the default table.
func DefaultShortcuts() map[CommandID]keys.Shortcut {
	result := make(map[CommandID]keys.Shortcut, len(defaultShortcuts))
	for _, meta := range defaultTable.All() {
		if meta.NoShortcut {
			continue
		}
		result[meta.ID] = defaultShortcuts[meta.ID]
	}
	return result
}
