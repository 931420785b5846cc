package commands

import (
	"fmt"

	"ide-commands/cmd/interfaces"
)

type CommandID = interfaces.CommandID

// Command identifiers known to the IDE.
const (
	QuitApp            CommandID = "QUIT_APP"
	OpenCommandPalette CommandID = "OPEN_COMMAND_PALETTE"
	OpenPreferences    CommandID = "OPEN_PREFERENCES"

	OpenProject          CommandID = "OPEN_PROJECT"
	OpenRecentProject    CommandID = "OPEN_RECENT_PROJECT"
	SaveProject          CommandID = "SAVE_PROJECT"
	SaveProjectAs        CommandID = "SAVE_PROJECT_AS"
	CloseProject         CommandID = "CLOSE_PROJECT"
	OpenProjectManager   CommandID = "OPEN_PROJECT_MANAGER"
	OpenHomePage         CommandID = "OPEN_HOME_PAGE"
	ExportGame           CommandID = "EXPORT_GAME"
	LaunchNewPreview     CommandID = "LAUNCH_NEW_PREVIEW"
	LaunchDebugPreview   CommandID = "LAUNCH_DEBUG_PREVIEW"
	LaunchNetworkPreview CommandID = "LAUNCH_NETWORK_PREVIEW"
	HotReloadPreview     CommandID = "HOT_RELOAD_PREVIEW"
	NextEditorTab        CommandID = "NEXT_EDITOR_TAB"
	PreviousEditorTab    CommandID = "PREVIOUS_EDITOR_TAB"
	CloseEditorTab       CommandID = "CLOSE_EDITOR_TAB"

	OpenProjectProperties CommandID = "OPEN_PROJECT_PROPERTIES"
	AddNewScene           CommandID = "ADD_NEW_SCENE"
	OpenLayout            CommandID = "OPEN_LAYOUT"
	OpenExternalEvents    CommandID = "OPEN_EXTERNAL_EVENTS"
	RenameProject         CommandID = "RENAME_PROJECT"

	ToggleObjectsPanel    CommandID = "TOGGLE_OBJECTS_PANEL"
	ToggleInstancesPanel  CommandID = "TOGGLE_INSTANCES_PANEL"
	TogglePropertiesPanel CommandID = "TOGGLE_PROPERTIES_PANEL"
	ToggleLayersPanel     CommandID = "TOGGLE_LAYERS_PANEL"
	ToggleWindowMask      CommandID = "TOGGLE_WINDOW_MASK"
	ToggleGrid            CommandID = "TOGGLE_GRID"
	ZoomIn                CommandID = "ZOOM_IN"
	ZoomOut               CommandID = "ZOOM_OUT"
	EditObject            CommandID = "EDIT_OBJECT"

	AddStandardEvent        CommandID = "ADD_STANDARD_EVENT"
	AddSubevent             CommandID = "ADD_SUBEVENT"
	AddCommentEvent         CommandID = "ADD_COMMENT_EVENT"
	ChooseAndAddEvent       CommandID = "CHOOSE_AND_ADD_EVENT"
	ToggleEventDisabled     CommandID = "TOGGLE_EVENT_DISABLED"
	ToggleConditionInverted CommandID = "TOGGLE_CONDITION_INVERTED"
	SearchEvents            CommandID = "SEARCH_EVENTS"
)

var catalogue = []interfaces.CommandMetadata{
	{ID: QuitApp, Area: interfaces.AreaGeneral, DisplayText: "Close the IDE", HandledByHost: true},
	{ID: OpenCommandPalette, Area: interfaces.AreaGeneral, DisplayText: "Open command palette"},
	{ID: OpenPreferences, Area: interfaces.AreaGeneral, DisplayText: "Open preferences"},

	{ID: OpenProject, Area: interfaces.AreaIDE, DisplayText: "Open a project", HandledByHost: true},
	{ID: OpenRecentProject, Area: interfaces.AreaIDE, DisplayText: "Open a recent project...", NoShortcut: true},
	{ID: SaveProject, Area: interfaces.AreaIDE, DisplayText: "Save project", HandledByHost: true},
	{ID: SaveProjectAs, Area: interfaces.AreaIDE, DisplayText: "Save project as...", HandledByHost: true},
	{ID: CloseProject, Area: interfaces.AreaIDE, DisplayText: "Close project", HandledByHost: true},
	{ID: OpenProjectManager, Area: interfaces.AreaIDE, DisplayText: "Open project manager"},
	{ID: OpenHomePage, Area: interfaces.AreaIDE, DisplayText: "Show home"},
	{ID: ExportGame, Area: interfaces.AreaIDE, DisplayText: "Export game", HandledByHost: true},
	{ID: LaunchNewPreview, Area: interfaces.AreaIDE, DisplayText: "Launch new preview"},
	{ID: LaunchDebugPreview, Area: interfaces.AreaIDE, DisplayText: "Launch preview with debugger and profiler"},
	{ID: LaunchNetworkPreview, Area: interfaces.AreaIDE, DisplayText: "Launch network preview over WiFi/LAN"},
	{ID: HotReloadPreview, Area: interfaces.AreaIDE, DisplayText: "Apply changes to the running preview"},
	{ID: NextEditorTab, Area: interfaces.AreaIDE, DisplayText: "Next editor tab"},
	{ID: PreviousEditorTab, Area: interfaces.AreaIDE, DisplayText: "Previous editor tab"},
	{ID: CloseEditorTab, Area: interfaces.AreaIDE, DisplayText: "Close current editor tab"},

	{ID: OpenProjectProperties, Area: interfaces.AreaProject, DisplayText: "Open project properties"},
	{ID: AddNewScene, Area: interfaces.AreaProject, DisplayText: "Add a new scene"},
	{ID: OpenLayout, Area: interfaces.AreaProject, DisplayText: "Open scene...", NoShortcut: true},
	{ID: OpenExternalEvents, Area: interfaces.AreaProject, DisplayText: "Open external events...", NoShortcut: true},
	{ID: RenameProject, Area: interfaces.AreaProject, DisplayText: "Rename project"},

	{ID: ToggleObjectsPanel, Area: interfaces.AreaScene, DisplayText: "Open the objects list"},
	{ID: ToggleInstancesPanel, Area: interfaces.AreaScene, DisplayText: "Open the instances list"},
	{ID: TogglePropertiesPanel, Area: interfaces.AreaScene, DisplayText: "Open the properties panel"},
	{ID: ToggleLayersPanel, Area: interfaces.AreaScene, DisplayText: "Open the layers editor"},
	{ID: ToggleWindowMask, Area: interfaces.AreaScene, DisplayText: "Toggle window mask"},
	{ID: ToggleGrid, Area: interfaces.AreaScene, DisplayText: "Toggle grid"},
	{ID: ZoomIn, Area: interfaces.AreaScene, DisplayText: "Zoom in"},
	{ID: ZoomOut, Area: interfaces.AreaScene, DisplayText: "Zoom out"},
	{ID: EditObject, Area: interfaces.AreaScene, DisplayText: "Edit object...", NoShortcut: true},

	{ID: AddStandardEvent, Area: interfaces.AreaEvents, DisplayText: "Add a new empty event"},
	{ID: AddSubevent, Area: interfaces.AreaEvents, DisplayText: "Add a sub-event to the selected event"},
	{ID: AddCommentEvent, Area: interfaces.AreaEvents, DisplayText: "Add a comment"},
	{ID: ChooseAndAddEvent, Area: interfaces.AreaEvents, DisplayText: "Choose and add an event..."},
	{ID: ToggleEventDisabled, Area: interfaces.AreaEvents, DisplayText: "Toggle disabled event"},
	{ID: ToggleConditionInverted, Area: interfaces.AreaEvents, DisplayText: "Invert condition"},
	{ID: SearchEvents, Area: interfaces.AreaEvents, DisplayText: "Search in events"},
}

// Table is an immutable, ordered set of command metadata.
type Table struct {
	entries []interfaces.CommandMetadata
	byID    map[CommandID]int
}

// NewTable builds a table. Empty or repeated ids are programming errors.
func NewTable(entries ...interfaces.CommandMetadata) *Table {
	t := &Table{
		entries: make([]interfaces.CommandMetadata, 0, len(entries)),
		byID:    make(map[CommandID]int, len(entries)),
	}
	for _, entry := range entries {
		if entry.ID == "" {
			panic("command ID cannot be empty")
		}
		if _, exists := t.byID[entry.ID]; exists {
			panic(fmt.Sprintf("command %s listed twice", entry.ID))
		}
		t.byID[entry.ID] = len(t.entries)
		t.entries = append(t.entries, entry)
	}
	return t
}

var defaultTable = NewTable(catalogue...)

// DefaultTable returns the IDE command table.
func DefaultTable() *Table {
	return defaultTable
}

// Metadata returns the metadata for id.
func (t *Table) Metadata(id CommandID) (interfaces.CommandMetadata, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return interfaces.CommandMetadata{}, false
	}
	return t.entries[idx], true
}

// All returns every entry in declaration order.
func (t *Table) All() []interfaces.CommandMetadata {
	result := make([]interfaces.CommandMetadata, len(t.entries))
	copy(result, t.entries)
	return result
}

// InArea returns the entries of one area in declaration order.
func (t *Table) InArea(area interfaces.Area) []interfaces.CommandMetadata {
	var result []interfaces.CommandMetadata
	for _, entry := range t.entries {
		if entry.Area == area {
			result = append(result, entry)
		}
	}
	return result
}

// Has reports whether id is known.
func (t *Table) Has(id CommandID) bool {
	_, ok := t.byID[id]
	return ok
}
