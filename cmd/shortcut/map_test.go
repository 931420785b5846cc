package shortcut

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ide-commands/cmd/commands"
	"ide-commands/keys"
)

func TestMergeOverridesEntryByEntry(t *testing.T) {
	user := map[CommandID]string{
		commands.SaveProject:        "CmdOrCtrl+Alt+KeyS",
		commands.ZoomIn:             "",
		commands.OpenLayout:         "CmdOrCtrl+KeyL",
		"NOT_A_COMMAND":             "CmdOrCtrl+KeyK",
		commands.ToggleGrid:         "Shift+CmdOrCtrl+KeyG",
		commands.SearchEvents:       "CmdOrCtrl+KeyV",
		commands.OpenProjectManager: "CmdOrCtrl+Shift+KeyM",
	}

	merged := Merge(defaults(), user, commands.DefaultTable())

	assert.Equal(t, keys.Shortcut("CmdOrCtrl+Alt+KeyS"), merged[commands.SaveProject])
	assert.Equal(t, keys.NoShortcut, merged[commands.ZoomIn], "empty clears the default")
	assert.Equal(t, keys.Shortcut("CmdOrCtrl+Shift+KeyM"), merged[commands.OpenProjectManager])

	assert.NotContains(t, merged, commands.OpenLayout, "palette-only commands stay unbound")
	assert.NotContains(t, merged, CommandID("NOT_A_COMMAND"))
	assert.Equal(t, keys.Shortcut("CmdOrCtrl+Shift+KeyG"), merged[commands.ToggleGrid], "bad order keeps default")
	assert.Equal(t, keys.Shortcut("CmdOrCtrl+KeyF"), merged[commands.SearchEvents], "reserved keeps default")

	assert.Equal(t, keys.Shortcut("CmdOrCtrl+KeyO"), merged[commands.OpenProject], "untouched default")
}

func TestMergeDoesNotMutateDefaults(t *testing.T) {
	base := defaults()
	Merge(base, map[CommandID]string{commands.SaveProject: "F9"}, commands.DefaultTable())
	assert.Equal(t, keys.Shortcut("CmdOrCtrl+KeyS"), base[commands.SaveProject])
}

func TestOverrides(t *testing.T) {
	base := defaults()
	edited := base.Clone()
	edited[commands.SaveProject] = "F9"
	edited[commands.ZoomIn] = ""

	assert.Equal(t, map[CommandID]string{
		commands.SaveProject: "F9",
		commands.ZoomIn:      "",
	}, Overrides(base, edited))
}

func TestConflicts(t *testing.T) {
	m := defaults()
	m[commands.ZoomIn] = "CmdOrCtrl+KeyS"
	m[commands.AddNewScene] = "CmdOrCtrl+KeyS"
	m[commands.ToggleGrid] = "F5"

	conflicts := Conflicts(m)

	require.Len(t, conflicts, 2)
	assert.Equal(t, keys.Shortcut("CmdOrCtrl+KeyS"), conflicts[0].Shortcut)
	assert.Equal(t, []CommandID{commands.AddNewScene, commands.SaveProject, commands.ZoomIn}, conflicts[0].Commands)
	assert.Equal(t, keys.Shortcut("F5"), conflicts[1].Shortcut)
	assert.Equal(t, []CommandID{commands.HotReloadPreview, commands.ToggleGrid}, conflicts[1].Commands)
	assert.True(t, strings.HasPrefix(conflicts[1].String(), "F5 is bound to"))

	assert.Equal(t, []CommandID{commands.HotReloadPreview}, ConflictsWith(m, commands.ToggleGrid, "F5"))
	assert.Empty(t, ConflictsWith(m, commands.ToggleGrid, keys.NoShortcut))
}

func TestExport(t *testing.T) {
	m := defaults()
	m[commands.SaveProject] = "F9"
	entries := Entries(m, defaults(), commands.DefaultTable(), keys.PlatformMac)

	var save Entry
	for _, entry := range entries {
		assert.NotEqual(t, commands.OpenLayout, entry.ID)
		if entry.ID == commands.SaveProject {
			save = entry
		}
	}
	assert.True(t, save.Customized)
	assert.Equal(t, "F9", save.Display)
	assert.Equal(t, "F9", save.Accelerator)

	data, err := Export(entries, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "QUIT_APP"`)
	assert.Contains(t, string(data), `"display": "Cmd + Q"`)

	data, err = Export(entries, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "accelerator: CmdOrCtrl+Q")

	_, err = ParseFormat("toml")
	assert.Error(t, err)
	format, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)
}
