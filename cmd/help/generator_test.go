package help

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"ide-commands/cmd/commands"
	"ide-commands/cmd/interfaces"
	"ide-commands/cmd/shortcut"
	"ide-commands/keys"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newGenerator(m shortcut.Map) *Generator {
	return NewGenerator(commands.DefaultTable(), m, shortcut.Map(commands.DefaultShortcuts()), keys.PlatformLinux)
}

func TestGenerateReferenceGroupsByArea(t *testing.T) {
	defaults := shortcut.Map(commands.DefaultShortcuts())
	out := newGenerator(defaults).GenerateReference(false)

	assert.Contains(t, out, "Keyboard Shortcuts")
	general := strings.Index(out, "General:")
	ide := strings.Index(out, "IDE:")
	events := strings.Index(out, "Events:")
	assert.True(t, general >= 0 && general < ide && ide < events, "areas in display order")

	assert.Contains(t, out, "Ctrl + S")
	assert.Contains(t, out, "Save project")
	assert.NotContains(t, out, "Open scene...", "palette-only commands are not listed")
	assert.NotContains(t, out, "Add a comment", "unbound commands are hidden")
	assert.NotContains(t, out, "Conflicts:")
	assert.NotContains(t, out, "(custom)")
}

func TestGenerateReferenceMarksCustomAndConflicts(t *testing.T) {
	m := shortcut.Map(commands.DefaultShortcuts())
	m[commands.ZoomIn] = "F5"

	out := newGenerator(m).GenerateReference(true)

	assert.Contains(t, out, "(custom)")
	assert.Contains(t, out, "Add a comment", "unbound commands listed on request")
	assert.Contains(t, out, "Conflicts:")
	assert.Contains(t, out, "F5 is bound to: Apply changes to the running preview, Zoom in")
}

func TestGenerateReferenceTruncatesToWidth(t *testing.T) {
	g := newGenerator(shortcut.Map(commands.DefaultShortcuts()))
	g.Width = 40

	out := g.GenerateReference(false)

	assert.NotContains(t, out, "Launch preview with debugger and profiler")
	assert.Contains(t, out, "...")
}

func TestGenerateStatusLine(t *testing.T) {
	noop := func() tea.Cmd { return nil }
	named := []interfaces.NamedCommand{
		{ID: commands.SaveProject, Command: &interfaces.Command{DisplayText: "Save project", Enabled: true, Handler: noop}},
		{ID: commands.ExportGame, Command: &interfaces.Command{DisplayText: "Export game", Enabled: false, Handler: noop}},
		{ID: commands.AddCommentEvent, Command: &interfaces.Command{DisplayText: "Add a comment", Enabled: true, Handler: noop}},
		{ID: commands.ZoomIn, Command: &interfaces.Command{DisplayText: "Zoom in", Enabled: true, Handler: noop}},
	}

	line := newGenerator(shortcut.Map(commands.DefaultShortcuts())).GenerateStatusLine(named, 0)

	assert.Equal(t, "Ctrl + S Save project • Ctrl + = Zoom in", line)
}

func TestValidateShortcuts(t *testing.T) {
	m := shortcut.Map(commands.DefaultShortcuts())
	assert.Empty(t, newGenerator(m).ValidateShortcuts())

	m[commands.OpenLayout] = "F9"
	m["GONE"] = "F10"
	m[commands.ZoomOut] = "CmdOrCtrl+KeyS"

	issues := newGenerator(m).ValidateShortcuts()
	assert.Len(t, issues, 3)
}
