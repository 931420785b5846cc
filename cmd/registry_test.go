package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ide-commands/cmd/commands"
)

func noop() tea.Cmd { return nil }

func newTestCommand(text string) *Command {
	return &Command{DisplayText: text, Enabled: true, Handler: noop}
}

func TestRegistryRoundTrip(t *testing.T) {
	registry := NewCommandRegistry()
	save := newTestCommand("Save project")

	registry.Register(commands.SaveProject, save)
	assert.Same(t, save, registry.Lookup(commands.SaveProject))

	registry.Deregister(commands.SaveProject)
	assert.Nil(t, registry.Lookup(commands.SaveProject))
	assert.Empty(t, registry.Enumerate())
}

func TestRegistryDuplicateRegistrationKeepsFirst(t *testing.T) {
	registry := NewCommandRegistry()
	first := newTestCommand("first")
	second := newTestCommand("second")

	registry.Register(commands.SaveProject, first)
	registry.Register(commands.SaveProject, second)

	assert.Same(t, first, registry.Lookup(commands.SaveProject))
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryUnknownDeregisterIsNoop(t *testing.T) {
	registry := NewCommandRegistry()
	registry.Register(commands.ZoomIn, newTestCommand("Zoom in"))

	registry.Deregister(commands.ZoomOut)

	assert.Equal(t, 1, registry.Len())
}

func TestRegistryNilCommandIgnored(t *testing.T) {
	registry := NewCommandRegistry()
	registry.Register(commands.ZoomIn, nil)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryEnumerateInRegistrationOrder(t *testing.T) {
	registry := NewCommandRegistry()
	ids := []CommandID{commands.ZoomOut, commands.SaveProject, commands.AddNewScene, commands.ZoomIn}
	for _, id := range ids {
		registry.Register(id, newTestCommand(string(id)))
	}
	registry.Deregister(commands.AddNewScene)

	var got []CommandID
	for _, named := range registry.Enumerate() {
		got = append(got, named.ID)
		assert.Equal(t, string(named.ID), named.DisplayText)
	}
	assert.Equal(t, []CommandID{commands.ZoomOut, commands.SaveProject, commands.ZoomIn}, got)
}

func TestRegistryOnChange(t *testing.T) {
	registry := NewCommandRegistry()
	calls := 0
	registry.OnChange(func() { calls++ })

	registry.Register(commands.ZoomIn, newTestCommand("Zoom in"))
	registry.Register(commands.ZoomIn, newTestCommand("again"))
	registry.Deregister(commands.ZoomIn)
	registry.Deregister(commands.ZoomIn)

	assert.Equal(t, 2, calls, "only effective mutations notify")
}

func TestNewCommandUsesTableText(t *testing.T) {
	table := commands.DefaultTable()

	command := NewCommand(table, commands.SaveProject, noop)
	require.NotNil(t, command)
	assert.Equal(t, "Save project", command.DisplayText)
	assert.True(t, command.Enabled)
	assert.False(t, command.IsCompound())

	compound := NewCompoundCommand(table, commands.OpenLayout, func() []CommandOption {
		return []CommandOption{{Text: "Level 1", Handler: noop}}
	})
	assert.True(t, compound.IsCompound())
	assert.Len(t, compound.Options(), 1)

	assert.Panics(t, func() { NewCommand(table, "NOT_A_COMMAND", noop) })
	assert.Panics(t, func() { NewCommand(table, commands.SaveProject, nil) })
}
