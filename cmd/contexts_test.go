package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ide-commands/cmd/commands"
)

func TestScopedRegistryInactiveKeepsCentralUntouched(t *testing.T) {
	central := NewCommandRegistry()
	scope := NewScopedCommandRegistry("scene editor", central)
	zoom := newTestCommand("Zoom in")

	scope.Register(commands.ZoomIn, zoom)

	assert.False(t, scope.IsActive())
	assert.Nil(t, central.Lookup(commands.ZoomIn))
	assert.Same(t, zoom, scope.Lookup(commands.ZoomIn))
}

func TestScopedRegistryActivationRoundTrip(t *testing.T) {
	central := NewCommandRegistry()
	scope := NewScopedCommandRegistry("scene editor", central)
	zoomIn := newTestCommand("Zoom in")
	zoomOut := newTestCommand("Zoom out")
	scope.Register(commands.ZoomIn, zoomIn)
	scope.Register(commands.ZoomOut, zoomOut)

	scope.SetActive(true)
	scope.RegisterAllToCentral()
	assert.Same(t, zoomIn, central.Lookup(commands.ZoomIn))
	assert.Same(t, zoomOut, central.Lookup(commands.ZoomOut))

	scope.DeregisterAllFromCentral()
	scope.SetActive(false)
	assert.Equal(t, 0, central.Len())
	assert.Len(t, scope.Enumerate(), 2, "local entries survive deactivation")
}

func TestScopedRegistryForwardsWhileActive(t *testing.T) {
	central := NewCommandRegistry()
	scope := NewScopedCommandRegistry("events editor", central)
	scope.Activate()

	search := newTestCommand("Search in events")
	scope.Register(commands.SearchEvents, search)
	assert.Same(t, search, central.Lookup(commands.SearchEvents))

	scope.Deregister(commands.SearchEvents)
	assert.Nil(t, central.Lookup(commands.SearchEvents))
	assert.Nil(t, scope.Lookup(commands.SearchEvents))
}

func TestScopedRegistryLookupFallsBackToCentral(t *testing.T) {
	central := NewCommandRegistry()
	save := newTestCommand("Save project")
	central.Register(commands.SaveProject, save)
	scope := NewScopedCommandRegistry("scene editor", central)

	assert.Same(t, save, scope.Lookup(commands.SaveProject))
	assert.Empty(t, scope.Enumerate(), "central entries are not part of the scope")
}

func TestScopedRegistryNeverRemovesAnotherScopesCommand(t *testing.T) {
	central := NewCommandRegistry()
	scene := NewScopedCommandRegistry("scene editor", central)
	events := NewScopedCommandRegistry("events editor", central)
	sceneSearch := newTestCommand("scene search")
	eventsSearch := newTestCommand("events search")
	scene.Register(commands.SearchEvents, sceneSearch)
	events.Register(commands.SearchEvents, eventsSearch)

	events.Activate()
	// A stale scope cleaning up must not pull the active scope's entry.
	scene.SetActive(true)
	scene.DeregisterAllFromCentral()
	scene.SetActive(false)

	assert.Same(t, eventsSearch, central.Lookup(commands.SearchEvents))
}

func TestScopedRegistryInstanceIDs(t *testing.T) {
	central := NewCommandRegistry()
	a := NewScopedCommandRegistry("tab", central)
	b := NewScopedCommandRegistry("tab", central)

	assert.Equal(t, "tab", a.Name())
	assert.NotEmpty(t, a.InstanceID())
	assert.NotEqual(t, a.InstanceID(), b.InstanceID())
}
