package shortcut

import (
	tea "github.com/charmbracelet/bubbletea"

	"ide-commands/cmd/interfaces"
	"ide-commands/keys"
	"ide-commands/log"
)

// Listener routes key events of the host program to registered commands.
// The owner attaches it with the effective shortcut map when it mounts and
// re-attaches whenever the map is replaced.
type Listener struct {
	registry interfaces.Registry
	table    interfaces.CommandTable
	env      Environment

	// OpenCompound is called instead of running a compound command, usually
	// to open the palette on its options. When nil, compound commands bound
	// to a key are ignored.
	OpenCompound func(interfaces.NamedCommand) tea.Cmd

	attached bool
	m        Map
	ids      []CommandID
}

// NewListener creates a detached listener.
func NewListener(registry interfaces.Registry, table interfaces.CommandTable, env Environment) *Listener {
	return &Listener{registry: registry, table: table, env: env}
}

// Attach starts listening with m, replacing any previously attached map.
// Edits to m made after Attach need another Attach to take effect.
func (l *Listener) Attach(m Map) {
	l.m = m
	l.ids = m.SortedIDs()
	l.attached = true
}

// Detach stops listening immediately.
func (l *Listener) Detach() {
	l.attached = false
	l.m = nil
	l.ids = nil
}

// Attached reports whether the listener is active.
func (l *Listener) Attached() bool {
	return l.attached
}

// Map returns the attached map.
func (l *Listener) Map() Map {
	return l.m
}

// HandleKey resolves ev and invokes the bound command. The bool reports that
// the event was consumed and must not reach the focused widget.
func (l *Listener) HandleKey(ev keys.KeyEvent) (tea.Cmd, bool) {
	if !l.attached {
		return nil, false
	}
	id, ok := resolveIn(ev, l.m, l.ids, l.table, l.env)
	if !ok {
		return nil, false
	}

	command := l.registry.Lookup(id)
	if command == nil || !command.Enabled {
		return nil, false
	}
	log.InfoLog.Printf("shortcut %s runs %s", l.m[id], id)
	if command.IsCompound() {
		if l.OpenCompound == nil {
			return nil, false
		}
		return l.OpenCompound(interfaces.NamedCommand{ID: id, Command: command}), true
	}
	return command.Run(), true
}

