package cmd

import (
	"github.com/google/uuid"

	"ide-commands/cmd/interfaces"
	"ide-commands/log"
)

// ScopedCommandRegistry is the registry handed to one UI region (an editor
// tab, a dialog). It always keeps its own commands and mirrors them into the
// central registry only while the region is active, so inactive tabs never
// shadow the focused one.
type ScopedCommandRegistry struct {
	name    string
	id      string
	central interfaces.Registry

	commands map[CommandID]*Command
	order    []CommandID
	active   bool
}

var _ interfaces.Registry = (*ScopedCommandRegistry)(nil)

// NewScopedCommandRegistry creates an inactive scope on top of central.
func NewScopedCommandRegistry(name string, central interfaces.Registry) *ScopedCommandRegistry {
	return &ScopedCommandRegistry{
		name:     name,
		id:       uuid.New().String(),
		central:  central,
		commands: make(map[CommandID]*Command),
	}
}

// Name returns the human readable scope name.
func (s *ScopedCommandRegistry) Name() string {
	return s.name
}

// InstanceID identifies this scope instance in logs.
func (s *ScopedCommandRegistry) InstanceID() string {
	return s.id
}

// Register stores the command locally and forwards it to the central
// registry while the scope is active.
func (s *ScopedCommandRegistry) Register(id CommandID, command *Command) {
	if command == nil {
		log.WarningLog.Printf("scope %s: refusing to register nil command %s", s.name, id)
		return
	}
	if _, exists := s.commands[id]; exists {
		log.WarningLog.Printf("scope %s: command %s is already registered", s.name, id)
		return
	}
	s.commands[id] = command
	s.order = append(s.order, id)
	if s.active {
		s.central.Register(id, command)
	}
}

// Deregister removes the command locally and, while active, from the
// central registry.
func (s *ScopedCommandRegistry) Deregister(id CommandID) {
	command, exists := s.commands[id]
	if !exists {
		log.WarningLog.Printf("scope %s: command %s is not registered", s.name, id)
		return
	}
	delete(s.commands, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.active {
		s.deregisterOwned(id, command)
	}
}

// Lookup searches the scope first, then the central registry.
func (s *ScopedCommandRegistry) Lookup(id CommandID) *Command {
	if command, ok := s.commands[id]; ok {
		return command
	}
	return s.central.Lookup(id)
}

// Enumerate returns the scope's own commands in registration order.
func (s *ScopedCommandRegistry) Enumerate() []NamedCommand {
	result := make([]NamedCommand, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, NamedCommand{ID: id, Command: s.commands[id]})
	}
	return result
}

// SetActive flips the forwarding flag. It does not touch the central
// registry; the owner follows up with RegisterAllToCentral or
// DeregisterAllFromCentral.
func (s *ScopedCommandRegistry) SetActive(active bool) {
	s.active = active
}

// IsActive reports whether registrations are forwarded.
func (s *ScopedCommandRegistry) IsActive() bool {
	return s.active
}

// RegisterAllToCentral copies every local command into the central registry.
func (s *ScopedCommandRegistry) RegisterAllToCentral() {
	for _, id := range s.order {
		s.central.Register(id, s.commands[id])
	}
}

// DeregisterAllFromCentral removes the local commands from the central
// registry. Entries the central registry holds for another scope under the
// same id are left alone.
func (s *ScopedCommandRegistry) DeregisterAllFromCentral() {
	for _, id := range s.order {
		s.deregisterOwned(id, s.commands[id])
	}
}

// Activate is SetActive(true) followed by RegisterAllToCentral.
func (s *ScopedCommandRegistry) Activate() {
	s.SetActive(true)
	s.RegisterAllToCentral()
	log.InfoLog.Printf("scope %s (%s) activated with %d commands", s.name, s.id, len(s.order))
}

// Deactivate is DeregisterAllFromCentral followed by SetActive(false).
func (s *ScopedCommandRegistry) Deactivate() {
	s.DeregisterAllFromCentral()
	s.SetActive(false)
	log.InfoLog.Printf("scope %s (%s) deactivated", s.name, s.id)
}

func (s *ScopedCommandRegistry) deregisterOwned(id CommandID, command *Command) {
	if current := s.central.Lookup(id); current != nil && current == command {
		s.central.Deregister(id)
	}
}
