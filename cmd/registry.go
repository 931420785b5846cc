package cmd

import (
	"fmt"
	"strings"

	"ide-commands/cmd/interfaces"
	"ide-commands/log"
)

// Use types from interfaces package to avoid duplication
type CommandID = interfaces.CommandID
type Command = interfaces.Command
type CommandOption = interfaces.CommandOption
type NamedCommand = interfaces.NamedCommand

// CommandRegistry is the central registry of the commands currently offered
// by the mounted UI regions. It is owned by the UI goroutine and is not safe
// for concurrent use.
type CommandRegistry struct {
	commands map[CommandID]*Command
	order    []CommandID
	onChange []func()
}

var _ interfaces.Registry = (*CommandRegistry)(nil)

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[CommandID]*Command),
	}
}

// Register adds a command. Registering an id twice is a caller bug: the first
// registration stays and a warning is logged.
func (r *CommandRegistry) Register(id CommandID, command *Command) {
	if command == nil {
		log.WarningLog.Printf("refusing to register nil command %s", id)
		return
	}
	if _, exists := r.commands[id]; exists {
		log.WarningLog.Printf("command %s is already registered", id)
		return
	}
	r.commands[id] = command
	r.order = append(r.order, id)
	r.changed()
}

// Deregister removes a command. Unknown ids are logged and ignored.
func (r *CommandRegistry) Deregister(id CommandID) {
	if _, exists := r.commands[id]; !exists {
		log.WarningLog.Printf("command %s is not registered", id)
		return
	}
	delete(r.commands, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.changed()
}

// Lookup returns the command registered under id, or nil.
func (r *CommandRegistry) Lookup(id CommandID) *Command {
	return r.commands[id]
}

// Enumerate returns a snapshot of every command in registration order.
func (r *CommandRegistry) Enumerate() []NamedCommand {
	result := make([]NamedCommand, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, NamedCommand{ID: id, Command: r.commands[id]})
	}
	return result
}

// Len returns the number of registered commands.
func (r *CommandRegistry) Len() int {
	return len(r.order)
}

// OnChange subscribes fn to every effective mutation. Views use it to know
// the command list they render is stale.
func (r *CommandRegistry) OnChange(fn func()) {
	r.onChange = append(r.onChange, fn)
}

func (r *CommandRegistry) changed() {
	for _, fn := range r.onChange {
		fn()
	}
}

// String returns a debug string representation of the registry
func (r *CommandRegistry) String() string {
	var sb strings.Builder
	sb.WriteString("CommandRegistry:\n")
	for _, id := range r.order {
		command := r.commands[id]
		kind := "command"
		if command.IsCompound() {
			kind = "compound"
		}
		sb.WriteString(fmt.Sprintf("  %s: %s (%s, enabled=%t)\n", id, command.DisplayText, kind, command.Enabled))
	}
	return sb.String()
}
