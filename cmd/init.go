package cmd

import (
	"fmt"

	"ide-commands/cmd/interfaces"
)

// NewCommand builds an enabled command whose display text comes from the
// command table. Unknown ids are programming errors.
func NewCommand(table interfaces.CommandTable, id CommandID, handler interfaces.Handler) *Command {
	meta := mustMetadata(table, id)
	if handler == nil {
		panic(fmt.Sprintf("command %s: handler cannot be nil", id))
	}
	return &Command{
		DisplayText: meta.DisplayText,
		Enabled:     true,
		Handler:     handler,
	}
}

// NewCompoundCommand builds an enabled command that lists the options
// produced by generate when chosen.
func NewCompoundCommand(table interfaces.CommandTable, id CommandID, generate func() []CommandOption) *Command {
	meta := mustMetadata(table, id)
	if generate == nil {
		panic(fmt.Sprintf("command %s: options generator cannot be nil", id))
	}
	return &Command{
		DisplayText: meta.DisplayText,
		Enabled:     true,
		Options:     generate,
	}
}

// RegisterAll registers each command under its id in the given order.
func RegisterAll(registry interfaces.Registry, commands []NamedCommand) {
	for _, named := range commands {
		registry.Register(named.ID, named.Command)
	}
}

func mustMetadata(table interfaces.CommandTable, id CommandID) interfaces.CommandMetadata {
	if id == "" {
		panic("command ID cannot be empty")
	}
	meta, ok := table.Metadata(id)
	if !ok {
		panic(fmt.Sprintf("command %s is not in the command table", id))
	}
	return meta
}
