package interfaces

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommandID uniquely identifies a command within a registry.
type CommandID string

// Handler runs a command. Synchronous handlers return nil; handlers with
// deferred work return a tea.Cmd that the program runs in the background.
// Failures are the handler's own business: report them as messages from the
// returned tea.Cmd.
type Handler func() tea.Cmd

// Command is what a UI region registers for a CommandID.
type Command struct {
	DisplayText string
	Enabled     bool
	Handler     Handler

	// Options makes this a compound command: choosing it lists the generated
	// options instead of running Handler.
	Options func() []CommandOption
}

// IsCompound reports whether the command opens a list of options.
func (c *Command) IsCompound() bool {
	return c.Options != nil
}

// Run invokes the handler, if any.
func (c *Command) Run() tea.Cmd {
	if c.Handler == nil {
		return nil
	}
	return c.Handler()
}

// CommandOption is one leaf of a compound command.
type CommandOption struct {
	Text    string
	Handler Handler
	IconRef string
}

// Run invokes the option handler, if any.
func (o CommandOption) Run() tea.Cmd {
	if o.Handler == nil {
		return nil
	}
	return o.Handler()
}

// NamedCommand is a Command together with the id it is registered under.
// Registries only produce these when enumerating.
type NamedCommand struct {
	ID CommandID
	*Command
}

// Area groups commands for display (shortcut editor, help).
type Area string

const (
	AreaGeneral Area = "General"
	AreaIDE     Area = "IDE"
	AreaProject Area = "Project"
	AreaScene   Area = "Scene"
	AreaEvents  Area = "Events"
)
