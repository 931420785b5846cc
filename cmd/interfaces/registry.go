package interfaces

// Registry is the read/write surface shared by the central registry and the
// scoped registries. UI regions receive one of these instead of reaching for
// a global.
type Registry interface {
	Register(id CommandID, command *Command)
	Deregister(id CommandID)
	Lookup(id CommandID) *Command
	Enumerate() []NamedCommand
}

// CommandMetadata is the static description of a command id: where it is
// listed and how its shortcut behaves.
type CommandMetadata struct {
	ID          CommandID
	Area        Area
	DisplayText string

	// NoShortcut commands are palette-only and never get a key.
	NoShortcut bool

	// HandledByHost commands are wired to native menu accelerators on the
	// desktop build, so in-app resolution skips them there.
	HandledByHost bool
}

// CommandTable gives read access to command metadata.
type CommandTable interface {
	Metadata(id CommandID) (CommandMetadata, bool)
	All() []CommandMetadata
}
