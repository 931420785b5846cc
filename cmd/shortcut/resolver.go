package shortcut

import (
	"ide-commands/cmd/interfaces"
	"ide-commands/keys"
)

// Environment is what the host shell tells the resolver about itself. Nil
// predicates report false.
type Environment struct {
	// IsTyping reports keyboard focus inside a text entry.
	IsTyping func() bool
	// IsDialogOpen reports a modal dialog or overlay owning the keyboard.
	IsDialogOpen func() bool
	// Desktop is set on builds whose host window binds native accelerators
	// for commands flagged HandledByHost.
	Desktop bool
}

func (e Environment) suppressed() bool {
	if e.IsTyping != nil && e.IsTyping() {
		return true
	}
	return e.IsDialogOpen != nil && e.IsDialogOpen()
}

// Resolve maps a key event to the command bound to it in m. It reports false
// when the event is not a valid shortcut, nothing is bound to it, or the
// environment suppresses shortcuts.
func Resolve(ev keys.KeyEvent, m Map, table interfaces.CommandTable, env Environment) (CommandID, bool) {
	return resolveIn(ev, m, m.SortedIDs(), table, env)
}

func resolveIn(ev keys.KeyEvent, m Map, ids []CommandID, table interfaces.CommandTable, env Environment) (CommandID, bool) {
	encoded, ok := keys.EncodeEvent(ev)
	if !ok {
		return "", false
	}
	for _, id := range ids {
		if m[id] != encoded {
			continue
		}
		if env.suppressed() {
			return "", false
		}
		if env.Desktop {
			if meta, ok := table.Metadata(id); ok && meta.HandledByHost {
				return "", false
			}
		}
		return id, true
	}
	return "", false
}
