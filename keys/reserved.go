package keys

import "sort"

// reservedShortcuts are owned by the host application (clipboard, undo,
// window management). User shortcuts can never be bound to them.
var reservedShortcuts = map[Shortcut]string{
	"CmdOrCtrl+KeyA":       "Select all",
	"CmdOrCtrl+KeyC":       "Copy",
	"CmdOrCtrl+KeyV":       "Paste",
	"CmdOrCtrl+KeyX":       "Cut",
	"CmdOrCtrl+KeyZ":       "Undo",
	"CmdOrCtrl+KeyY":       "Redo",
	"CmdOrCtrl+Shift+KeyZ": "Redo",
	"Alt+F4":               "Close window",
}

// IsReserved reports whether s is in the reserved set.
func IsReserved(s Shortcut) bool {
	_, ok := reservedShortcuts[s]
	return ok
}

// ReservedReason returns what the host uses a reserved shortcut for.
func ReservedReason(s Shortcut) (string, bool) {
	reason, ok := reservedShortcuts[s]
	return reason, ok
}

// ReservedShortcuts returns the reserved set, sorted.
func ReservedShortcuts() []Shortcut {
	result := make([]Shortcut, 0, len(reservedShortcuts))
	for s := range reservedShortcuts {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
