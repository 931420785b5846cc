package keys

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runeCodes maps printable runes to the physical key that produces them on a
// US layout, and whether Shift is needed.
var runeCodes = map[rune]struct {
	code  string
	shift bool
}{
	'-': {CodeMinus, false},
	'_': {CodeMinus, true},
	'=': {CodeEqual, false},
	'+': {CodeEqual, true},
	' ': {CodeSpace, false},
}

// FromTeaKey converts a terminal key message into a KeyEvent. Keys the
// terminal cannot describe in physical terms get an empty Code, which
// EncodeEvent rejects.
func FromTeaKey(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Alt: msg.Alt}

	// Tab, Enter and Ctrl+@ share values with the Ctrl+letter range, so they
	// are checked first.
	switch msg.Type {
	case tea.KeyTab:
		ev.Code = CodeTab
		return ev
	case tea.KeyShiftTab:
		ev.Code = CodeTab
		ev.Shift = true
		return ev
	case tea.KeyEnter:
		return ev
	case tea.KeyCtrlAt:
		ev.Code = CodeSpace
		ev.Ctrl = true
		return ev
	case tea.KeySpace:
		ev.Code = CodeSpace
		return ev
	case tea.KeyRunes:
		return fromRunes(ev, msg.Runes)
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		ev.Ctrl = true
		ev.Code = "Key" + string(rune('A'+int(msg.Type-tea.KeyCtrlA)))
		return ev
	}

	if code, ok := functionKeys[msg.Type]; ok {
		ev.Code = code
	}
	return ev
}

var functionKeys = map[tea.KeyType]string{
	tea.KeyF1:  "F1",
	tea.KeyF2:  "F2",
	tea.KeyF3:  "F3",
	tea.KeyF4:  "F4",
	tea.KeyF5:  "F5",
	tea.KeyF6:  "F6",
	tea.KeyF7:  "F7",
	tea.KeyF8:  "F8",
	tea.KeyF9:  "F9",
	tea.KeyF10: "F10",
	tea.KeyF11: "F11",
	tea.KeyF12: "F12",
}

func fromRunes(ev KeyEvent, runes []rune) KeyEvent {
	if len(runes) != 1 {
		return ev
	}
	r := runes[0]
	switch {
	case r >= 'a' && r <= 'z':
		ev.Code = "Key" + string(r-'a'+'A')
	case r >= 'A' && r <= 'Z':
		ev.Code = "Key" + string(r)
		ev.Shift = true
	case r >= '0' && r <= '9':
		ev.Code = "Digit" + string(r)
	default:
		if mapped, ok := runeCodes[r]; ok {
			ev.Code = mapped.code
			ev.Shift = mapped.shift
		}
	}
	return ev
}
