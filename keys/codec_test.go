package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCode(t *testing.T) {
	testCases := []struct {
		code     string
		expected KeyType
	}{
		{"KeyA", KeyTypeAlphabet},
		{"KeyZ", KeyTypeAlphabet},
		{"Keya", KeyTypeInvalid},
		{"Digit0", KeyTypeDigit},
		{"Digit9", KeyTypeDigit},
		{"F1", KeyTypeFunction},
		{"F9", KeyTypeFunction},
		{"F10", KeyTypeFunction},
		{"F12", KeyTypeFunction},
		{"F13", KeyTypeInvalid},
		{"F0", KeyTypeInvalid},
		{"NumpadAdd", KeyTypeNumpadPlusMinus},
		{"NumpadSubtract", KeyTypeNumpadPlusMinus},
		{"Minus", KeyTypeRowPlusMinus},
		{"Equal", KeyTypeRowPlusMinus},
		{"Tab", KeyTypeOther},
		{"Space", KeyTypeOther},
		{"ShiftLeft", KeyTypeInvalid},
		{"Escape", KeyTypeInvalid},
		{"", KeyTypeInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyCode(tc.code))
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	testCases := []struct {
		name     string
		event    KeyEvent
		expected Shortcut
		ok       bool
	}{
		{"plain letter", KeyEvent{Code: "KeyP"}, "KeyP", true},
		{"ctrl letter", KeyEvent{Code: "KeyS", Ctrl: true}, "CmdOrCtrl+KeyS", true},
		{"meta is CmdOrCtrl", KeyEvent{Code: "KeyS", Meta: true}, "CmdOrCtrl+KeyS", true},
		{"all modifiers in order", KeyEvent{Code: "KeyE", Alt: true, Shift: true, Ctrl: true}, "CmdOrCtrl+Shift+Alt+KeyE", true},
		{"digit", KeyEvent{Code: "Digit1", Alt: true}, "Alt+Digit1", true},
		{"function key", KeyEvent{Code: "F5"}, "F5", true},
		{"numpad", KeyEvent{Code: "NumpadAdd", Ctrl: true}, "CmdOrCtrl+NumpadAdd", true},
		{"row minus", KeyEvent{Code: "Minus", Shift: true}, "Shift+Minus", true},
		{"tab alone", KeyEvent{Code: "Tab"}, "", false},
		{"shift tab", KeyEvent{Code: "Tab", Shift: true}, "", false},
		{"ctrl tab", KeyEvent{Code: "Tab", Ctrl: true}, "CmdOrCtrl+Tab", true},
		{"alt space", KeyEvent{Code: "Space", Alt: true}, "Alt+Space", true},
		{"modifier only", KeyEvent{Code: "ShiftLeft", Shift: true}, "", false},
		{"unsupported key", KeyEvent{Code: "ArrowUp", Ctrl: true}, "", false},
		{"reserved copy", KeyEvent{Code: "KeyC", Ctrl: true}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shortcut, ok := EncodeEvent(tc.event)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, shortcut)
		})
	}
}

// eventFor builds the key event that would produce a canonical shortcut.
func eventFor(t *testing.T, s Shortcut) KeyEvent {
	t.Helper()
	ev := KeyEvent{}
	for _, token := range s.Tokens() {
		switch token {
		case TokenCmdOrCtrl:
			ev.Ctrl = true
		case TokenShift:
			ev.Shift = true
		case TokenAlt:
			ev.Alt = true
		default:
			ev.Code = token
		}
	}
	require.NotEmpty(t, ev.Code)
	return ev
}

func TestReservedShortcutsNeverEncode(t *testing.T) {
	for _, reserved := range ReservedShortcuts() {
		t.Run(string(reserved), func(t *testing.T) {
			shortcut, ok := EncodeEvent(eventFor(t, reserved))
			assert.False(t, ok)
			assert.Equal(t, NoShortcut, shortcut)

			_, err := ParseShortcut(string(reserved))
			assert.ErrorIs(t, err, ErrReserved)
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	ev := KeyEvent{Code: "KeyA", Ctrl: true, Shift: true}
	shortcut, ok := EncodeEvent(ev)
	require.True(t, ok)

	assert.Equal(t, "Ctrl + Shift + A", DisplayString(shortcut, PlatformLinux))
	assert.Equal(t, "Ctrl + Shift + A", DisplayString(shortcut, PlatformWindows))
	assert.Equal(t, "Cmd + Shift + A", DisplayString(shortcut, PlatformMac))
}

func TestDisplayString(t *testing.T) {
	testCases := []struct {
		shortcut Shortcut
		expected string
	}{
		{"Digit7", "7"},
		{"Shift+Alt+F11", "Shift + Alt + F11"},
		{"CmdOrCtrl+NumpadAdd", "Ctrl + Num+"},
		{"CmdOrCtrl+NumpadSubtract", "Ctrl + Num-"},
		{"CmdOrCtrl+Minus", "Ctrl + -"},
		{"CmdOrCtrl+Equal", "Ctrl + ="},
		{"Alt+Tab", "Alt + Tab"},
		{"CmdOrCtrl+Space", "Ctrl + Space"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(string(tc.shortcut), func(t *testing.T) {
			assert.Equal(t, tc.expected, DisplayString(tc.shortcut, PlatformLinux))
		})
	}
}

func TestAcceleratorString(t *testing.T) {
	testCases := []struct {
		shortcut Shortcut
		expected string
	}{
		{"CmdOrCtrl+KeyS", "CmdOrCtrl+S"},
		{"CmdOrCtrl+Shift+Digit3", "CmdOrCtrl+Shift+3"},
		{"F5", "F5"},
		{"CmdOrCtrl+NumpadAdd", "CmdOrCtrl+numadd"},
		{"CmdOrCtrl+NumpadSubtract", "CmdOrCtrl+numsub"},
		{"Alt+Equal", "Alt+="},
		{"CmdOrCtrl+Tab", "CmdOrCtrl+Tab"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.shortcut), func(t *testing.T) {
			assert.Equal(t, tc.expected, AcceleratorString(tc.shortcut))
		})
	}
}

func TestPartialShortcut(t *testing.T) {
	partial := PartialShortcut(KeyEvent{Code: "ControlLeft", Ctrl: true, Shift: true})
	assert.Equal(t, "CmdOrCtrl+Shift", partial)
	assert.False(t, IsComplete(partial))
	assert.Equal(t, "Ctrl + Shift", DisplayString(Shortcut(partial), PlatformLinux))

	complete := PartialShortcut(KeyEvent{Code: "KeyK", Ctrl: true, Shift: true})
	assert.Equal(t, "CmdOrCtrl+Shift+KeyK", complete)
	assert.True(t, IsComplete(complete))
}

func TestParseShortcut(t *testing.T) {
	testCases := []struct {
		raw string
		err error
	}{
		{"", nil},
		{"CmdOrCtrl+KeyS", nil},
		{"CmdOrCtrl+Shift+Alt+KeyE", nil},
		{"Shift+CmdOrCtrl+KeyS", ErrModifierOrder},
		{"Shift+Shift+KeyS", ErrModifierOrder},
		{"Ctrl+KeyS", ErrModifierOrder},
		{"CmdOrCtrl+Shift", ErrEmptyShortcut},
		{"CmdOrCtrl+ArrowUp", ErrUnknownKey},
		{"Shift+Space", ErrModifierRequired},
		{"CmdOrCtrl+KeyV", ErrReserved},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			shortcut, err := ParseShortcut(tc.raw)
			if tc.err == nil {
				require.NoError(t, err)
				assert.Equal(t, Shortcut(tc.raw), shortcut)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromTeaKey(t *testing.T) {
	testCases := []struct {
		name     string
		msg      tea.KeyMsg
		expected Shortcut
		ok       bool
	}{
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, "CmdOrCtrl+KeyS", true},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, "CmdOrCtrl+KeyP", true},
		{"alt+x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "Alt+KeyX", true},
		{"uppercase is shift", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Z")}, "Shift+KeyZ", true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")}, "Digit4", true},
		{"plus is shift equal", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, "Shift+Equal", true},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, "F5", true},
		{"tab alone", tea.KeyMsg{Type: tea.KeyTab}, "", false},
		{"alt tab", tea.KeyMsg{Type: tea.KeyTab, Alt: true}, "Alt+Tab", true},
		{"ctrl space", tea.KeyMsg{Type: tea.KeyCtrlAt}, "CmdOrCtrl+Space", true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "", false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shortcut, ok := EncodeEvent(FromTeaKey(tc.msg))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, shortcut)
		})
	}
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, PlatformMac, ParsePlatform("darwin"))
	assert.Equal(t, PlatformMac, ParsePlatform("macOS"))
	assert.Equal(t, PlatformWindows, ParsePlatform("windows"))
	assert.Equal(t, PlatformLinux, ParsePlatform("freebsd"))
	assert.Equal(t, "Cmd", PlatformMac.CmdOrCtrlLabel())
	assert.Equal(t, "Ctrl", PlatformLinux.CmdOrCtrlLabel())
}
