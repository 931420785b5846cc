package keys

import (
	"strings"
)

// KeyType classifies a physical key code. Only recognized key types can end a
// shortcut.
type KeyType int

const (
	KeyTypeInvalid KeyType = iota
	KeyTypeAlphabet
	KeyTypeDigit
	KeyTypeFunction
	KeyTypeNumpadPlusMinus
	KeyTypeRowPlusMinus

	// KeyTypeOther keys (Tab, Space) are only valid together with CmdOrCtrl or
	// Alt so that they never clobber keyboard navigation.
	KeyTypeOther
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeAlphabet:
		return "alphabet"
	case KeyTypeDigit:
		return "digit"
	case KeyTypeFunction:
		return "function"
	case KeyTypeNumpadPlusMinus:
		return "numpad"
	case KeyTypeRowPlusMinus:
		return "row"
	case KeyTypeOther:
		return "other"
	default:
		return "invalid"
	}
}

// Modifier tokens, in the only order they may appear in a Shortcut.
const (
	TokenCmdOrCtrl = "CmdOrCtrl"
	TokenShift     = "Shift"
	TokenAlt       = "Alt"
)

// Separator joins shortcut tokens.
const Separator = "+"

var modifierOrder = []string{TokenCmdOrCtrl, TokenShift, TokenAlt}

// Physical key codes that are not part of a contiguous range.
const (
	CodeNumpadAdd      = "NumpadAdd"
	CodeNumpadSubtract = "NumpadSubtract"
	CodeMinus          = "Minus"
	CodeEqual          = "Equal"
	CodeTab            = "Tab"
	CodeSpace          = "Space"
)

// KeyEvent is a raw key press: the physical key code (not the produced
// character) and the held modifiers.
type KeyEvent struct {
	Code  string
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// Shortcut is the canonical serialization of a key combination, for example
// "CmdOrCtrl+Shift+KeyS". Two shortcuts match iff their strings are equal.
type Shortcut string

// NoShortcut means a command has no key bound.
const NoShortcut Shortcut = ""

// Tokens splits the shortcut on the separator.
func (s Shortcut) Tokens() []string {
	if s == NoShortcut {
		return nil
	}
	return strings.Split(string(s), Separator)
}

// Key returns the action-key token, or "" for an empty shortcut.
func (s Shortcut) Key() string {
	tokens := s.Tokens()
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

// ClassifyCode returns the key type of a physical key code.
func ClassifyCode(code string) KeyType {
	switch {
	case isAlphabetCode(code):
		return KeyTypeAlphabet
	case isDigitCode(code):
		return KeyTypeDigit
	case isFunctionCode(code):
		return KeyTypeFunction
	case code == CodeNumpadAdd || code == CodeNumpadSubtract:
		return KeyTypeNumpadPlusMinus
	case code == CodeMinus || code == CodeEqual:
		return KeyTypeRowPlusMinus
	case code == CodeTab || code == CodeSpace:
		return KeyTypeOther
	}
	return KeyTypeInvalid
}

// KeyA..KeyZ
func isAlphabetCode(code string) bool {
	return len(code) == 4 && strings.HasPrefix(code, "Key") && code[3] >= 'A' && code[3] <= 'Z'
}

// Digit0..Digit9
func isDigitCode(code string) bool {
	return len(code) == 6 && strings.HasPrefix(code, "Digit") && code[5] >= '0' && code[5] <= '9'
}

// F1..F12
func isFunctionCode(code string) bool {
	switch len(code) {
	case 2:
		return code[0] == 'F' && code[1] >= '1' && code[1] <= '9'
	case 3:
		return code[0] == 'F' && code[1] == '1' && code[2] >= '0' && code[2] <= '2'
	}
	return false
}

// modifierTokens returns the held modifiers in canonical order.
func modifierTokens(ev KeyEvent) []string {
	tokens := make([]string, 0, len(modifierOrder)+1)
	if ev.Ctrl || ev.Meta {
		tokens = append(tokens, TokenCmdOrCtrl)
	}
	if ev.Shift {
		tokens = append(tokens, TokenShift)
	}
	if ev.Alt {
		tokens = append(tokens, TokenAlt)
	}
	return tokens
}

func isModifierToken(token string) bool {
	for _, m := range modifierOrder {
		if m == token {
			return true
		}
	}
	return false
}
