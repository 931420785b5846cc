package keys

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyShortcut    = errors.New("empty shortcut")
	ErrUnknownKey       = errors.New("unknown key code")
	ErrModifierOrder    = errors.New("modifiers out of order or repeated")
	ErrModifierRequired = errors.New("key requires CmdOrCtrl or Alt")
	ErrReserved         = errors.New("shortcut is reserved")
)

// EncodeEvent turns a key event into its canonical shortcut. It returns false
// when the key is not a recognized action key, when a Tab/Space press lacks
// CmdOrCtrl or Alt, or when the result is reserved.
func EncodeEvent(ev KeyEvent) (Shortcut, bool) {
	keyType := ClassifyCode(ev.Code)
	if keyType == KeyTypeInvalid {
		return NoShortcut, false
	}
	if keyType == KeyTypeOther && !(ev.Ctrl || ev.Meta || ev.Alt) {
		return NoShortcut, false
	}

	tokens := append(modifierTokens(ev), ev.Code)
	shortcut := Shortcut(strings.Join(tokens, Separator))
	if IsReserved(shortcut) {
		return NoShortcut, false
	}
	return shortcut, true
}

// PartialShortcut renders what the user is holding while composing a
// shortcut. Modifier-only presses give strings like "CmdOrCtrl+Shift" that are
// fine to display but never actionable; see IsComplete.
func PartialShortcut(ev KeyEvent) string {
	tokens := modifierTokens(ev)
	if ClassifyCode(ev.Code) != KeyTypeInvalid {
		tokens = append(tokens, ev.Code)
	}
	return strings.Join(tokens, Separator)
}

// IsComplete reports whether raw is a bindable shortcut.
func IsComplete(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := ParseShortcut(raw)
	return err == nil
}

// ParseShortcut validates a shortcut read from user configuration. The empty
// string is accepted and means "no shortcut".
func ParseShortcut(raw string) (Shortcut, error) {
	if raw == "" {
		return NoShortcut, nil
	}
	tokens := strings.Split(raw, Separator)
	code := tokens[len(tokens)-1]
	keyType := ClassifyCode(code)
	if keyType == KeyTypeInvalid {
		if isModifierToken(code) {
			return NoShortcut, fmt.Errorf("%q: %w", raw, ErrEmptyShortcut)
		}
		return NoShortcut, fmt.Errorf("%q: %w", raw, ErrUnknownKey)
	}

	next := 0
	hasCmdOrAlt := false
	for _, token := range tokens[:len(tokens)-1] {
		found := false
		for next < len(modifierOrder) {
			if modifierOrder[next] == token {
				found = true
				next++
				break
			}
			next++
		}
		if !found {
			return NoShortcut, fmt.Errorf("%q: %w", raw, ErrModifierOrder)
		}
		if token == TokenCmdOrCtrl || token == TokenAlt {
			hasCmdOrAlt = true
		}
	}

	if keyType == KeyTypeOther && !hasCmdOrAlt {
		return NoShortcut, fmt.Errorf("%q: %w", raw, ErrModifierRequired)
	}
	shortcut := Shortcut(raw)
	if IsReserved(shortcut) {
		return NoShortcut, fmt.Errorf("%q: %w", raw, ErrReserved)
	}
	return shortcut, nil
}

// DisplayString renders a shortcut (complete or partial) for people, for
// example "Ctrl + Shift + A" or "Cmd + Shift + A".
func DisplayString(s Shortcut, p Platform) string {
	tokens := s.Tokens()
	labels := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch token {
		case TokenCmdOrCtrl:
			labels = append(labels, p.CmdOrCtrlLabel())
		case TokenShift, TokenAlt:
			labels = append(labels, token)
		default:
			labels = append(labels, DisplayKeyLabel(token))
		}
	}
	return strings.Join(labels, " + ")
}

// AcceleratorString renders a shortcut in the host window-manager menu
// syntax. CmdOrCtrl is left for the host to translate.
func AcceleratorString(s Shortcut) string {
	tokens := s.Tokens()
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if isModifierToken(token) {
			out = append(out, token)
			continue
		}
		out = append(out, AcceleratorKeyLabel(token))
	}
	return strings.Join(out, Separator)
}
