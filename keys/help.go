package keys

import (
	"runtime"
	"strings"
)

// Platform selects the label used for CmdOrCtrl.
type Platform string

const (
	PlatformMac     Platform = "mac"
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

// CurrentPlatform returns the platform the binary runs on.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// ParsePlatform maps a GOOS value or a config string to a Platform. Unknown
// values are treated as Linux, which shares the Ctrl label with Windows.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mac", "macos", "darwin", "osx":
		return PlatformMac
	case "windows", "win":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// CmdOrCtrlLabel is the human label for the CmdOrCtrl token.
func (p Platform) CmdOrCtrlLabel() string {
	if p == PlatformMac {
		return "Cmd"
	}
	return "Ctrl"
}

// displayLabels holds key labels that are not derived from the code itself.
var displayLabels = map[string]string{
	CodeNumpadAdd:      "Num+",
	CodeNumpadSubtract: "Num-",
	CodeMinus:          "-",
	CodeEqual:          "=",
}

// acceleratorLabels holds the menu-syntax tokens for the same keys.
var acceleratorLabels = map[string]string{
	CodeNumpadAdd:      "numadd",
	CodeNumpadSubtract: "numsub",
	CodeMinus:          "-",
	CodeEqual:          "=",
}

// DisplayKeyLabel returns the short label of an action key: the letter for
// KeyA..KeyZ, the digit for Digit0..Digit9, F-keys unchanged, symbols for the
// plus/minus keys and the raw code otherwise.
func DisplayKeyLabel(code string) string {
	switch ClassifyCode(code) {
	case KeyTypeAlphabet:
		return code[3:]
	case KeyTypeDigit:
		return code[5:]
	case KeyTypeFunction:
		return code
	}
	if label, ok := displayLabels[code]; ok {
		return label
	}
	return code
}

// AcceleratorKeyLabel returns the menu accelerator token of an action key.
func AcceleratorKeyLabel(code string) string {
	switch ClassifyCode(code) {
	case KeyTypeAlphabet:
		return code[3:]
	case KeyTypeDigit:
		return code[5:]
	case KeyTypeFunction:
		return code
	}
	if label, ok := acceleratorLabels[code]; ok {
		return label
	}
	return code
}
