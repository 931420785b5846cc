package shortcut

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"ide-commands/cmd/interfaces"
	"ide-commands/keys"
)

// Entry is one row of the effective shortcut table as shown to users and
// handed to native menu builders.
type Entry struct {
	ID            CommandID       `json:"id" yaml:"id"`
	Area          interfaces.Area `json:"area" yaml:"area"`
	Command       string          `json:"command" yaml:"command"`
	Shortcut      keys.Shortcut   `json:"shortcut" yaml:"shortcut"`
	Display       string          `json:"display,omitempty" yaml:"display,omitempty"`
	Accelerator   string          `json:"accelerator,omitempty" yaml:"accelerator,omitempty"`
	HandledByHost bool            `json:"handledByHost,omitempty" yaml:"handledByHost,omitempty"`
	Customized    bool            `json:"customized,omitempty" yaml:"customized,omitempty"`
}

// Entries lists every bindable command of table, in table order, with its
// shortcut from m. Customized marks entries that differ from defaults.
func Entries(m, defaults Map, table interfaces.CommandTable, platform keys.Platform) []Entry {
	result := make([]Entry, 0)
	for _, meta := range table.All() {
		if meta.NoShortcut {
			continue
		}
		s := m[meta.ID]
		entry := Entry{
			ID:            meta.ID,
			Area:          meta.Area,
			Command:       meta.DisplayText,
			Shortcut:      s,
			HandledByHost: meta.HandledByHost,
			Customized:    defaults[meta.ID] != s,
		}
		if s != keys.NoShortcut {
			entry.Display = keys.DisplayString(s, platform)
			entry.Accelerator = keys.AcceleratorString(s)
		}
		result = append(result, entry)
	}
	return result
}

// Format selects an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Export encodes entries in the given format.
func Export(entries []Entry, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode shortcuts: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return nil, fmt.Errorf("failed to encode shortcuts: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode shortcuts: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
