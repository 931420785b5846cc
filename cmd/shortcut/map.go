package shortcut

import (
	"sort"

	"ide-commands/cmd/interfaces"
	"ide-commands/keys"
	"ide-commands/log"
)

type CommandID = interfaces.CommandID

// Map binds command ids to canonical shortcuts. An empty shortcut means the
// command has no key.
type Map map[CommandID]keys.Shortcut

// Clone returns an independent copy.
func (m Map) Clone() Map {
	result := make(Map, len(m))
	for id, s := range m {
		result[id] = s
	}
	return result
}

// SortedIDs returns the map's ids in ascending order. The resolver scans in
// this order so that a misconfigured map still resolves deterministically.
func (m Map) SortedIDs() []CommandID {
	ids := make([]CommandID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Merge overlays user entries on defaults. User entries for unknown or
// palette-only commands, and entries that fail to parse, are dropped with a
// warning so one bad line never discards the whole file.
func Merge(defaults Map, user map[CommandID]string, table interfaces.CommandTable) Map {
	result := defaults.Clone()
	for _, id := range sortedRawIDs(user) {
		raw := user[id]
		meta, ok := table.Metadata(id)
		if !ok {
			log.WarningLog.Printf("ignoring shortcut for unknown command %s", id)
			continue
		}
		if meta.NoShortcut {
			log.WarningLog.Printf("ignoring shortcut for %s: command cannot have a shortcut", id)
			continue
		}
		parsed, err := keys.ParseShortcut(raw)
		if err != nil {
			log.WarningLog.Printf("ignoring shortcut for %s: %v", id, err)
			continue
		}
		result[id] = parsed
	}
	return result
}

// Overrides returns the entries of m that differ from defaults, in the form
// persisted to disk.
func Overrides(defaults, m Map) map[CommandID]string {
	result := make(map[CommandID]string)
	for id, s := range m {
		if d, ok := defaults[id]; ok && d == s {
			continue
		}
		result[id] = string(s)
	}
	return result
}

func sortedRawIDs(m map[CommandID]string) []CommandID {
	ids := make([]CommandID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
