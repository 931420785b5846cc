package shortcut

import (
	"fmt"
	"sort"
	"strings"

	"ide-commands/keys"
)

// Conflict is a shortcut bound to more than one command. The resolver only
// ever fires the first of Commands.
type Conflict struct {
	Shortcut keys.Shortcut
	Commands []CommandID
}

func (c Conflict) String() string {
	ids := make([]string, len(c.Commands))
	for i, id := range c.Commands {
		ids[i] = string(id)
	}
	return fmt.Sprintf("%s is bound to %s", c.Shortcut, strings.Join(ids, ", "))
}

// Conflicts lists every shortcut bound to several commands, sorted by
// shortcut. Command ids within a conflict are sorted too.
func Conflicts(m Map) []Conflict {
	byShortcut := make(map[keys.Shortcut][]CommandID)
	for _, id := range m.SortedIDs() {
		s := m[id]
		if s == keys.NoShortcut {
			continue
		}
		byShortcut[s] = append(byShortcut[s], id)
	}

	conflicts := make([]Conflict, 0)
	for s, ids := range byShortcut {
		if len(ids) < 2 {
			continue
		}
		conflicts = append(conflicts, Conflict{Shortcut: s, Commands: ids})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Shortcut < conflicts[j].Shortcut
	})
	return conflicts
}

// ConflictsWith returns the commands other than id already bound to s.
func ConflictsWith(m Map, id CommandID, s keys.Shortcut) []CommandID {
	if s == keys.NoShortcut {
		return nil
	}
	var result []CommandID
	for _, other := range m.SortedIDs() {
		if other != id && m[other] == s {
			result = append(result, other)
		}
	}
	return result
}
