package app

import (
	"fmt"
	"strings"
	"time"
)

// project is the in-memory state the editors operate on.
type project struct {
	name           string
	scenes         []string
	externalEvents []string
	dirty          bool
	savedAt        time.Time
}

func newProject(name string) *project {
	return &project{
		name:           name,
		scenes:         []string{"Level 1", "Menu"},
		externalEvents: []string{"Player controls"},
	}
}

func (p *project) addScene() string {
	name := fmt.Sprintf("Scene %d", len(p.scenes)+1)
	p.scenes = append(p.scenes, name)
	p.dirty = true
	return name
}

// sceneEditor holds the view state of one scene tab.
type sceneEditor struct {
	scene      string
	zoom       int
	grid       bool
	windowMask bool
	panels     map[string]bool
}

func newSceneEditor(scene string) *sceneEditor {
	return &sceneEditor{scene: scene, zoom: 100, panels: make(map[string]bool)}
}

func (s *sceneEditor) togglePanel(name string) bool {
	s.panels[name] = !s.panels[name]
	return s.panels[name]
}

const (
	minZoom = 10
	maxZoom = 800
)

func (s *sceneEditor) zoomBy(factor float64) {
	s.zoom = min(maxZoom, max(minZoom, int(float64(s.zoom)*factor)))
}

func (s *sceneEditor) String() string {
	var panels []string
	for _, name := range []string{"objects", "instances", "properties", "layers"} {
		if s.panels[name] {
			panels = append(panels, name)
		}
	}
	if len(panels) == 0 {
		panels = append(panels, "none")
	}
	return fmt.Sprintf("Scene %q  zoom %d%%  grid %s  mask %s\nPanels: %s",
		s.scene, s.zoom, onOff(s.grid), onOff(s.windowMask), strings.Join(panels, ", "))
}

// eventRow is one line of an events sheet.
type eventRow struct {
	text     string
	depth    int
	disabled bool
	inverted bool
	comment  bool
}

// eventsEditor holds the view state of one events tab.
type eventsEditor struct {
	scene    string
	events   []eventRow
	selected int
	fontSize int
	search   string
}

func newEventsEditor(scene string) *eventsEditor {
	return &eventsEditor{
		scene:    scene,
		fontSize: 12,
		events: []eventRow{
			{text: "At the beginning of the scene"},
			{text: "Player is on floor"},
		},
	}
}

func (e *eventsEditor) add(row eventRow) {
	if len(e.events) == 0 {
		e.events = append(e.events, row)
		e.selected = 0
		return
	}
	at := e.selected + 1
	e.events = append(e.events[:at], append([]eventRow{row}, e.events[at:]...)...)
	e.selected = at
}

func (e *eventsEditor) current() *eventRow {
	if e.selected < 0 || e.selected >= len(e.events) {
		return nil
	}
	return &e.events[e.selected]
}

func (e *eventsEditor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Events of %q  font %dpt", e.scene, e.fontSize)
	if e.search != "" {
		fmt.Fprintf(&b, "  search %q", e.search)
	}
	for i, row := range e.events {
		b.WriteString("\n")
		marker := "  "
		if i == e.selected {
			marker = "> "
		}
		text := row.text
		if row.comment {
			text = "// " + text
		}
		if row.inverted {
			text = "NOT " + text
		}
		if row.disabled {
			text += " (disabled)"
		}
		if e.search != "" && strings.Contains(strings.ToLower(row.text), strings.ToLower(e.search)) {
			text += " *"
		}
		b.WriteString(marker + strings.Repeat("  ", row.depth) + text)
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
