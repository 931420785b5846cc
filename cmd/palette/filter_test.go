package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity(s string) string { return s }

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	items := []string{"Zoom in", "", "Save project", "Open project"}
	assert.Equal(t, items, Filter(items, "", identity))
}

func TestFilterSubstringBeforeFuzzy(t *testing.T) {
	items := []string{"Save project", "Open preferences", "Open project", "Close", "Toggle grid"}

	result := Filter(items, "proj", identity)

	assert.Equal(t, []string{"Save project", "Open project"}, result)
}

func TestFilterOrdering(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		query    string
		expected []string
	}{
		{
			name:     "substring bucket keeps input order",
			items:    []string{"Pro", "Project manager", "Open project"},
			query:    "proj",
			expected: []string{"Project manager", "Open project"},
		},
		{
			name:     "fuzzy after substring",
			items:    []string{"Pick a room, Open a jar", "Open project"},
			query:    "proj",
			expected: []string{"Open project", "Pick a room, Open a jar"},
		},
		{
			name:     "fuzzy subsequence",
			items:    []string{"Open Project", "Close scene"},
			query:    "Ooet",
			expected: []string{"Open Project"},
		},
		{
			name:     "case insensitive",
			items:    []string{"SAVE PROJECT"},
			query:    "save",
			expected: []string{"SAVE PROJECT"},
		},
		{
			name:     "empty label always fuzzy matches",
			items:    []string{"", "Zoom out", "Zoom in"},
			query:    "in",
			expected: []string{"Zoom in", ""},
		},
		{
			name:     "no match",
			items:    []string{"Zoom in"},
			query:    "xyz",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Filter(tc.items, tc.query, identity))
		})
	}
}

func TestHighlights(t *testing.T) {
	assert.Equal(t, []int{5, 6, 7, 8}, Highlights("Open project", "proj"))
	assert.Equal(t, []int{0, 7, 9, 11}, Highlights("Open project", "Ooet"))
	assert.Nil(t, Highlights("Open project", "xyz"))
	assert.Nil(t, Highlights("", "a"))
	assert.Nil(t, Highlights("Open", ""))
}
