package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 56, c.Len())
	assert.Len(t, c.Events(), 56)
}

func TestEventByID(t *testing.T) {
	c := Default()

	event, ok := c.EventByID(1)
	require.True(t, ok)
	assert.Equal(t, "Inaugural Shehnai Recital", event.Title)
	assert.Equal(t, "Day 1", event.Day)

	_, ok = c.EventByID(9999)
	assert.False(t, ok)

	_, ok = c.EventByID(0)
	assert.False(t, ok)
}

func TestEventsReturnsCopy(t *testing.T) {
	c := Default()

	events := c.Events()
	events[0].Title = "mutated"

	fresh, ok := c.EventByID(events[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Title)
}

func TestNewCopiesInput(t *testing.T) {
	input := []Event{
		{ID: 1, Day: "Day 1", Title: "First"},
		{ID: 2, Day: "Day 2", Title: "Second"},
	}
	c := New(input)

	input[0].Title = "mutated"

	event, ok := c.EventByID(1)
	require.True(t, ok)
	assert.Equal(t, "First", event.Title)
}

func TestFeatured(t *testing.T) {
	c := Default()

	featured := c.Featured()
	require.NotEmpty(t, featured)
	for _, e := range featured {
		assert.True(t, e.Featured, "event %d listed as featured but flag is false", e.ID)
	}
	assert.Len(t, featured, 13)
}

func TestCategories(t *testing.T) {
	c := Default()

	categories := c.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, FilterAll, categories[0])

	// Distinct values, sorted, no duplicate of the sentinel
	seen := make(map[string]bool)
	for i, cat := range categories[1:] {
		assert.False(t, seen[cat], "duplicate category %q", cat)
		seen[cat] = true
		if i > 0 {
			assert.LessOrEqual(t, categories[i], cat, "categories not sorted at %q", cat)
		}
	}
	assert.Contains(t, categories, "Classical Music")
	assert.Contains(t, categories, "Folk Dance")
}

func TestDaysOrderedByRank(t *testing.T) {
	c := Default()

	days := c.Days()
	require.Len(t, days, 16) // "All" + 14 numbered days + concluding day
	assert.Equal(t, FilterAll, days[0])
	assert.Equal(t, "Day 1", days[1])
	assert.Equal(t, "Day 14", days[14])
	assert.Equal(t, "Concluding Day", days[15])

	for i := 2; i < len(days); i++ {
		assert.Less(t, DayRank(days[i-1]), DayRank(days[i]),
			"days out of rank order: %q before %q", days[i-1], days[i])
	}
}

func TestDayRank(t *testing.T) {
	assert.Equal(t, 1, DayRank("Day 1"))
	assert.Equal(t, 14, DayRank("Day 14"))
	assert.Equal(t, 15, DayRank("Concluding Day"))
	assert.Equal(t, UnknownDayRank, DayRank("Someday"))
	assert.Equal(t, UnknownDayRank, DayRank(""))
}
