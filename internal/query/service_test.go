package query

import (
	"testing"

	"virasat/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(catalog.Default())
}

func boolPtr(b bool) *bool { return &b }

func TestGetEventsSortedByDayRank(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(1, 100, Filters{})
	require.Equal(t, 56, resp.TotalCount)
	require.Len(t, resp.Events, 56)

	for i := 1; i < len(resp.Events); i++ {
		prev := catalog.DayRank(resp.Events[i-1].Day)
		cur := catalog.DayRank(resp.Events[i].Day)
		assert.LessOrEqual(t, prev, cur, "events out of day order at index %d", i)
	}
}

func TestGetEventsSortIsStable(t *testing.T) {
	svc := newTestService()

	// Within one day the catalog insertion order must survive the sort.
	resp := svc.GetEvents(1, 100, Filters{Day: "Day 1"})
	require.Len(t, resp.Events, 4)
	for i := 1; i < len(resp.Events); i++ {
		assert.Less(t, resp.Events[i-1].ID, resp.Events[i].ID)
	}
}

func TestGetEventsFilterByCategory(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(1, 100, Filters{Category: "Folk Dance"})
	require.NotEmpty(t, resp.Events)
	for _, e := range resp.Events {
		assert.Equal(t, "Folk Dance", e.Category)
	}
	assert.Equal(t, len(resp.Events), resp.TotalCount)
}

func TestGetEventsFilterAllIsNoConstraint(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(1, 100, Filters{Category: catalog.FilterAll, Day: catalog.FilterAll})
	assert.Equal(t, 56, resp.TotalCount)
}

func TestGetEventsFilterFeatured(t *testing.T) {
	svc := newTestService()

	featured := svc.GetEvents(1, 100, Filters{Featured: boolPtr(true)})
	require.NotEmpty(t, featured.Events)
	for _, e := range featured.Events {
		assert.True(t, e.Featured)
	}

	regular := svc.GetEvents(1, 100, Filters{Featured: boolPtr(false)})
	for _, e := range regular.Events {
		assert.False(t, e.Featured)
	}

	assert.Equal(t, 56, featured.TotalCount+regular.TotalCount)
}

func TestGetEventsSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestService()

	lower := svc.GetEvents(1, 100, Filters{Search: "shehnai"})
	upper := svc.GetEvents(1, 100, Filters{Search: "SHEHNAI"})

	require.NotEmpty(t, lower.Events)
	assert.Equal(t, lower.TotalCount, upper.TotalCount)
	assert.Equal(t, lower.Events[0].ID, upper.Events[0].ID)
}

func TestGetEventsSearchMatchesCategory(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(1, 100, Filters{Search: "sufi"})
	require.NotEmpty(t, resp.Events)
}

func TestGetEventsCombinedFilters(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(1, 100, Filters{Day: "Day 2", Featured: boolPtr(true)})
	require.NotEmpty(t, resp.Events)
	for _, e := range resp.Events {
		assert.Equal(t, "Day 2", e.Day)
		assert.True(t, e.Featured)
	}
}

func TestGetEventsNoMatches(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(1, 10, Filters{Search: "zzz-no-such-event"})
	assert.Empty(t, resp.Events)
	assert.Equal(t, 0, resp.TotalCount)
	assert.False(t, resp.HasMore)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestGetEventsPagination(t *testing.T) {
	svc := newTestService()

	page1 := svc.GetEvents(1, 10, Filters{})
	assert.Len(t, page1.Events, 10)
	assert.Equal(t, 56, page1.TotalCount)
	assert.Equal(t, 6, page1.TotalPages)
	assert.True(t, page1.HasMore)

	page6 := svc.GetEvents(6, 10, Filters{})
	assert.Len(t, page6.Events, 6)
	assert.False(t, page6.HasMore)

	// Pages must partition the catalog without overlap or loss.
	seen := make(map[int]bool)
	for p := 1; p <= page1.TotalPages; p++ {
		for _, e := range svc.GetEvents(p, 10, Filters{}).Events {
			assert.False(t, seen[e.ID], "event %d appears on more than one page", e.ID)
			seen[e.ID] = true
		}
	}
	assert.Len(t, seen, 56)
}

func TestGetEventsPagePastEnd(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(100, 10, Filters{})
	assert.Empty(t, resp.Events)
	assert.Equal(t, 56, resp.TotalCount)
	assert.False(t, resp.HasMore)
}

func TestGetEventsClampsBadInput(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEvents(-5, 0, Filters{})
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Len(t, resp.Events, DefaultPageSize)

	resp = svc.GetEvents(1, 10000, Filters{})
	assert.Len(t, resp.Events, 56) // clamped to MaxPageSize, which covers the catalog
}

func TestGetEventsByDayFirstPage(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEventsByDay(1, 2, Filters{})
	assert.Equal(t, []string{"Day 1", "Day 2"}, resp.Days)
	assert.Len(t, resp.Events, 8)
	assert.Equal(t, 56, resp.TotalCount)
	assert.True(t, resp.HasMore)
	assert.Equal(t, 8, resp.TotalPages) // 15 days at 2 per page

	require.Contains(t, resp.EventsByDay, "Day 1")
	require.Contains(t, resp.EventsByDay, "Day 2")
	assert.Len(t, resp.EventsByDay["Day 1"], 4)
}

func TestGetEventsByDayNeverSplitsADay(t *testing.T) {
	svc := newTestService()

	dayToPage := make(map[string]int)
	eventCount := 0
	first := svc.GetEventsByDay(1, 2, Filters{})
	for p := 1; p <= first.TotalPages; p++ {
		resp := svc.GetEventsByDay(p, 2, Filters{})
		for _, day := range resp.Days {
			prev, dup := dayToPage[day]
			assert.False(t, dup, "day %q on pages %d and %d", day, prev, p)
			dayToPage[day] = p
		}
		eventCount += len(resp.Events)
	}

	assert.Len(t, dayToPage, 15)
	assert.Equal(t, 56, eventCount)
}

func TestGetEventsByDayLastPage(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEventsByDay(8, 2, Filters{})
	assert.Equal(t, []string{"Concluding Day"}, resp.Days)
	assert.False(t, resp.HasMore)
}

func TestGetEventsByDayFilteredHasNoEmptyDays(t *testing.T) {
	svc := newTestService()

	resp := svc.GetEventsByDay(1, 100, Filters{Category: "Classical Music"})
	require.NotEmpty(t, resp.Days)
	for _, day := range resp.Days {
		events := resp.EventsByDay[day]
		assert.NotEmpty(t, events, "day %q present but empty", day)
		for _, e := range events {
			assert.Equal(t, "Classical Music", e.Category)
			assert.Equal(t, day, e.Day)
		}
	}
}

func TestGetEventsByDayTotalCountIsEventCount(t *testing.T) {
	svc := newTestService()

	// TotalCount counts filtered events, not days, even though pagination
	// walks the day list.
	resp := svc.GetEventsByDay(1, 2, Filters{Day: "Day 3"})
	assert.Equal(t, 4, resp.TotalCount)
	assert.Equal(t, 1, resp.TotalPages)
	assert.False(t, resp.HasMore)
}

func TestPageEventIDs(t *testing.T) {
	svc := newTestService()

	ids := svc.PageEventIDs(1, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	ids = svc.PageEventIDs(2, 4)
	assert.Equal(t, []int{5, 6, 7, 8}, ids)

	assert.Empty(t, svc.PageEventIDs(100, 10))
}
