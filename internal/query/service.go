package query

import (
	"math"
	"sort"
	"strings"

	"virasat/internal/catalog"
)

// Defaults and clamps for pagination input. Out-of-range values are clamped,
// never rejected.
const (
	DefaultPageSize    = 10
	MaxPageSize        = 100
	DefaultDaysPerPage = 2
)

// Service filters, sorts and paginates the immutable catalog. All methods are
// pure and idempotent for identical inputs.
type Service interface {
	GetEvents(page, pageSize int, f Filters) *EventsResponse
	GetEventsByDay(page, daysPerPage int, f Filters) *EventsByDayResponse
	PageEventIDs(page, pageSize int) []int
}

type service struct {
	catalog *catalog.Catalog
}

func NewService(c *catalog.Catalog) Service {
	return &service{catalog: c}
}

// filter applies the pipeline in fixed order: category, day, featured, search.
func (s *service) filter(f Filters) []catalog.Event {
	events := s.catalog.Events()

	if f.Category != "" && f.Category != catalog.FilterAll {
		events = keep(events, func(e catalog.Event) bool { return e.Category == f.Category })
	}
	if f.Day != "" && f.Day != catalog.FilterAll {
		events = keep(events, func(e catalog.Event) bool { return e.Day == f.Day })
	}
	if f.Featured != nil {
		events = keep(events, func(e catalog.Event) bool { return e.Featured == *f.Featured })
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		events = keep(events, func(e catalog.Event) bool {
			return strings.Contains(strings.ToLower(e.Title), q) ||
				strings.Contains(strings.ToLower(e.Description), q) ||
				strings.Contains(strings.ToLower(e.Category), q)
		})
	}

	return events
}

func keep(events []catalog.Event, pred func(catalog.Event) bool) []catalog.Event {
	out := events[:0:0]
	for _, e := range events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func clampPage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

func clampPageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

func totalPages(count, per int) int {
	return int(math.Ceil(float64(count) / float64(per)))
}

// GetEvents returns one flat page of filtered events, stable-sorted ascending
// by day rank. A page past the end yields an empty slice with HasMore false.
func (s *service) GetEvents(page, pageSize int, f Filters) *EventsResponse {
	page = clampPage(page)
	pageSize = clampPageSize(pageSize)

	filtered := s.filter(f)
	sort.SliceStable(filtered, func(i, j int) bool {
		return catalog.DayRank(filtered[i].Day) < catalog.DayRank(filtered[j].Day)
	})

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	pages := totalPages(len(filtered), pageSize)
	return &EventsResponse{
		Events:      filtered[start:end],
		TotalCount:  len(filtered),
		HasMore:     page < pages,
		CurrentPage: page,
		TotalPages:  pages,
	}
}

// GetEventsByDay returns one page of whole days. Events are grouped by day
// label preserving catalog order within each day, and the page window slices
// the rank-sorted list of distinct days rather than the event list, so a day
// with many events is never split across pages.
func (s *service) GetEventsByDay(page, daysPerPage int, f Filters) *EventsByDayResponse {
	page = clampPage(page)
	if daysPerPage <= 0 {
		daysPerPage = DefaultDaysPerPage
	}

	filtered := s.filter(f)

	grouped := make(map[string][]catalog.Event)
	var days []string
	for _, e := range filtered {
		if _, ok := grouped[e.Day]; !ok {
			days = append(days, e.Day)
		}
		grouped[e.Day] = append(grouped[e.Day], e)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return catalog.DayRank(days[i]) < catalog.DayRank(days[j])
	})

	start := (page - 1) * daysPerPage
	end := start + daysPerPage
	if start > len(days) {
		start = len(days)
	}
	if end > len(days) {
		end = len(days)
	}
	selected := days[start:end]

	pageDays := make(map[string][]catalog.Event, len(selected))
	var flat []catalog.Event
	for _, day := range selected {
		pageDays[day] = grouped[day]
		flat = append(flat, grouped[day]...)
	}

	pages := totalPages(len(days), daysPerPage)
	return &EventsByDayResponse{
		Events:      flat,
		EventsByDay: pageDays,
		Days:        selected,
		TotalCount:  len(filtered),
		HasMore:     page < pages,
		CurrentPage: page,
		TotalPages:  pages,
	}
}

// PageEventIDs reports the ids occupying a flat unfiltered page. The preloader
// uses this to warm exactly the events a listing view is about to show,
// instead of estimating an index range.
func (s *service) PageEventIDs(page, pageSize int) []int {
	resp := s.GetEvents(page, pageSize, Filters{})
	ids := make([]int, len(resp.Events))
	for i, e := range resp.Events {
		ids[i] = e.ID
	}
	return ids
}
