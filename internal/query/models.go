package query

import "virasat/internal/catalog"

// Filters narrows a catalog query. A zero field (or the "All" sentinel for
// Category/Day) places no constraint on that dimension. Search matches as a
// case-insensitive substring of title, description or category.
type Filters struct {
	Category string
	Day      string
	Featured *bool
	Search   string
}

// EventsResponse is the result of a flat paginated query. TotalCount always
// reflects the filtered set, never the full catalog.
type EventsResponse struct {
	Events      []catalog.Event `json:"events"`
	TotalCount  int             `json:"total_count"`
	HasMore     bool            `json:"has_more"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

// EventsByDayResponse is the result of a day-grouped query. Pagination runs
// over distinct days, not events: TotalPages and HasMore count day windows
// while TotalCount still counts every filtered event across all days. Days
// carries the selected day labels in rank order, since JSON object keys do
// not preserve it.
type EventsByDayResponse struct {
	Events      []catalog.Event            `json:"events"`
	EventsByDay map[string][]catalog.Event `json:"events_by_day"`
	Days        []string                   `json:"days"`
	TotalCount  int                        `json:"total_count"`
	HasMore     bool                       `json:"has_more"`
	CurrentPage int                        `json:"current_page"`
	TotalPages  int                        `json:"total_pages"`
}

// EventListQuery binds the flat listing endpoint's query string.
type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Category string `form:"category"`
	Day      string `form:"day"`
	Featured *bool  `form:"featured"`
	Search   string `form:"search"`
}

// EventsByDayQuery binds the day-grouped listing endpoint's query string.
type EventsByDayQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Days     int    `form:"days" binding:"omitempty,min=1,max=15"`
	Category string `form:"category"`
	Day      string `form:"day"`
	Featured *bool  `form:"featured"`
	Search   string `form:"search"`
}

// Filters converts the bound query into engine filters.
func (q EventListQuery) Filters() Filters {
	return Filters{Category: q.Category, Day: q.Day, Featured: q.Featured, Search: q.Search}
}

// Filters converts the bound query into engine filters.
func (q EventsByDayQuery) Filters() Filters {
	return Filters{Category: q.Category, Day: q.Day, Featured: q.Featured, Search: q.Search}
}

// FiltersResponse lists the selectable filter values for the browse UI.
type FiltersResponse struct {
	Categories []string `json:"categories"`
	Days       []string `json:"days"`
}
