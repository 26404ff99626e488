package catalog

import "sort"

// FilterAll is the sentinel option prepended to every filter value list.
// A filter set to FilterAll places no constraint on that dimension.
const FilterAll = "All"

// Catalog is the immutable source of truth for festival events. All accessors
// are pure reads; there are no create, update or delete operations.
type Catalog struct {
	events []Event
	byID   map[int]Event
}

// New builds a catalog from the given events. The slice is copied so later
// mutation of the argument cannot leak into the catalog.
func New(events []Event) *Catalog {
	c := &Catalog{
		events: make([]Event, len(events)),
		byID:   make(map[int]Event, len(events)),
	}
	copy(c.events, events)
	for _, e := range c.events {
		c.byID[e.ID] = e
	}
	return c
}

// Default returns a catalog backed by the static festival dataset.
func Default() *Catalog {
	return New(festivalEvents)
}

// Events returns all events in catalog order.
func (c *Catalog) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len reports the number of events in the catalog.
func (c *Catalog) Len() int {
	return len(c.events)
}

// EventByID looks up an event by its unique id. A missing id is an expected
// outcome, not an error; callers must branch on the boolean.
func (c *Catalog) EventByID(id int) (Event, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Featured returns all featured events in catalog order.
func (c *Catalog) Featured() []Event {
	var out []Event
	for _, e := range c.events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns FilterAll followed by every distinct category value,
// sorted lexicographically.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var distinct []string
	for _, e := range c.events {
		if !seen[e.Category] {
			seen[e.Category] = true
			distinct = append(distinct, e.Category)
		}
	}
	sort.Strings(distinct)
	return append([]string{FilterAll}, distinct...)
}

// Days returns FilterAll followed by every distinct day label, ordered by day
// rank. Unknown labels sort last and keep their catalog first-appearance order.
func (c *Catalog) Days() []string {
	seen := make(map[string]bool)
	var distinct []string
	for _, e := range c.events {
		if !seen[e.Day] {
			seen[e.Day] = true
			distinct = append(distinct, e.Day)
		}
	}
	sort.SliceStable(distinct, func(i, j int) bool {
		return DayRank(distinct[i]) < DayRank(distinct[j])
	})
	return append([]string{FilterAll}, distinct...)
}
