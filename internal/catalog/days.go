package catalog

// UnknownDayRank sorts any day label missing from the order table after every
// known label. Ties between unknown labels are left to the caller's stable sort.
const UnknownDayRank = 999

// dayOrder totally orders the festival schedule. Every day label used by the
// catalog data must appear here; anything else ranks last.
var dayOrder = map[string]int{
	"Day 1":          1,
	"Day 2":          2,
	"Day 3":          3,
	"Day 4":          4,
	"Day 5":          5,
	"Day 6":          6,
	"Day 7":          7,
	"Day 8":          8,
	"Day 9":          9,
	"Day 10":         10,
	"Day 11":         11,
	"Day 12":         12,
	"Day 13":         13,
	"Day 14":         14,
	"Concluding Day": 15,
}

// DayRank returns the sort rank for a day label, or UnknownDayRank when the
// label is not part of the schedule.
func DayRank(day string) int {
	if rank, ok := dayOrder[day]; ok {
		return rank
	}
	return UnknownDayRank
}
