package catalog

// Event represents one bookable festival activity. The catalog is built once
// at startup and never mutated, so Event values are safe to share and cache.
type Event struct {
	ID             int    `json:"id"`
	Day            string `json:"day"`
	Date           string `json:"date"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	Seats          string `json:"seats"`
	Price          string `json:"price"`
	Featured       bool   `json:"featured"`
	Category       string `json:"category"`
	Duration       string `json:"duration,omitempty"`
	AgeRestriction string `json:"age_restriction,omitempty"`
}
