package response_models

// GeoPoint is a WGS84 coordinate pair. Upstream models are asked for
// 8-decimal precision but that is advisory, not validated here.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity types the generator is allowed to emit.
const (
	ActivityTypeSightseeing   = "sightseeing"
	ActivityTypeNature        = "nature"
	ActivityTypeCulture       = "culture"
	ActivityTypeFood          = "food"
	ActivityTypeShopping      = "shopping"
	ActivityTypeEntertainment = "entertainment"
	ActivityTypeRelax         = "relax"
	ActivityTypeTransit       = "transit"
)

// Activity is a single scheduled stop within a day. Every optional field may
// be absent in a model response; only the normalizer guarantees Title and ID.
type Activity struct {
	ID           string   `json:"id"`
	Time         string   `json:"time"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	LocationName string   `json:"locationName"`
	Coordinates  GeoPoint `json:"coordinates"`
	Duration     string   `json:"duration"`
	CostEstimate string   `json:"costEstimate"`
	Type         string   `json:"type"`

	// Extended fields for expandable cards
	Images            []string `json:"images,omitempty"`
	FullDescription   string   `json:"fullDescription,omitempty"`
	OpeningHours      string   `json:"openingHours,omitempty"`
	SuggestedDuration string   `json:"suggestedDuration,omitempty"`
	TicketPrice       string   `json:"ticketPrice,omitempty"`
	BestTimeToVisit   string   `json:"bestTimeToVisit,omitempty"`
	Address           string   `json:"address,omitempty"`
	TransportToNext   string   `json:"transportToNext,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

type DaySchedule struct {
	DayNumber  int        `json:"dayNumber"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// TripBudget values are free-text ("₹15,000", "about $200"), never parsed.
type TripBudget struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
	Total         string `json:"total"`
	Currency      string `json:"currency"`
}

type Trip struct {
	Destination     string        `json:"destination"`
	DurationDays    int           `json:"durationDays"`
	Summary         string        `json:"summary"`
	BestTimeToVisit string        `json:"bestTimeToVisit"`
	Budget          TripBudget    `json:"budget"`
	Schedule        []DaySchedule `json:"schedule"`
}

// AllActivities flattens the schedule in day order.
func (t *Trip) AllActivities() []Activity {
	var out []Activity
	for _, day := range t.Schedule {
		out = append(out, day.Activities...)
	}
	return out
}

// FindActivity returns the activity with the given id and the 1-based day
// number it belongs to, or nil and 0 when no such id exists in the trip.
func (t *Trip) FindActivity(id string) (*Activity, int) {
	for di := range t.Schedule {
		day := &t.Schedule[di]
		for ai := range day.Activities {
			if day.Activities[ai].ID == id {
				return &day.Activities[ai], day.DayNumber
			}
		}
	}
	return nil, 0
}
