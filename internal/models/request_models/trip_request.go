package request_models

// GenerateTripRequest asks for a fresh itinerary. ApiKey is an optional
// caller-supplied credential override used after an authorization failure.
type GenerateTripRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	ApiKey      string `json:"api_key,omitempty"`
}

type CreateSessionRequest struct {
	HistoryID string `json:"history_id,omitempty"`
}

type SelectActivityRequest struct {
	ActivityID string `json:"activity_id"`
}
