package response_models

// HistoryItem is an archived copy of a generated trip. HistoryId and
// Timestamp are assigned exactly once, when the trip is appended to history;
// reading persisted items back must never mint new ones.
type HistoryItem struct {
	Trip
	HistoryID string `json:"historyId"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}
