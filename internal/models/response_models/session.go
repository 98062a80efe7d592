package response_models

// Viewport command kinds emitted toward the map layer.
const (
	ViewportFitBounds = "fit_bounds"
	ViewportFlyTo     = "fly_to"
	ViewportSetView   = "set_view"
)

// GeoBounds is a padded bounding box enclosing a set of coordinates.
type GeoBounds struct {
	SouthWest GeoPoint `json:"southWest"`
	NorthEast GeoPoint `json:"northEast"`
}

// ViewportCommand tells the map what to frame. Exactly one of Bounds or
// Center is meaningful depending on Kind.
type ViewportCommand struct {
	Kind    string     `json:"kind"`
	Bounds  *GeoBounds `json:"bounds,omitempty"`
	Center  *GeoPoint  `json:"center,omitempty"`
	Zoom    int        `json:"zoom,omitempty"`
	Padding int        `json:"padding,omitempty"`
}

// SessionState is the snapshot shared between the itinerary list and the map.
type SessionState struct {
	SessionID        string          `json:"session_id"`
	Trip             *Trip           `json:"trip,omitempty"`
	ActiveActivityID *string         `json:"active_activity_id"`
	ExpandedDays     []int           `json:"expanded_days"`
	Viewport         ViewportCommand `json:"viewport"`
}

// SessionEvent is pushed to subscribers on every state transition.
type SessionEvent struct {
	SessionID        string          `json:"session_id"`
	ActiveActivityID *string         `json:"active_activity_id"`
	ExpandedDays     []int           `json:"expanded_days"`
	Viewport         ViewportCommand `json:"viewport"`
}
