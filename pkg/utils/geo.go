package utils

import (
	"archtrip/internal/models/response_models"
)

// Fallback viewport used when a trip has no plottable activities.
var DefaultMapCenter = response_models.GeoPoint{Lat: 51.505, Lng: -0.09}

const (
	DefaultMapZoom   = 13
	ActiveMarkerZoom = 15
	BoundsPadding    = 50
)

// ValidGeoPoint reports whether p is inside the WGS84 coordinate range.
func ValidGeoPoint(p response_models.GeoPoint) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// BoundsOf accumulates the bounding box of all activity coordinates.
// Returns nil when there is nothing to frame.
func BoundsOf(activities []response_models.Activity) *response_models.GeoBounds {
	var bounds *response_models.GeoBounds
	for _, a := range activities {
		p := a.Coordinates
		if !ValidGeoPoint(p) {
			continue
		}
		if bounds == nil {
			bounds = &response_models.GeoBounds{SouthWest: p, NorthEast: p}
			continue
		}
		if p.Lat < bounds.SouthWest.Lat {
			bounds.SouthWest.Lat = p.Lat
		}
		if p.Lng < bounds.SouthWest.Lng {
			bounds.SouthWest.Lng = p.Lng
		}
		if p.Lat > bounds.NorthEast.Lat {
			bounds.NorthEast.Lat = p.Lat
		}
		if p.Lng > bounds.NorthEast.Lng {
			bounds.NorthEast.Lng = p.Lng
		}
	}
	return bounds
}

// FitBoundsCommand frames every activity with padding, falling back to the
// default center when the trip has no valid coordinates.
func FitBoundsCommand(activities []response_models.Activity) response_models.ViewportCommand {
	bounds := BoundsOf(activities)
	if bounds == nil {
		center := DefaultMapCenter
		return response_models.ViewportCommand{
			Kind:   response_models.ViewportSetView,
			Center: &center,
			Zoom:   DefaultMapZoom,
		}
	}
	return response_models.ViewportCommand{
		Kind:    response_models.ViewportFitBounds,
		Bounds:  bounds,
		Padding: BoundsPadding,
	}
}

// FlyToCommand frames a single activity at close zoom.
func FlyToCommand(p response_models.GeoPoint) response_models.ViewportCommand {
	center := p
	return response_models.ViewportCommand{
		Kind:   response_models.ViewportFlyTo,
		Center: &center,
		Zoom:   ActiveMarkerZoom,
	}
}
