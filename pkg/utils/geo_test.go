package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archtrip/internal/models/response_models"
	"archtrip/pkg/utils"
)

func act(lat, lng float64) response_models.Activity {
	return response_models.Activity{Coordinates: response_models.GeoPoint{Lat: lat, Lng: lng}}
}

func TestValidGeoPoint(t *testing.T) {
	assert.True(t, utils.ValidGeoPoint(response_models.GeoPoint{Lat: 48.85, Lng: 2.29}))
	assert.True(t, utils.ValidGeoPoint(response_models.GeoPoint{Lat: -90, Lng: 180}))
	assert.False(t, utils.ValidGeoPoint(response_models.GeoPoint{Lat: 91, Lng: 0}))
	assert.False(t, utils.ValidGeoPoint(response_models.GeoPoint{Lat: 0, Lng: -181}))
}

func TestBoundsOf_EnclosesAllPoints(t *testing.T) {
	bounds := utils.BoundsOf([]response_models.Activity{
		act(48.85, 2.29),
		act(48.88, 2.34),
		act(48.86, 2.32),
	})
	require.NotNil(t, bounds)
	assert.InDelta(t, 48.85, bounds.SouthWest.Lat, 1e-9)
	assert.InDelta(t, 2.29, bounds.SouthWest.Lng, 1e-9)
	assert.InDelta(t, 48.88, bounds.NorthEast.Lat, 1e-9)
	assert.InDelta(t, 2.34, bounds.NorthEast.Lng, 1e-9)
}

func TestBoundsOf_SkipsInvalidCoordinates(t *testing.T) {
	bounds := utils.BoundsOf([]response_models.Activity{
		act(48.85, 2.29),
		act(999, 999),
	})
	require.NotNil(t, bounds)
	assert.InDelta(t, 48.85, bounds.NorthEast.Lat, 1e-9)
}

func TestFitBoundsCommand_FallsBackWhenEmpty(t *testing.T) {
	cmd := utils.FitBoundsCommand(nil)
	assert.Equal(t, response_models.ViewportSetView, cmd.Kind)
	require.NotNil(t, cmd.Center)
	assert.Equal(t, utils.DefaultMapCenter, *cmd.Center)
	assert.Equal(t, utils.DefaultMapZoom, cmd.Zoom)
}

func TestFlyToCommand(t *testing.T) {
	cmd := utils.FlyToCommand(response_models.GeoPoint{Lat: 1, Lng: 2})
	assert.Equal(t, response_models.ViewportFlyTo, cmd.Kind)
	assert.Equal(t, utils.ActiveMarkerZoom, cmd.Zoom)
	assert.InDelta(t, 1.0, cmd.Center.Lat, 1e-9)
}
