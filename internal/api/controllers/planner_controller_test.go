package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archtrip/internal/api/controllers"
	"archtrip/internal/models/response_models"
	"archtrip/internal/services"
	"archtrip/pkg/middleware"
	"archtrip/pkg/utils"
)

type fakePlannerService struct {
	trip *response_models.Trip
	err  error
}

func (f *fakePlannerService) GenerateItinerary(context.Context, string, int, string) (*response_models.Trip, error) {
	return f.trip, f.err
}

type fakeHistoryService struct {
	appended int
}

func (f *fakeHistoryService) List(context.Context) []response_models.HistoryItem { return nil }

func (f *fakeHistoryService) Append(_ context.Context, trip *response_models.Trip) []response_models.HistoryItem {
	f.appended++
	return []response_models.HistoryItem{{Trip: *trip, HistoryID: "h1", Timestamp: 1}}
}

func (f *fakeHistoryService) Get(context.Context, string) (*response_models.HistoryItem, bool) {
	return nil, false
}

func (f *fakeHistoryService) Clear(context.Context) {}

func newPlannerRouter(planner services.PlannerServiceInterface, history services.HistoryServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	ctrl := controllers.NewPlannerController(planner, history, services.NewSessionService())
	r.POST("/trips/generate", ctrl.GenerateTripHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/trips/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGenerateTripHandler_Success(t *testing.T) {
	history := &fakeHistoryService{}
	planner := &fakePlannerService{trip: &response_models.Trip{
		Destination:  "Paris",
		DurationDays: 3,
		Schedule: []response_models.DaySchedule{
			{DayNumber: 1, Activities: []response_models.Activity{
				{ID: "d1-a1", Title: "Eiffel Tower", Coordinates: response_models.GeoPoint{Lat: 48.85, Lng: 2.29}},
			}},
		},
	}}

	w, resp := doRequest(t, newPlannerRouter(planner, history), `{"destination":"Paris","days":3}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
	assert.Equal(t, 1, history.appended)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var state response_models.SessionState
	require.NoError(t, json.Unmarshal(data, &state))
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, "Paris", state.Trip.Destination)
	assert.Equal(t, response_models.ViewportFitBounds, state.Viewport.Kind)
}

func TestGenerateTripHandler_InvalidCredentialRevealsKeyPrompt(t *testing.T) {
	planner := &fakePlannerService{err: utils.ErrInvalidCredential}

	w, resp := doRequest(t, newPlannerRouter(planner, &fakeHistoryService{}), `{"destination":"Paris","days":3}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, resp.NeedsAPIKey)
}

func TestGenerateTripHandler_RateLimited(t *testing.T) {
	planner := &fakePlannerService{err: utils.ErrRateLimited}

	w, _ := doRequest(t, newPlannerRouter(planner, &fakeHistoryService{}), `{"destination":"Paris","days":3}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestGenerateTripHandler_ValidatesInput(t *testing.T) {
	history := &fakeHistoryService{}
	r := newPlannerRouter(&fakePlannerService{}, history)

	w, _ := doRequest(t, r, `{"destination":"","days":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, `{"destination":"Paris","days":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, `{"destination":"Paris","days":31}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, history.appended)
}
