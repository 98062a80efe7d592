package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"archtrip/internal/models/request_models"
	"archtrip/internal/services"
	"archtrip/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	historyService services.HistoryServiceInterface
	sessionService services.SessionServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	historyService services.HistoryServiceInterface,
	sessionService services.SessionServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		historyService: historyService,
		sessionService: sessionService,
	}
}

// GenerateTripHandler handles POST /trips/generate. A successful generation
// is archived to history and opened as a viewing session, so the response
// carries the trip, its session id, and the initial viewport in one round
// trip.
func (p *PlannerController) GenerateTripHandler(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}
	if req.Days < 1 || req.Days > 30 {
		utils.RespondError(c, http.StatusBadRequest, "days must be between 1 and 30")
		return
	}

	trip, err := p.plannerService.GenerateItinerary(c.Request.Context(), req.Destination, req.Days, req.ApiKey)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	p.historyService.Append(c.Request.Context(), trip)
	state := p.sessionService.CreateSession(trip)

	utils.RespondSuccess(c, state, "Travel plan created successfully")
}
