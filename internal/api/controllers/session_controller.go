package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"archtrip/internal/models/request_models"
	"archtrip/internal/services"
	"archtrip/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
	historyService services.HistoryServiceInterface
}

func NewSessionController(
	sessionService services.SessionServiceInterface,
	historyService services.HistoryServiceInterface,
) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		historyService: historyService,
	}
}

// CreateSessionHandler handles POST /sessions, loading an archived trip
// into a viewing session.
func (s *SessionController) CreateSessionHandler(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.HistoryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "history_id is required")
		return
	}

	item, ok := s.historyService.Get(c.Request.Context(), req.HistoryID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrHistoryItemNotFound)
		return
	}

	trip := item.Trip
	state := s.sessionService.CreateSession(&trip)
	utils.RespondSuccess(c, state, "Session created")
}

func (s *SessionController) GetSessionHandler(c *gin.Context) {
	state, err := s.sessionService.Get(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Session fetched")
}

// SelectActivityHandler handles POST /sessions/:sessionId/select.
func (s *SessionController) SelectActivityHandler(c *gin.Context) {
	var req request_models.SelectActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "activity_id is required")
		return
	}

	state, err := s.sessionService.Select(c.Param("sessionId"), req.ActivityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Activity selected")
}

// ClearSelectionHandler handles POST /sessions/:sessionId/clear.
func (s *SessionController) ClearSelectionHandler(c *gin.Context) {
	state, err := s.sessionService.ClearSelection(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Selection cleared")
}

// ToggleDayHandler handles POST /sessions/:sessionId/days/:dayNumber/toggle.
func (s *SessionController) ToggleDayHandler(c *gin.Context) {
	dayNumber, err := strconv.Atoi(c.Param("dayNumber"))
	if err != nil || dayNumber < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	state, err := s.sessionService.ToggleDay(c.Param("sessionId"), dayNumber)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Day toggled")
}

// ShareTextHandler handles GET /sessions/:sessionId/share-text, producing
// the plaintext summary for the clipboard.
func (s *SessionController) ShareTextHandler(c *gin.Context) {
	text, err := s.sessionService.ShareText(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"text": text}, "Share text generated")
}
