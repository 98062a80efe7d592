package controllers

import (
	"github.com/gin-gonic/gin"

	"archtrip/internal/services"
	"archtrip/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{historyService: historyService}
}

// ListHistoryHandler handles GET /history, newest first.
func (h *HistoryController) ListHistoryHandler(c *gin.Context) {
	items := h.historyService.List(c.Request.Context())
	utils.RespondSuccess(c, items, "History fetched successfully")
}

// ClearHistoryHandler handles DELETE /history. Destructive and
// unconditional; the confirmation dialog is the client's concern.
func (h *HistoryController) ClearHistoryHandler(c *gin.Context) {
	h.historyService.Clear(c.Request.Context())
	utils.RespondSuccess(c, nil, "History cleared")
}
