package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status      string      `json:"status"`
	Code        int         `json:"code"`
	Message     string      `json:"message,omitempty"`
	TraceID     string      `json:"trace_id,omitempty"`
	NeedsAPIKey bool        `json:"needs_api_key,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID, _ := c.Get("trace_id")

	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request parameters",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrInvalidCredential):
		// NeedsAPIKey tells the client to reveal the credential-entry field
		// so the user can retry with their own key.
		c.JSON(http.StatusUnauthorized, APIResponse{
			Status:      "error",
			Code:        http.StatusUnauthorized,
			Message:     "Invalid API key. Please provide your own key and try again.",
			TraceID:     traceID.(string),
			NeedsAPIKey: true,
		})
	case errors.Is(err, ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, APIResponse{
			Status:  "error",
			Code:    http.StatusTooManyRequests,
			Message: "API rate limit exceeded. Please try again later.",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, APIResponse{
			Status:  "error",
			Code:    http.StatusBadGateway,
			Message: "The model returned an unusable itinerary. Please try again.",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			Message: "Unable to design your trip at this moment. Please check your API configuration.",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Session not found",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrHistoryItemNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "History item not found",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID.(string),
		})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID.(string),
		})
	}
}
