package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// ResultHandler serves the computed result boards.
type ResultHandler struct {
	resultSvc service.ResultService
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(resultSvc service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// GetResults recomputes and returns the event's boards. Nothing is cached;
// every call reflects the lanes as they stand.
// GET /api/v1/events/:id/results
func (h *ResultHandler) GetResults(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	boards, err := h.resultSvc.ComputeResults(c.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 14001, "event not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"boards": boards})
}
