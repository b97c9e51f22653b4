package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// TimerHandler serves the live event clock. Mutations are restricted to the
// owning club (or admin); Query is open to any authenticated user since the
// spectator screens poll it.
type TimerHandler struct {
	timerSvc service.TimerService
	eventSvc service.EventService
}

// NewTimerHandler creates a TimerHandler.
func NewTimerHandler(timerSvc service.TimerService, eventSvc service.EventService) *TimerHandler {
	return &TimerHandler{timerSvc: timerSvc, eventSvc: eventSvc}
}

// Start starts (or restarts) the event clock for a heat.
// POST /api/v1/events/:id/timer/start
func (h *TimerHandler) Start(c *gin.Context) {
	eventID, ok := h.ownedEvent(c)
	if !ok {
		return
	}

	var req dto.TimerStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	response.OK(c, h.timerSvc.Start(eventID, req.HeatNumber))
}

// Stop stops the event clock, optionally pinning a client-side split.
// POST /api/v1/events/:id/timer/stop
func (h *TimerHandler) Stop(c *gin.Context) {
	eventID, ok := h.ownedEvent(c)
	if !ok {
		return
	}

	// Body is optional: an empty stop means "capture server elapsed now".
	var req dto.TimerStopRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, 10001, "invalid request body")
			return
		}
	}

	response.OK(c, h.timerSvc.Stop(eventID, req.ElapsedMs))
}

// Reset returns the event clock to idle.
// POST /api/v1/events/:id/timer/reset
func (h *TimerHandler) Reset(c *gin.Context) {
	eventID, ok := h.ownedEvent(c)
	if !ok {
		return
	}

	response.OK(c, h.timerSvc.Reset(eventID))
}

// Query reads the clock without touching it.
// GET /api/v1/events/:id/timer
func (h *TimerHandler) Query(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	if _, err := h.eventSvc.GetByID(c.Request.Context(), eventID); err != nil {
		h.handleTimerError(c, err)
		return
	}

	response.OK(c, h.timerSvc.Query(eventID))
}

// ownedEvent resolves the :id parameter and enforces that the caller's club
// owns the event (admin bypasses).
func (h *TimerHandler) ownedEvent(c *gin.Context) (string, bool) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return "", false
	}

	_, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return "", false
	}

	event, err := h.eventSvc.GetByID(c.Request.Context(), eventID)
	if err != nil {
		h.handleTimerError(c, err)
		return "", false
	}
	if role != model.RoleAdmin && event.ClubID != clubID {
		response.Forbidden(c, 14004, "event belongs to another club")
		return "", false
	}

	return eventID, true
}

func (h *TimerHandler) handleTimerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 14001, "event not found")
	default:
		response.InternalError(c)
	}
}
