package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// HeatHandler serves the heat and lane endpoints of an event.
type HeatHandler struct {
	heatSvc service.HeatService
}

// NewHeatHandler creates a HeatHandler.
func NewHeatHandler(heatSvc service.HeatService) *HeatHandler {
	return &HeatHandler{heatSvc: heatSvc}
}

// ListHeats lists the event's heats with their lanes, ordered.
// GET /api/v1/events/:id/heats
func (h *HeatHandler) ListHeats(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	heats, err := h.heatSvc.ListHeats(c.Request.Context(), eventID)
	if err != nil {
		h.handleHeatError(c, err)
		return
	}

	response.OK(c, gin.H{"list": heats})
}

// CreateHeat configures one heat. Heat 1 restarts the event's lane
// configuration; later heats add to it.
// POST /api/v1/events/:id/heats
func (h *HeatHandler) CreateHeat(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	var req dto.CreateHeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	lanes, err := h.heatSvc.CreateHeat(c.Request.Context(), eventID, &req, clubID, role, callerID)
	if err != nil {
		h.handleHeatError(c, err)
		return
	}

	response.Created(c, gin.H{"lanes": lanes})
}

// AssignSwimmer puts a swimmer into a lane.
// PUT /api/v1/events/:id/lanes/:laneId/swimmer
func (h *HeatHandler) AssignSwimmer(c *gin.Context) {
	eventID := c.Param("id")
	laneID := c.Param("laneId")
	if eventID == "" || laneID == "" {
		response.BadRequest(c, 10001, "event id and lane id required")
		return
	}

	var req dto.AssignSwimmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	lane, err := h.heatSvc.AssignSwimmer(c.Request.Context(), eventID, laneID, req.SwimmerID, clubID, role, callerID)
	if err != nil {
		h.handleHeatError(c, err)
		return
	}

	response.OK(c, lane)
}

// RecordFinalTime records a lane's final time and closes the lane.
// PUT /api/v1/events/:id/lanes/:laneId/time
func (h *HeatHandler) RecordFinalTime(c *gin.Context) {
	eventID := c.Param("id")
	laneID := c.Param("laneId")
	if eventID == "" || laneID == "" {
		response.BadRequest(c, 10001, "event id and lane id required")
		return
	}

	var req dto.RecordTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	lane, err := h.heatSvc.RecordFinalTime(c.Request.Context(), eventID, laneID, req.ElapsedMs, clubID, role, callerID)
	if err != nil {
		h.handleHeatError(c, err)
		return
	}

	response.OK(c, lane)
}

func (h *HeatHandler) handleHeatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 14001, "event not found")
	case errors.Is(err, service.ErrEventForbidden):
		response.Forbidden(c, 14004, "event belongs to another club")
	case errors.Is(err, service.ErrEventFinished):
		response.BadRequest(c, 14005, "event is finished")
	case errors.Is(err, service.ErrLaneNotFound):
		response.NotFound(c, 15001, "lane not found in this event")
	case errors.Is(err, service.ErrLaneNumberTaken):
		response.BadRequest(c, 15002, "duplicate lane number in heat")
	case errors.Is(err, service.ErrCoachNotInClub):
		response.BadRequest(c, 15003, "coach does not belong to the event's club")
	case errors.Is(err, service.ErrSwimmerNotFound):
		response.NotFound(c, 13001, "swimmer not found")
	case errors.Is(err, service.ErrSwimmerAlreadyEntered):
		response.Conflict(c, 15004, "swimmer already holds a lane in this event")
	case errors.Is(err, service.ErrLaneClosed):
		response.Conflict(c, 15005, "lane already has a final time")
	case errors.Is(err, service.ErrHeatHasResults):
		response.Conflict(c, 15006, "heat already has recorded results")
	default:
		response.InternalError(c)
	}
}
